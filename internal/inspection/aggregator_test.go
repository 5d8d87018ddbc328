package inspection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realityai/inspect-api/internal/models"
)

func issueWith(title string, level int, low, high float64) models.Issue {
	return models.Issue{
		Title:         title,
		ConcernLevel:  level,
		EstimatedCost: models.CostRange{Low: low, High: high},
	}
}

func TestBucketFor(t *testing.T) {
	tests := []struct {
		level int
		want  Severity
	}{
		{10, SeverityCritical},
		{9, SeverityCritical},
		{8, SeverityCritical},
		{7, SeverityHigh},
		{6, SeverityHigh},
		{5, SeverityModerate},
		{4, SeverityModerate},
		{3, SeverityModerate},
		{2, SeverityLow},
		{1, SeverityLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BucketFor(tt.level), "level %d", tt.level)
	}
}

func TestSummarize_Counts(t *testing.T) {
	issues := []models.Issue{
		issueWith("A", 9, 100, 200),
		issueWith("B", 8, 100, 200),
		issueWith("C", 7, 100, 200),
		issueWith("D", 5, 100, 200),
		issueWith("E", 2, 100, 200),
	}

	s := Summarize(issues)

	assert.Equal(t, 5, s.TotalIssues)
	assert.Equal(t, 2, s.CriticalCount)
	assert.Equal(t, 1, s.HighCount)
	assert.Equal(t, 1, s.ModerateCount)

	// Low-severity issues keep the bucket sum below the total.
	assert.Less(t, s.CriticalCount+s.HighCount+s.ModerateCount, s.TotalIssues)
}

func TestSummarize_BucketSumEqualsTotalWithoutLow(t *testing.T) {
	issues := []models.Issue{
		issueWith("A", 9, 0, 0),
		issueWith("B", 6, 0, 0),
		issueWith("C", 3, 0, 0),
	}

	s := Summarize(issues)
	assert.Equal(t, s.TotalIssues, s.CriticalCount+s.HighCount+s.ModerateCount)
}

func TestSummarize_CostTotal(t *testing.T) {
	t.Run("single issue mean", func(t *testing.T) {
		s := Summarize([]models.Issue{issueWith("A", 5, 100, 200)})
		assert.Equal(t, 150.0, s.EstimatedRepairTotal)
	})

	t.Run("sums means across issues", func(t *testing.T) {
		s := Summarize([]models.Issue{
			issueWith("A", 5, 100, 200),
			issueWith("B", 5, 300, 500),
		})
		assert.Equal(t, 550.0, s.EstimatedRepairTotal)
	})

	t.Run("unusable cost contributes zero, never NaN", func(t *testing.T) {
		s := Summarize([]models.Issue{
			issueWith("A", 5, 100, 200),
			issueWith("B", 5, math.NaN(), math.NaN()),
			issueWith("C", 5, 900, 100), // reversed bounds
		})
		assert.Equal(t, 150.0, s.EstimatedRepairTotal)
		assert.False(t, math.IsNaN(s.EstimatedRepairTotal))
	})

	t.Run("total is never negative", func(t *testing.T) {
		s := Summarize([]models.Issue{issueWith("A", 5, -500, -100)})
		assert.GreaterOrEqual(t, s.EstimatedRepairTotal, 0.0)
	})
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, Summary{}, s)
	assert.Equal(t, 0, s.TotalIssues)
	assert.Equal(t, 0.0, s.EstimatedRepairTotal)
}

func TestIssueTypes(t *testing.T) {
	t.Run("deduplicated and sorted", func(t *testing.T) {
		issues := []models.Issue{
			issueWith("B", 5, 0, 0),
			issueWith("A", 5, 0, 0),
			issueWith("A", 5, 0, 0),
		}

		types := IssueTypes(issues)

		require.Len(t, types, 2)
		assert.Equal(t, TypeCount{Type: "A", Count: 2}, types[0])
		assert.Equal(t, TypeCount{Type: "B", Count: 1}, types[1])
	})

	t.Run("empty list", func(t *testing.T) {
		assert.Empty(t, IssueTypes(nil))
	})
}

func TestFilter_Severity(t *testing.T) {
	issues := []models.Issue{
		issueWith("A", 9, 0, 0),
		issueWith("B", 7, 0, 0),
		issueWith("C", 4, 0, 0),
		issueWith("D", 1, 0, 0),
	}

	t.Run("all includes low", func(t *testing.T) {
		assert.Len(t, Filter(issues, FilterAll, TypeFilterAll), 4)
	})

	t.Run("critical", func(t *testing.T) {
		got := Filter(issues, FilterCritical, TypeFilterAll)
		require.Len(t, got, 1)
		assert.Equal(t, "A", got[0].Title)
	})

	t.Run("high", func(t *testing.T) {
		got := Filter(issues, FilterHigh, TypeFilterAll)
		require.Len(t, got, 1)
		assert.Equal(t, "B", got[0].Title)
	})

	t.Run("moderate", func(t *testing.T) {
		got := Filter(issues, FilterModerate, TypeFilterAll)
		require.Len(t, got, 1)
		assert.Equal(t, "C", got[0].Title)
	})
}

func TestFilter_Conjunctive(t *testing.T) {
	issues := []models.Issue{
		issueWith("Roof Leak", 9, 0, 0),
		issueWith("Roof Leak", 4, 0, 0),
		issueWith("Mold", 9, 0, 0),
	}

	got := Filter(issues, FilterCritical, "Roof Leak")

	// Both predicates must hold: never the union.
	require.Len(t, got, 1)
	assert.Equal(t, "Roof Leak", got[0].Title)
	assert.Equal(t, 9, got[0].ConcernLevel)
}

func TestFilter_Idempotent(t *testing.T) {
	issues := []models.Issue{
		issueWith("Roof Leak", 9, 0, 0),
		issueWith("Mold", 7, 0, 0),
		issueWith("Roof Leak", 2, 0, 0),
	}

	once := Filter(issues, FilterCritical, "Roof Leak")
	twice := Filter(once, FilterCritical, "Roof Leak")

	assert.Equal(t, once, twice)
}

func TestFilter_TypeOnly(t *testing.T) {
	issues := []models.Issue{
		issueWith("Roof Leak", 9, 0, 0),
		issueWith("Mold", 7, 0, 0),
	}

	got := Filter(issues, FilterAll, "Mold")
	require.Len(t, got, 1)
	assert.Equal(t, "Mold", got[0].Title)
}

func TestSortBySeverity(t *testing.T) {
	issues := []models.Issue{
		issueWith("X", 9, 0, 0),
		issueWith("Z", 5, 0, 0),
		issueWith("Y", 9, 0, 0),
	}

	sorted := SortBySeverity(issues)

	require.Len(t, sorted, 3)
	assert.Equal(t, "Z", sorted[2].Title)

	// Stable: equal levels keep input order, and repeated runs agree.
	assert.Equal(t, "X", sorted[0].Title)
	assert.Equal(t, "Y", sorted[1].Title)
	assert.Equal(t, sorted, SortBySeverity(issues))

	// Input untouched.
	assert.Equal(t, "Z", issues[1].Title)
}
