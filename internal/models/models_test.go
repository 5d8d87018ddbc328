package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradeBand(t *testing.T) {
	tests := []struct {
		grade string
		want  byte
	}{
		{"A", 'A'},
		{"A+", 'A'},
		{"B", 'B'},
		{"C+", 'C'},
		{"D-", 'D'},
		{"F", 'F'},
		{"", 'F'},
		{"X", 'F'},
		{"?", 'F'},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeBand(tt.grade), "grade %q", tt.grade)
	}
}

func TestIssueParagraphs(t *testing.T) {
	t.Run("splits on pipe delimiter", func(t *testing.T) {
		issue := Issue{Description: "Finding text.|Recommendation text."}
		parts := issue.Paragraphs()

		require.Len(t, parts, 2)
		assert.Equal(t, "Finding text.", parts[0])
		assert.Equal(t, "Recommendation text.", parts[1])
		for _, p := range parts {
			assert.NotContains(t, p, DescriptionDelimiter)
		}
	})

	t.Run("single segment without delimiter", func(t *testing.T) {
		issue := Issue{Description: "Just a finding."}
		assert.Equal(t, []string{"Just a finding."}, issue.Paragraphs())
	})

	t.Run("drops empty segments", func(t *testing.T) {
		issue := Issue{Description: "Finding.| |"}
		assert.Equal(t, []string{"Finding."}, issue.Paragraphs())
	})
}

func TestCostRangeMean(t *testing.T) {
	t.Run("mean of valid bounds", func(t *testing.T) {
		r := CostRange{Low: 100, High: 200}
		assert.Equal(t, 150.0, r.Mean())
	})

	t.Run("reversed bounds contribute zero", func(t *testing.T) {
		r := CostRange{Low: 200, High: 100}
		assert.Equal(t, 0.0, r.Mean())
	})

	t.Run("NaN bounds contribute zero", func(t *testing.T) {
		r := CostRange{Low: math.NaN(), High: 200}
		assert.Equal(t, 0.0, r.Mean())
		assert.False(t, math.IsNaN(r.Mean()))
	})

	t.Run("zero range is valid", func(t *testing.T) {
		assert.Equal(t, 0.0, CostRange{}.Mean())
	})
}

func TestParseCostRange(t *testing.T) {
	t.Run("parses formatted range", func(t *testing.T) {
		r, err := ParseCostRange("$8,500 - $15,000")
		require.NoError(t, err)
		assert.Equal(t, CostRange{Low: 8500, High: 15000}, r)
	})

	t.Run("parses plain numbers", func(t *testing.T) {
		r, err := ParseCostRange("450 - 800")
		require.NoError(t, err)
		assert.Equal(t, CostRange{Low: 450, High: 800}, r)
	})

	t.Run("rejects single bound", func(t *testing.T) {
		_, err := ParseCostRange("$8,500")
		assert.Error(t, err)
	})

	t.Run("rejects non-numeric bound", func(t *testing.T) {
		_, err := ParseCostRange("$8,500 - soon")
		assert.Error(t, err)
	})

	t.Run("rejects reversed bounds", func(t *testing.T) {
		_, err := ParseCostRange("$15,000 - $8,500")
		assert.Error(t, err)
	})
}

func TestCostRangeString(t *testing.T) {
	r := CostRange{Low: 8500, High: 15000}
	assert.Equal(t, "$8,500 - $15,000", r.String())
}

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0"},
		{999, "$999"},
		{1000, "$1,000"},
		{1250000, "$1,250,000"},
		{23150.5, "$23,151"},
		{-4500, "-$4,500"},
		{math.NaN(), "$0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatUSD(tt.amount), "amount %v", tt.amount)
	}
}

func TestCategoryIconKey(t *testing.T) {
	t.Run("known categories map to symbols", func(t *testing.T) {
		assert.Equal(t, "hammer", CategoryStructural.IconKey())
		assert.Equal(t, "droplet", CategoryWaterDamage.IconKey())
		assert.Equal(t, "zap", CategoryElectrical.IconKey())
		assert.True(t, CategoryHVAC.Known())
	})

	t.Run("unrecognized category falls back", func(t *testing.T) {
		c := Category("Landscaping")
		assert.False(t, c.Known())
		assert.Equal(t, IconKeyDefault, c.IconKey())
	})
}
