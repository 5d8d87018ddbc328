package inspection

import (
	"sort"

	"github.com/realityai/inspect-api/internal/models"
)

// SeverityFilter selects a severity tier when filtering the issue list.
// Low is not independently selectable; it is only included under "all".
type SeverityFilter string

const (
	FilterAll      SeverityFilter = "all"
	FilterCritical SeverityFilter = "critical"
	FilterHigh     SeverityFilter = "high"
	FilterModerate SeverityFilter = "moderate"
)

// TypeFilterAll disables type filtering.
const TypeFilterAll = "all"

// ValidSeverityFilter reports whether f is a recognized filter value.
func ValidSeverityFilter(f SeverityFilter) bool {
	switch f {
	case FilterAll, FilterCritical, FilterHigh, FilterModerate:
		return true
	}
	return false
}

// Summary holds the derived counts and cost total for an issue list.
// Low-severity issues are not surfaced as a separate count at the summary
// level, only as per-issue badges.
type Summary struct {
	TotalIssues          int     `json:"totalIssues"`
	CriticalCount        int     `json:"criticalCount"`
	HighCount            int     `json:"highCount"`
	ModerateCount        int     `json:"moderateCount"`
	EstimatedRepairTotal float64 `json:"estimatedRepairTotal"`
}

// Summarize computes bucket counts and the total estimated repair cost,
// summing the mean of each issue's cost bounds. An unusable cost range
// contributes 0 rather than aborting the aggregation; an empty list yields
// an all-zero summary.
func Summarize(issues []models.Issue) Summary {
	var s Summary
	s.TotalIssues = len(issues)
	for _, issue := range issues {
		switch BucketFor(issue.ConcernLevel) {
		case SeverityCritical:
			s.CriticalCount++
		case SeverityHigh:
			s.HighCount++
		case SeverityModerate:
			s.ModerateCount++
		}
		s.EstimatedRepairTotal += issue.EstimatedCost.Mean()
	}
	return s
}

// TypeCount pairs an issue title with the number of issues sharing it.
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// IssueTypes returns the distinct issue titles present, in ascending
// lexical order, each with its occurrence count. Duplicate titles collapse
// to one entry.
func IssueTypes(issues []models.Issue) []TypeCount {
	counts := make(map[string]int, len(issues))
	for _, issue := range issues {
		counts[issue.Title]++
	}

	out := make([]TypeCount, 0, len(counts))
	for title, n := range counts {
		out = append(out, TypeCount{Type: title, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

// Filter returns the subset of issues matching both the severity and the
// type predicate. The predicates compose conjunctively; FilterAll and
// TypeFilterAll each disable their side. Filtering an already-filtered
// result by the same predicates returns the same set.
func Filter(issues []models.Issue, severity SeverityFilter, issueType string) []models.Issue {
	out := make([]models.Issue, 0, len(issues))
	for _, issue := range issues {
		if !severityMatches(severity, issue.ConcernLevel) {
			continue
		}
		if issueType != TypeFilterAll && issue.Title != issueType {
			continue
		}
		out = append(out, issue)
	}
	return out
}

func severityMatches(f SeverityFilter, concernLevel int) bool {
	switch f {
	case FilterCritical:
		return BucketFor(concernLevel) == SeverityCritical
	case FilterHigh:
		return BucketFor(concernLevel) == SeverityHigh
	case FilterModerate:
		return BucketFor(concernLevel) == SeverityModerate
	default:
		return true
	}
}

// SortBySeverity returns a copy of the issues ordered by concern level
// descending. The sort is stable, so issues at the same level keep their
// input order.
func SortBySeverity(issues []models.Issue) []models.Issue {
	out := make([]models.Issue, len(issues))
	copy(out, issues)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ConcernLevel > out[j].ConcernLevel
	})
	return out
}
