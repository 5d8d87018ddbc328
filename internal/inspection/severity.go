// Package inspection derives summary views over a property's issue list:
// severity buckets, counts, total estimated repair cost, the issue-type
// index, and combined severity/type filtering. Everything here is a pure
// function of its input; records are never mutated and no state is shared
// between calls.
package inspection

// Severity is the bucket an issue's concern level falls in.
type Severity string

const (
	SeverityCritical Severity = "Critical"
	SeverityHigh     Severity = "High"
	SeverityModerate Severity = "Moderate"
	SeverityLow      Severity = "Low"
)

// Bucket thresholds on the 1-10 concern scale. The same mapping drives
// on-screen badges, summary counts, and report labels; it is not
// configurable.
const (
	criticalMin = 8
	highMin     = 6
	moderateMin = 3
)

// BucketFor maps a concern level to its severity bucket.
func BucketFor(concernLevel int) Severity {
	switch {
	case concernLevel >= criticalMin:
		return SeverityCritical
	case concernLevel >= highMin:
		return SeverityHigh
	case concernLevel >= moderateMin:
		return SeverityModerate
	default:
		return SeverityLow
	}
}

// String returns the bucket's display label.
func (s Severity) String() string {
	return string(s)
}
