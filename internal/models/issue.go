package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DescriptionDelimiter separates paragraph segments inside an issue
// description. The first segment is the finding, later segments are the
// recommended action. Renderers must split on it, never print it literally.
const DescriptionDelimiter = "|"

// Issue is a single detected defect belonging to exactly one property.
// Records are read-only once fetched; the title doubles as the issue-type
// filter key.
type Issue struct {
	DetectedDate  time.Time `json:"detectedDate"`
	CreatedAt     time.Time `json:"createdAt"`
	ID            string    `json:"id"`
	PropertyID    string    `json:"propertyId"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      Category  `json:"category"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	EstimatedCost CostRange `json:"estimatedCost"`
	ConcernLevel  int       `json:"concernLevel"`
}

// Paragraphs splits the description into its delimited segments, trimming
// surrounding whitespace. Empty segments are dropped.
func (i Issue) Paragraphs() []string {
	parts := strings.Split(i.Description, DescriptionDelimiter)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// CostRange holds the numeric repair-cost bounds for an issue. The bounds
// are carried as numbers end-to-end and formatted only at render time; the
// legacy "$X - $Y" display string is parsed once at the ingestion boundary
// and never parsed back out of formatted text.
type CostRange struct {
	Low  float64 `json:"estimatedCostLow"`
	High float64 `json:"estimatedCostHigh"`
}

// Valid reports whether the range is usable for aggregation: both bounds
// finite, non-negative, and low <= high.
func (c CostRange) Valid() bool {
	if math.IsNaN(c.Low) || math.IsNaN(c.High) || math.IsInf(c.Low, 0) || math.IsInf(c.High, 0) {
		return false
	}
	return c.Low >= 0 && c.Low <= c.High
}

// Mean returns the arithmetic mean of the bounds, or 0 for an unusable
// range so a malformed cost never aborts aggregation or propagates NaN.
func (c CostRange) Mean() float64 {
	if !c.Valid() {
		return 0
	}
	return (c.Low + c.High) / 2
}

// String formats the range for display, e.g. "$8,500 - $15,000".
func (c CostRange) String() string {
	return FormatUSD(c.Low) + " - " + FormatUSD(c.High)
}

// ParseCostRange parses a legacy display string of the form "$X - $Y" into
// numeric bounds. Dollar signs and thousands separators are tolerated.
// Callers treat a parse failure as a zero-cost range, not a fatal error.
func ParseCostRange(s string) (CostRange, error) {
	parts := strings.Split(s, " - ")
	if len(parts) != 2 {
		return CostRange{}, fmt.Errorf("cost range %q: expected two bounds", s)
	}

	bounds := make([]float64, 2)
	for i, part := range parts {
		cleaned := strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(part))
		v, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return CostRange{}, fmt.Errorf("cost range %q: %w", s, err)
		}
		bounds[i] = v
	}

	r := CostRange{Low: bounds[0], High: bounds[1]}
	if !r.Valid() {
		return CostRange{}, fmt.Errorf("cost range %q: bounds out of order", s)
	}
	return r, nil
}
