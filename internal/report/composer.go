package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/realityai/inspect-api/internal/inspection"
	"github.com/realityai/inspect-api/internal/models"
)

// Fixed document strings.
const (
	ProductName   = "Real(i)ty.AI"
	documentTitle = "Property Inspection Report"
	attribution   = "Generated by " + ProductName
)

// Page geometry in millimeters (A4, portrait).
const (
	pageWidth  = 210.0
	pageHeight = 297.0

	marginX   = 20.0
	topMargin = 20.0

	headerBandHeight = 35.0

	lineStep = 7.0 // vertical advance between body lines
	wrapStep = 5.0 // vertical advance between wrapped description lines

	// Near-bottom thresholds: an entry's fixed header+metadata needs more
	// headroom than a single wrapped line, so a long description may split
	// across a page boundary mid-paragraph.
	entryBottomMargin = 60.0
	lineBottomMargin  = 20.0

	footerY = pageHeight - 10.0
)

// Font sizes.
const (
	sizeProduct   = 24.0
	sizeSubtitle  = 12.0
	sizeHeading   = 18.0
	sizeSection   = 16.0
	sizeBody      = 11.0
	sizeEntry     = 12.0
	sizeMeta      = 10.0
	sizeWrapped   = 9.0
	sizeFooter    = 9.0
)

// longDateLayout is the spelled-out date form used in the report body.
const longDateLayout = "January 2, 2006"

var (
	colorHeaderFill = RGB{30, 58, 138}
	colorWhite      = RGB{255, 255, 255}
	colorBlack      = RGB{0, 0, 0}
	colorRed        = RGB{220, 38, 38}
	colorOrange     = RGB{234, 88, 12}
	colorYellow     = RGB{202, 138, 4}
	colorRule       = RGB{200, 200, 200}
	colorFooter     = RGB{128, 128, 128}
)

// measureFunc returns the rendered width in millimeters of text at the
// given font size.
type measureFunc func(text string, size float64) float64

// Compose builds the paginated report for a property and its full issue
// list. The document always covers every issue, sorted by concern level
// descending, regardless of any filter state in effect on screen.
// Identical inputs produce an identical document.
func Compose(property models.Property, issues []models.Issue, generatedAt time.Time) *Document {
	return compose(property, issues, generatedAt, fontMetrics())
}

// fontMetrics builds a measurer backed by the renderer's own font tables,
// so composed line breaks match what the PDF will show.
func fontMetrics() measureFunc {
	m := fpdf.New("P", "mm", "A4", "")
	return func(text string, size float64) float64 {
		m.SetFont("Helvetica", "", size)
		return m.GetStringWidth(text)
	}
}

type layout struct {
	measure measureFunc
	pages   []Page
	cur     *Page
	y       float64
}

func newLayout(measure measureFunc) *layout {
	l := &layout{measure: measure}
	l.newPage()
	return l
}

func (l *layout) newPage() {
	l.pages = append(l.pages, Page{})
	l.cur = &l.pages[len(l.pages)-1]
	l.y = topMargin
}

func (l *layout) text(x float64, s string, size float64, bold bool, color RGB) {
	l.cur.Texts = append(l.cur.Texts, TextBlock{
		Text: s, X: x, Y: l.y, Size: size, Bold: bold, Color: color,
	})
}

func (l *layout) line(s string, size float64, color RGB) {
	l.text(marginX, s, size, false, color)
	l.y += lineStep
}

func compose(property models.Property, issues []models.Issue, generatedAt time.Time, measure measureFunc) *Document {
	l := newLayout(measure)

	// Title band, first page only.
	l.cur.Bands = append(l.cur.Bands, Band{X: 0, Y: 0, W: pageWidth, H: headerBandHeight, Color: colorHeaderFill})
	l.cur.Texts = append(l.cur.Texts,
		TextBlock{Text: ProductName, X: marginX, Y: 20, Size: sizeProduct, Color: colorWhite},
		TextBlock{Text: documentTitle, X: marginX, Y: 28, Size: sizeSubtitle, Color: colorWhite},
	)

	// Property information block.
	l.y = 50
	l.text(marginX, "Property Information", sizeHeading, false, colorBlack)
	l.y += 10

	tourDate := "TBD"
	if property.TourDate != nil {
		tourDate = property.TourDate.Format(longDateLayout)
	}
	l.line(fmt.Sprintf("Address: %s", property.Address), sizeBody, colorBlack)
	l.line(fmt.Sprintf("Location: %s, %s %s", property.City, property.State, property.ZipCode), sizeBody, colorBlack)
	l.line(fmt.Sprintf("Property Grade: %s", property.Grade), sizeBody, colorBlack)
	l.line(fmt.Sprintf("Estimated Value: %s", models.FormatUSD(property.EstimatedPrice)), sizeBody, colorBlack)
	l.line(fmt.Sprintf("Inspection Date: %s", tourDate), sizeBody, colorBlack)
	l.text(marginX, fmt.Sprintf("Report Generated: %s", generatedAt.Format(longDateLayout)), sizeBody, false, colorBlack)
	l.y += 15

	// Summary block, always present even with no issues.
	summary := inspection.Summarize(issues)
	l.text(marginX, "Inspection Summary", sizeSection, false, colorBlack)
	l.y += 10
	l.line(fmt.Sprintf("Total Issues Detected: %d", summary.TotalIssues), sizeBody, colorBlack)
	l.line(fmt.Sprintf("Critical Issues: %d", summary.CriticalCount), sizeBody, colorRed)
	l.line(fmt.Sprintf("High Priority Issues: %d", summary.HighCount), sizeBody, colorOrange)
	l.line(fmt.Sprintf("Moderate Issues: %d", summary.ModerateCount), sizeBody, colorYellow)
	l.text(marginX, fmt.Sprintf("Estimated Total Repair Cost: %s", models.FormatUSD(summary.EstimatedRepairTotal)), sizeBody, false, colorBlack)
	l.y += 15

	// Per-issue entries, severity descending.
	l.text(marginX, "Detailed Issue Report", sizeSection, false, colorBlack)
	l.y += 10

	for idx, issue := range inspection.SortBySeverity(issues) {
		if l.y > pageHeight-entryBottomMargin {
			l.newPage()
		}

		l.text(marginX, fmt.Sprintf("%d. %s", idx+1, issue.Title), sizeEntry, true, colorBlack)
		l.y += lineStep

		bucket := inspection.BucketFor(issue.ConcernLevel)
		meta := fmt.Sprintf("Category: %s | Concern: %d/10 (%s) | Cost: %s",
			issue.Category, issue.ConcernLevel, bucket, issue.EstimatedCost)
		l.text(marginX, meta, sizeMeta, false, colorBlack)
		l.y += lineStep

		// Pipe delimiters become spaces, then the text reflows to the
		// printable width. A tighter bottom margin applies per line.
		flowed := strings.ReplaceAll(issue.Description, models.DescriptionDelimiter, " ")
		for _, wrapped := range wrap(flowed, pageWidth-2*marginX, sizeWrapped, measure) {
			if l.y > pageHeight-lineBottomMargin {
				l.newPage()
			}
			l.text(marginX, wrapped, sizeWrapped, false, colorBlack)
			l.y += wrapStep
		}

		l.y += 8
		l.cur.Rules = append(l.cur.Rules, Rule{X1: marginX, Y1: l.y, X2: pageWidth - marginX, Y2: l.y, Color: colorRule})
		l.y += 10
	}

	// Footer pass once the page count is known.
	total := len(l.pages)
	for i := range l.pages {
		l.pages[i].Texts = append(l.pages[i].Texts,
			TextBlock{Text: fmt.Sprintf("Page %d of %d", i+1, total), X: pageWidth - 30, Y: footerY, Size: sizeFooter, Color: colorFooter},
			TextBlock{Text: attribution, X: marginX, Y: footerY, Size: sizeFooter, Color: colorFooter},
		)
	}

	return &Document{Pages: l.pages, Width: pageWidth, Height: pageHeight}
}

// wrap reflows text into lines no wider than maxWidth, breaking on word
// boundaries only. A single word wider than maxWidth gets its own line
// rather than being truncated.
func wrap(text string, maxWidth, size float64, measure measureFunc) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if measure(candidate, size) > maxWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	return append(lines, current)
}
