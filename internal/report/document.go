// Package report synthesizes the printable inspection summary for a
// property: a paginated document with a title band, property and summary
// blocks, per-issue entries sorted by concern level, and stamped footers.
// Composition is a pure function of its inputs; rendering to PDF is a
// separate pass over the composed document.
package report

// RGB is a 24-bit color used by text blocks, rules, and bands.
type RGB struct {
	R, G, B int
}

// TextBlock is a positioned run of text. X, Y are in millimeters from the
// page's top-left corner; Y is the text baseline, as the renderer draws it.
type TextBlock struct {
	Text  string
	X, Y  float64
	Size  float64
	Color RGB
	Bold  bool
}

// Rule is a horizontal or vertical separator line.
type Rule struct {
	X1, Y1, X2, Y2 float64
	Color          RGB
}

// Band is a filled rectangle, drawn beneath any text on the page.
type Band struct {
	X, Y, W, H float64
	Color      RGB
}

// Page holds the positioned elements of one page. Render order is bands,
// then rules, then text.
type Page struct {
	Bands []Band
	Rules []Rule
	Texts []TextBlock
}

// Document is an ordered sequence of fixed-size pages. It is rebuilt on
// every export request and never persisted.
type Document struct {
	Pages  []Page
	Width  float64
	Height float64
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return len(d.Pages)
}
