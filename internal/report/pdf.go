package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// RenderPDF writes the composed document as a PDF. The creation and
// modification dates are pinned to generatedAt so identical documents
// produce identical bytes.
func RenderPDF(doc *Document, generatedAt time.Time, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(generatedAt)
	pdf.SetModificationDate(generatedAt)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(documentTitle, false)
	pdf.SetAuthor(ProductName, false)

	for _, page := range doc.Pages {
		pdf.AddPage()

		for _, b := range page.Bands {
			pdf.SetFillColor(b.Color.R, b.Color.G, b.Color.B)
			pdf.Rect(b.X, b.Y, b.W, b.H, "F")
		}
		for _, r := range page.Rules {
			pdf.SetDrawColor(r.Color.R, r.Color.G, r.Color.B)
			pdf.Line(r.X1, r.Y1, r.X2, r.Y2)
		}
		for _, t := range page.Texts {
			style := ""
			if t.Bold {
				style = "B"
			}
			pdf.SetFont("Helvetica", style, t.Size)
			pdf.SetTextColor(t.Color.R, t.Color.G, t.Color.B)
			pdf.Text(t.X, t.Y, t.Text)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render report pdf: %w", err)
	}
	return nil
}

// Filename derives the deterministic export filename from a property
// address, replacing whitespace runs with a single dash.
func Filename(address string) string {
	return fmt.Sprintf("RealityAI-Report-%s.pdf", strings.Join(strings.Fields(address), "-"))
}
