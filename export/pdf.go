package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/NemesisID/PreviewOnly-Dash/entity"

	"github.com/go-pdf/fpdf"
)

// A4 portrait in points.
const (
	pageWidth    = 595.28
	pageHeight   = 841.89
	margin       = 40.0
	titleSize    = 16.0
	lineSize     = 10.0
	lineHeight   = 14.0
	titleSpacing = 26.0
)

const pdfTitle = "Orders Recap"

// LinePos is where a recap line lands: page index (0-based) and baseline y.
type LinePos struct {
	Page int
	Y    float64
}

// Layout places n lines under the title, starting a new page once the next
// baseline would fall below the bottom margin.
func Layout(n int) []LinePos {
	out := make([]LinePos, 0, n)
	page := 0
	y := margin + titleSpacing
	for i := 0; i < n; i++ {
		if y > pageHeight-margin {
			page++
			y = margin
		}
		out = append(out, LinePos{Page: page, Y: y})
		y += lineHeight
	}
	return out
}

// PageCount for n lines; the title page always exists.
func PageCount(n int) int {
	l := Layout(n)
	if len(l) == 0 {
		return 1
	}
	return l[len(l)-1].Page + 1
}

func pdfLine(o entity.Order, loc *time.Location) string {
	return fmt.Sprintf("%s | %s | %s | %s | %s",
		o.Code, o.CustomerName, o.Status.Label(), FormatRupiah(o.TotalPrice), o.CreatedAt.In(loc).Format(shortDateLayout))
}

// PDF renders the plain-text recap.
func PDF(orders []entity.Order, loc *time.Location) ([]byte, error) {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, margin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "", titleSize)
	pdf.Text(margin, margin, pdfTitle)
	pdf.SetFont("Helvetica", "", lineSize)

	page := 0
	for i, pos := range Layout(len(orders)) {
		if pos.Page != page {
			pdf.AddPage()
			pdf.SetFont("Helvetica", "", lineSize)
			page = pos.Page
		}
		pdf.Text(margin, pos.Y, tr(pdfLine(orders[i], loc)))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
