package export

import (
	"fmt"
	"time"

	"github.com/NemesisID/PreviewOnly-Dash/entity"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	KindXLSX = "xlsx"
	KindPDF  = "pdf"
)

const (
	dateTimeLayout  = "2/1/2006, 15.04.05" // id-ID toLocaleString
	shortDateLayout = "2/1/2006"
)

var idPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah renders 50000 as "Rp 50.000".
func FormatRupiah(amount int64) string {
	return "Rp " + idPrinter.Sprintf("%d", amount)
}

// Row is one exported order, already formatted for people.
type Row struct {
	Code     string
	Customer string
	Phone    string
	Total    int64
	Status   string
	Source   string
	Created  string
}

var Header = []string{"Code", "Customer", "Phone", "Total", "Status", "Source", "Created"}

func Rows(orders []entity.Order, loc *time.Location) []Row {
	rows := make([]Row, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, Row{
			Code:     o.Code,
			Customer: o.CustomerName,
			Phone:    o.CustomerPhone,
			Total:    o.TotalPrice,
			Status:   o.Status.Label(),
			Source:   o.Source.Label(),
			Created:  o.CreatedAt.In(loc).Format(dateTimeLayout),
		})
	}
	return rows
}

// FileName is the download name, dated in loc.
func FileName(kind string, now time.Time, loc *time.Location) string {
	return "orders-" + now.In(loc).Format(time.DateOnly) + "." + kind
}

func ContentType(kind string) string {
	if kind == KindPDF {
		return "application/pdf"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Render dispatches on kind; unknown kinds are an ErrInvalidFilter.
func Render(kind string, orders []entity.Order, loc *time.Location) ([]byte, error) {
	switch kind {
	case KindXLSX:
		return XLSX(orders, loc)
	case KindPDF:
		return PDF(orders, loc)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrInvalidFilter, kind)
	}
}
