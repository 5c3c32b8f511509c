package export

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/NemesisID/PreviewOnly-Dash/entity"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

var wib = time.FixedZone("WIB", 7*60*60)

func sample() []entity.Order {
	return []entity.Order{
		{
			Model:         gorm.Model{ID: 3, CreatedAt: time.Date(2026, 10, 16, 23, 59, 0, 0, wib)},
			Code:          "ORD-1002",
			CustomerName:  "Andi",
			CustomerPhone: "0812-0000-0002",
			TotalPrice:    50000,
			Status:        entity.StatusShipped,
			Source:        entity.SourceTikTok,
		},
		{
			Model:         gorm.Model{ID: 2, CreatedAt: time.Date(2026, 10, 15, 9, 5, 7, 0, wib)},
			Code:          "ORD-1001",
			CustomerName:  "Sari",
			CustomerPhone: "0812-0000-0001",
			TotalPrice:    1250000,
			Status:        entity.StatusPending,
			Source:        entity.SourceShopee,
		},
		{
			Model:         gorm.Model{ID: 1, CreatedAt: time.Date(2026, 10, 1, 12, 0, 0, 0, wib)},
			Code:          "ORD-1000",
			CustomerName:  "Budi",
			CustomerPhone: "0812-0000-0000",
			TotalPrice:    0,
			Status:        entity.StatusCompleted,
			Source:        entity.SourceWeb,
		},
	}
}

func codes(orders []entity.Order) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.Code)
	}
	return out
}

func TestParseFilterAndApply(t *testing.T) {
	tests := []struct {
		name                       string
		start, end, status, source string
		want                       []string
	}{
		{"no constraints", "", "", "", "", []string{"ORD-1002", "ORD-1001", "ORD-1000"}},
		{"all is no constraint", "", "", "all", "all", []string{"ORD-1002", "ORD-1001", "ORD-1000"}},
		{"end day is inclusive", "", "2026-10-16", "", "", []string{"ORD-1002", "ORD-1001", "ORD-1000"}},
		{"end excludes later days", "", "2026-10-15", "", "", []string{"ORD-1001", "ORD-1000"}},
		{"start is inclusive", "2026-10-15", "", "", "", []string{"ORD-1002", "ORD-1001"}},
		{"single day", "2026-10-15", "2026-10-15", "", "", []string{"ORD-1001"}},
		{"status", "", "", "pending", "", []string{"ORD-1001"}},
		{"source", "", "", "", "web", []string{"ORD-1000"}},
		{"status and source", "", "", "shipped", "shopee", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFilter(tt.start, tt.end, tt.status, tt.source, wib)
			require.NoError(t, err)
			got := codes(Apply(sample(), f))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseFilterRejects(t *testing.T) {
	for _, args := range [][4]string{
		{"16-10-2026", "", "", ""},
		{"", "yesterday", "", ""},
		{"", "", "lost", ""},
		{"", "", "", "lazada"},
	} {
		_, err := ParseFilter(args[0], args[1], args[2], args[3], wib)
		assert.True(t, errors.Is(err, ErrInvalidFilter), "args %v: err = %v", args, err)
	}
}

func TestEndOfDayUsesEndLocation(t *testing.T) {
	end := time.Date(2026, 10, 15, 0, 0, 0, 0, wib)
	f := Filter{End: &end}

	justBefore := entity.Order{Model: gorm.Model{CreatedAt: time.Date(2026, 10, 15, 16, 59, 59, 999999999, time.UTC)}}
	justAfter := entity.Order{Model: gorm.Model{CreatedAt: time.Date(2026, 10, 15, 17, 0, 0, 0, time.UTC)}}
	assert.True(t, f.Match(justBefore))
	assert.False(t, f.Match(justAfter))
}

func TestFormatRupiah(t *testing.T) {
	assert.Equal(t, "Rp 0", FormatRupiah(0))
	assert.Equal(t, "Rp 950", FormatRupiah(950))
	assert.Equal(t, "Rp 50.000", FormatRupiah(50000))
	assert.Equal(t, "Rp 1.250.000", FormatRupiah(1250000))
}

func TestRows(t *testing.T) {
	rows := Rows(sample()[1:2], wib)
	want := []Row{{
		Code:     "ORD-1001",
		Customer: "Sari",
		Phone:    "0812-0000-0001",
		Total:    1250000,
		Status:   "Pending",
		Source:   "Shopee",
		Created:  "15/10/2026, 09.05.07",
	}}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
	}
}

func TestFileName(t *testing.T) {
	// 20:00 UTC is already the next day in WIB
	now := time.Date(2026, 10, 16, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "orders-2026-10-17.xlsx", FileName(KindXLSX, now, wib))
	assert.Equal(t, "orders-2026-10-17.pdf", FileName(KindPDF, now, wib))
}

func TestXLSX(t *testing.T) {
	data, err := XLSX(sample(), wib)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())
	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, []string{"ORD-1002", "Andi", "0812-0000-0002", "50000", "Dikirim", "TikTok", "16/10/2026, 23.59.00"}, rows[1])
	assert.Equal(t, "Website", rows[3][5])
}

func TestXLSXEmpty(t *testing.T) {
	data, err := XLSX(nil, wib)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestLayoutPagination(t *testing.T) {
	tests := []struct {
		lines, pages int
	}{
		{0, 1},
		{1, 1},
		{53, 1},
		{54, 2},
		{53 + 55, 2},
		{53 + 55 + 1, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.pages, PageCount(tt.lines), "%d lines", tt.lines)
	}

	l := Layout(55)
	assert.Equal(t, LinePos{Page: 0, Y: 66}, l[0])
	assert.Equal(t, LinePos{Page: 1, Y: 40}, l[53])
	for _, p := range l {
		assert.LessOrEqual(t, p.Y, pageHeight-margin)
	}
}

func TestPDF(t *testing.T) {
	data, err := PDF(sample(), wib)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Equal(t, 1, bytes.Count(data, []byte("/Type /Page\n")))

	many := make([]entity.Order, 0, 120)
	for i := 0; i < 120; i++ {
		many = append(many, sample()[i%3])
	}
	data, err = PDF(many, wib)
	require.NoError(t, err)
	assert.Equal(t, PageCount(120), bytes.Count(data, []byte("/Type /Page\n")))
}

func TestPDFLine(t *testing.T) {
	assert.Equal(t, "ORD-1002 | Andi | Dikirim | Rp 50.000 | 16/10/2026", pdfLine(sample()[0], wib))
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := Render("csv", sample(), wib)
	assert.True(t, errors.Is(err, ErrInvalidFilter))
}
