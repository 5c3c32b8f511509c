package reporting

import (
	"testing"
	"time"

	"github.com/NemesisID/PreviewOnly-Dash/entity"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var wib = time.FixedZone("WIB", 7*60*60)

func order(id uint, status entity.OrderStatus, total int64, at time.Time) entity.Order {
	return entity.Order{
		Model:      gorm.Model{ID: id, CreatedAt: at},
		Code:       "ORD-" + string(rune('A'+id)),
		Status:     status,
		Source:     entity.SourceTikTok,
		TotalPrice: total,
	}
}

func TestWindowStart(t *testing.T) {
	// 01:00 WIB on the 16th is still the 15th in UTC; the window follows the local calendar
	now := time.Date(2026, 10, 15, 18, 0, 0, 0, time.UTC)
	got := WindowStart(now, wib)
	assert.True(t, got.Equal(time.Date(2026, 10, 10, 0, 0, 0, 0, wib)), "got %s", got)
}

func TestDailyBuckets(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, wib) // Friday
	orders := []entity.Order{
		order(1, entity.StatusPending, 10000, time.Date(2026, 10, 16, 8, 0, 0, 0, wib)),
		order(2, entity.StatusPending, 30000, time.Date(2026, 10, 16, 0, 0, 0, 0, wib)),
		order(3, entity.StatusShipped, 20000, time.Date(2026, 10, 10, 0, 0, 0, 0, wib)),
		// 23:30 UTC on the 12th is 06:30 WIB on the 13th
		order(4, entity.StatusCompleted, 5000, time.Date(2026, 10, 12, 23, 30, 0, 0, time.UTC)),
		// before the window
		order(5, entity.StatusCompleted, 99999, time.Date(2026, 10, 9, 23, 59, 59, 0, wib)),
	}

	days := DailyBuckets(now, wib, orders)
	require.Len(t, days, 7)

	type row struct {
		Date    string
		Label   string
		Count   int64
		Revenue int64
	}
	got := make([]row, 0, len(days))
	for _, d := range days {
		got = append(got, row{d.Date, d.Label, d.Count, d.Revenue})
	}
	want := []row{
		{"2026-10-10", "Sab", 1, 20000},
		{"2026-10-11", "Min", 0, 0},
		{"2026-10-12", "Sen", 0, 0},
		{"2026-10-13", "Sel", 1, 5000},
		{"2026-10-14", "Rab", 0, 0},
		{"2026-10-15", "Kam", 0, 0},
		{"2026-10-16", "Jum", 2, 40000},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DailyBuckets() mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, 1.0, days[6].CountRatio)
	assert.Equal(t, 0.5, days[0].CountRatio)
	assert.Equal(t, 1.0, days[6].RevenueRatio)
	assert.Equal(t, 0.5, days[0].RevenueRatio)
	assert.Equal(t, 0.0, days[1].RevenueRatio)
}

func TestDailyBucketsEmptyWindow(t *testing.T) {
	days := DailyBuckets(time.Date(2026, 10, 16, 9, 0, 0, 0, wib), wib, nil)
	for _, d := range days {
		assert.Zero(t, d.Count)
		assert.Zero(t, d.CountRatio)
		assert.Zero(t, d.RevenueRatio)
	}
}

func TestStatusDistribution(t *testing.T) {
	got := StatusDistribution(map[entity.OrderStatus]int64{
		entity.StatusPending:   4,
		entity.StatusCompleted: 2,
	})
	want := []StatusShare{
		{Status: entity.StatusPending, Label: "Pending", Count: 4, Ratio: 1},
		{Status: entity.StatusProcessing, Label: "Di Proses", Count: 0, Ratio: 0},
		{Status: entity.StatusShipped, Label: "Dikirim", Count: 0, Ratio: 0},
		{Status: entity.StatusCompleted, Label: "Selesai", Count: 2, Ratio: 0.5},
		{Status: entity.StatusCancelled, Label: "Dibatalkan", Count: 0, Ratio: 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("StatusDistribution() mismatch (-want +got):\n%s", diff)
	}

	for _, s := range StatusDistribution(nil) {
		assert.Zero(t, s.Ratio)
	}
}

func TestPendingQueue(t *testing.T) {
	base := time.Date(2026, 10, 16, 8, 0, 0, 0, wib)
	var orders []entity.Order
	for i := uint(1); i <= 7; i++ {
		orders = append(orders, order(i, entity.StatusPending, 1000, base.Add(time.Duration(i)*time.Minute)))
	}
	orders = append(orders, order(8, entity.StatusShipped, 1000, base.Add(time.Hour)))

	q := PendingQueue(orders, PendingLimit)
	require.Len(t, q, 5)
	ids := make([]uint, 0, len(q))
	for _, p := range q {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []uint{7, 6, 5, 4, 3}, ids)
	assert.Equal(t, "TikTok", q[0].Source)
}

func TestBuild(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, wib)
	window := []entity.Order{
		order(1, entity.StatusPending, 10000, now.Add(-time.Hour)),
		order(2, entity.StatusShipped, 25000, now.AddDate(0, 0, -3)),
	}

	snap := Build(now, wib, Input{
		Products:     10,
		Outlets:      5,
		Orders:       20,
		WindowOrders: window,
		StatusCounts: map[entity.OrderStatus]int64{entity.StatusPending: 1, entity.StatusShipped: 1},
		Pending:      window[:1],
	})

	assert.Equal(t, int64(10), snap.ProductCount)
	assert.Equal(t, int64(5), snap.OutletCount)
	assert.Equal(t, int64(20), snap.OrderCount)
	assert.Equal(t, 2, snap.WindowOrderCount)
	assert.Equal(t, int64(25000), snap.MaxRevenue)
	assert.True(t, snap.WindowStart.Equal(time.Date(2026, 10, 10, 0, 0, 0, 0, wib)))
	assert.Len(t, snap.Days, WindowDays)
	assert.Len(t, snap.Statuses, len(entity.OrderStatuses))
	require.Len(t, snap.PendingQueue, 1)
	assert.Equal(t, uint(1), snap.PendingQueue[0].ID)
}
