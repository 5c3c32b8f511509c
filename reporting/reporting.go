// Package reporting computes the dashboard snapshot from already-loaded data.
// Everything here is pure: the caller supplies "now" and the location.
package reporting

import (
	"slices"
	"time"

	"github.com/NemesisID/PreviewOnly-Dash/entity"
)

const (
	WindowDays   = 7
	PendingLimit = 5
)

// id-ID short weekday names, indexed by time.Weekday.
var weekdayLabels = [7]string{"Min", "Sen", "Sel", "Rab", "Kam", "Jum", "Sab"}

func WeekdayLabel(d time.Weekday) string {
	return weekdayLabels[d]
}

type Input struct {
	Products     int64
	Outlets      int64
	Orders       int64
	WindowOrders []entity.Order // created at or after WindowStart
	StatusCounts map[entity.OrderStatus]int64
	Pending      []entity.Order
}

type DayBucket struct {
	Date         string  `json:"date"` // YYYY-MM-DD in the dashboard location
	Label        string  `json:"label"`
	Count        int64   `json:"count"`
	Revenue      int64   `json:"revenue"`
	CountRatio   float64 `json:"countRatio"`
	RevenueRatio float64 `json:"revenueRatio"`
}

type StatusShare struct {
	Status entity.OrderStatus `json:"status"`
	Label  string             `json:"label"`
	Count  int64              `json:"count"`
	Ratio  float64            `json:"ratio"`
}

type PendingOrder struct {
	ID           uint      `json:"id"`
	Code         string    `json:"code"`
	CustomerName string    `json:"customerName"`
	TotalPrice   int64     `json:"totalPrice"`
	Source       string    `json:"source"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Snapshot struct {
	ProductCount     int64          `json:"productCount"`
	OutletCount      int64          `json:"outletCount"`
	OrderCount       int64          `json:"orderCount"`
	WindowStart      time.Time      `json:"windowStart"`
	WindowOrderCount int            `json:"windowOrderCount"`
	MaxRevenue       int64          `json:"maxRevenue"`
	Days             []DayBucket    `json:"days"`
	Statuses         []StatusShare  `json:"statuses"`
	PendingQueue     []PendingOrder `json:"pendingQueue"`
}

// WindowStart is local midnight six calendar days before now, so the window
// covers today plus the six days before it.
func WindowStart(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	y, m, d := local.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc).AddDate(0, 0, -(WindowDays - 1))
}

func dayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(time.DateOnly)
}

func ratio(v, max int64) float64 {
	if max < 1 {
		max = 1
	}
	return float64(v) / float64(max)
}

// DailyBuckets groups orders by calendar day in loc. Orders outside the window are ignored.
func DailyBuckets(now time.Time, loc *time.Location, orders []entity.Order) []DayBucket {
	start := WindowStart(now, loc)
	days := make([]DayBucket, WindowDays)
	index := make(map[string]int, WindowDays)
	for i := range days {
		d := start.AddDate(0, 0, i)
		days[i] = DayBucket{Date: d.Format(time.DateOnly), Label: WeekdayLabel(d.Weekday())}
		index[days[i].Date] = i
	}

	for _, o := range orders {
		i, ok := index[dayKey(o.CreatedAt, loc)]
		if !ok {
			continue
		}
		days[i].Count++
		days[i].Revenue += o.TotalPrice
	}

	var maxCount, maxRevenue int64
	for _, d := range days {
		maxCount = max(maxCount, d.Count)
		maxRevenue = max(maxRevenue, d.Revenue)
	}
	for i := range days {
		days[i].CountRatio = ratio(days[i].Count, maxCount)
		days[i].RevenueRatio = ratio(days[i].Revenue, maxRevenue)
	}
	return days
}

// StatusDistribution lists every status in fixed order, zero counts included.
func StatusDistribution(counts map[entity.OrderStatus]int64) []StatusShare {
	var top int64
	for _, st := range entity.OrderStatuses {
		top = max(top, counts[st])
	}
	out := make([]StatusShare, 0, len(entity.OrderStatuses))
	for _, st := range entity.OrderStatuses {
		out = append(out, StatusShare{
			Status: st,
			Label:  st.Label(),
			Count:  counts[st],
			Ratio:  ratio(counts[st], top),
		})
	}
	return out
}

// PendingQueue returns up to limit pending orders, newest first.
func PendingQueue(orders []entity.Order, limit int) []PendingOrder {
	pending := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == entity.StatusPending {
			pending = append(pending, o)
		}
	}
	slices.SortStableFunc(pending, func(a, b entity.Order) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return int(b.ID) - int(a.ID)
	})
	if len(pending) > limit {
		pending = pending[:limit]
	}

	out := make([]PendingOrder, 0, len(pending))
	for _, o := range pending {
		out = append(out, PendingOrder{
			ID:           o.ID,
			Code:         o.Code,
			CustomerName: o.CustomerName,
			TotalPrice:   o.TotalPrice,
			Source:       o.Source.Label(),
			CreatedAt:    o.CreatedAt,
		})
	}
	return out
}

func Build(now time.Time, loc *time.Location, in Input) Snapshot {
	days := DailyBuckets(now, loc, in.WindowOrders)
	var maxRevenue int64
	for _, d := range days {
		maxRevenue = max(maxRevenue, d.Revenue)
	}

	start := WindowStart(now, loc)
	var windowCount int
	for _, o := range in.WindowOrders {
		if !o.CreatedAt.Before(start) {
			windowCount++
		}
	}

	return Snapshot{
		ProductCount:     in.Products,
		OutletCount:      in.Outlets,
		OrderCount:       in.Orders,
		WindowStart:      start,
		WindowOrderCount: windowCount,
		MaxRevenue:       maxRevenue,
		Days:             days,
		Statuses:         StatusDistribution(in.StatusCounts),
		PendingQueue:     PendingQueue(in.Pending, PendingLimit),
	}
}
