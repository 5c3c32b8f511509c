package entity

import "strings"

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses is the fixed display order used by the dashboard and pickers.
var OrderStatuses = []OrderStatus{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusCompleted,
	StatusCancelled,
}

var statusLabels = map[OrderStatus]string{
	StatusPending:    "Pending",
	StatusProcessing: "Di Proses",
	StatusShipped:    "Dikirim",
	StatusCompleted:  "Selesai",
	StatusCancelled:  "Dibatalkan",
}

func (s OrderStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Terminal statuses accept no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s OrderStatus) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

func ParseOrderStatus(v string) (OrderStatus, bool) {
	s := OrderStatus(strings.ToLower(strings.TrimSpace(v)))
	return s, s.Valid()
}
