package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Code          string `gorm:"uniqueIndex;not null" json:"code"`
	TrackingCode  string `gorm:"not null" json:"trackingCode"`
	ReceiptNumber string `gorm:"not null" json:"receiptNumber"`

	CustomerName       string  `gorm:"not null" json:"customerName"`
	CustomerPhone      string  `gorm:"not null" json:"customerPhone"`
	CustomerEmail      *string `json:"customerEmail"`
	CustomerAddress    *string `json:"customerAddress"`
	CustomerCity       *string `json:"customerCity"`
	CustomerProvince   *string `json:"customerProvince"`
	CustomerPostalCode *string `json:"customerPostalCode"`

	// total_price is authoritative; marketplace orders may carry no items at all.
	TotalPrice      int64       `gorm:"not null" json:"totalPrice"`
	Status          OrderStatus `gorm:"type:varchar(16);not null;default:pending;index" json:"status"`
	Source          OrderSource `gorm:"type:varchar(16);not null;default:shopee" json:"source"`
	ShippingCourier string      `gorm:"not null" json:"shippingCourier"`

	// preload only on detail
	Items []OrderItem `json:"-"`
}

// ItemsTotal is the informational sum of price snapshots × quantity.
func (o *Order) ItemsTotal() int64 {
	var sum int64
	for _, it := range o.Items {
		sum += it.Subtotal()
	}
	return sum
}
