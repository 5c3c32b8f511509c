package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Quantity int   `gorm:"not null" json:"quantity"`
	Price    int64 `gorm:"not null" json:"price"` // snapshot at order time, not the live Product.Price

	OrderID uint  `gorm:"index;not null" json:"orderId"`
	Order   Order `json:"-"`

	ProductID uint    `gorm:"not null" json:"productId"`
	Product   Product `json:"-"` // preload Unscoped, the product may be soft-deleted
}

func (i OrderItem) Subtotal() int64 {
	return i.Price * int64(i.Quantity)
}
