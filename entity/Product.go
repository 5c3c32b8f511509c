package entity

import (
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Price       int64  `gorm:"not null" json:"price"`
	Category    string `gorm:"index" json:"category"`
	ImagePath   string `json:"imagePath"`
	IsActive    bool   `gorm:"not null" json:"isActive"`

	OrderItems []OrderItem `json:"-"`
}
