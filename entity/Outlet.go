package entity

import (
	"gorm.io/gorm"
)

type Outlet struct {
	gorm.Model
	Name           string `gorm:"not null" json:"name"`
	Type           string `gorm:"index" json:"type"`
	Address        string `json:"address"`
	GoogleMapsLink string `json:"googleMapsLink"`

	// derived from GoogleMapsLink, not authoritative
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	ImagePath string `json:"imagePath"`
}
