package models

import "gorm.io/gorm"

type Pharmacy struct {
	gorm.Model
	Name string `gorm:"not null" json:"name"`
	City string `gorm:"index" json:"city"`

	// Optional geocoordinates for map display.
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}
