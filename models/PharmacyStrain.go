package models

import (
	"gorm.io/gorm"
)

// PharmacyStrain records that a pharmacy carries a strain.
type PharmacyStrain struct {
	gorm.Model
	PharmacyID uint `gorm:"not null;uniqueIndex:idx_pharmacy_strain" json:"pharmacy_id"`
	StrainID   uint `gorm:"not null;uniqueIndex:idx_pharmacy_strain" json:"strain_id"`
	InStock    bool `gorm:"not null" json:"in_stock"`

	// Price per gram in EUR, when the pharmacy publishes one.
	Price *float64 `json:"price,omitempty"`

	Pharmacy *Pharmacy `gorm:"foreignKey:PharmacyID" json:"pharmacy,omitempty"`
}
