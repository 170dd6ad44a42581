package models

import "gorm.io/gorm"

// Effect is an entry in the controlled vocabulary of subjective effects,
// e.g. "Entspannend" or "Schlaffördernd".
type Effect struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}
