package models

import "gorm.io/gorm"

// Condition is an entry in the controlled vocabulary of medical
// indications, e.g. "Chronische Schmerzen".
type Condition struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}
