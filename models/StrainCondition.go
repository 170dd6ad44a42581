package models

import (
	"gorm.io/gorm"
)

// StrainCondition links a strain to a condition it is used for. Efficacy
// grades the reported therapeutic benefit on a 1..10 scale.
type StrainCondition struct {
	gorm.Model
	StrainID    uint `gorm:"not null;uniqueIndex:idx_strain_condition" json:"strain_id"`
	ConditionID uint `gorm:"not null;uniqueIndex:idx_strain_condition" json:"condition_id"`
	Efficacy    int  `gorm:"not null" json:"efficacy"`

	Condition *Condition `gorm:"foreignKey:ConditionID" json:"condition,omitempty"`
}
