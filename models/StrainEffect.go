package models

import (
	"gorm.io/gorm"
)

// StrainEffect links a strain to an effect it produces. Intensity grades
// how pronounced the effect is on a 1..10 scale.
type StrainEffect struct {
	gorm.Model
	StrainID  uint `gorm:"not null;uniqueIndex:idx_strain_effect" json:"strain_id"`
	EffectID  uint `gorm:"not null;uniqueIndex:idx_strain_effect" json:"effect_id"`
	Intensity int  `gorm:"not null" json:"intensity"`

	Effect *Effect `gorm:"foreignKey:EffectID" json:"effect,omitempty"`
}
