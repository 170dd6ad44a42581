package models

import (
	"gorm.io/gorm"
)

// Genetics classifies a strain's lineage. The zero value means the
// lineage is not recorded.
type Genetics string

const (
	GeneticsIndica Genetics = "indica"
	GeneticsSativa Genetics = "sativa"
	GeneticsHybrid Genetics = "hybrid"
)

type Strain struct {
	gorm.Model
	Name     string   `gorm:"uniqueIndex;not null" json:"name"`
	Genetics Genetics `gorm:"type:varchar(16);index" json:"genetics"`

	// Lab-reported cannabinoid shares in percent. Nil when no
	// certificate of analysis has been recorded for the strain.
	THCContent *float64 `json:"thc_content"`
	CBDContent *float64 `json:"cbd_content"`

	Description string `gorm:"type:text" json:"description"`

	Effects      []StrainEffect    `gorm:"foreignKey:StrainID" json:"effects"`
	Conditions   []StrainCondition `gorm:"foreignKey:StrainID" json:"conditions"`
	Availability []PharmacyStrain  `gorm:"foreignKey:StrainID" json:"availability"`
}
