package recommend

import (
	"kalyx/models"
)

// Location narrows pharmacy availability to a city. Matching is a
// case-insensitive containment test, so "berlin" matches "Berlin".
type Location struct {
	City string
}

// Preferences describes what a caller is looking for. Every field is
// optional; the zero value expresses no preference and therefore ranks
// nothing.
type Preferences struct {
	Effects    []string
	Conditions []string
	MaxTHC     *float64
	MinCBD     *float64
	Genetics   models.Genetics
	Location   *Location
}

// PharmacyOffer is one availability entry on a recommendation, already
// narrowed by the caller's city when one was given.
type PharmacyOffer struct {
	PharmacyID uint     `json:"pharmacy_id"`
	Name       string   `json:"name"`
	City       string   `json:"city"`
	InStock    bool     `json:"in_stock"`
	Price      *float64 `json:"price,omitempty"`
}

// Recommendation is one ranked strain. It exists only in responses;
// scores are computed per request and never stored.
type Recommendation struct {
	StrainID           uint            `json:"strain_id"`
	Name               string          `json:"name"`
	Genetics           models.Genetics `json:"genetics"`
	THCContent         *float64        `json:"thc_content"`
	CBDContent         *float64        `json:"cbd_content"`
	Description        string          `json:"description"`
	Score              int             `json:"score"`
	MatchingEffects    []string        `json:"matching_effects"`
	MatchingConditions []string        `json:"matching_conditions"`
	Pharmacies         []PharmacyOffer `json:"pharmacies"`
}
