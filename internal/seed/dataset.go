package seed

import (
	"kalyx/models"
)

// Dataset is the declarative form of a full catalog. Strains reference
// effects, conditions, and pharmacies by name; Apply resolves the names
// against the vocabulary sections.
type Dataset struct {
	Effects    []string      `json:"effects"`
	Conditions []string      `json:"conditions"`
	Pharmacies []PharmacyRow `json:"pharmacies"`
	Strains    []StrainRow   `json:"strains"`
}

type PharmacyRow struct {
	Name      string   `json:"name"`
	City      string   `json:"city"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type StrainRow struct {
	Name        string          `json:"name"`
	Genetics    models.Genetics `json:"genetics"`
	THCContent  *float64        `json:"thc_content"`
	CBDContent  *float64        `json:"cbd_content"`
	Description string          `json:"description"`
	Effects     []WeightedLink  `json:"effects"`
	Conditions  []WeightedLink  `json:"conditions"`
	Stock       []StockRow      `json:"stock"`
}

// WeightedLink names a vocabulary entry together with its 1..10 grade:
// intensity for effects, efficacy for conditions.
type WeightedLink struct {
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

type StockRow struct {
	Pharmacy string   `json:"pharmacy"`
	InStock  bool     `json:"in_stock"`
	Price    *float64 `json:"price,omitempty"`
}

func ptr(v float64) *float64 { return &v }

// Default returns the built-in demo catalog: German vocabulary, pharmacies
// in four cities, and strains covering the full potency and genetics range.
func Default() Dataset {
	return Dataset{
		Effects: []string{
			"Entspannend",
			"Schlaffördernd",
			"Euphorisch",
			"Energetisierend",
			"Appetitanregend",
			"Kreativ",
			"Fokussiert",
			"Beruhigend",
			"Stimmungsaufhellend",
		},
		Conditions: []string{
			"Chronische Schmerzen",
			"Schlafstörungen",
			"Migräne",
			"Appetitlosigkeit",
			"Übelkeit",
			"Angststörung",
			"Depression",
			"ADHS",
			"Spastik",
		},
		Pharmacies: []PharmacyRow{
			{Name: "Grünblatt Apotheke", City: "Berlin", Latitude: ptr(52.5244), Longitude: ptr(13.4105)},
			{Name: "Apotheke am Hackeschen Markt", City: "Berlin", Latitude: ptr(52.5233), Longitude: ptr(13.4026)},
			{Name: "Isartor Apotheke", City: "München", Latitude: ptr(48.1351), Longitude: ptr(11.5820)},
			{Name: "Apotheke am Viktualienmarkt", City: "München"},
			{Name: "Alster Apotheke", City: "Hamburg", Latitude: ptr(53.5563), Longitude: ptr(10.0021)},
			{Name: "Rheinblick Apotheke", City: "Köln"},
		},
		Strains: []StrainRow{
			{
				Name:        "Northern Lights",
				Genetics:    models.GeneticsIndica,
				THCContent:  ptr(18),
				CBDContent:  ptr(0.4),
				Description: "Klassische Indica mit erdigem Aroma, abends bevorzugt.",
				Effects: []WeightedLink{
					{Name: "Entspannend", Weight: 9},
					{Name: "Schlaffördernd", Weight: 8},
					{Name: "Appetitanregend", Weight: 5},
				},
				Conditions: []WeightedLink{
					{Name: "Schlafstörungen", Weight: 9},
					{Name: "Chronische Schmerzen", Weight: 7},
				},
				Stock: []StockRow{
					{Pharmacy: "Grünblatt Apotheke", InStock: true, Price: ptr(11.90)},
					{Pharmacy: "Isartor Apotheke", InStock: true, Price: ptr(12.40)},
				},
			},
			{
				Name:        "ACDC",
				Genetics:    models.GeneticsSativa,
				THCContent:  ptr(1.2),
				CBDContent:  ptr(14),
				Description: "CBD-dominant, kaum psychoaktiv, tagsüber gut verträglich.",
				Effects: []WeightedLink{
					{Name: "Beruhigend", Weight: 7},
					{Name: "Fokussiert", Weight: 5},
				},
				Conditions: []WeightedLink{
					{Name: "Angststörung", Weight: 8},
					{Name: "Spastik", Weight: 7},
					{Name: "Chronische Schmerzen", Weight: 6},
				},
				Stock: []StockRow{
					{Pharmacy: "Apotheke am Hackeschen Markt", InStock: true, Price: ptr(9.80)},
					{Pharmacy: "Alster Apotheke", InStock: true, Price: ptr(10.20)},
				},
			},
			{
				Name:        "Harlequin",
				Genetics:    models.GeneticsHybrid,
				THCContent:  ptr(7),
				CBDContent:  ptr(9),
				Description: "Ausgewogenes THC-CBD-Verhältnis für den Einstieg.",
				Effects: []WeightedLink{
					{Name: "Entspannend", Weight: 6},
					{Name: "Stimmungsaufhellend", Weight: 6},
				},
				Conditions: []WeightedLink{
					{Name: "Chronische Schmerzen", Weight: 8},
					{Name: "Migräne", Weight: 6},
				},
				Stock: []StockRow{
					{Pharmacy: "Grünblatt Apotheke", InStock: true, Price: ptr(10.50)},
					{Pharmacy: "Rheinblick Apotheke", InStock: false},
				},
			},
			{
				Name:        "Amnesia Haze",
				Genetics:    models.GeneticsSativa,
				THCContent:  ptr(21),
				CBDContent:  ptr(0.2),
				Description: "Starke Sativa mit zitrischem Profil, anregend.",
				Effects: []WeightedLink{
					{Name: "Energetisierend", Weight: 8},
					{Name: "Euphorisch", Weight: 8},
					{Name: "Kreativ", Weight: 7},
				},
				Conditions: []WeightedLink{
					{Name: "Depression", Weight: 7},
					{Name: "Appetitlosigkeit", Weight: 5},
				},
				Stock: []StockRow{
					{Pharmacy: "Isartor Apotheke", InStock: true, Price: ptr(13.90)},
					{Pharmacy: "Apotheke am Viktualienmarkt", InStock: true, Price: ptr(13.50)},
				},
			},
			{
				Name:        "Cannatonic",
				Genetics:    models.GeneticsHybrid,
				THCContent:  ptr(5),
				CBDContent:  ptr(12),
				Description: "Milder Hybrid mit hohem CBD-Anteil.",
				Effects: []WeightedLink{
					{Name: "Beruhigend", Weight: 6},
					{Name: "Entspannend", Weight: 5},
				},
				Conditions: []WeightedLink{
					{Name: "Spastik", Weight: 8},
					{Name: "Angststörung", Weight: 6},
				},
				Stock: []StockRow{
					{Pharmacy: "Alster Apotheke", InStock: true, Price: ptr(9.40)},
				},
			},
			{
				Name:        "Blue Dream",
				Genetics:    models.GeneticsHybrid,
				THCContent:  ptr(17),
				CBDContent:  ptr(2),
				Description: "Beliebter Hybrid, sanfter Einstieg in den Tag.",
				Effects: []WeightedLink{
					{Name: "Stimmungsaufhellend", Weight: 7},
					{Name: "Kreativ", Weight: 6},
					{Name: "Entspannend", Weight: 4},
				},
				Conditions: []WeightedLink{
					{Name: "Depression", Weight: 6},
					{Name: "Übelkeit", Weight: 5},
				},
				Stock: []StockRow{
					{Pharmacy: "Grünblatt Apotheke", InStock: true, Price: ptr(12.10)},
					{Pharmacy: "Apotheke am Hackeschen Markt", InStock: true, Price: ptr(11.80)},
					{Pharmacy: "Isartor Apotheke", InStock: false},
				},
			},
			{
				Name:        "Bubba Kush",
				Genetics:    models.GeneticsIndica,
				THCContent:  ptr(16),
				CBDContent:  nil,
				Description: "Schwere Indica, CBD-Wert laborseitig nicht ausgewiesen.",
				Effects: []WeightedLink{
					{Name: "Schlaffördernd", Weight: 9},
					{Name: "Entspannend", Weight: 8},
				},
				Conditions: []WeightedLink{
					{Name: "Schlafstörungen", Weight: 8},
				},
				Stock: []StockRow{
					{Pharmacy: "Apotheke am Viktualienmarkt", InStock: true, Price: ptr(11.20)},
				},
			},
			{
				Name:        "Sour Diesel",
				Genetics:    models.GeneticsSativa,
				THCContent:  ptr(19),
				CBDContent:  ptr(0.3),
				Description: "Schnell wirkende Sativa mit markantem Dieselaroma.",
				Effects: []WeightedLink{
					{Name: "Energetisierend", Weight: 9},
					{Name: "Fokussiert", Weight: 6},
				},
				Conditions: []WeightedLink{
					{Name: "ADHS", Weight: 6},
					{Name: "Depression", Weight: 6},
				},
				Stock: []StockRow{
					{Pharmacy: "Rheinblick Apotheke", InStock: true, Price: ptr(12.80)},
				},
			},
			{
				Name:        "Pink Kush",
				Genetics:    models.GeneticsIndica,
				THCContent:  nil,
				CBDContent:  nil,
				Description: "Neuzugang, Analysezertifikat steht noch aus.",
				Effects: []WeightedLink{
					{Name: "Entspannend", Weight: 7},
					{Name: "Euphorisch", Weight: 5},
				},
				Conditions: []WeightedLink{
					{Name: "Chronische Schmerzen", Weight: 5},
				},
				Stock: []StockRow{
					{Pharmacy: "Grünblatt Apotheke", InStock: false},
				},
			},
			{
				Name:        "Pedanios 8/8",
				Genetics:    models.GeneticsHybrid,
				THCContent:  ptr(8),
				CBDContent:  ptr(8),
				Description: "Standardisiertes Apothekenprodukt mit paritätischem Profil.",
				Effects: []WeightedLink{
					{Name: "Beruhigend", Weight: 5},
					{Name: "Stimmungsaufhellend", Weight: 4},
				},
				Conditions: []WeightedLink{
					{Name: "Migräne", Weight: 7},
					{Name: "Übelkeit", Weight: 6},
				},
				Stock: []StockRow{
					{Pharmacy: "Alster Apotheke", InStock: true, Price: ptr(10.90)},
					{Pharmacy: "Apotheke am Hackeschen Markt", InStock: true, Price: ptr(10.60)},
				},
			},
		},
	}
}
