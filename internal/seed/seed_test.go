package seed

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"kalyx/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Strain{},
		&models.Effect{},
		&models.Condition{},
		&models.Pharmacy{},
		&models.StrainEffect{},
		&models.StrainCondition{},
		&models.PharmacyStrain{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return db
}

func minimalDataset() Dataset {
	return Dataset{
		Effects:    []string{"Entspannend"},
		Conditions: []string{"Schlafstörungen"},
		Pharmacies: []PharmacyRow{{Name: "Grünblatt Apotheke", City: "Berlin"}},
		Strains: []StrainRow{
			{
				Name:       "Northern Lights",
				Genetics:   models.GeneticsIndica,
				THCContent: ptr(18),
				Effects:    []WeightedLink{{Name: "Entspannend", Weight: 9}},
				Conditions: []WeightedLink{{Name: "Schlafstörungen", Weight: 8}},
				Stock:      []StockRow{{Pharmacy: "Grünblatt Apotheke", InStock: true}},
			},
		},
	}
}

func TestValidateAcceptsDefaultDataset(t *testing.T) {
	t.Parallel()

	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
}

func TestValidateRejectsBrokenDatasets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Dataset)
	}{
		{"duplicate effect", func(d *Dataset) {
			d.Effects = append(d.Effects, d.Effects[0])
		}},
		{"blank condition", func(d *Dataset) {
			d.Conditions = append(d.Conditions, "  ")
		}},
		{"duplicate pharmacy", func(d *Dataset) {
			d.Pharmacies = append(d.Pharmacies, d.Pharmacies[0])
		}},
		{"duplicate strain", func(d *Dataset) {
			d.Strains = append(d.Strains, d.Strains[0])
		}},
		{"unknown genetics", func(d *Dataset) {
			d.Strains[0].Genetics = "landrace"
		}},
		{"thc out of range", func(d *Dataset) {
			d.Strains[0].THCContent = ptr(140)
		}},
		{"negative cbd", func(d *Dataset) {
			d.Strains[0].CBDContent = ptr(-1)
		}},
		{"unknown effect link", func(d *Dataset) {
			d.Strains[0].Effects[0].Name = "Unbekannt"
		}},
		{"intensity out of range", func(d *Dataset) {
			d.Strains[0].Effects[0].Weight = 11
		}},
		{"duplicate effect link", func(d *Dataset) {
			d.Strains[0].Effects = append(d.Strains[0].Effects, d.Strains[0].Effects[0])
		}},
		{"unknown condition link", func(d *Dataset) {
			d.Strains[0].Conditions[0].Name = "Unbekannt"
		}},
		{"efficacy out of range", func(d *Dataset) {
			d.Strains[0].Conditions[0].Weight = 0
		}},
		{"unknown stock pharmacy", func(d *Dataset) {
			d.Strains[0].Stock[0].Pharmacy = "Phantom Apotheke"
		}},
		{"duplicate stock link", func(d *Dataset) {
			d.Strains[0].Stock = append(d.Strains[0].Stock, d.Strains[0].Stock[0])
		}},
		{"negative price", func(d *Dataset) {
			d.Strains[0].Stock[0].Price = ptr(-2)
		}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dataset := minimalDataset()
			tt.mutate(&dataset)
			if err := dataset.Validate(); err == nil {
				t.Fatalf("expected validation error for %s", tt.name)
			}
		})
	}
}

func TestApplyWritesCatalog(t *testing.T) {
	db := openTestDB(t, "seed-apply")
	ctx := context.Background()

	summary, err := Apply(ctx, db, Default())
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	dataset := Default()
	if summary.Strains != len(dataset.Strains) {
		t.Fatalf("summary.Strains = %d, want %d", summary.Strains, len(dataset.Strains))
	}
	if summary.Effects != len(dataset.Effects) {
		t.Fatalf("summary.Effects = %d, want %d", summary.Effects, len(dataset.Effects))
	}
	if summary.Pharmacies != len(dataset.Pharmacies) {
		t.Fatalf("summary.Pharmacies = %d, want %d", summary.Pharmacies, len(dataset.Pharmacies))
	}

	var strains int64
	if err := db.Model(&models.Strain{}).Count(&strains).Error; err != nil {
		t.Fatalf("count strains: %v", err)
	}
	if int(strains) != len(dataset.Strains) {
		t.Fatalf("strain rows = %d, want %d", strains, len(dataset.Strains))
	}

	var strain models.Strain
	if err := db.Preload("Effects.Effect").Preload("Availability.Pharmacy").
		Where("name = ?", "Northern Lights").First(&strain).Error; err != nil {
		t.Fatalf("load seeded strain: %v", err)
	}
	if len(strain.Effects) != 3 {
		t.Fatalf("expected 3 effect links, got %d", len(strain.Effects))
	}
	if len(strain.Availability) != 2 {
		t.Fatalf("expected 2 stock links, got %d", len(strain.Availability))
	}
	for _, link := range strain.Availability {
		if link.Pharmacy == nil {
			t.Fatalf("expected preloaded pharmacy on stock link %+v", link)
		}
	}
}

func TestApplyTwiceLeavesIdenticalCounts(t *testing.T) {
	db := openTestDB(t, "seed-idempotent")
	ctx := context.Background()

	first, err := Apply(ctx, db, Default())
	if err != nil {
		t.Fatalf("first Apply() error = %v", err)
	}
	second, err := Apply(ctx, db, Default())
	if err != nil {
		t.Fatalf("second Apply() error = %v", err)
	}
	if first != second {
		t.Fatalf("summaries differ: first %+v, second %+v", first, second)
	}

	counts := map[string]any{
		"strains":           &models.Strain{},
		"effects":           &models.Effect{},
		"conditions":        &models.Condition{},
		"pharmacies":        &models.Pharmacy{},
		"strain_effects":    &models.StrainEffect{},
		"strain_conditions": &models.StrainCondition{},
		"pharmacy_strains":  &models.PharmacyStrain{},
	}
	expected := map[string]int64{
		"strains":    int64(first.Strains),
		"effects":    int64(first.Effects),
		"conditions": int64(first.Conditions),
		"pharmacies": int64(first.Pharmacies),
	}

	for name, model := range counts {
		var count int64
		if err := db.Model(model).Count(&count).Error; err != nil {
			t.Fatalf("count %s: %v", name, err)
		}
		if want, ok := expected[name]; ok && count != want {
			t.Fatalf("%s rows = %d, want %d", name, count, want)
		}
		if count == 0 {
			t.Fatalf("%s table unexpectedly empty after reseed", name)
		}
	}
}

func TestApplyRejectsInvalidDataset(t *testing.T) {
	db := openTestDB(t, "seed-invalid")

	dataset := minimalDataset()
	dataset.Strains[0].Effects[0].Weight = 42

	if _, err := Apply(context.Background(), db, dataset); err == nil {
		t.Fatal("expected validation error from Apply")
	}
}

func TestLoadReadsJSONDataset(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.json")
	raw, err := json.Marshal(minimalDataset())
	if err != nil {
		t.Fatalf("marshal dataset: %v", err)
	}
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write dataset file: %v", err)
	}

	dataset, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(dataset.Strains) != 1 || dataset.Strains[0].Name != "Northern Lights" {
		t.Fatalf("unexpected dataset: %+v", dataset)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.json")
	payload := `{"effects":["Entspannend"],"flavour":"citrus"}`
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("write dataset file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected decode error for unknown field")
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
