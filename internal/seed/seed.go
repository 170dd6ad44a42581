package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	applog "kalyx/internal/log"
	"kalyx/models"

	"gorm.io/gorm"
)

// Summary reports how many rows a seeding run wrote.
type Summary struct {
	Effects    int
	Conditions int
	Pharmacies int
	Strains    int
	Links      int
}

// Load reads a Dataset from a JSON file and validates it. Unknown fields
// are rejected so typos in hand-edited catalogs surface immediately.
func Load(path string) (Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read dataset: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()

	var dataset Dataset
	if err := decoder.Decode(&dataset); err != nil {
		return Dataset{}, fmt.Errorf("decode dataset: %w", err)
	}

	if err := dataset.Validate(); err != nil {
		return Dataset{}, fmt.Errorf("validate dataset: %w", err)
	}

	return dataset, nil
}

// Validate checks vocabulary uniqueness, link targets, and value ranges.
func (d Dataset) Validate() error {
	effects := make(map[string]struct{}, len(d.Effects))
	for _, name := range d.Effects {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("effect name must not be blank")
		}
		if _, ok := effects[name]; ok {
			return fmt.Errorf("duplicate effect %q", name)
		}
		effects[name] = struct{}{}
	}

	conditions := make(map[string]struct{}, len(d.Conditions))
	for _, name := range d.Conditions {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("condition name must not be blank")
		}
		if _, ok := conditions[name]; ok {
			return fmt.Errorf("duplicate condition %q", name)
		}
		conditions[name] = struct{}{}
	}

	pharmacies := make(map[string]struct{}, len(d.Pharmacies))
	for _, row := range d.Pharmacies {
		if strings.TrimSpace(row.Name) == "" {
			return fmt.Errorf("pharmacy name must not be blank")
		}
		if _, ok := pharmacies[row.Name]; ok {
			return fmt.Errorf("duplicate pharmacy %q", row.Name)
		}
		pharmacies[row.Name] = struct{}{}
	}

	strains := make(map[string]struct{}, len(d.Strains))
	for _, row := range d.Strains {
		if strings.TrimSpace(row.Name) == "" {
			return fmt.Errorf("strain name must not be blank")
		}
		if _, ok := strains[row.Name]; ok {
			return fmt.Errorf("duplicate strain %q", row.Name)
		}
		strains[row.Name] = struct{}{}

		switch row.Genetics {
		case "", models.GeneticsIndica, models.GeneticsSativa, models.GeneticsHybrid:
		default:
			return fmt.Errorf("strain %q: unknown genetics %q", row.Name, row.Genetics)
		}

		if err := checkPotency(row.Name, "thc_content", row.THCContent); err != nil {
			return err
		}
		if err := checkPotency(row.Name, "cbd_content", row.CBDContent); err != nil {
			return err
		}

		seenEffects := make(map[string]struct{}, len(row.Effects))
		for _, link := range row.Effects {
			if _, ok := effects[link.Name]; !ok {
				return fmt.Errorf("strain %q: unknown effect %q", row.Name, link.Name)
			}
			if _, ok := seenEffects[link.Name]; ok {
				return fmt.Errorf("strain %q: duplicate effect link %q", row.Name, link.Name)
			}
			seenEffects[link.Name] = struct{}{}
			if link.Weight < 1 || link.Weight > 10 {
				return fmt.Errorf("strain %q: effect %q intensity %d out of range 1..10", row.Name, link.Name, link.Weight)
			}
		}

		seenConditions := make(map[string]struct{}, len(row.Conditions))
		for _, link := range row.Conditions {
			if _, ok := conditions[link.Name]; !ok {
				return fmt.Errorf("strain %q: unknown condition %q", row.Name, link.Name)
			}
			if _, ok := seenConditions[link.Name]; ok {
				return fmt.Errorf("strain %q: duplicate condition link %q", row.Name, link.Name)
			}
			seenConditions[link.Name] = struct{}{}
			if link.Weight < 1 || link.Weight > 10 {
				return fmt.Errorf("strain %q: condition %q efficacy %d out of range 1..10", row.Name, link.Name, link.Weight)
			}
		}

		seenStock := make(map[string]struct{}, len(row.Stock))
		for _, stock := range row.Stock {
			if _, ok := pharmacies[stock.Pharmacy]; !ok {
				return fmt.Errorf("strain %q: unknown pharmacy %q", row.Name, stock.Pharmacy)
			}
			if _, ok := seenStock[stock.Pharmacy]; ok {
				return fmt.Errorf("strain %q: duplicate stock link %q", row.Name, stock.Pharmacy)
			}
			seenStock[stock.Pharmacy] = struct{}{}
			if stock.Price != nil && *stock.Price < 0 {
				return fmt.Errorf("strain %q: negative price at %q", row.Name, stock.Pharmacy)
			}
		}
	}

	return nil
}

func checkPotency(strain, field string, value *float64) error {
	if value == nil {
		return nil
	}
	if *value < 0 || *value > 100 {
		return fmt.Errorf("strain %q: %s %.2f out of range 0..100", strain, field, *value)
	}
	return nil
}

// Apply replaces the whole catalog with the dataset inside one
// transaction. Running it twice with the same dataset leaves identical
// row counts, so it doubles as the re-import path.
func Apply(ctx context.Context, database *gorm.DB, dataset Dataset) (Summary, error) {
	if database == nil {
		return Summary{}, fmt.Errorf("database handle is nil")
	}

	if err := dataset.Validate(); err != nil {
		return Summary{}, fmt.Errorf("validate dataset: %w", err)
	}

	applog.Debug(ctx, "applying catalog dataset",
		"strains", len(dataset.Strains),
		"pharmacies", len(dataset.Pharmacies),
	)

	var summary Summary
	err := database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cleared := []any{
			&models.PharmacyStrain{},
			&models.StrainCondition{},
			&models.StrainEffect{},
			&models.Strain{},
			&models.Pharmacy{},
			&models.Condition{},
			&models.Effect{},
		}
		for _, model := range cleared {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error; err != nil {
				return fmt.Errorf("clear %T: %w", model, err)
			}
		}

		effectIDs := make(map[string]uint, len(dataset.Effects))
		for _, name := range dataset.Effects {
			effect := models.Effect{Name: name}
			if err := tx.Create(&effect).Error; err != nil {
				return fmt.Errorf("create effect %q: %w", name, err)
			}
			effectIDs[name] = effect.ID
			summary.Effects++
		}

		conditionIDs := make(map[string]uint, len(dataset.Conditions))
		for _, name := range dataset.Conditions {
			condition := models.Condition{Name: name}
			if err := tx.Create(&condition).Error; err != nil {
				return fmt.Errorf("create condition %q: %w", name, err)
			}
			conditionIDs[name] = condition.ID
			summary.Conditions++
		}

		pharmacyIDs := make(map[string]uint, len(dataset.Pharmacies))
		for _, row := range dataset.Pharmacies {
			pharmacy := models.Pharmacy{
				Name:      row.Name,
				City:      row.City,
				Latitude:  row.Latitude,
				Longitude: row.Longitude,
			}
			if err := tx.Create(&pharmacy).Error; err != nil {
				return fmt.Errorf("create pharmacy %q: %w", row.Name, err)
			}
			pharmacyIDs[row.Name] = pharmacy.ID
			summary.Pharmacies++
		}

		for _, row := range dataset.Strains {
			strain := models.Strain{
				Name:        row.Name,
				Genetics:    row.Genetics,
				THCContent:  row.THCContent,
				CBDContent:  row.CBDContent,
				Description: row.Description,
			}
			if err := tx.Create(&strain).Error; err != nil {
				return fmt.Errorf("create strain %q: %w", row.Name, err)
			}
			summary.Strains++

			for _, link := range row.Effects {
				record := models.StrainEffect{
					StrainID:  strain.ID,
					EffectID:  effectIDs[link.Name],
					Intensity: link.Weight,
				}
				if err := tx.Create(&record).Error; err != nil {
					return fmt.Errorf("link strain %q to effect %q: %w", row.Name, link.Name, err)
				}
				summary.Links++
			}

			for _, link := range row.Conditions {
				record := models.StrainCondition{
					StrainID:    strain.ID,
					ConditionID: conditionIDs[link.Name],
					Efficacy:    link.Weight,
				}
				if err := tx.Create(&record).Error; err != nil {
					return fmt.Errorf("link strain %q to condition %q: %w", row.Name, link.Name, err)
				}
				summary.Links++
			}

			for _, stock := range row.Stock {
				record := models.PharmacyStrain{
					PharmacyID: pharmacyIDs[stock.Pharmacy],
					StrainID:   strain.ID,
					InStock:    stock.InStock,
					Price:      stock.Price,
				}
				if err := tx.Create(&record).Error; err != nil {
					return fmt.Errorf("stock strain %q at %q: %w", row.Name, stock.Pharmacy, err)
				}
				summary.Links++
			}
		}

		return nil
	})
	if err != nil {
		return Summary{}, err
	}

	applog.Info(ctx, "catalog dataset applied",
		"strains", summary.Strains,
		"effects", summary.Effects,
		"conditions", summary.Conditions,
		"pharmacies", summary.Pharmacies,
		"links", summary.Links,
	)

	return summary, nil
}
