package recommend

import (
	"context"
	"fmt"
	"strings"

	"kalyx/models"

	"gorm.io/gorm"
)

// catalogSnapshot loads every strain with its effect, condition, and
// availability links. A city narrows the availability preload to
// pharmacies whose city contains the fragment, case-insensitively; it
// never removes strains from the snapshot. Strains are returned in
// ascending ID order, which the stable sort in Score preserves for ties.
func catalogSnapshot(ctx context.Context, database *gorm.DB, loc *Location) ([]models.Strain, error) {
	query := database.WithContext(ctx).
		Preload("Effects.Effect").
		Preload("Conditions.Condition").
		Preload("Availability.Pharmacy").
		Order("id asc")

	if fragment := cityFragment(loc); fragment != "" {
		pharmacies := database.Model(&models.Pharmacy{}).
			Select("id").
			Where("LOWER(city) LIKE ?", "%"+fragment+"%")
		query = query.Preload("Availability", "pharmacy_id IN (?)", pharmacies)
	}

	var strains []models.Strain
	if err := query.Find(&strains).Error; err != nil {
		return nil, fmt.Errorf("load strain catalog: %w", err)
	}

	return strains, nil
}

func cityFragment(loc *Location) string {
	if loc == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(loc.City))
}
