package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	applog "kalyx/internal/log"
	"kalyx/models"
)

type strainEffectEntry struct {
	Name      string `json:"name"`
	Intensity int    `json:"intensity"`
}

type strainConditionEntry struct {
	Name     string `json:"name"`
	Efficacy int    `json:"efficacy"`
}

type strainStockEntry struct {
	PharmacyID uint     `json:"pharmacy_id"`
	Name       string   `json:"name"`
	City       string   `json:"city"`
	InStock    bool     `json:"in_stock"`
	Price      *float64 `json:"price,omitempty"`
}

type strainResponse struct {
	ID          uint                   `json:"id"`
	Name        string                 `json:"name"`
	Genetics    models.Genetics        `json:"genetics"`
	THCContent  *float64               `json:"thc_content"`
	CBDContent  *float64               `json:"cbd_content"`
	Description string                 `json:"description"`
	Effects     []strainEffectEntry    `json:"effects"`
	Conditions  []strainConditionEntry `json:"conditions"`
	Pharmacies  []strainStockEntry     `json:"pharmacies"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// StrainResource handles catalog browsing for strains: the collection at
// /api/strains and single records at /api/strains/{id}.
func StrainResource(w http.ResponseWriter, r *http.Request) {
	if database == nil {
		applog.Debug(r.Context(), "strain request without database")
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/strains")
	path = strings.Trim(path, "/")

	if path == "" {
		listStrains(w, r)
		return
	}

	idValue, err := strconv.ParseUint(path, 10, 64)
	if err != nil {
		applog.Debug(r.Context(), "invalid strain identifier", "identifier", path, "error", err)
		http.NotFound(w, r)
		return
	}

	showStrain(w, r, uint(idValue))
}

func listStrains(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var strains []models.Strain
	query := database.WithContext(ctx).
		Preload("Effects.Effect").
		Preload("Conditions.Condition").
		Preload("Availability.Pharmacy").
		Order("name asc")
	if err := query.Find(&strains).Error; err != nil {
		applog.Error(ctx, "failed to list strains", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to load strains")
		return
	}

	responses := make([]strainResponse, 0, len(strains))
	for i := range strains {
		responses = append(responses, projectStrain(&strains[i]))
	}
	writeJSON(w, http.StatusOK, responses)
}

func showStrain(w http.ResponseWriter, r *http.Request, strainID uint) {
	ctx := r.Context()

	var strain models.Strain
	query := database.WithContext(ctx).
		Preload("Effects.Effect").
		Preload("Conditions.Condition").
		Preload("Availability.Pharmacy")
	if err := query.First(&strain, strainID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			applog.Debug(ctx, "strain not found", "id", strainID)
			http.NotFound(w, r)
			return
		}
		applog.Error(ctx, "failed to load strain", "error", err, "id", strainID)
		writeJSONError(w, http.StatusInternalServerError, "unable to load strain")
		return
	}

	writeJSON(w, http.StatusOK, projectStrain(&strain))
}

func projectStrain(strain *models.Strain) strainResponse {
	resp := strainResponse{
		ID:          strain.ID,
		Name:        strain.Name,
		Genetics:    strain.Genetics,
		THCContent:  strain.THCContent,
		CBDContent:  strain.CBDContent,
		Description: strain.Description,
		Effects:     make([]strainEffectEntry, 0, len(strain.Effects)),
		Conditions:  make([]strainConditionEntry, 0, len(strain.Conditions)),
		Pharmacies:  make([]strainStockEntry, 0, len(strain.Availability)),
		CreatedAt:   strain.CreatedAt,
		UpdatedAt:   strain.UpdatedAt,
	}

	for _, link := range strain.Effects {
		if link.Effect == nil {
			continue
		}
		resp.Effects = append(resp.Effects, strainEffectEntry{
			Name:      link.Effect.Name,
			Intensity: link.Intensity,
		})
	}

	for _, link := range strain.Conditions {
		if link.Condition == nil {
			continue
		}
		resp.Conditions = append(resp.Conditions, strainConditionEntry{
			Name:     link.Condition.Name,
			Efficacy: link.Efficacy,
		})
	}

	for _, link := range strain.Availability {
		entry := strainStockEntry{
			PharmacyID: link.PharmacyID,
			InStock:    link.InStock,
			Price:      link.Price,
		}
		if link.Pharmacy != nil {
			entry.Name = link.Pharmacy.Name
			entry.City = link.Pharmacy.City
		}
		resp.Pharmacies = append(resp.Pharmacies, entry)
	}

	return resp
}
