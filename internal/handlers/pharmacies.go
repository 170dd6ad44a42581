package handlers

import (
	"net/http"
	"strings"

	applog "kalyx/internal/log"
	"kalyx/models"
)

type pharmacyResponse struct {
	ID        uint     `json:"id"`
	Name      string   `json:"name"`
	City      string   `json:"city"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// Pharmacies lists outlets, optionally narrowed by ?city=. The filter
// uses the same case-insensitive containment rule as availability
// narrowing during ranking.
func Pharmacies(w http.ResponseWriter, r *http.Request) {
	if database == nil {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	query := database.WithContext(ctx).Order("name asc")

	if city := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("city"))); city != "" {
		query = query.Where("LOWER(city) LIKE ?", "%"+city+"%")
	}

	var pharmacies []models.Pharmacy
	if err := query.Find(&pharmacies).Error; err != nil {
		applog.Error(ctx, "failed to list pharmacies", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to load pharmacies")
		return
	}

	responses := make([]pharmacyResponse, 0, len(pharmacies))
	for _, pharmacy := range pharmacies {
		responses = append(responses, pharmacyResponse{
			ID:        pharmacy.ID,
			Name:      pharmacy.Name,
			City:      pharmacy.City,
			Latitude:  pharmacy.Latitude,
			Longitude: pharmacy.Longitude,
		})
	}
	writeJSON(w, http.StatusOK, responses)
}
