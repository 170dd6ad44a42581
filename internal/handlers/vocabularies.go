package handlers

import (
	"net/http"

	applog "kalyx/internal/log"
	"kalyx/models"
)

type vocabularyEntry struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Effects lists the controlled vocabulary of effects, name-sorted.
func Effects(w http.ResponseWriter, r *http.Request) {
	if database == nil {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	var effects []models.Effect
	if err := database.WithContext(ctx).Order("name asc").Find(&effects).Error; err != nil {
		applog.Error(ctx, "failed to list effects", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to load effects")
		return
	}

	entries := make([]vocabularyEntry, 0, len(effects))
	for _, effect := range effects {
		entries = append(entries, vocabularyEntry{ID: effect.ID, Name: effect.Name})
	}
	writeJSON(w, http.StatusOK, entries)
}

// Conditions lists the controlled vocabulary of medical conditions,
// name-sorted.
func Conditions(w http.ResponseWriter, r *http.Request) {
	if database == nil {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	var conditions []models.Condition
	if err := database.WithContext(ctx).Order("name asc").Find(&conditions).Error; err != nil {
		applog.Error(ctx, "failed to list conditions", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to load conditions")
		return
	}

	entries := make([]vocabularyEntry, 0, len(conditions))
	for _, condition := range conditions {
		entries = append(entries, vocabularyEntry{ID: condition.ID, Name: condition.Name})
	}
	writeJSON(w, http.StatusOK, entries)
}
