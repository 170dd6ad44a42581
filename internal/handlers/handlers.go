package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	applog "kalyx/internal/log"
	"kalyx/internal/recommend"
)

// recommender is the slice of the recommendation service the handlers
// call; tests substitute stubs for it.
type recommender interface {
	Recommend(ctx context.Context, prefs recommend.Preferences) ([]recommend.Recommendation, error)
	TopForCondition(ctx context.Context, condition string, limit int) ([]recommend.Recommendation, error)
}

var (
	database *gorm.DB
	engine   recommender
)

// validate is a reusable validator instance.
var validate = validator.New()

// Configure installs the shared dependencies used by the HTTP handlers.
func Configure(db *gorm.DB, service recommender) {
	database = db
	engine = service
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		applog.Error(context.Background(), "failed to encode json response", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
