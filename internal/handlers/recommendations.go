package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	applog "kalyx/internal/log"
	"kalyx/internal/metrics"
	"kalyx/internal/recommend"
	"kalyx/models"
)

// maxTopLimit caps the limit query parameter on the top endpoint.
const maxTopLimit = 50

// recommendationRequest is the wire form of the caller's preferences.
// Malformed shapes stop here; the ranking engine assumes clean input.
type recommendationRequest struct {
	Effects    []string         `json:"preferred_effects" validate:"omitempty,unique,dive,min=1"`
	Conditions []string         `json:"conditions" validate:"omitempty,unique,dive,min=1"`
	MaxTHC     *float64         `json:"max_thc" validate:"omitempty,gte=0,lte=100"`
	MinCBD     *float64         `json:"min_cbd" validate:"omitempty,gte=0,lte=100"`
	Genetics   string           `json:"genetics" validate:"omitempty,oneof=indica sativa hybrid"`
	Location   *locationRequest `json:"location"`
}

type locationRequest struct {
	City string `json:"city" validate:"omitempty,max=100"`
}

func (req recommendationRequest) preferences() recommend.Preferences {
	prefs := recommend.Preferences{
		Effects:    req.Effects,
		Conditions: req.Conditions,
		MaxTHC:     req.MaxTHC,
		MinCBD:     req.MinCBD,
		Genetics:   models.Genetics(req.Genetics),
	}
	if req.Location != nil {
		prefs.Location = &recommend.Location{City: req.Location.City}
	}
	return prefs
}

// Recommendations ranks the catalog against the preferences in the
// request body and returns the ordered result.
func Recommendations(w http.ResponseWriter, r *http.Request) {
	if engine == nil {
		applog.Debug(r.Context(), "recommendation request without engine")
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	start := time.Now()

	var req recommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.RecordRecommendation(metrics.OutcomeRejected, 0, 0)
		applog.Warn(ctx, "invalid recommendation payload", "error", err)
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := validate.Struct(req); err != nil {
		metrics.RecordRecommendation(metrics.OutcomeRejected, 0, 0)
		applog.Warn(ctx, "recommendation request rejected", "error", err)
		writeJSONError(w, http.StatusBadRequest, "invalid preferences: "+err.Error())
		return
	}

	ranked, err := engine.Recommend(ctx, req.preferences())
	if err != nil {
		metrics.RecordRecommendation(metrics.OutcomeError, 0, 0)
		applog.Error(ctx, "recommendation failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to compute recommendations")
		return
	}

	metrics.RecordRecommendation(metrics.OutcomeOK, len(ranked), time.Since(start))
	applog.Info(ctx, "recommendations served",
		"count", len(ranked),
		"effects", len(req.Effects),
		"conditions", len(req.Conditions),
	)
	writeJSON(w, http.StatusOK, ranked)
}

// TopRecommendations serves the single-condition convenience form:
// GET /api/recommendations/top?condition=NAME&limit=N.
func TopRecommendations(w http.ResponseWriter, r *http.Request) {
	if engine == nil {
		applog.Debug(r.Context(), "top recommendation request without engine")
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	condition := strings.TrimSpace(r.URL.Query().Get("condition"))
	if condition == "" {
		writeJSONError(w, http.StatusBadRequest, "condition query parameter is required")
		return
	}

	limit := recommend.DefaultTopLimit
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeJSONError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
		if limit > maxTopLimit {
			limit = maxTopLimit
		}
	}

	ranked, err := engine.TopForCondition(ctx, condition, limit)
	if err != nil {
		applog.Error(ctx, "top recommendation failed", "error", err, "condition", condition)
		writeJSONError(w, http.StatusInternalServerError, "unable to compute recommendations")
		return
	}

	applog.Info(ctx, "top recommendations served", "condition", condition, "count", len(ranked))
	writeJSON(w, http.StatusOK, ranked)
}
