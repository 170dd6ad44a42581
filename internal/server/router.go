package server

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"kalyx/internal/handlers"
	applog "kalyx/internal/log"
)

func newRouter() http.Handler {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")
	mux.HandleFunc("/healthz", handlers.Health)
	applog.Debug(context.Background(), "route registered", "path", "/healthz")
	mux.Handle("/metrics", promhttp.Handler())
	applog.Debug(context.Background(), "route registered", "path", "/metrics")
	mux.HandleFunc("/api/recommendations", handlers.Recommendations)
	applog.Debug(context.Background(), "route registered", "path", "/api/recommendations")
	mux.HandleFunc("/api/recommendations/top", handlers.TopRecommendations)
	applog.Debug(context.Background(), "route registered", "path", "/api/recommendations/top")
	mux.HandleFunc("/api/strains", handlers.StrainResource)
	mux.HandleFunc("/api/strains/", handlers.StrainResource)
	applog.Debug(context.Background(), "route registered", "path", "/api/strains")
	mux.HandleFunc("/api/effects", handlers.Effects)
	applog.Debug(context.Background(), "route registered", "path", "/api/effects")
	mux.HandleFunc("/api/conditions", handlers.Conditions)
	applog.Debug(context.Background(), "route registered", "path", "/api/conditions")
	mux.HandleFunc("/api/pharmacies", handlers.Pharmacies)
	applog.Debug(context.Background(), "route registered", "path", "/api/pharmacies")
	return mux
}
