package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kalyx/internal/handlers"
)

func TestNewRouterRegistersHealthRoute(t *testing.T) {
	handlers.Configure(nil, nil)

	router := newRouter()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected /healthz to return 200, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json content type, got %q", ct)
	}
}

func TestNewRouterServesMetrics(t *testing.T) {
	router := newRouter()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected /metrics to return 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "go_goroutines") {
		t.Fatal("expected runtime metrics in exposition output")
	}
}

func TestNewRouterWiresAPIRoutes(t *testing.T) {
	handlers.Configure(nil, nil)

	router := newRouter()

	// Unconfigured handlers answer 503, which distinguishes a wired
	// route from an unknown path.
	for _, path := range []string{
		"/api/recommendations",
		"/api/recommendations/top",
		"/api/strains",
		"/api/strains/1",
		"/api/effects",
		"/api/conditions",
		"/api/pharmacies",
	} {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected %s to return 503 while unconfigured, got %d", path, rr.Code)
		}
	}

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected unknown path to return 404, got %d", rr.Code)
	}
}
