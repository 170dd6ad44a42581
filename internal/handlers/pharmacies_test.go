package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gorm.io/gorm"

	"kalyx/models"
)

func createPharmacyFixtures(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, pharmacy := range []models.Pharmacy{
		{Name: "Grünblatt Apotheke", City: "Berlin"},
		{Name: "Isartor Apotheke", City: "München"},
		{Name: "Alster Apotheke", City: "Hamburg"},
	} {
		pharmacy := pharmacy
		if err := db.Create(&pharmacy).Error; err != nil {
			t.Fatalf("failed to create pharmacy: %v", err)
		}
	}
}

func TestPharmaciesListsAll(t *testing.T) {
	db, cleanup := withCatalogDatabase(t)
	t.Cleanup(cleanup)
	createPharmacyFixtures(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/pharmacies", nil)
	w := httptest.NewRecorder()
	Pharmacies(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var pharmacies []pharmacyResponse
	if err := json.Unmarshal(w.Body.Bytes(), &pharmacies); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(pharmacies) != 3 {
		t.Fatalf("expected 3 pharmacies, got %d", len(pharmacies))
	}
	if pharmacies[0].Name != "Alster Apotheke" {
		t.Fatalf("expected name-sorted outlets, got %q first", pharmacies[0].Name)
	}
}

func TestPharmaciesFiltersByCity(t *testing.T) {
	db, cleanup := withCatalogDatabase(t)
	t.Cleanup(cleanup)
	createPharmacyFixtures(t, db)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "exact lowercase", query: "berlin", want: []string{"Grünblatt Apotheke"}},
		{name: "mixed case", query: "BERLIN", want: []string{"Grünblatt Apotheke"}},
		{name: "fragment", query: "ham", want: []string{"Alster Apotheke"}},
		{name: "no match", query: "Köln", want: []string{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/pharmacies?city="+tt.query, nil)
			w := httptest.NewRecorder()
			Pharmacies(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
			}

			var pharmacies []pharmacyResponse
			if err := json.Unmarshal(w.Body.Bytes(), &pharmacies); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if len(pharmacies) != len(tt.want) {
				t.Fatalf("expected %d pharmacies, got %+v", len(tt.want), pharmacies)
			}
			for i, name := range tt.want {
				if pharmacies[i].Name != name {
					t.Fatalf("expected %q at position %d, got %q", name, i, pharmacies[i].Name)
				}
			}
		})
	}
}

func TestPharmaciesMethodNotAllowed(t *testing.T) {
	_, cleanup := withCatalogDatabase(t)
	t.Cleanup(cleanup)

	req := httptest.NewRequest(http.MethodPost, "/api/pharmacies", nil)
	w := httptest.NewRecorder()
	Pharmacies(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", w.Code)
	}
}
