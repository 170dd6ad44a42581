package recommend

import (
	"context"
	"fmt"
	"strings"

	applog "kalyx/internal/log"

	"gorm.io/gorm"
)

// Service answers recommendation queries from the catalog store. It holds
// no request state; one instance serves concurrent callers.
type Service struct {
	db *gorm.DB
}

// NewService returns a Service reading from the given database handle.
func NewService(database *gorm.DB) *Service {
	return &Service{db: database}
}

// Recommend loads a catalog snapshot and ranks it against the
// preferences. Storage errors come back wrapped and unretried; an empty
// result is a valid outcome, not an error.
func (s *Service) Recommend(ctx context.Context, prefs Preferences) ([]Recommendation, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("recommendation service is not configured")
	}

	strains, err := catalogSnapshot(ctx, s.db, prefs.Location)
	if err != nil {
		return nil, err
	}

	ranked := Score(prefs, strains)
	applog.Debug(ctx, "catalog ranked", "strains", len(strains), "recommended", len(ranked))
	return ranked, nil
}

// TopForCondition ranks the catalog for a single condition and truncates
// to limit. A limit of zero or less falls back to DefaultTopLimit.
func (s *Service) TopForCondition(ctx context.Context, condition string, limit int) ([]Recommendation, error) {
	if strings.TrimSpace(condition) == "" {
		return nil, fmt.Errorf("condition must not be empty")
	}
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	ranked, err := s.Recommend(ctx, Preferences{Conditions: []string{condition}})
	if err != nil {
		return nil, err
	}

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}
