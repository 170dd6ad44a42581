package mock

import (
	"context"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	applog "kalyx/internal/log"
	"kalyx/internal/seed"
	"kalyx/models"
)

// New returns an in-memory sqlite database seeded with the default
// demonstration catalog. It backs local development and demos where no
// Postgres instance is available.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	db, err := gorm.Open(sqlite.Open("file:kalyx-mock?mode=memory&cache=shared"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		PrepareStmt:                              true,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.Strain{},
		&models.Effect{},
		&models.Condition{},
		&models.Pharmacy{},
		&models.StrainEffect{},
		&models.StrainCondition{},
		&models.PharmacyStrain{},
	); err != nil {
		return nil, err
	}

	summary, err := seed.Apply(ctx, db, seed.Default())
	if err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready",
		"strains", summary.Strains,
		"pharmacies", summary.Pharmacies,
	)
	return db, nil
}
