package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"kalyx/internal/config"
	"kalyx/internal/db"
	"kalyx/internal/seed"
)

func main() {
	var path string
	flag.StringVar(&path, "file", "", "path to a JSON dataset; the built-in catalog is used when empty")
	flag.Parse()

	if err := run(path); err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}
}

func run(path string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if strings.TrimSpace(path) == "" {
		path = cfg.Seed.File
	}

	database, err := db.Initialize(cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(database); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	summary, source, err := apply(context.Background(), database, path)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Seeded %d strains, %d effects, %d conditions, %d pharmacies (%d stock links) from %s\n",
		summary.Strains, summary.Effects, summary.Conditions, summary.Pharmacies, summary.Links, source)
	return nil
}

// apply replaces the catalog with the dataset at path, or with the
// built-in catalog when path is empty.
func apply(ctx context.Context, database *gorm.DB, path string) (seed.Summary, string, error) {
	dataset := seed.Default()
	source := "built-in catalog"

	if strings.TrimSpace(path) != "" {
		loaded, err := seed.Load(path)
		if err != nil {
			return seed.Summary{}, "", fmt.Errorf("load dataset: %w", err)
		}
		dataset = loaded
		source = filepath.Base(path)
	}

	summary, err := seed.Apply(ctx, database, dataset)
	if err != nil {
		return seed.Summary{}, "", fmt.Errorf("apply dataset: %w", err)
	}
	return summary, source, nil
}
