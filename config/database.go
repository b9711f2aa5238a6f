package config

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/fixmycity/api-go/models"
)

// InitDB opens the reports database and migrates the schema. Postgres
// when DATABASE_URL is set, a local sqlite file otherwise.
func InitDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.DatabaseURL != "" {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		dialector = sqlite.Open(cfg.SQLitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("config: open database: %w", err)
	}

	if err := db.AutoMigrate(&models.Report{}); err != nil {
		return nil, fmt.Errorf("config: migrate: %w", err)
	}

	return db, nil
}
