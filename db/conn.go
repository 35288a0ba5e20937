// Package db opens the database connection and keeps the schema migrated
package db

import (
	"fmt"

	"docutext/pdf-api/model"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// New connects to Postgres when database.dsn is configured and falls back to
// a local SQLite file otherwise. TranslateError is on so unique index
// violations surface as gorm.ErrDuplicatedKey regardless of the driver
func New() (*gorm.DB, error) {
	cfg := &gorm.Config{
		TranslateError: true,
	}

	var (
		db  *gorm.DB
		err error
	)

	if dsn := viper.GetString("database.dsn"); dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Postgres, %w", err)
		}
	} else {
		path := viper.GetString("database.sqlite_path")
		zap.L().Warn("No database DSN configured, using local SQLite file", zap.String("path", path))

		db, err = gorm.Open(sqlite.Open(path), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite database, %w", err)
		}
	}

	err = db.AutoMigrate(model.User{}, model.Document{})
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return db, nil
}
