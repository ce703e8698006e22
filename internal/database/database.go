package database

import (
	"strings"

	"github.com/arnold/hard75-api/internal/config"
	"github.com/arnold/hard75-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	db, err := Open(cfg.DatabaseURL, cfg.Debug)
	if err != nil {
		return err
	}
	DB = db
	return nil
}

// Open returns a connection without installing it as DB.
func Open(url string, verbose bool) (*gorm.DB, error) {
	var dialector gorm.Dialector

	// Use PostgreSQL if URL starts with postgres, otherwise SQLite
	if strings.HasPrefix(url, "postgres") {
		dialector = postgres.Open(url)
	} else {
		dialector = sqlite.Open(url)
	}

	mode := logger.Warn
	if verbose {
		mode = logger.Info
	}
	return gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(mode),
	})
}

func Migrate() error {
	return DB.AutoMigrate(
		&models.User{},
		&models.Challenge{},
		&models.DailyLog{},
		&models.Notification{},
		&models.NotifiedKey{},
	)
}
