package config

import (
	"fmt"

	"github.com/jmathewk/PromoDeck/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenDB opens the database connection and performs migrations. The handle is
// returned to the caller instead of being stored in a package global so that
// stores can be constructed explicitly and substituted in tests.
func OpenDB(config *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Offer{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %v", err)
	}

	return db, nil
}
