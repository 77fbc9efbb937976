package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/schoolms/school-management-backend/config"
)

var DB *gorm.DB

// Connect opens the Postgres connection and keeps a package-level handle
// for route wiring. TranslateError maps driver errors onto gorm sentinels
// (gorm.ErrDuplicatedKey, gorm.ErrForeignKeyViolated).
func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}

	DB = db
	return db
}
