package database

import (
	"fmt"
	"time"

	"skillconnect/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var readReplica *gorm.DB

// ConnectReadReplica opens a connection to the optional read replica. A
// missing replica configuration is not an error; reads simply fall back to
// the primary.
func ConnectReadReplica(cfg *config.Config) (*gorm.DB, error) {
	if !cfg.HasReadReplica() {
		return nil, nil
	}

	sslMode := cfg.DBSSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBReadHost,
		cfg.DBReadPort,
		cfg.DBReadUser,
		cfg.DBReadPassword,
		cfg.DBName,
		sslMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to read replica: %w", err)
	}

	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
	}

	readReplica = db
	return db, nil
}

// GetReadDB returns the read replica connection, or nil if none is configured.
func GetReadDB() *gorm.DB {
	return readReplica
}

// SetReadDB overrides the read replica connection. Intended for tests.
func SetReadDB(db *gorm.DB) {
	readReplica = db
}
