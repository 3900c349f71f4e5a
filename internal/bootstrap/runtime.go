package bootstrap

import (
	"fmt"
	"log"
	"strings"

	"skillconnect/internal/cache"
	"skillconnect/internal/config"
	"skillconnect/internal/database"
	"skillconnect/internal/models"
	"skillconnect/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// SeedDemoData populates an empty development database with a small
	// social mesh so the API has something to serve out of the box.
	SeedDemoData bool
	DemoUsers    int
	DemoPosts    int
}

// InitRuntime connects to DB and Redis and optionally runs demo seeding.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	if _, err := database.ConnectReadReplica(cfg); err != nil {
		return nil, nil, fmt.Errorf("read replica connection failed: %w", err)
	}

	// Init Redis (may result in nil client if unreachable)
	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.SeedDemoData {
		if err := seedDemoData(cfg, db, opts); err != nil {
			return nil, nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	return db, r, nil
}

func seedDemoData(cfg *config.Config, db *gorm.DB, opts Options) error {
	if cfg == nil || db == nil {
		return nil
	}
	if strings.EqualFold(cfg.Env, "production") || strings.EqualFold(cfg.Env, "prod") {
		return nil
	}

	// Only seed into an empty database; never stomp on existing data.
	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		return nil
	}

	numUsers := opts.DemoUsers
	if numUsers <= 0 {
		numUsers = 10
	}
	numPosts := opts.DemoPosts
	if numPosts <= 0 {
		numPosts = 25
	}

	seeder := seed.NewSeeder(db)
	users, err := seeder.SeedSocialMesh(numUsers)
	if err != nil {
		return err
	}
	if _, err := seeder.SeedEngagement(users, numPosts); err != nil {
		return err
	}

	log.Printf("demo data seeded (%d users, %d posts)", numUsers, numPosts)
	return nil
}
