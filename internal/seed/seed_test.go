package seed

import (
	"testing"

	"skillconnect/internal/database"
	"skillconnect/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(database.PersistentModels()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSeedSocialMesh(t *testing.T) {
	t.Parallel()

	db := openSeedTestDB(t)
	seeder := NewSeeder(db)

	users, err := seeder.SeedSocialMesh(6)
	if err != nil {
		t.Fatalf("seed social mesh: %v", err)
	}
	if len(users) != 6 {
		t.Fatalf("expected 6 users, got %d", len(users))
	}

	var edgeCount int64
	if err := db.Model(&models.Follow{}).Count(&edgeCount).Error; err != nil {
		t.Fatalf("count follows: %v", err)
	}
	if edgeCount == 0 {
		t.Fatal("expected follow edges to be seeded")
	}

	// No self-follows and no duplicate pairs.
	var selfFollows int64
	if err := db.Model(&models.Follow{}).
		Where("follower_id = following_id").
		Count(&selfFollows).Error; err != nil {
		t.Fatalf("count self follows: %v", err)
	}
	if selfFollows != 0 {
		t.Fatalf("expected no self-follows, got %d", selfFollows)
	}

	var distinctPairs int64
	if err := db.Model(&models.Follow{}).
		Distinct("follower_id", "following_id").
		Count(&distinctPairs).Error; err != nil {
		t.Fatalf("count distinct pairs: %v", err)
	}
	if distinctPairs != edgeCount {
		t.Fatalf("expected %d distinct pairs, got %d", edgeCount, distinctPairs)
	}
}

func TestSeedEngagement(t *testing.T) {
	t.Parallel()

	db := openSeedTestDB(t)
	seeder := NewSeeder(db)

	users, err := seeder.SeedSocialMesh(4)
	if err != nil {
		t.Fatalf("seed social mesh: %v", err)
	}

	posts, err := seeder.SeedEngagement(users, 10)
	if err != nil {
		t.Fatalf("seed engagement: %v", err)
	}
	if len(posts) != 10 {
		t.Fatalf("expected 10 posts, got %d", len(posts))
	}

	// Every like produced exactly one notification.
	var likeCount, likeNotifications int64
	if err := db.Model(&models.Like{}).Count(&likeCount).Error; err != nil {
		t.Fatalf("count likes: %v", err)
	}
	if err := db.Model(&models.Notification{}).
		Where("title = ?", "You have a new like for your post").
		Count(&likeNotifications).Error; err != nil {
		t.Fatalf("count notifications: %v", err)
	}
	if likeCount != likeNotifications {
		t.Fatalf("expected %d like notifications, got %d", likeCount, likeNotifications)
	}
}

func TestClearAll(t *testing.T) {
	t.Parallel()

	db := openSeedTestDB(t)
	seeder := NewSeeder(db)

	users, err := seeder.SeedSocialMesh(3)
	if err != nil {
		t.Fatalf("seed social mesh: %v", err)
	}
	if _, err := seeder.SeedEngagement(users, 5); err != nil {
		t.Fatalf("seed engagement: %v", err)
	}

	if err := seeder.ClearAll(); err != nil {
		t.Fatalf("clear all: %v", err)
	}

	var userCount int64
	if err := db.Unscoped().Model(&models.User{}).Count(&userCount).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if userCount != 0 {
		t.Fatalf("expected no users after clear, got %d", userCount)
	}
}
