// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"skillconnect/internal/models"
	"skillconnect/internal/repository"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seeder populates the database with realistic development data. Follow and
// like edges go through the repositories so the same conflict-suppressing
// inserts the API uses guard the seeded data.
type Seeder struct {
	db         *gorm.DB
	factory    *Factory
	followRepo repository.FollowRepository
	likeRepo   repository.LikeRepository
	rng        *rand.Rand
}

// NewSeeder creates a Seeder bound to the given database.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{
		db:         db,
		factory:    NewFactory(db),
		followRepo: repository.NewFollowRepository(db),
		likeRepo:   repository.NewLikeRepository(db),
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes seeded data in dependency order.
func (s *Seeder) ClearAll() error {
	tables := []string{
		"notifications", "likes", "follows", "comments",
		"media_items", "progress_updates", "posts", "users",
	}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	log.Println("✓ existing data cleared")
	return nil
}

// SeedSocialMesh creates users and a follow graph between them.
func (s *Seeder) SeedSocialMesh(numUsers int) ([]*models.User, error) {
	if numUsers <= 0 {
		numUsers = 50
	}

	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("✓ %d users created", len(users))

	ctx := context.Background()
	edges := 0
	for _, follower := range users {
		// Each user follows a handful of others; duplicates are absorbed
		// by the repository's conflict handling.
		targets := s.rng.Intn(8) + 2
		for i := 0; i < targets; i++ {
			target := users[s.rng.Intn(len(users))]
			if target.ID == follower.ID {
				continue
			}
			created, err := s.followRepo.Create(ctx, &models.Follow{
				FollowerID:  follower.ID,
				FollowingID: target.ID,
			})
			if err != nil {
				return nil, fmt.Errorf("create follow: %w", err)
			}
			if created {
				edges++
			}
		}
	}
	log.Printf("✓ %d follow edges created", edges)

	return users, nil
}

// SeedEngagement creates posts with media, progress updates, comments, likes
// and the notifications those likes and comments would have produced.
func (s *Seeder) SeedEngagement(users []*models.User, numPosts int) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("no users to seed engagement for")
	}
	if numPosts <= 0 {
		numPosts = 200
	}

	posts := make([]*models.Post, 0, numPosts)
	for i := 0; i < numPosts; i++ {
		author := users[s.rng.Intn(len(users))]
		post, err := s.factory.CreatePost(author, s.rng.Intn(3) == 0)
		if err != nil {
			return nil, fmt.Errorf("create post: %w", err)
		}
		posts = append(posts, post)
	}
	log.Printf("✓ %d posts created", len(posts))

	progressCount := 0
	for _, user := range users {
		updates := s.rng.Intn(4)
		for i := 0; i < updates; i++ {
			if _, err := s.factory.CreateProgressUpdate(user); err != nil {
				return nil, fmt.Errorf("create progress update: %w", err)
			}
			progressCount++
		}
	}
	log.Printf("✓ %d progress updates created", progressCount)

	ctx := context.Background()
	likes, comments := 0, 0
	for _, post := range posts {
		fans := s.rng.Intn(6)
		for i := 0; i < fans; i++ {
			fan := users[s.rng.Intn(len(users))]
			created, err := s.likeRepo.Create(ctx, &models.Like{
				UserID: fan.ID,
				PostID: post.ID,
			})
			if err != nil {
				return nil, fmt.Errorf("create like: %w", err)
			}
			if !created {
				continue
			}
			likes++
			if err := s.db.Create(&models.Notification{
				UserID:  post.UserID,
				Title:   "You have a new like for your post",
				Message: fan.FirstName + " has liked to your post",
			}).Error; err != nil {
				return nil, fmt.Errorf("create like notification: %w", err)
			}
		}

		commenters := s.rng.Intn(4)
		for i := 0; i < commenters; i++ {
			commenter := users[s.rng.Intn(len(users))]
			if _, err := s.factory.CreateComment(commenter, post); err != nil {
				return nil, fmt.Errorf("create comment: %w", err)
			}
			comments++
			if err := s.db.Create(&models.Notification{
				UserID:  post.UserID,
				Title:   "You have a new comment on your post",
				Message: commenter.FirstName + " has commented on your post",
			}).Error; err != nil {
				return nil, fmt.Errorf("create comment notification: %w", err)
			}
		}
	}
	log.Printf("✓ %d likes and %d comments created", likes, comments)

	return posts, nil
}
