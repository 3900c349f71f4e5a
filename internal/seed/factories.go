// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"skillconnect/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// progressTemplates mirror the templates the frontend offers for
// learning-progress updates.
var progressTemplates = []string{"daily", "weekly", "milestone", "retro"}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// pastTime returns a timestamp spread over the last maxDays days so seeded
// feeds look lived-in instead of created all at once.
func (f *Factory) pastTime(maxDays int) time.Time {
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)
	minsBack := f.rng.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username:  gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:     gofakeit.Email(),
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Bio:       gofakeit.Sentence(10),
		Avatar:    fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hashedPassword)

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildPost constructs a post for the given user without persisting it.
func (f *Factory) BuildPost(user *models.User) *models.Post {
	return &models.Post{
		Title:     gofakeit.Sentence(5),
		Content:   gofakeit.Paragraph(1, 3, 5, "\n"),
		UserID:    user.ID,
		CreatedAt: f.pastTime(90),
	}
}

// CreatePost persists a generated post, optionally with media attachments.
func (f *Factory) CreatePost(user *models.User, withMedia bool) (*models.Post, error) {
	post := f.BuildPost(user)
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}

	if withMedia {
		item := &models.MediaItem{
			PostID: post.ID,
			Kind:   models.MediaKindImage,
			URL:    fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID()),
		}
		if f.rng.Intn(4) == 0 {
			item.Kind = models.MediaKindVideo
			item.URL = gofakeit.URL()
		}
		if err := f.db.Create(item).Error; err != nil {
			return nil, err
		}
	}
	return post, nil
}

// CreateProgressUpdate persists a learning-progress update for the user.
// Roughly a quarter of generated updates are private.
func (f *Factory) CreateProgressUpdate(user *models.User) (*models.ProgressUpdate, error) {
	update := &models.ProgressUpdate{
		UserID:    user.ID,
		Title:     gofakeit.Sentence(4),
		Content:   gofakeit.Paragraph(1, 2, 6, "\n"),
		Template:  progressTemplates[f.rng.Intn(len(progressTemplates))],
		IsPublic:  f.rng.Intn(4) != 0,
		CreatedAt: f.pastTime(60),
	}
	if err := f.db.Create(update).Error; err != nil {
		return nil, err
	}
	return update, nil
}

// CreateComment persists a comment by the user on the post.
func (f *Factory) CreateComment(user *models.User, post *models.Post) (*models.Comment, error) {
	comment := &models.Comment{
		UserID:    user.ID,
		PostID:    post.ID,
		Content:   gofakeit.Sentence(gofakeit.Number(4, 18)),
		CreatedAt: f.pastTime(30),
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}
