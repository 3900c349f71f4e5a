package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"skillconnect/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestPost(t *testing.T, db *gorm.DB, author *models.User) *models.Post {
	t.Helper()
	post := &models.Post{
		UserID:  author.ID,
		Title:   "Learning Go",
		Content: "Interfaces are satisfied implicitly.",
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func TestLikePostIsIdempotentAndNotifiesAuthor(t *testing.T) {
	db := setupTestDB(t)
	s := newTestServer(db)

	author := createTestUser(t, db, "author")
	liker := createTestUser(t, db, "liker")
	post := createTestPost(t, db, author)

	app := fiber.New()
	app.Post("/posts/:id/like", func(c *fiber.Ctx) error {
		c.Locals("userID", liker.ID)
		return s.LikePost(c)
	})

	target := fmt.Sprintf("/posts/%d/like", post.ID)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, target, nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// Repeat like is absorbed: same edge, same response shape.
	resp, err = app.Test(httptest.NewRequest(http.MethodPost, target, nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var likes int64
	db.Model(&models.Like{}).Count(&likes)
	assert.Equal(t, int64(1), likes)

	// Exactly one notification went to the author.
	var notifications []models.Notification
	require.NoError(t, db.Where("user_id = ?", author.ID).Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, "You have a new like for your post", notifications[0].Title)
	assert.Equal(t, "Test has liked to your post", notifications[0].Message)
}

func TestUnlikePost(t *testing.T) {
	db := setupTestDB(t)
	s := newTestServer(db)

	author := createTestUser(t, db, "author")
	liker := createTestUser(t, db, "liker")
	post := createTestPost(t, db, author)

	require.NoError(t, db.Create(&models.Like{UserID: liker.ID, PostID: post.ID}).Error)

	app := fiber.New()
	app.Delete("/posts/:id/like", func(c *fiber.Ctx) error {
		c.Locals("userID", liker.ID)
		return s.UnlikePost(c)
	})

	target := fmt.Sprintf("/posts/%d/like", post.ID)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, target, nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Removed bool `json:"removed"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Removed)

	// Second unlike reports nothing removed.
	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, target, nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Removed)
}

func TestLikePostMissingPost(t *testing.T) {
	db := setupTestDB(t)
	s := newTestServer(db)

	liker := createTestUser(t, db, "liker")

	app := fiber.New()
	app.Post("/posts/:id/like", func(c *fiber.Ctx) error {
		c.Locals("userID", liker.ID)
		return s.LikePost(c)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/posts/424242/like", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetPostLikes(t *testing.T) {
	db := setupTestDB(t)
	s := newTestServer(db)

	author := createTestUser(t, db, "author")
	a := createTestUser(t, db, "fan_a")
	b := createTestUser(t, db, "fan_b")
	post := createTestPost(t, db, author)

	require.NoError(t, db.Create(&models.Like{UserID: a.ID, PostID: post.ID}).Error)
	require.NoError(t, db.Create(&models.Like{UserID: b.ID, PostID: post.ID}).Error)

	app := fiber.New()
	app.Get("/posts/:id/likes", s.GetPostLikes)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, fmt.Sprintf("/posts/%d/likes", post.ID), nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Likes []models.Like `json:"likes"`
		Count int64         `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(2), body.Count)
	assert.Len(t, body.Likes, 2)
}

func TestGetLikeStatus(t *testing.T) {
	db := setupTestDB(t)
	s := newTestServer(db)

	author := createTestUser(t, db, "author")
	liker := createTestUser(t, db, "liker")
	post := createTestPost(t, db, author)

	app := fiber.New()
	app.Get("/posts/:id/like/status", func(c *fiber.Ctx) error {
		c.Locals("userID", liker.ID)
		return s.GetLikeStatus(c)
	})

	target := fmt.Sprintf("/posts/%d/like/status", post.ID)

	status := func() bool {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body struct {
			Liked bool `json:"liked"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		return body.Liked
	}

	assert.False(t, status())

	require.NoError(t, db.Create(&models.Like{UserID: liker.ID, PostID: post.ID}).Error)
	assert.True(t, status())
}
