package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"skillconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeRepository_Integration(t *testing.T) {
	repo := NewLikeRepository(testDB)
	ctx := context.Background()

	ts := time.Now().UnixNano()
	author := &models.User{Username: fmt.Sprintf("lk1_%d", ts), Email: fmt.Sprintf("lk1_%d@e.com", ts)}
	liker := &models.User{Username: fmt.Sprintf("lk2_%d", ts), Email: fmt.Sprintf("lk2_%d@e.com", ts)}
	testDB.Create(author)
	testDB.Create(liker)

	post := &models.Post{Title: "Learning Go", Content: "Day 1", UserID: author.ID}
	testDB.Create(post)

	t.Run("Create", func(t *testing.T) {
		created, err := repo.Create(ctx, &models.Like{UserID: liker.ID, PostID: post.ID})
		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("Repeat like is a no-op", func(t *testing.T) {
		created, err := repo.Create(ctx, &models.Like{UserID: liker.ID, PostID: post.ID})
		require.NoError(t, err)
		assert.False(t, created)

		count, err := repo.CountByPost(ctx, post.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("GetByUserAndPost", func(t *testing.T) {
		like, err := repo.GetByUserAndPost(ctx, liker.ID, post.ID)
		require.NoError(t, err)
		require.NotNil(t, like)
		assert.Equal(t, post.ID, like.PostID)

		missing, err := repo.GetByUserAndPost(ctx, author.ID, post.ID)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("ListByPost preloads users", func(t *testing.T) {
		likes, err := repo.ListByPost(ctx, post.ID, 10, 0)
		assert.NoError(t, err)
		if assert.Len(t, likes, 1) {
			assert.Equal(t, liker.Username, likes[0].User.Username)
		}
	})

	t.Run("Delete then relike", func(t *testing.T) {
		removed, err := repo.Delete(ctx, liker.ID, post.ID)
		require.NoError(t, err)
		assert.True(t, removed)

		removed, err = repo.Delete(ctx, liker.ID, post.ID)
		require.NoError(t, err)
		assert.False(t, removed)

		// The unique index must not block a fresh like after unlike.
		created, err := repo.Create(ctx, &models.Like{UserID: liker.ID, PostID: post.ID})
		require.NoError(t, err)
		assert.True(t, created)
	})
}
