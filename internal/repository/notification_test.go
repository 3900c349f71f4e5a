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

func TestNotificationRepository_Integration(t *testing.T) {
	repo := NewNotificationRepository(testDB)
	ctx := context.Background()

	ts := time.Now().UnixNano()
	recipient := &models.User{Username: fmt.Sprintf("nt1_%d", ts), Email: fmt.Sprintf("nt1_%d@e.com", ts)}
	other := &models.User{Username: fmt.Sprintf("nt2_%d", ts), Email: fmt.Sprintf("nt2_%d@e.com", ts)}
	testDB.Create(recipient)
	testDB.Create(other)

	t.Run("Create and ListByRecipient", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			err := repo.Create(ctx, &models.Notification{
				UserID:  recipient.ID,
				Title:   "You have a new like for your post",
				Message: fmt.Sprintf("Someone has liked to your post (%d)", i),
			})
			require.NoError(t, err)
		}
		err := repo.Create(ctx, &models.Notification{
			UserID:  other.ID,
			Title:   "You have a new like for your post",
			Message: "not for the first recipient",
		})
		require.NoError(t, err)

		list, err := repo.ListByRecipient(ctx, recipient.ID, 10, 0)
		assert.NoError(t, err)
		assert.Len(t, list, 3)
		for _, n := range list {
			assert.Equal(t, recipient.ID, n.UserID)
		}
	})

	t.Run("Newest first", func(t *testing.T) {
		list, err := repo.ListByRecipient(ctx, recipient.ID, 10, 0)
		require.NoError(t, err)
		require.True(t, len(list) >= 2)
		for i := 1; i < len(list); i++ {
			assert.False(t, list[i-1].CreatedAt.Before(list[i].CreatedAt))
		}
	})

	t.Run("CountByRecipient", func(t *testing.T) {
		count, err := repo.CountByRecipient(ctx, recipient.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("Delete", func(t *testing.T) {
		list, err := repo.ListByRecipient(ctx, recipient.ID, 1, 0)
		require.NoError(t, err)
		require.Len(t, list, 1)

		deleted, err := repo.Delete(ctx, list[0].ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, list[0].ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
