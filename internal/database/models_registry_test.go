package database

import (
	"testing"

	modelspkg "skillconnect/internal/models"

	"github.com/stretchr/testify/require"
)

func TestPersistentModels_IncludesFollowAndLike(t *testing.T) {
	var hasFollow, hasLike, hasNotification bool
	for _, model := range PersistentModels() {
		switch model.(type) {
		case *modelspkg.Follow:
			hasFollow = true
		case *modelspkg.Like:
			hasLike = true
		case *modelspkg.Notification:
			hasNotification = true
		}
	}
	require.True(t, hasFollow, "PersistentModels should include Follow")
	require.True(t, hasLike, "PersistentModels should include Like")
	require.True(t, hasNotification, "PersistentModels should include Notification")
}

func TestMigrateAppliesSchema(t *testing.T) {
	db := openSQLiteForTest(t)

	require.NoError(t, Migrate(db))

	for _, table := range []string{"users", "posts", "follows", "likes", "notifications", "progress_updates", "media_items", "comments"} {
		require.True(t, db.Migrator().HasTable(table), "expected table %s", table)
	}
}
