package database

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openSQLiteForTest(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func TestGetReadDBFallback(t *testing.T) {
	SetReadDB(nil)
	require.Nil(t, GetReadDB())

	db := openSQLiteForTest(t)
	SetReadDB(db)
	t.Cleanup(func() { SetReadDB(nil) })

	require.Same(t, db, GetReadDB())
}
