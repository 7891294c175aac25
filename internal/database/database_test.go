package database_test

import (
	"testing"

	"productos/internal/config"
	"productos/internal/database"
	"productos/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLite(t *testing.T) {
	db, err := database.Open(config.DBConfig{Driver: "sqlite", DSN: "file:databasetest?mode=memory&cache=shared"}, false)
	require.NoError(t, err)
	defer database.Close(db)

	assert.NoError(t, database.Ping(db))
	assert.True(t, db.Migrator().HasTable(&models.Product{}))
	assert.True(t, db.Migrator().HasColumn(&models.Product{}, "categoria"))
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := database.Open(config.DBConfig{Driver: "oracle"}, false)
	assert.ErrorContains(t, err, "unsupported database driver")
}
