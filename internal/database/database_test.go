package database_test

import (
	"testing"

	"catalog/internal/config"
	"catalog/internal/database"
	"catalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SQLiteMigrates(t *testing.T) {
	db, err := database.Open(config.DriverSQLite, database.MemoryDSN())
	require.NoError(t, err)

	for _, model := range []interface{}{&models.Merchant{}, &models.Item{}, &models.Invoice{}, &models.InvoiceItem{}} {
		assert.True(t, db.Migrator().HasTable(model), "%T table missing", model)
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := database.Open("mysql", "whatever")
	assert.ErrorContains(t, err, `unsupported database driver "mysql"`)
}

func TestMemoryDSN_IsPrivate(t *testing.T) {
	first, second := database.MemoryDSN(), database.MemoryDSN()
	assert.NotEqual(t, first, second)
	assert.Contains(t, first, "mode=memory")
}
