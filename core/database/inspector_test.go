package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingTables(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE products (sku TEXT PRIMARY KEY, name TEXT)").Error
	require.NoError(t, err)

	assert.Empty(t, MissingTables(db, "products"))
	assert.Equal(t, []string{"sync_logs"}, MissingTables(db, "products", "sync_logs"))
	assert.Empty(t, MissingTables(db))
}
