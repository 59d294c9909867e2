package integrity

import (
	"testing"

	"catalog-sync/core/database"
	"catalog-sync/core/storage/mocks"
	"catalog-sync/feature/catalog/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	logger := zap.NewNop()

	feature := NewFeature(db, store.New(db, store.DefaultOptions(), logger), new(mocks.Client), Config{Bucket: "test-bucket"}, logger)

	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	err = feature.Load(app)
	assert.NoError(t, err)
}

func TestLoader_DisabledWithoutDatabase(t *testing.T) {
	feature := NewFeature(nil, nil, nil, Config{}, zap.NewNop())
	assert.False(t, feature.IsEnabled())
}
