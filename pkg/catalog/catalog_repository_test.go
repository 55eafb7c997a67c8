package catalog

import (
	"context"
	"testing"

	"Smart-Grocery-Agent/entities"
	"Smart-Grocery-Agent/internal/utils/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepository_MissingFileIsEmpty(t *testing.T) {
	repo := NewCatalogRepository(storage.NewFileBlob(t.TempDir()), "products.json")

	doc, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, doc)
}

func TestCatalogRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	blob := storage.NewFileBlob(t.TempDir())
	repo := NewCatalogRepository(blob, "products.json")

	require.NoError(t, repo.Save(ctx, sampleDocument()))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleDocument(), loaded)

	data, err := blob.Read(ctx, "products.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"alt": "Fruit Salad"`)
	assert.Contains(t, string(data), `"alt": null`)
	assert.Contains(t, string(data), "\n        \"Bread\"")
}

func TestCatalogRepository_InvalidJSON(t *testing.T) {
	ctx := context.Background()
	blob := storage.NewFileBlob(t.TempDir())
	require.NoError(t, blob.Write(ctx, "products.json", []byte("{not json")))

	_, err := NewCatalogRepository(blob, "products.json").Load(ctx)

	assert.ErrorContains(t, err, "decode catalog")
}

func TestCatalogRepository_ReadsOriginalFormat(t *testing.T) {
	ctx := context.Background()
	blob := storage.NewFileBlob(t.TempDir())
	seed := `{"Beverages": {"Soda": {"price": 250, "days_to_expire": 90, "healthy": false, "alt": "Sparkling Water"}}}`
	require.NoError(t, blob.Write(ctx, "products.json", []byte(seed)))

	doc, err := NewCatalogRepository(blob, "products.json").Load(ctx)

	require.NoError(t, err)
	soda := doc["Beverages"]["Soda"]
	assert.Equal(t, entities.ProductRecord{Price: 250, DaysToExpire: 90, Healthy: false, Alternative: strPtr("Sparkling Water")}, soda)
}
