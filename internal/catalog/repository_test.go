package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedLoadsFixtureOnce(t *testing.T) {
	repo := seededRepository(t)
	ctx := context.Background()

	// A second seed against a populated store is a no-op.
	require.NoError(t, repo.Seed(ctx))

	products, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 27)
	assert.Equal(t, "1", products[0].ID)
	assert.Equal(t, "27", products[26].ID)

	collections, err := repo.ListCollections(ctx)
	require.NoError(t, err)
	assert.Len(t, collections, 9)
}

func TestFindProductByIDPreloadsVariants(t *testing.T) {
	repo := seededRepository(t)

	product, err := repo.FindProductByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Classic Denim Jacket", product.Title)

	require.Len(t, product.Variants, 3)
	assert.Equal(t, "Small", product.Variants[0].Title)
	assert.Equal(t, "Large", product.Variants[2].Title)

	require.Len(t, product.Tags, 4)
	assert.Equal(t, "denim", product.Tags[0])
}

func TestListByCategory(t *testing.T) {
	repo := seededRepository(t)

	products, err := repo.ListByCategory(context.Background(), "Footwear")
	require.NoError(t, err)
	require.Len(t, products, 3)
	for _, p := range products {
		assert.Equal(t, "Footwear", p.Category, "product %s", p.ID)
	}

	// The match ignores case.
	lower, err := repo.ListByCategory(context.Background(), "footwear")
	require.NoError(t, err)
	assert.Len(t, lower, 3)
}
