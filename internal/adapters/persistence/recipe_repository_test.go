package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/sushibar-go/internal/adapters/persistence"
	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
	"github.com/andrescamacho/sushibar-go/test/helpers"
)

func TestRecipeRepository_SaveAndFind(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormRecipeRepository(db)
	recipe, ok := sushi.DefaultCatalog().FindByName("Tuna Nigiri")
	require.True(t, ok)

	// Act
	require.NoError(t, repo.Save(context.Background(), recipe))
	found, err := repo.FindByName(context.Background(), "Tuna Nigiri")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, recipe.Name(), found.Name())
	assert.Equal(t, recipe.SushiType(), found.SushiType())
	assert.Equal(t, recipe.Ideal(), found.Ideal())
	assert.Equal(t, recipe.Tolerance(), found.Tolerance())
	assert.Equal(t, recipe.Weights(), found.Weights())
	assert.Equal(t, recipe.BaseScore(), found.BaseScore())
}

func TestRecipeRepository_SaveReplacesByName(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormRecipeRepository(db)
	ctx := context.Background()
	first := sushi.MustNewRecipe("House Roll", sushi.SushiTypeSalmon, sushi.UniformParameters(0.5), sushi.UniformParameters(0.2), sushi.UniformWeights(1), 100)
	second := sushi.MustNewRecipe("House Roll", sushi.SushiTypeEel, sushi.UniformParameters(0.6), sushi.UniformParameters(0.1), sushi.UniformWeights(2), 140)

	// Act
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))
	all, err := repo.FindAll(ctx)

	// Assert
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, sushi.SushiTypeEel, all[0].SushiType())
	assert.Equal(t, 140, all[0].BaseScore())
}

func TestRecipeRepository_LoadCatalog(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormRecipeRepository(db)
	ctx := context.Background()
	for _, r := range sushi.DefaultCatalog().All() {
		require.NoError(t, repo.Save(ctx, r))
	}

	catalog, err := sushi.LoadCatalog(ctx, repo)

	require.NoError(t, err)
	assert.Equal(t, sushi.DefaultCatalog().Len(), catalog.Len())
	_, ok := catalog.FindByName("tamago")
	assert.True(t, ok)
}

func TestRecipeRepository_NotFound(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormRecipeRepository(db)

	_, err := repo.FindByName(context.Background(), "Dragon Roll")
	deleteErr := repo.Delete(context.Background(), "Dragon Roll")

	var notFound *shared.NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.ErrorAs(t, deleteErr, &notFound)
}
