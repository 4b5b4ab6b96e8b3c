package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/sushibar-go/internal/adapters/persistence"
	"github.com/andrescamacho/sushibar-go/internal/domain/customer"
	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
	"github.com/andrescamacho/sushibar-go/test/helpers"
)

func TestProfileRepository_RoundTripsPresetsAndConversations(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormProfileRepository(db)
	profile := customer.NewProfile("regular", "Regular")
	profile.Type = customer.TypeRegular
	profile.Patience = 14 * time.Second
	profile.CanMakeMultipleOrders = true
	profile.MaxOrders = 3
	profile.OrderPresets = []customer.OrderPreset{
		{OrderID: "usual", RecipeName: "Salmon Nigiri", Weight: 3},
		{OrderID: "light", RecipeName: "Tuna Nigiri", Request: sushi.RiceLess(-0.3), Weight: 1},
	}
	profile.Conversations.Greeting = "regular_greeting"

	// Act
	require.NoError(t, repo.Save(context.Background(), profile))
	found, err := repo.FindByID(context.Background(), "regular")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, customer.TypeRegular, found.Type)
	assert.Equal(t, 14*time.Second, found.Patience)
	assert.Equal(t, 3, found.OrderLimit())
	require.Len(t, found.OrderPresets, 2)
	assert.Nil(t, found.OrderPresets[0].Request)
	light := found.OrderPresets[1]
	require.NotNil(t, light.Request)
	assert.True(t, light.Request.Has(sushi.DimensionRiceAmount))
	assert.InDelta(t, -0.3, light.Request.Offset(sushi.DimensionRiceAmount), 1e-9)
	assert.Equal(t, "regular_greeting", found.Conversations.Greeting)
}

func TestProfileRepository_RejectsInvalidProfile(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormProfileRepository(db)
	profile := customer.NewProfile("late", "Late")
	profile.MinDay, profile.MaxDay = 5, 2

	err := repo.Save(context.Background(), profile)

	var invalid *shared.ValidationError
	require.ErrorAs(t, err, &invalid)
}

func TestProfileRepository_FindAllDefaults(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormProfileRepository(db)
	for _, p := range customer.DefaultProfiles() {
		require.NoError(t, repo.Save(context.Background(), p))
	}

	all, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, all, len(customer.DefaultProfiles()))
}
