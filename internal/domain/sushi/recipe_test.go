package sushi_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
)

func TestNewRecipe_RejectsNegativeWeight(t *testing.T) {
	_, err := sushi.NewRecipe("Bad", sushi.SushiTypeEel,
		sushi.UniformParameters(0.5), sushi.UniformParameters(0.2),
		sushi.Weights{FishThickness: -1}, 10)

	var verr *shared.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "weights.fish_thickness", verr.Field)
}

func TestNewRecipe_RejectsNegativeTolerance(t *testing.T) {
	_, err := sushi.NewRecipe("Bad", sushi.SushiTypeEel,
		sushi.UniformParameters(0.5), sushi.UniformParameters(0.2).With(sushi.DimensionWasabiAmount, -0.1),
		sushi.UniformWeights(1), 10)

	var verr *shared.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "tolerance.wasabi_amount", verr.Field)
}

func TestNewRecipe_RejectsNonFiniteValues(t *testing.T) {
	tests := []struct {
		name      string
		ideal     sushi.ProcessParameters
		tolerance sushi.ProcessParameters
		weights   sushi.Weights
		field     string
	}{
		{
			name:      "nan weight",
			ideal:     sushi.UniformParameters(0.5),
			tolerance: sushi.UniformParameters(0.2),
			weights:   sushi.Weights{FishThickness: 1, RiceAmount: math.NaN(), PressDuration: 1, WasabiAmount: 1},
			field:     "weights.rice_amount",
		},
		{
			name:      "infinite weight",
			ideal:     sushi.UniformParameters(0.5),
			tolerance: sushi.UniformParameters(0.2),
			weights:   sushi.Weights{FishThickness: math.Inf(1), RiceAmount: 1, PressDuration: 1, WasabiAmount: 1},
			field:     "weights.fish_thickness",
		},
		{
			name:      "nan tolerance",
			ideal:     sushi.UniformParameters(0.5),
			tolerance: sushi.UniformParameters(0.2).With(sushi.DimensionPressDuration, math.NaN()),
			weights:   sushi.UniformWeights(1),
			field:     "tolerance.press_duration",
		},
		{
			name:      "infinite tolerance",
			ideal:     sushi.UniformParameters(0.5),
			tolerance: sushi.UniformParameters(0.2).With(sushi.DimensionWasabiAmount, math.Inf(1)),
			weights:   sushi.UniformWeights(1),
			field:     "tolerance.wasabi_amount",
		},
		{
			name:      "negative infinite ideal",
			ideal:     sushi.UniformParameters(0.5).With(sushi.DimensionFishThickness, math.Inf(-1)),
			tolerance: sushi.UniformParameters(0.2),
			weights:   sushi.UniformWeights(1),
			field:     "ideal.fish_thickness",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			r, err := sushi.NewRecipe("Broken", sushi.SushiTypeSalmon, tt.ideal, tt.tolerance, tt.weights, 10)

			// Assert
			assert.Nil(t, r)
			var verr *shared.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestNewRecipe_RejectsUnknownType(t *testing.T) {
	_, err := sushi.NewRecipe("Mystery", sushi.SushiType("OCTOPUS"),
		sushi.UniformParameters(0.5), sushi.UniformParameters(0.2), sushi.UniformWeights(1), 10)

	assert.Error(t, err)
}

func TestCatalog_FindByNameOrType(t *testing.T) {
	// Arrange
	catalog := sushi.DefaultCatalog()

	// Act
	byName, okName := catalog.FindByName("salmon nigiri")
	byType, okType := catalog.FindByName("eel")
	_, okMissing := catalog.FindByName("Octopus")

	// Assert
	require.True(t, okName)
	require.True(t, okType)
	assert.Equal(t, "Salmon Nigiri", byName.Name())
	assert.Equal(t, sushi.SushiTypeEel, byType.SushiType())
	assert.False(t, okMissing)
}

func TestCatalog_RejectsDuplicateNames(t *testing.T) {
	r := sushi.MustNewRecipe("Dup", sushi.SushiTypeEgg, sushi.UniformParameters(0.5), sushi.UniformParameters(0.2), sushi.UniformWeights(1), 10)
	r2 := sushi.MustNewRecipe("DUP", sushi.SushiTypeTuna, sushi.UniformParameters(0.5), sushi.UniformParameters(0.2), sushi.UniformWeights(1), 10)

	_, err := sushi.NewCatalog(r, r2)

	assert.Error(t, err)
}

func TestCatalog_RandomUsesSource(t *testing.T) {
	// Arrange
	catalog := sushi.DefaultCatalog()
	rng := shared.NewSequenceRandom(0.99)

	// Act
	recipe, ok := catalog.Random(rng)
	_, okEmpty := (&sushi.Catalog{}).Random(rng)

	// Assert
	require.True(t, ok)
	assert.Equal(t, catalog.All()[catalog.Len()-1], recipe)
	assert.False(t, okEmpty)
}

func TestRecipe_SameAs(t *testing.T) {
	catalog := sushi.DefaultCatalog()
	salmon, _ := catalog.FindByName("Salmon Nigiri")
	tuna, _ := catalog.FindByName("Tuna Nigiri")

	assert.True(t, salmon.SameAs(salmon))
	assert.False(t, salmon.SameAs(tuna))
	assert.False(t, salmon.SameAs(nil))
}

func TestParseRequestType(t *testing.T) {
	for _, name := range []string{"riceless", "THICKFISH", "MoreWasabi", " softpress "} {
		rt, err := sushi.ParseRequestType(name)
		require.NoError(t, err, name)

		req, err := sushi.NewRequest(rt)
		require.NoError(t, err)
		assert.True(t, req.HasAny())
	}

	_, err := sushi.ParseRequestType("ExtraGinger")
	assert.Error(t, err)
}

func TestNamedRequests_DefaultOffsets(t *testing.T) {
	rice, _ := sushi.NewRequest(sushi.RequestRiceLess)
	fish, _ := sushi.NewRequest(sushi.RequestThickFish)
	wasabi, _ := sushi.NewRequest(sushi.RequestMoreWasabi)
	press, _ := sushi.NewRequest(sushi.RequestSoftPress)

	assert.Equal(t, -0.3, rice.Offset(sushi.DimensionRiceAmount))
	assert.Equal(t, 0.3, fish.Offset(sushi.DimensionFishThickness))
	assert.Equal(t, 0.4, wasabi.Offset(sushi.DimensionWasabiAmount))
	assert.Equal(t, -0.3, press.Offset(sushi.DimensionPressDuration))
	assert.False(t, rice.Has(sushi.DimensionFishThickness))
}

func TestPlate_CapturesCopy(t *testing.T) {
	params := sushi.UniformParameters(0.4)
	plate := sushi.NewPlate(nil, params)

	params.RiceAmount = 1

	assert.Equal(t, 0.4, plate.Parameters().RiceAmount)
}
