package catalogjson_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/sushibar-go/internal/adapters/catalogjson"
	"github.com/andrescamacho/sushibar-go/internal/domain/customer"
	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
)

func TestParse_ReadsRecipesAndProfiles(t *testing.T) {
	// Arrange
	doc, err := os.ReadFile("testdata/catalog.json")
	require.NoError(t, err)

	// Act
	bundle, err := catalogjson.Parse(doc, sushi.DefaultCatalog())

	// Assert
	require.NoError(t, err)
	require.Len(t, bundle.Recipes, 1)
	hamachi := bundle.Recipes[0]
	assert.Equal(t, sushi.SushiTypeYellowtail, hamachi.SushiType())
	assert.Equal(t, 130, hamachi.BaseScore())
	assert.Equal(t, 2.0, hamachi.Weights().FishThickness)
	assert.Equal(t, 1.0, hamachi.Weights().RiceAmount)
	assert.InDelta(t, 0.35, hamachi.Ideal().WasabiAmount, 1e-9)

	require.Len(t, bundle.Profiles, 1)
	p := bundle.Profiles[0]
	assert.Equal(t, customer.TypeRegular, p.Type)
	assert.Equal(t, 12500*time.Millisecond, p.Patience)
	assert.Equal(t, 2, p.OrderLimit())
	require.Len(t, p.OrderPresets, 2)
	assert.Nil(t, p.OrderPresets[0].Request)
	assert.Equal(t, 1.0, p.OrderPresets[1].Weight)
	assert.InDelta(t, 0.4, p.OrderPresets[1].Request.Offset(sushi.DimensionWasabiAmount), 1e-9)
	assert.Equal(t, "salaryman_bye", p.Conversations.Farewell)
}

func TestParse_RejectsOutOfRangeIdeal(t *testing.T) {
	doc := []byte(`{"recipes":[{"name":"Bad","type":"TUNA","ideal":{"fish_thickness":1.5}}]}`)

	_, err := catalogjson.Parse(doc, nil)

	assert.Error(t, err)
}

func TestParse_RejectsUnknownPresetRecipe(t *testing.T) {
	doc := []byte(`{"profiles":[{"id":"ghost","presets":[{"id":"x","recipe":"Dragon Roll"}]}]}`)

	_, err := catalogjson.Parse(doc, sushi.DefaultCatalog())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Dragon Roll")
}

func TestParse_RejectsInvertedDayRange(t *testing.T) {
	doc := []byte(`{"profiles":[{"id":"late","min_day":5,"max_day":2}]}`)

	_, err := catalogjson.Parse(doc, nil)

	assert.Error(t, err)
}

func TestParse_RejectsDuplicateRecipes(t *testing.T) {
	doc := []byte(`{"recipes":[{"name":"A","type":"EGG"},{"name":"a","type":"EGG"}]}`)

	_, err := catalogjson.Parse(doc, nil)

	assert.Error(t, err)
}

func TestParse_RejectsMalformedJSON(t *testing.T) {
	_, err := catalogjson.Parse([]byte(`{"recipes":[`), nil)

	assert.Error(t, err)
}
