package serving_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/sushibar-go/internal/application/orders"
	"github.com/andrescamacho/sushibar-go/internal/application/serving"
	"github.com/andrescamacho/sushibar-go/internal/domain/score"
	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
)

func setup() (*orders.Ledger, *score.Ledger, *serving.Controller) {
	ledger := orders.NewLedger(sushi.DefaultCatalog(), orders.DefaultConfig(), shared.NewSequenceRandom(0), nil)
	scores := score.NewLedger()
	return ledger, scores, serving.NewController(ledger, scores)
}

func TestController_ServeScoresAndClearsPlate(t *testing.T) {
	// Arrange
	ledger, scores, ctrl := setup()
	id := shared.NewCustomerID()
	o := ledger.CreateSpecificOrder(id, "Salmon Nigiri", "")
	ctrl.HoldPlate(sushi.NewPlate(o.Recipe(), o.Recipe().Ideal()))

	// Act
	served, ok := ctrl.Serve(id)

	// Assert
	require.True(t, ok)
	assert.Equal(t, sushi.ResultPerfect, served.Result)
	assert.Equal(t, 120, served.Delta)
	assert.Equal(t, score.ReactionVeryHappy, served.Reaction)
	assert.Equal(t, 120, scores.Total())
	assert.False(t, ctrl.HasPlate())
}

func TestController_NoOrderKeepsPlate(t *testing.T) {
	_, scores, ctrl := setup()
	recipe, _ := sushi.DefaultCatalog().FindByName("Tamago")
	ctrl.HoldPlate(sushi.NewPlate(recipe, recipe.Ideal()))

	_, ok := ctrl.Serve(shared.NewCustomerID())

	assert.False(t, ok)
	assert.True(t, ctrl.HasPlate())
	assert.Equal(t, 0, scores.Total())
}

func TestController_NoPlateIsNoOp(t *testing.T) {
	ledger, _, ctrl := setup()
	id := shared.NewCustomerID()
	ledger.CreateSpecificOrder(id, "Salmon Nigiri", "")

	_, ok := ctrl.Serve(id)

	assert.False(t, ok)
	assert.Equal(t, 1, ledger.Len())
}

func TestController_WrongDishIsPenalizedWithOrderedRecipe(t *testing.T) {
	// Arrange
	ledger, scores, ctrl := setup()
	id := shared.NewCustomerID()
	ledger.CreateSpecificOrder(id, "Eel Nigiri", "")
	tamago, _ := sushi.DefaultCatalog().FindByName("Tamago")
	ctrl.HoldPlate(sushi.NewPlate(tamago, tamago.Ideal()))

	// Act
	served, ok := ctrl.Serve(id)

	// Assert
	require.True(t, ok)
	assert.Equal(t, sushi.ResultFail, served.Result)
	assert.Equal(t, -75, served.Delta)
	assert.Equal(t, 1, scores.Failed())
}
