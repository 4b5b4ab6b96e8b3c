package score_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/sushibar-go/internal/domain/score"
	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
)

func baseRecipe(t *testing.T, base int) *sushi.Recipe {
	t.Helper()
	r, err := sushi.NewRecipe("Salmon Nigiri", sushi.SushiTypeSalmon,
		sushi.UniformParameters(0.5), sushi.UniformParameters(0.2), sushi.UniformWeights(1), base)
	require.NoError(t, err)
	return r
}

func TestLedger_PerfectDish(t *testing.T) {
	// Arrange
	ledger := score.NewLedger()
	recipe := baseRecipe(t, 100)

	// Act
	delta, reaction := ledger.ApplyResult(shared.NewCustomerID(), recipe, sushi.ResultPerfect, 1.0)

	// Assert
	assert.Equal(t, 120, delta)
	assert.Equal(t, score.ReactionVeryHappy, reaction)
	assert.Equal(t, 120, ledger.Total())
	assert.Equal(t, 1, ledger.Completed())
	assert.Equal(t, 1.0, ledger.Average())
}

func TestLedger_GoodDish(t *testing.T) {
	// Arrange
	ledger := score.NewLedger()
	recipe := baseRecipe(t, 100)
	quality, result := sushi.Evaluate(recipe, sushi.UniformParameters(0.5).With(sushi.DimensionFishThickness, 0.9), nil)

	// Act
	delta, reaction := ledger.ApplyResult(shared.NewCustomerID(), recipe, result, quality)

	// Assert
	assert.Equal(t, sushi.ResultGood, result)
	assert.Equal(t, 70, delta)
	assert.Equal(t, score.ReactionHappy, reaction)
}

func TestLedger_FailIgnoresQuality(t *testing.T) {
	for _, quality := range []float64{0, 0.3, 0.95, 1} {
		ledger := score.NewLedger()

		delta, reaction := ledger.ApplyResult(shared.NewCustomerID(), baseRecipe(t, 100), sushi.ResultFail, quality)

		assert.Equal(t, -50, delta)
		assert.Equal(t, score.ReactionAngry, reaction)
		assert.Equal(t, 1, ledger.Failed())
		assert.Equal(t, 0, ledger.Completed())
		assert.Equal(t, 0.0, ledger.Average())
	}
}

func TestLedger_FailRoundsHalfToEven(t *testing.T) {
	assert.Equal(t, -50, score.Delta(101, sushi.ResultFail, 0))
	assert.Equal(t, -52, score.Delta(103, sushi.ResultFail, 0))
	assert.Equal(t, -2, score.Delta(5, sushi.ResultFail, 0))
}

func TestLedger_TotalCanGoNegativeAndReset(t *testing.T) {
	// Arrange
	ledger := score.NewLedger()
	recipe := baseRecipe(t, 100)

	// Act
	ledger.ApplyResult(shared.NewCustomerID(), recipe, sushi.ResultFail, 0)
	ledger.ApplyResult(shared.NewCustomerID(), recipe, sushi.ResultFail, 0)
	negative := ledger.Total()
	ledger.Reset()

	// Assert
	assert.Equal(t, -100, negative)
	assert.Equal(t, 0, ledger.Total())
	assert.Equal(t, 0, ledger.Failed())
}

func TestLedger_NilRecipeIsNoOp(t *testing.T) {
	ledger := score.NewLedger()

	delta, _ := ledger.ApplyResult(shared.NewCustomerID(), nil, sushi.ResultPerfect, 1)

	assert.Equal(t, 0, delta)
	assert.Equal(t, 0, ledger.Completed())
}

func TestLedger_NotifiesReactionListeners(t *testing.T) {
	// Arrange
	ledger := score.NewLedger()
	id := shared.NewCustomerID()
	var got []score.Reaction
	ledger.OnReaction(func(c shared.CustomerID, r score.Reaction) {
		assert.Equal(t, id, c)
		got = append(got, r)
	})

	// Act
	ledger.ApplyResult(id, baseRecipe(t, 100), sushi.ResultGood, 0.75)
	ledger.ApplyResult(id, baseRecipe(t, 100), sushi.ResultNone, 0.5)

	// Assert
	assert.Equal(t, []score.Reaction{score.ReactionHappy, score.ReactionNeutral}, got)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, score.ReactionVeryHappy, score.Classify(sushi.ResultPerfect, 0.9))
	assert.Equal(t, score.ReactionHappy, score.Classify(sushi.ResultGood, 0.7))
	assert.Equal(t, score.ReactionNeutral, score.Classify(sushi.ResultGood, 0.4))
	assert.Equal(t, score.ReactionAngry, score.Classify(sushi.ResultGood, 0.39))
	assert.Equal(t, score.ReactionAngry, score.Classify(sushi.ResultFail, 1))
}

func TestMultiplier_NoneIsZero(t *testing.T) {
	assert.Equal(t, 0.0, score.Multiplier(sushi.ResultNone, 1))
	assert.Equal(t, 0, score.Delta(100, sushi.ResultNone, 1))
}
