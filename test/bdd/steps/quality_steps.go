package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/sushibar-go/internal/domain/score"
	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
)

// qualityContext holds one recipe under test plus the latest evaluation and
// score ledger outcome
type qualityContext struct {
	recipeName string
	baseScore  int
	tolerance  float64
	ideal      sushi.ProcessParameters
	request    *sushi.CustomRequest

	evaluated sushi.ProcessParameters
	quality   float64
	result    sushi.Result

	ledger   *score.Ledger
	delta    int
	reaction score.Reaction
}

func (qc *qualityContext) reset() {
	qc.recipeName = ""
	qc.baseScore = 0
	qc.tolerance = 0
	qc.ideal = sushi.UniformParameters(0.5)
	qc.request = nil
	qc.evaluated = sushi.ProcessParameters{}
	qc.quality = 0
	qc.result = sushi.ResultNone
	qc.ledger = score.NewLedger()
	qc.delta = 0
	qc.reaction = ""
}

func (qc *qualityContext) recipe() (*sushi.Recipe, error) {
	if qc.recipeName == "" {
		return nil, fmt.Errorf("no recipe defined")
	}
	return sushi.NewRecipe(qc.recipeName, sushi.SushiTypeSalmon, qc.ideal,
		sushi.UniformParameters(qc.tolerance), sushi.UniformWeights(1), qc.baseScore)
}

// Given steps

func (qc *qualityContext) aRecipeWithBaseScoreAndTolerance(name string, base int, tolerance float64) error {
	qc.recipeName = name
	qc.baseScore = base
	qc.tolerance = tolerance
	return nil
}

func (qc *qualityContext) theRecipeIdealIs(table *godog.Table) error {
	ideal, err := parametersFromTable(table)
	if err != nil {
		return err
	}
	qc.ideal = ideal
	return nil
}

func (qc *qualityContext) theRecipeIdealDimensionIs(dimension string, value float64) error {
	d, err := sushi.ParseDimension(dimension)
	if err != nil {
		return err
	}
	if qc.recipeName == "" {
		qc.recipeName = "Outline Nigiri"
		qc.baseScore = 100
		qc.tolerance = 0.2
	}
	qc.ideal = qc.ideal.With(d, value)
	return nil
}

func (qc *qualityContext) aCustomRequestOffsetting(label, dimension string, offset float64) error {
	d, err := sushi.ParseDimension(dimension)
	if err != nil {
		return err
	}
	qc.request = sushi.NewCustomRequest(label, map[sushi.Dimension]float64{d: offset})
	return nil
}

// When steps

func (qc *qualityContext) iEvaluateTheParameters(table *godog.Table) error {
	recipe, err := qc.recipe()
	if err != nil {
		return err
	}
	params, err := parametersFromTable(table)
	if err != nil {
		return err
	}
	qc.evaluated = params
	qc.quality, qc.result = sushi.Evaluate(recipe, qc.evaluated, qc.request)
	return nil
}

func (qc *qualityContext) iChangeDimensionOfTheEvaluatedParameters(dimension string, value float64) error {
	d, err := sushi.ParseDimension(dimension)
	if err != nil {
		return err
	}
	qc.evaluated = qc.evaluated.With(d, value)
	return nil
}

func (qc *qualityContext) theLedgerScoresTheParameters(table *godog.Table) error {
	recipe, err := qc.recipe()
	if err != nil {
		return err
	}
	params, err := parametersFromTable(table)
	if err != nil {
		return err
	}
	quality, result := sushi.Evaluate(recipe, params, qc.request)
	qc.delta, qc.reaction = qc.ledger.ApplyResult(shared.NewCustomerID(), recipe, result, quality)
	return nil
}

func (qc *qualityContext) theLedgerScoresAFailure(base int, quality float64) error {
	recipe, err := sushi.NewRecipe("Failed Nigiri", sushi.SushiTypeTuna, sushi.UniformParameters(0.5),
		sushi.UniformParameters(0.2), sushi.UniformWeights(1), base)
	if err != nil {
		return err
	}
	qc.delta, qc.reaction = qc.ledger.ApplyResult(shared.NewCustomerID(), recipe, sushi.ResultFail, quality)
	return nil
}

// Then steps

func (qc *qualityContext) theQualityScoreShouldBe(expected float64) error {
	if !approxEqual(qc.quality, expected) {
		return fmt.Errorf("expected quality %.2f, got %.4f", expected, qc.quality)
	}
	return nil
}

func (qc *qualityContext) theQualityScoreShouldBeBelowOne() error {
	if qc.quality >= 1 {
		return fmt.Errorf("expected quality below 1, got %.4f", qc.quality)
	}
	return nil
}

func (qc *qualityContext) theEvaluationResultShouldBe(expected string) error {
	if qc.result.String() != expected {
		return fmt.Errorf("expected result %s, got %s", expected, qc.result)
	}
	return nil
}

func (qc *qualityContext) theScoreForDimensionShouldBe(dimension string, expected float64) error {
	recipe, err := qc.recipe()
	if err != nil {
		return err
	}
	d, err := sushi.ParseDimension(dimension)
	if err != nil {
		return err
	}
	ideal := sushi.EffectiveIdeal(recipe, qc.request)
	got := sushi.DimensionScore(qc.evaluated.Get(d), ideal.Get(d), recipe.Tolerance().Get(d))
	if !approxEqual(got, expected) {
		return fmt.Errorf("expected %s score %.2f, got %.4f", dimension, expected, got)
	}
	return nil
}

func (qc *qualityContext) theEffectiveIdealShouldBe(dimension string, expected float64) error {
	recipe, err := qc.recipe()
	if err != nil {
		return err
	}
	d, err := sushi.ParseDimension(dimension)
	if err != nil {
		return err
	}
	got := sushi.EffectiveIdeal(recipe, qc.request).Get(d)
	if !approxEqual(got, expected) {
		return fmt.Errorf("expected effective %s ideal %.2f, got %.4f", dimension, expected, got)
	}
	return nil
}

func (qc *qualityContext) theScoreDeltaShouldBe(expected int) error {
	if qc.delta != expected {
		return fmt.Errorf("expected delta %d, got %d", expected, qc.delta)
	}
	return nil
}

func (qc *qualityContext) theCustomerReactionShouldBe(expected string) error {
	if string(qc.reaction) != expected {
		return fmt.Errorf("expected reaction %s, got %s", expected, qc.reaction)
	}
	return nil
}

func (qc *qualityContext) theLedgerTotalShouldBe(expected int) error {
	if qc.ledger.Total() != expected {
		return fmt.Errorf("expected total %d, got %d", expected, qc.ledger.Total())
	}
	return nil
}

func (qc *qualityContext) theLedgerShouldCount(completed, failed int) error {
	if qc.ledger.Completed() != completed || qc.ledger.Failed() != failed {
		return fmt.Errorf("expected %d completed and %d failed, got %d and %d",
			completed, failed, qc.ledger.Completed(), qc.ledger.Failed())
	}
	return nil
}

func (qc *qualityContext) theLedgerAverageQualityShouldBe(expected float64) error {
	if !approxEqual(qc.ledger.Average(), expected) {
		return fmt.Errorf("expected average quality %.2f, got %.4f", expected, qc.ledger.Average())
	}
	return nil
}

// InitializeQualityScenario registers evaluator and score ledger steps
func InitializeQualityScenario(ctx *godog.ScenarioContext) {
	qc := &qualityContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		qc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a recipe "([^"]*)" with base score (\d+) and tolerance ([0-9.]+) in every dimension$`, qc.aRecipeWithBaseScoreAndTolerance)
	ctx.Step(`^the recipe ideal is:$`, qc.theRecipeIdealIs)
	ctx.Step(`^the recipe ideal "([^"]*)" is (-?[0-9.]+)$`, qc.theRecipeIdealDimensionIs)
	ctx.Step(`^a custom request "([^"]*)" offsetting "([^"]*)" by (-?[0-9.]+)$`, qc.aCustomRequestOffsetting)

	// When steps
	ctx.Step(`^I evaluate the parameters:$`, qc.iEvaluateTheParameters)
	ctx.Step(`^I change "([^"]*)" of the evaluated parameters to (-?[0-9.]+)$`, qc.iChangeDimensionOfTheEvaluatedParameters)
	ctx.Step(`^the ledger scores the parameters:$`, qc.theLedgerScoresTheParameters)
	ctx.Step(`^the ledger scores a failure for base score (\d+) with quality ([0-9.]+)$`, qc.theLedgerScoresAFailure)

	// Then steps
	ctx.Step(`^the quality score should be ([0-9.]+)$`, qc.theQualityScoreShouldBe)
	ctx.Step(`^the quality score should be below 1$`, qc.theQualityScoreShouldBeBelowOne)
	ctx.Step(`^the evaluation result should be "([^"]*)"$`, qc.theEvaluationResultShouldBe)
	ctx.Step(`^the score for "([^"]*)" should be ([0-9.]+)$`, qc.theScoreForDimensionShouldBe)
	ctx.Step(`^the effective ideal "([^"]*)" should be ([0-9.]+)$`, qc.theEffectiveIdealShouldBe)
	ctx.Step(`^the score delta should be (-?\d+)$`, qc.theScoreDeltaShouldBe)
	ctx.Step(`^the customer reaction should be "([^"]*)"$`, qc.theCustomerReactionShouldBe)
	ctx.Step(`^the ledger total should be (-?\d+)$`, qc.theLedgerTotalShouldBe)
	ctx.Step(`^the ledger should count (\d+) completed and (\d+) failed$`, qc.theLedgerShouldCount)
	ctx.Step(`^the ledger average quality should be ([0-9.]+)$`, qc.theLedgerAverageQualityShouldBe)
}
