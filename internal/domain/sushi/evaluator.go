package sushi

import (
	"math"

	"github.com/andrescamacho/sushibar-go/pkg/utils"
)

// Result is the coarse outcome of an evaluation
type Result int

const (
	ResultNone Result = iota
	ResultPerfect
	ResultGood
	ResultFail
)

// Category thresholds. Fixed for every recipe.
const (
	PerfectThreshold = 0.9
	GoodThreshold    = 0.7
)

func (r Result) String() string {
	switch r {
	case ResultPerfect:
		return "PERFECT"
	case ResultGood:
		return "GOOD"
	case ResultFail:
		return "FAIL"
	default:
		return "NONE"
	}
}

// ResultFromScore maps a quality score onto a category
func ResultFromScore(score float64) Result {
	switch {
	case score >= PerfectThreshold:
		return ResultPerfect
	case score >= GoodThreshold:
		return ResultGood
	default:
		return ResultFail
	}
}

// EffectiveIdeal returns the recipe ideal shifted by the request's active offsets
func EffectiveIdeal(recipe *Recipe, request *CustomRequest) ProcessParameters {
	ideal := recipe.Ideal()
	if !request.HasAny() {
		return ideal
	}
	for _, d := range AllDimensions() {
		if request.Has(d) {
			ideal = ideal.With(d, utils.Clamp01(ideal.Get(d)+request.Offset(d)))
		}
	}
	return ideal
}

// DimensionScore scores one dimension. A non-positive tolerance demands an exact match.
func DimensionScore(actual, ideal, tolerance float64) float64 {
	diff := math.Abs(actual - ideal)
	if tolerance <= 0 {
		if diff == 0 {
			return 1
		}
		return 0
	}
	return utils.Clamp01(1 - diff/tolerance)
}

// Evaluate scores actual against the recipe's effective ideal.
// Pure and deterministic; a nil recipe scores (0, Fail).
func Evaluate(recipe *Recipe, actual ProcessParameters, request *CustomRequest) (float64, Result) {
	if recipe == nil {
		return 0, ResultFail
	}

	ideal := EffectiveIdeal(recipe, request)
	tolerance := recipe.Tolerance()
	weights := recipe.Weights()

	totalWeight := weights.Total()
	if totalWeight <= 0 {
		return 0, ResultFromScore(0)
	}

	var weighted float64
	for _, d := range AllDimensions() {
		weighted += DimensionScore(actual.Get(d), ideal.Get(d), tolerance.Get(d)) * weights.Get(d)
	}

	score := utils.Clamp01(weighted / totalWeight)
	return score, ResultFromScore(score)
}
