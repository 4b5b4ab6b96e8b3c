package sushi

import (
	"math"
	"strings"

	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
)

// Weights holds the non-negative importance of each dimension during evaluation
type Weights struct {
	FishThickness float64
	RiceAmount    float64
	PressDuration float64
	WasabiAmount  float64
}

// UniformWeights returns weights with every dimension set to w
func UniformWeights(w float64) Weights {
	return Weights{FishThickness: w, RiceAmount: w, PressDuration: w, WasabiAmount: w}
}

// Get returns the weight of one dimension
func (w Weights) Get(d Dimension) float64 {
	return ProcessParameters(w).Get(d)
}

// Total returns the sum of all four weights
func (w Weights) Total() float64 {
	return w.FishThickness + w.RiceAmount + w.PressDuration + w.WasabiAmount
}

// Recipe is an immutable catalog entry
type Recipe struct {
	name      string
	sushiType SushiType
	ideal     ProcessParameters
	tolerance ProcessParameters
	weights   Weights
	baseScore int
}

// NewRecipe creates a recipe, rejecting negative weights and tolerances and
// any non-finite ideal, tolerance or weight
func NewRecipe(
	name string,
	sushiType SushiType,
	ideal ProcessParameters,
	tolerance ProcessParameters,
	weights Weights,
	baseScore int,
) (*Recipe, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("name", "recipe name cannot be empty")
	}
	if !sushiType.IsValid() {
		return nil, shared.NewValidationError("sushi_type", "unknown sushi type "+string(sushiType))
	}

	for _, d := range AllDimensions() {
		if !isFinite(ideal.Get(d)) {
			return nil, shared.NewValidationError("ideal."+d.String(), "ideal must be a finite number")
		}
		if !isFinite(tolerance.Get(d)) {
			return nil, shared.NewValidationError("tolerance."+d.String(), "tolerance must be a finite number")
		}
		if !isFinite(weights.Get(d)) {
			return nil, shared.NewValidationError("weights."+d.String(), "weight must be a finite number")
		}
		if weights.Get(d) < 0 {
			return nil, shared.NewValidationError("weights."+d.String(), "weight cannot be negative")
		}
		if tolerance.Get(d) < 0 {
			return nil, shared.NewValidationError("tolerance."+d.String(), "tolerance cannot be negative")
		}
	}

	return &Recipe{
		name:      name,
		sushiType: sushiType,
		ideal:     ideal,
		tolerance: tolerance,
		weights:   weights,
		baseScore: baseScore,
	}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// MustNewRecipe panics on invalid input. Use only for built-in catalog data.
func MustNewRecipe(name string, sushiType SushiType, ideal, tolerance ProcessParameters, weights Weights, baseScore int) *Recipe {
	r, err := NewRecipe(name, sushiType, ideal, tolerance, weights, baseScore)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Recipe) Name() string { return r.name }
func (r *Recipe) SushiType() SushiType { return r.sushiType }
func (r *Recipe) Ideal() ProcessParameters { return r.ideal }
func (r *Recipe) Tolerance() ProcessParameters { return r.tolerance }
func (r *Recipe) Weights() Weights { return r.weights }
func (r *Recipe) BaseScore() int { return r.baseScore }

// SameAs reports whether two recipes are the same catalog entry
func (r *Recipe) SameAs(other *Recipe) bool {
	if r == nil || other == nil {
		return false
	}
	return r == other || strings.EqualFold(r.name, other.name)
}

// Matches reports whether key names this recipe or its sushi type, ignoring case
func (r *Recipe) Matches(key string) bool {
	key = strings.TrimSpace(key)
	return strings.EqualFold(r.name, key) || strings.EqualFold(string(r.sushiType), key)
}

func (r *Recipe) String() string {
	return r.name
}
