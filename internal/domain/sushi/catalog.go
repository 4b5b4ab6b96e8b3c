package sushi

import (
	"strings"

	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
)

// Catalog is the static set of recipes a service run can draw orders from
type Catalog struct {
	recipes []*Recipe
}

// NewCatalog builds a catalog. Names must be unique ignoring case.
func NewCatalog(recipes ...*Recipe) (*Catalog, error) {
	seen := make(map[string]bool, len(recipes))
	kept := make([]*Recipe, 0, len(recipes))
	for _, r := range recipes {
		if r == nil {
			continue
		}
		key := strings.ToLower(r.Name())
		if seen[key] {
			return nil, shared.NewValidationError("name", "duplicate recipe "+r.Name())
		}
		seen[key] = true
		kept = append(kept, r)
	}
	return &Catalog{recipes: kept}, nil
}

// All returns a copy of the catalog's recipes
func (c *Catalog) All() []*Recipe {
	out := make([]*Recipe, len(c.recipes))
	copy(out, c.recipes)
	return out
}

func (c *Catalog) Len() int {
	return len(c.recipes)
}

// FindByName matches the recipe name first, then its sushi type, ignoring case
func (c *Catalog) FindByName(key string) (*Recipe, bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, false
	}
	for _, r := range c.recipes {
		if strings.EqualFold(r.Name(), key) {
			return r, true
		}
	}
	for _, r := range c.recipes {
		if r.Matches(key) {
			return r, true
		}
	}
	return nil, false
}

// Random picks a recipe uniformly. Returns false for an empty catalog.
func (c *Catalog) Random(rng shared.RandomSource) (*Recipe, bool) {
	if len(c.recipes) == 0 {
		return nil, false
	}
	return c.recipes[rng.IntN(len(c.recipes))], true
}

// DefaultCatalog returns the built-in menu
func DefaultCatalog() *Catalog {
	even := UniformWeights(1)
	catalog, _ := NewCatalog(
		MustNewRecipe("Salmon Nigiri", SushiTypeSalmon,
			ProcessParameters{FishThickness: 0.5, RiceAmount: 0.5, PressDuration: 0.5, WasabiAmount: 0.3},
			UniformParameters(0.2), even, 100),
		MustNewRecipe("Tuna Nigiri", SushiTypeTuna,
			ProcessParameters{FishThickness: 0.6, RiceAmount: 0.5, PressDuration: 0.6, WasabiAmount: 0.4},
			UniformParameters(0.2), Weights{FishThickness: 2, RiceAmount: 1, PressDuration: 1, WasabiAmount: 1}, 120),
		MustNewRecipe("Shrimp Nigiri", SushiTypeShrimp,
			ProcessParameters{FishThickness: 0.4, RiceAmount: 0.5, PressDuration: 0.4, WasabiAmount: 0.2},
			UniformParameters(0.25), even, 90),
		MustNewRecipe("Eel Nigiri", SushiTypeEel,
			ProcessParameters{FishThickness: 0.5, RiceAmount: 0.6, PressDuration: 0.7, WasabiAmount: 0.1},
			ProcessParameters{FishThickness: 0.2, RiceAmount: 0.2, PressDuration: 0.15, WasabiAmount: 0.3},
			Weights{FishThickness: 1, RiceAmount: 1, PressDuration: 2, WasabiAmount: 0.5}, 150),
		MustNewRecipe("Tamago", SushiTypeEgg,
			ProcessParameters{FishThickness: 0.7, RiceAmount: 0.4, PressDuration: 0.5, WasabiAmount: 0},
			UniformParameters(0.25), Weights{FishThickness: 1, RiceAmount: 1, PressDuration: 1, WasabiAmount: 0.5}, 80),
	)
	return catalog
}
