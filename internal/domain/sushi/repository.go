package sushi

import "context"

// RecipeRepository stores the recipe catalog
type RecipeRepository interface {
	Save(ctx context.Context, recipe *Recipe) error
	FindByName(ctx context.Context, name string) (*Recipe, error)
	FindAll(ctx context.Context) ([]*Recipe, error)
	Delete(ctx context.Context, name string) error
}

// LoadCatalog builds a catalog from everything in repo
func LoadCatalog(ctx context.Context, repo RecipeRepository) (*Catalog, error) {
	recipes, err := repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return NewCatalog(recipes...)
}
