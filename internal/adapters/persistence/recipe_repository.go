package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
)

// GormRecipeRepository implements sushi.RecipeRepository using GORM
type GormRecipeRepository struct {
	db *gorm.DB
}

// NewGormRecipeRepository creates a new GORM recipe repository
func NewGormRecipeRepository(db *gorm.DB) *GormRecipeRepository {
	return &GormRecipeRepository{db: db}
}

// Save inserts or replaces a recipe by name
func (r *GormRecipeRepository) Save(ctx context.Context, recipe *sushi.Recipe) error {
	model := recipeToModel(recipe)
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		UpdateAll: true,
	}).Create(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save recipe %s: %w", recipe.Name(), result.Error)
	}
	return nil
}

// FindByName retrieves a recipe by exact name
func (r *GormRecipeRepository) FindByName(ctx context.Context, name string) (*sushi.Recipe, error) {
	var model RecipeModel
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("recipe", name)
		}
		return nil, fmt.Errorf("failed to find recipe: %w", result.Error)
	}
	return modelToRecipe(&model)
}

// FindAll retrieves every recipe ordered by name
func (r *GormRecipeRepository) FindAll(ctx context.Context) ([]*sushi.Recipe, error) {
	var models []RecipeModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	recipes := make([]*sushi.Recipe, 0, len(models))
	for i := range models {
		recipe, err := modelToRecipe(&models[i])
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

// Delete removes a recipe by name
func (r *GormRecipeRepository) Delete(ctx context.Context, name string) error {
	result := r.db.WithContext(ctx).Where("name = ?", name).Delete(&RecipeModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete recipe: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("recipe", name)
	}
	return nil
}

func recipeToModel(recipe *sushi.Recipe) *RecipeModel {
	ideal, tol, w := recipe.Ideal(), recipe.Tolerance(), recipe.Weights()
	return &RecipeModel{
		Name:            recipe.Name(),
		SushiType:       string(recipe.SushiType()),
		BaseScore:       recipe.BaseScore(),
		IdealFish:       ideal.FishThickness,
		IdealRice:       ideal.RiceAmount,
		IdealPress:      ideal.PressDuration,
		IdealWasabi:     ideal.WasabiAmount,
		ToleranceFish:   tol.FishThickness,
		ToleranceRice:   tol.RiceAmount,
		TolerancePress:  tol.PressDuration,
		ToleranceWasabi: tol.WasabiAmount,
		WeightFish:      w.FishThickness,
		WeightRice:      w.RiceAmount,
		WeightPress:     w.PressDuration,
		WeightWasabi:    w.WasabiAmount,
	}
}

func modelToRecipe(model *RecipeModel) (*sushi.Recipe, error) {
	sushiType, err := sushi.ParseSushiType(model.SushiType)
	if err != nil {
		return nil, fmt.Errorf("recipe %s: %w", model.Name, err)
	}
	return sushi.NewRecipe(
		model.Name,
		sushiType,
		sushi.ProcessParameters{
			FishThickness: model.IdealFish,
			RiceAmount:    model.IdealRice,
			PressDuration: model.IdealPress,
			WasabiAmount:  model.IdealWasabi,
		},
		sushi.ProcessParameters{
			FishThickness: model.ToleranceFish,
			RiceAmount:    model.ToleranceRice,
			PressDuration: model.TolerancePress,
			WasabiAmount:  model.ToleranceWasabi,
		},
		sushi.Weights{
			FishThickness: model.WeightFish,
			RiceAmount:    model.WeightRice,
			PressDuration: model.WeightPress,
			WasabiAmount:  model.WeightWasabi,
		},
		model.BaseScore,
	)
}
