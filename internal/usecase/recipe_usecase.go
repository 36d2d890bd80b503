package usecase

import (
	"context"

	"nutrisheet/internal/domain/entity"
)

// RecipeLineInput is one ingredient of a recipe. Kcal and Price are
// recomputed when Reference names a known ingredient.
type RecipeLineInput struct {
	Reference string  `json:"reference"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	Kcal      float64 `json:"kcal"`
	Price     float64 `json:"price"`
}

// RecipeInput carries the editable fields of a recipe.
type RecipeInput struct {
	Number       string            `json:"number"` // Generated when empty on creation.
	Label        string            `json:"label"`
	Validated    bool              `json:"validated"`
	Portions     float64           `json:"portions"`
	Instructions string            `json:"instructions"`
	Lines        []RecipeLineInput `json:"lines"`
}

// RecipeUsecase defines the interface for recipe management.
type RecipeUsecase interface {
	// ListRecipes returns every recipe with a label.
	ListRecipes(ctx context.Context) ([]*entity.Recipe, error)

	// NextRecipeNumber proposes the number of the next recipe.
	NextRecipeNumber(ctx context.Context) (string, error)

	// AddRecipe validates, prices and appends a new recipe.
	AddRecipe(ctx context.Context, input *RecipeInput) (*entity.Recipe, error)

	// UpdateRecipe rewrites the recipe stored in row id.
	UpdateRecipe(ctx context.Context, id int, input *RecipeInput) (*entity.Recipe, error)
}
