package repository

import (
	"context"

	"nutrisheet/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrRecipeNotFound is returned when no recipe row matches.
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeRepository reads and writes the recipes sheet.
type RecipeRepository interface {
	// List returns every recipe with a label, in sheet order.
	List(ctx context.Context) ([]*entity.Recipe, error)

	// FindByNumber returns the recipe with the given number.
	FindByNumber(ctx context.Context, number string) (*entity.Recipe, error)

	// Create appends a new recipe row.
	Create(ctx context.Context, recipe *entity.Recipe) error

	// Update rewrites the application-owned cells of row id, blanking the
	// ingredient slots the recipe no longer uses.
	Update(ctx context.Context, id int, recipe *entity.Recipe) error

	// NextNumber proposes the number for a new recipe, with the same
	// fallback contract as IngredientRepository.NextReference.
	NextNumber(ctx context.Context) (string, error)
}
