// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"nutrisheet/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for sheet persistence.
var (
	// ErrIngredientNotFound is returned when no ingredient row matches.
	ErrIngredientNotFound = errors.New("ingredient not found")
	// ErrRowOutOfRange is returned when an id does not address a data row.
	ErrRowOutOfRange = errors.New("row outside the data range")
)

// IngredientRepository reads and writes the ingredients sheet.
type IngredientRepository interface {
	// List returns every ingredient with a label, in sheet order.
	List(ctx context.Context) ([]*entity.Ingredient, error)

	// FindByReference returns the ingredient with the given reference.
	FindByReference(ctx context.Context, reference string) (*entity.Ingredient, error)

	// Create appends a new ingredient row.
	Create(ctx context.Context, ingredient *entity.Ingredient) error

	// Update rewrites the application-owned cells of row id.
	Update(ctx context.Context, id int, ingredient *entity.Ingredient) error

	// NextReference proposes the reference for a new ingredient. When the
	// reference column cannot be read a clock-based value is returned along
	// with an error wrapping domainerrors.ErrGenerationFallback.
	NextReference(ctx context.Context) (string, error)
}
