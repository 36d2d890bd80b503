package usecase

import (
	"context"

	"nutrisheet/internal/domain/entity"
)

// IngredientInput carries the editable fields of an ingredient.
type IngredientInput struct {
	Category      string  `json:"category"`
	Reference     string  `json:"reference"` // Generated when empty on creation.
	Label         string  `json:"label"`
	Notes         string  `json:"notes"`
	Supplier      string  `json:"supplier"`
	Packaging     string  `json:"packaging"`
	Unit          string  `json:"unit"`
	WeightPerUnit float64 `json:"weight_per_unit"`
	UnitPrice     float64 `json:"unit_price"`
	Kcal100g      float64 `json:"kcal_100g"`
}

// IngredientUsecase defines the interface for the ingredient catalogue.
type IngredientUsecase interface {
	// ListIngredients returns every ingredient with a label.
	ListIngredients(ctx context.Context) ([]*entity.Ingredient, error)

	// SearchIngredients matches query against label and category, ignoring case.
	SearchIngredients(ctx context.Context, query string) ([]*entity.Ingredient, error)

	// AddIngredient validates and appends a new ingredient.
	AddIngredient(ctx context.Context, input *IngredientInput) (*entity.Ingredient, error)

	// UpdateIngredient rewrites the ingredient stored in row id.
	UpdateIngredient(ctx context.Context, id int, input *IngredientInput) (*entity.Ingredient, error)
}
