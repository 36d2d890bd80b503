package handler

import (
	"log/slog"
	"net/http"

	"nutrisheet/internal/delivery/http/response"
	"nutrisheet/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RecipeHandlerParams holds dependencies for RecipeHandler, injected by Fx.
type RecipeHandlerParams struct {
	fx.In

	RecipeUC usecase.RecipeUsecase
	Logger   *slog.Logger
}

// RecipeHandler serves recipes.
type RecipeHandler struct {
	recipeUC usecase.RecipeUsecase
	logger   *slog.Logger
}

// NewRecipeHandler is the constructor for RecipeHandler
func NewRecipeHandler(params RecipeHandlerParams) *RecipeHandler {
	return &RecipeHandler{
		recipeUC: params.RecipeUC,
		logger:   params.Logger,
	}
}

// RecipeLineRequest is one ingredient slot.
type RecipeLineRequest struct {
	Reference string  `json:"reference"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity" validate:"gte=0"`
	Unit      string  `json:"unit"`
	Kcal      float64 `json:"kcal" validate:"gte=0"`
	Price     float64 `json:"price" validate:"gte=0"`
}

// RecipeRequest is the body of recipe creation and update.
type RecipeRequest struct {
	Number       string              `json:"number"`
	Label        string              `json:"label" validate:"required"`
	Validated    bool                `json:"validated"`
	Portions     float64             `json:"portions" validate:"omitempty,gte=1"`
	Instructions string              `json:"instructions"`
	Lines        []RecipeLineRequest `json:"lines" validate:"max=15,dive"`
}

func (r *RecipeRequest) toInput() *usecase.RecipeInput {
	input := &usecase.RecipeInput{
		Number:       r.Number,
		Label:        r.Label,
		Validated:    r.Validated,
		Portions:     r.Portions,
		Instructions: r.Instructions,
		Lines:        make([]usecase.RecipeLineInput, 0, len(r.Lines)),
	}
	for _, l := range r.Lines {
		input.Lines = append(input.Lines, usecase.RecipeLineInput(l))
	}

	return input
}

// ListRecipes handles GET /api/recipes
func (h *RecipeHandler) ListRecipes(c echo.Context) error {
	recipes, err := h.recipeUC.ListRecipes(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, recipes, "Recipes retrieved successfully")
}

// NextRecipeNumber handles GET /api/recipes/next-number
func (h *RecipeHandler) NextRecipeNumber(c echo.Context) error {
	number, err := h.recipeUC.NextRecipeNumber(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"number": number}, "")
}

// CreateRecipe handles POST /api/recipes
func (h *RecipeHandler) CreateRecipe(c echo.Context) error {
	var req RecipeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	recipe, err := h.recipeUC.AddRecipe(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, recipe, "Recipe created successfully")
}

// UpdateRecipe handles PUT /api/recipes/:id
func (h *RecipeHandler) UpdateRecipe(c echo.Context) error {
	id, err := rowID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RecipeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	recipe, err := h.recipeUC.UpdateRecipe(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, recipe, "Recipe updated successfully")
}
