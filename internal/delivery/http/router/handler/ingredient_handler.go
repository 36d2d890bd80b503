package handler

import (
	"log/slog"
	"net/http"

	"nutrisheet/internal/delivery/http/response"
	"nutrisheet/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// IngredientHandlerParams holds dependencies for IngredientHandler, injected by Fx.
type IngredientHandlerParams struct {
	fx.In

	IngredientUC usecase.IngredientUsecase
	Logger       *slog.Logger
}

// IngredientHandler serves the ingredient catalogue.
type IngredientHandler struct {
	ingredientUC usecase.IngredientUsecase
	logger       *slog.Logger
}

// NewIngredientHandler is the constructor for IngredientHandler
func NewIngredientHandler(params IngredientHandlerParams) *IngredientHandler {
	return &IngredientHandler{
		ingredientUC: params.IngredientUC,
		logger:       params.Logger,
	}
}

// IngredientRequest is the body of ingredient creation and update.
type IngredientRequest struct {
	Category      string  `json:"category"`
	Reference     string  `json:"reference"`
	Label         string  `json:"label" validate:"required"`
	Notes         string  `json:"notes"`
	Supplier      string  `json:"supplier"`
	Packaging     string  `json:"packaging"`
	Unit          string  `json:"unit"`
	WeightPerUnit float64 `json:"weight_per_unit" validate:"gte=0"`
	UnitPrice     float64 `json:"unit_price" validate:"gte=0"`
	Kcal100g      float64 `json:"kcal_100g" validate:"gte=0"`
}

func (r *IngredientRequest) toInput() *usecase.IngredientInput {
	return &usecase.IngredientInput{
		Category:      r.Category,
		Reference:     r.Reference,
		Label:         r.Label,
		Notes:         r.Notes,
		Supplier:      r.Supplier,
		Packaging:     r.Packaging,
		Unit:          r.Unit,
		WeightPerUnit: r.WeightPerUnit,
		UnitPrice:     r.UnitPrice,
		Kcal100g:      r.Kcal100g,
	}
}

// ListIngredients handles GET /api/ingredients
func (h *IngredientHandler) ListIngredients(c echo.Context) error {
	ingredients, err := h.ingredientUC.ListIngredients(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ingredients, "Ingredients retrieved successfully")
}

// SearchIngredients handles GET /api/ingredients/search?q=
func (h *IngredientHandler) SearchIngredients(c echo.Context) error {
	ingredients, err := h.ingredientUC.SearchIngredients(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ingredients, "")
}

// CreateIngredient handles POST /api/ingredients
func (h *IngredientHandler) CreateIngredient(c echo.Context) error {
	var req IngredientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	ingredient, err := h.ingredientUC.AddIngredient(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, ingredient, "Ingredient created successfully")
}

// UpdateIngredient handles PUT /api/ingredients/:id
func (h *IngredientHandler) UpdateIngredient(c echo.Context) error {
	id, err := rowID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req IngredientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	ingredient, err := h.ingredientUC.UpdateIngredient(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ingredient, "Ingredient updated successfully")
}
