// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"nutrisheet/internal/domain/entity"
	domainerrors "nutrisheet/internal/domain/errors"
	"nutrisheet/internal/domain/repository"
	"nutrisheet/internal/usecase"

	"github.com/pkg/errors"
)

// ingredientService implements the IngredientUsecase interface.
type ingredientService struct {
	ingredientRepo repository.IngredientRepository
	menuRepo       repository.MenuRepository
	logger         *slog.Logger
}

// NewIngredientService is the constructor for ingredientService.
func NewIngredientService(
	ingredientRepo repository.IngredientRepository,
	menuRepo repository.MenuRepository,
	logger *slog.Logger,
) usecase.IngredientUsecase {
	return &ingredientService{
		ingredientRepo: ingredientRepo,
		menuRepo:       menuRepo,
		logger:         logger,
	}
}

// ListIngredients returns the whole catalogue.
func (srv *ingredientService) ListIngredients(ctx context.Context) ([]*entity.Ingredient, error) {
	ingredients, err := srv.ingredientRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ingredients")
	}

	return ingredients, nil
}

// SearchIngredients filters the catalogue on label and category.
func (srv *ingredientService) SearchIngredients(ctx context.Context, query string) ([]*entity.Ingredient, error) {
	ingredients, err := srv.ListIngredients(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return ingredients, nil
	}

	matches := make([]*entity.Ingredient, 0)
	for _, ing := range ingredients {
		if strings.Contains(strings.ToLower(ing.Label), query) || strings.Contains(strings.ToLower(ing.Category), query) {
			matches = append(matches, ing)
		}
	}

	return matches, nil
}

// AddIngredient validates the input, assigns a reference when none is given
// and appends the ingredient.
func (srv *ingredientService) AddIngredient(ctx context.Context, input *usecase.IngredientInput) (*entity.Ingredient, error) {
	ing, err := srv.build(ctx, input)
	if err != nil {
		return nil, err
	}

	if ing.Reference != "" {
		if err := srv.checkReferenceFree(ctx, ing.Reference, 0); err != nil {
			return nil, err
		}
	} else {
		ref, err := srv.ingredientRepo.NextReference(ctx)
		if err != nil {
			if !errors.Is(err, domainerrors.ErrGenerationFallback) {
				return nil, errors.Wrap(err, "failed to generate ingredient reference")
			}
			srv.logger.Warn("Ingredient reference generated from clock", slog.String("reference", ref), slog.Any("error", err))
		}
		ing.Reference = ref
	}

	if err := srv.ingredientRepo.Create(ctx, ing); err != nil {
		return nil, errors.Wrap(err, "failed to create ingredient")
	}

	srv.logger.Info("Ingredient added", slog.String("reference", ing.Reference), slog.String("label", ing.Label))

	return ing, nil
}

// UpdateIngredient rewrites an existing ingredient row.
func (srv *ingredientService) UpdateIngredient(ctx context.Context, id int, input *usecase.IngredientInput) (*entity.Ingredient, error) {
	ing, err := srv.build(ctx, input)
	if err != nil {
		return nil, err
	}
	if ing.Reference == "" {
		return nil, validationError("reference is required")
	}
	if err := srv.checkReferenceFree(ctx, ing.Reference, id); err != nil {
		return nil, err
	}

	if err := srv.ingredientRepo.Update(ctx, id, ing); err != nil {
		if errors.Is(err, repository.ErrIngredientNotFound) || errors.Is(err, repository.ErrRowOutOfRange) {
			return nil, notFound(err, "ingredient %d", id)
		}

		return nil, errors.Wrap(err, "failed to update ingredient")
	}

	return ing, nil
}

// checkReferenceFree fails when another row than id already uses reference.
// id is 0 for a new ingredient.
func (srv *ingredientService) checkReferenceFree(ctx context.Context, reference string, id int) error {
	existing, err := srv.ingredientRepo.FindByReference(ctx, reference)
	switch {
	case errors.Is(err, repository.ErrIngredientNotFound):
		return nil
	case err != nil:
		return errors.Wrap(err, "failed to look up ingredient reference")
	case existing.ID != id:
		return validationError("reference %q is already used by row %d", reference, existing.ID)
	}

	return nil
}

func (srv *ingredientService) build(ctx context.Context, input *usecase.IngredientInput) (*entity.Ingredient, error) {
	if input == nil {
		return nil, validationError("ingredient is required")
	}

	ing := &entity.Ingredient{
		Category:      strings.TrimSpace(input.Category),
		Reference:     strings.TrimSpace(input.Reference),
		Label:         strings.TrimSpace(input.Label),
		Notes:         strings.TrimSpace(input.Notes),
		Supplier:      strings.TrimSpace(input.Supplier),
		Packaging:     strings.TrimSpace(input.Packaging),
		Unit:          strings.TrimSpace(input.Unit),
		WeightPerUnit: input.WeightPerUnit,
		UnitPrice:     input.UnitPrice,
		Kcal100g:      input.Kcal100g,
	}

	if ing.Label == "" {
		return nil, validationError("label is required")
	}
	if ing.WeightPerUnit < 0 || ing.UnitPrice < 0 || ing.Kcal100g < 0 {
		return nil, validationError("numeric fields cannot be negative")
	}

	if err := srv.checkMenus(ctx, ing); err != nil {
		return nil, err
	}

	ing.ComputeDerived()

	return ing, nil
}

// checkMenus enforces the drop-down lists. A workbook without a menus sheet
// accepts any value.
func (srv *ingredientService) checkMenus(ctx context.Context, ing *entity.Ingredient) error {
	menus, err := srv.menuRepo.Get(ctx)
	if err != nil {
		if domainerrors.KindOf(err) == domainerrors.KindNotFound {
			srv.logger.Debug("No menus sheet, skipping option checks")

			return nil
		}

		return errors.Wrap(err, "failed to read menu options")
	}

	switch {
	case !entity.Allows(menus.Categories, ing.Category):
		return validationError("unknown category %q", ing.Category)
	case !entity.Allows(menus.Suppliers, ing.Supplier):
		return validationError("unknown supplier %q", ing.Supplier)
	case !entity.Allows(menus.Units, ing.Unit):
		return validationError("unknown unit %q", ing.Unit)
	}

	return nil
}
