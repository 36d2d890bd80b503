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

// recipeService implements the RecipeUsecase interface.
type recipeService struct {
	recipeRepo     repository.RecipeRepository
	ingredientRepo repository.IngredientRepository
	logger         *slog.Logger
}

// NewRecipeService is the constructor for recipeService.
func NewRecipeService(
	recipeRepo repository.RecipeRepository,
	ingredientRepo repository.IngredientRepository,
	logger *slog.Logger,
) usecase.RecipeUsecase {
	return &recipeService{
		recipeRepo:     recipeRepo,
		ingredientRepo: ingredientRepo,
		logger:         logger,
	}
}

// ListRecipes returns every recipe.
func (srv *recipeService) ListRecipes(ctx context.Context) ([]*entity.Recipe, error) {
	recipes, err := srv.recipeRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	return recipes, nil
}

// NextRecipeNumber proposes a number, falling back to a clock value when
// the sheet cannot be scanned.
func (srv *recipeService) NextRecipeNumber(ctx context.Context) (string, error) {
	number, err := srv.recipeRepo.NextNumber(ctx)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrGenerationFallback) {
			return "", errors.Wrap(err, "failed to generate recipe number")
		}
		srv.logger.Warn("Recipe number generated from clock", slog.String("number", number), slog.Any("error", err))
	}

	return number, nil
}

// AddRecipe prices the lines against the current ingredient list and
// appends the recipe.
func (srv *recipeService) AddRecipe(ctx context.Context, input *usecase.RecipeInput) (*entity.Recipe, error) {
	recipe, err := srv.build(ctx, input)
	if err != nil {
		return nil, err
	}

	if recipe.Number != "" {
		if err := srv.checkNumberFree(ctx, recipe.Number, 0); err != nil {
			return nil, err
		}
	} else if recipe.Number, err = srv.NextRecipeNumber(ctx); err != nil {
		return nil, err
	}

	if err := srv.recipeRepo.Create(ctx, recipe); err != nil {
		return nil, errors.Wrap(err, "failed to create recipe")
	}

	srv.logger.Info("Recipe added", slog.String("number", recipe.Number), slog.Int("lines", len(recipe.Lines)))

	return recipe, nil
}

// UpdateRecipe rewrites an existing recipe; slots it no longer uses are cleared.
func (srv *recipeService) UpdateRecipe(ctx context.Context, id int, input *usecase.RecipeInput) (*entity.Recipe, error) {
	recipe, err := srv.build(ctx, input)
	if err != nil {
		return nil, err
	}
	if recipe.Number == "" {
		return nil, validationError("number is required")
	}
	if err := srv.checkNumberFree(ctx, recipe.Number, id); err != nil {
		return nil, err
	}

	if err := srv.recipeRepo.Update(ctx, id, recipe); err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) || errors.Is(err, repository.ErrRowOutOfRange) {
			return nil, notFound(err, "recipe %d", id)
		}

		return nil, errors.Wrap(err, "failed to update recipe")
	}

	return recipe, nil
}

// checkNumberFree fails when another row than id already uses number.
func (srv *recipeService) checkNumberFree(ctx context.Context, number string, id int) error {
	existing, err := srv.recipeRepo.FindByNumber(ctx, number)
	switch {
	case errors.Is(err, repository.ErrRecipeNotFound):
		return nil
	case err != nil:
		return errors.Wrap(err, "failed to look up recipe number")
	case existing.ID != id:
		return validationError("number %q is already used by row %d", number, existing.ID)
	}

	return nil
}

func (srv *recipeService) build(ctx context.Context, input *usecase.RecipeInput) (*entity.Recipe, error) {
	if input == nil {
		return nil, validationError("recipe is required")
	}

	recipe := &entity.Recipe{
		Number:       strings.TrimSpace(input.Number),
		Label:        strings.TrimSpace(input.Label),
		Validated:    input.Validated,
		Portions:     input.Portions,
		Instructions: strings.TrimSpace(input.Instructions),
	}

	switch {
	case recipe.Label == "":
		return nil, validationError("label is required")
	case recipe.Portions == 0:
		recipe.Portions = 1
	case recipe.Portions < 1:
		return nil, validationError("portions must be at least 1")
	}
	if len(input.Lines) > entity.MaxRecipeLines {
		return nil, validationError("a recipe holds at most %d ingredients", entity.MaxRecipeLines)
	}

	if len(input.Lines) == 0 {
		recipe.Lines = []entity.RecipeLine{}

		return recipe, nil
	}

	catalogue, err := srv.ingredientRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read ingredients for pricing")
	}
	byRef := make(map[string]*entity.Ingredient, len(catalogue))
	for _, ing := range catalogue {
		byRef[strings.ToLower(ing.Reference)] = ing
	}

	for i, in := range input.Lines {
		line, grams, err := priceLine(byRef, in)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}
		recipe.Lines = append(recipe.Lines, line)
		recipe.TotalWeight += grams
		recipe.TotalKcal += line.Kcal
		recipe.TotalPrice += line.Price
	}

	recipe.TotalWeight = roundTo(recipe.TotalWeight, 1)
	recipe.TotalKcal = roundTo(recipe.TotalKcal, 1)
	recipe.TotalPrice = roundTo(recipe.TotalPrice, 2)

	return recipe, nil
}

// priceLine resolves a line against the catalogue. Lines naming an unknown
// reference keep the kcal and price given by the caller.
func priceLine(byRef map[string]*entity.Ingredient, in usecase.RecipeLineInput) (entity.RecipeLine, float64, error) {
	line := entity.RecipeLine{
		Reference: strings.TrimSpace(in.Reference),
		Name:      strings.TrimSpace(in.Name),
		Quantity:  in.Quantity,
		Unit:      strings.TrimSpace(in.Unit),
		Kcal:      in.Kcal,
		Price:     in.Price,
	}
	if line.Reference == "" {
		return line, 0, validationError("ingredient reference is required")
	}
	if line.Quantity < 0 {
		return line, 0, validationError("quantity cannot be negative")
	}

	ing, ok := byRef[strings.ToLower(line.Reference)]
	if !ok {
		if line.Name == "" {
			return line, 0, validationError("unknown ingredient %q needs a name", line.Reference)
		}

		return line, (&entity.Ingredient{}).Grams(line.Quantity, line.Unit), nil
	}

	if line.Name == "" {
		line.Name = ing.Label
	}
	if line.Unit == "" {
		line.Unit = "g"
	}
	line.Kcal = roundTo(ing.KcalFor(line.Quantity, line.Unit), 1)
	line.Price = roundTo(ing.PriceFor(line.Quantity, line.Unit), 2)

	return line, ing.Grams(line.Quantity, line.Unit), nil
}
