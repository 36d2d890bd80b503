package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"nutrisheet/internal/domain/entity"
	domainerrors "nutrisheet/internal/domain/errors"
	"nutrisheet/internal/domain/repository"
	mockRepo "nutrisheet/internal/mocks/repository"
	"nutrisheet/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recipeServiceFixtures struct {
	service        usecase.RecipeUsecase
	recipeRepo     *mockRepo.MockRecipeRepository
	ingredientRepo *mockRepo.MockIngredientRepository
}

func createTestRecipeService(t *testing.T) recipeServiceFixtures {
	recipeRepo := mockRepo.NewMockRecipeRepository(t)
	ingredientRepo := mockRepo.NewMockIngredientRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return recipeServiceFixtures{
		service:        NewRecipeService(recipeRepo, ingredientRepo, logger),
		recipeRepo:     recipeRepo,
		ingredientRepo: ingredientRepo,
	}
}

func testCatalogue() []*entity.Ingredient {
	return []*entity.Ingredient{
		{Reference: "0001", Label: "Pomme", Unit: "pièce", WeightPerUnit: 150, UnitPrice: 2.5, Kcal100g: 52},
		{Reference: "0002", Label: "Farine", Unit: "kg", WeightPerUnit: 1000, UnitPrice: 1.2, Kcal100g: 364},
	}
}

func TestRecipeService_AddRecipe_PricesLines(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()

	fx.ingredientRepo.EXPECT().List(ctx).Return(testCatalogue(), nil)
	fx.recipeRepo.EXPECT().NextNumber(ctx).Return("R011", nil)
	fx.recipeRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Recipe")).Return(nil)

	recipe, err := fx.service.AddRecipe(ctx, &usecase.RecipeInput{
		Label: "Tarte aux pommes",
		Lines: []usecase.RecipeLineInput{
			{Reference: "0001", Quantity: 2, Unit: "pièce"},
			{Reference: "0002", Quantity: 250, Unit: "g"},
			{Reference: "X1", Name: "Sel", Quantity: 5, Unit: "g", Price: 0.01},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "R011", recipe.Number)
	assert.InDelta(t, 1, recipe.Portions, 1e-9)
	require.Len(t, recipe.Lines, 3)

	apple := recipe.Lines[0]
	assert.Equal(t, "Pomme", apple.Name, "name taken from the ingredient")
	assert.InDelta(t, 156, apple.Kcal, 1e-9)
	assert.InDelta(t, 0.75, apple.Price, 1e-9)

	flour := recipe.Lines[1]
	assert.InDelta(t, 910, flour.Kcal, 1e-9)
	assert.InDelta(t, 0.3, flour.Price, 1e-9)

	assert.InDelta(t, 0.01, recipe.Lines[2].Price, 1e-9)
	assert.InDelta(t, 555, recipe.TotalWeight, 1e-9)
	assert.InDelta(t, 1066, recipe.TotalKcal, 1e-9)
	assert.InDelta(t, 1.06, recipe.TotalPrice, 1e-9)
}

func TestRecipeService_AddRecipe_WithoutLinesSkipsCatalogue(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()

	fx.recipeRepo.EXPECT().FindByNumber(ctx, "R020").Return(nil, errors.Wrap(repository.ErrRecipeNotFound, "number R020"))
	fx.recipeRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Recipe")).Return(nil)

	recipe, err := fx.service.AddRecipe(ctx, &usecase.RecipeInput{Number: "R020", Label: "Eau citronnée", Portions: 2})

	require.NoError(t, err)
	assert.Empty(t, recipe.Lines)
	fx.ingredientRepo.AssertNotCalled(t, "List", mock.Anything)
}

func TestRecipeService_AddRecipe_Validation(t *testing.T) {
	tooMany := make([]usecase.RecipeLineInput, entity.MaxRecipeLines+1)

	tests := []struct {
		name     string
		input    *usecase.RecipeInput
		readsCat bool
	}{
		{name: "missing label", input: &usecase.RecipeInput{}},
		{name: "negative portions", input: &usecase.RecipeInput{Label: "x", Portions: -2}},
		{name: "too many lines", input: &usecase.RecipeInput{Label: "x", Lines: tooMany}},
		{name: "line without reference", input: &usecase.RecipeInput{Label: "x", Lines: []usecase.RecipeLineInput{{Name: "Sel"}}}, readsCat: true},
		{name: "unknown ingredient without name", input: &usecase.RecipeInput{Label: "x", Lines: []usecase.RecipeLineInput{{Reference: "9999"}}}, readsCat: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRecipeService(t)
			ctx := context.Background()
			if tt.readsCat {
				fx.ingredientRepo.EXPECT().List(ctx).Return(testCatalogue(), nil)
			}

			_, err := fx.service.AddRecipe(ctx, tt.input)

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "got %v", err)
		})
	}
}

func TestRecipeService_NextRecipeNumber_Fallback(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()

	fx.recipeRepo.EXPECT().NextNumber(ctx).Return("R456", errors.Wrap(domainerrors.ErrGenerationFallback, "recipe number"))

	number, err := fx.service.NextRecipeNumber(ctx)

	require.NoError(t, err)
	assert.Equal(t, "R456", number)
}

func TestRecipeService_UpdateRecipe_NotFound(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()

	fx.recipeRepo.EXPECT().FindByNumber(ctx, "R003").Return(nil, errors.Wrap(repository.ErrRecipeNotFound, "number R003"))
	fx.recipeRepo.EXPECT().Update(ctx, 7, mock.AnythingOfType("*entity.Recipe")).
		Return(errors.Wrap(repository.ErrRecipeNotFound, "row 7"))

	_, err := fx.service.UpdateRecipe(ctx, 7, &usecase.RecipeInput{Number: "R003", Label: "Soupe"})

	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestRecipeService_UpdateRecipe_KeepsFewerLines(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()

	fx.ingredientRepo.EXPECT().List(ctx).Return(testCatalogue(), nil)
	fx.recipeRepo.EXPECT().FindByNumber(ctx, "R003").Return(&entity.Recipe{ID: 4, Number: "R003"}, nil)
	fx.recipeRepo.EXPECT().
		Update(ctx, 4, mock.MatchedBy(func(r *entity.Recipe) bool { return len(r.Lines) == 2 })).
		Return(nil)

	_, err := fx.service.UpdateRecipe(ctx, 4, &usecase.RecipeInput{
		Number: "R003",
		Label:  "Compote",
		Lines: []usecase.RecipeLineInput{
			{Reference: "0001", Quantity: 4, Unit: "pièce"},
			{Reference: "0002", Quantity: 10},
		},
	})

	require.NoError(t, err)
}

func TestRecipeService_DuplicateNumber(t *testing.T) {
	taken := &entity.Recipe{ID: 6, Number: "r003", Label: "Soupe"}

	tests := []struct {
		name string
		call func(srv usecase.RecipeUsecase, ctx context.Context) error
	}{
		{
			name: "add",
			call: func(srv usecase.RecipeUsecase, ctx context.Context) error {
				_, err := srv.AddRecipe(ctx, &usecase.RecipeInput{Number: "R003", Label: "Compote"})

				return err
			},
		},
		{
			name: "update another row",
			call: func(srv usecase.RecipeUsecase, ctx context.Context) error {
				_, err := srv.UpdateRecipe(ctx, 2, &usecase.RecipeInput{Number: "R003", Label: "Compote"})

				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRecipeService(t)
			ctx := context.Background()

			fx.recipeRepo.EXPECT().FindByNumber(ctx, "R003").Return(taken, nil)

			err := tt.call(fx.service, ctx)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "got %v", err)
			assert.Contains(t, err.Error(), "row 6")
			fx.recipeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			fx.recipeRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
