package spreadsheet

import (
	"context"
	"testing"
	"time"

	"nutrisheet/internal/domain/entity"
	domainerrors "nutrisheet/internal/domain/errors"
	"nutrisheet/internal/domain/repository"
	"nutrisheet/internal/infra/sheets/schema"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ingredientSheet = "ingredients et preparations de base"

func seededIngredients() *memAdapter {
	mem := newMemAdapter(ingredientSheet)
	mem.seed(ingredientSheet,
		[]any{"Fruits", "0001", "Pomme", "bio", "Marché", "vrac", "pièce", "150", "2,50", "52", "=H2*I2/1000"},
		[]any{"", "0042", "  "},
		[]any{"Légumes", "FRU07", "Carotte", "", "", "", "g", "", "1,2", "41"},
	)

	return mem
}

func TestIngredientRepository_List_SkipsRowsWithoutLabel(t *testing.T) {
	repo := NewIngredientRepository(seededIngredients(), testLayouts(t, schema.OwnerFormula, schema.OwnerFormula), discardLogger())

	ingredients, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, ingredients, 2)

	apple := ingredients[0]
	assert.Equal(t, 2, apple.ID)
	assert.Equal(t, "Pomme", apple.Label)
	assert.Equal(t, "pièce", apple.Unit)
	assert.InDelta(t, 150, apple.WeightPerUnit, 1e-9)
	assert.InDelta(t, 2.5, apple.UnitPrice, 1e-9)
	assert.InDelta(t, 52, apple.Kcal100g, 1e-9)

	assert.Equal(t, 4, ingredients[1].ID)
	assert.Equal(t, "FRU07", ingredients[1].Reference)
}

func TestIngredientRepository_FindByReference(t *testing.T) {
	repo := NewIngredientRepository(seededIngredients(), testLayouts(t, schema.OwnerFormula, schema.OwnerFormula), discardLogger())

	ing, err := repo.FindByReference(context.Background(), "fru07")
	require.NoError(t, err)
	assert.Equal(t, "Carotte", ing.Label)

	_, err = repo.FindByReference(context.Background(), "9999")
	assert.True(t, errors.Is(err, repository.ErrIngredientNotFound))
}

func TestIngredientRepository_NextReference(t *testing.T) {
	repo := NewIngredientRepository(seededIngredients(), testLayouts(t, schema.OwnerFormula, schema.OwnerFormula), discardLogger())

	ref, err := repo.NextReference(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0043", ref)
}

func TestIngredientRepository_NextReference_Fallback(t *testing.T) {
	mem := seededIngredients()
	mem.readErr = domainerrors.ErrRemoteUnavailable
	repo := NewIngredientRepository(mem, testLayouts(t, schema.OwnerFormula, schema.OwnerFormula), discardLogger()).(*ingredientRepository)
	repo.now = func() time.Time { return time.UnixMilli(1753440123456) }

	ref, err := repo.NextReference(context.Background())
	assert.Equal(t, "3456", ref)
	assert.True(t, errors.Is(err, domainerrors.ErrGenerationFallback))
	assert.Equal(t, domainerrors.KindGenerationFallback, domainerrors.KindOf(err))
}

func TestIngredientRepository_Create_LeavesFormulaColumnsBlank(t *testing.T) {
	mem := seededIngredients()
	repo := NewIngredientRepository(mem, testLayouts(t, schema.OwnerFormula, schema.OwnerFormula), discardLogger())

	ing := &entity.Ingredient{Category: "Fruits", Reference: "0043", Label: "Poire", WeightPerUnit: 180, UnitPrice: 3, Kcal100g: 57}
	ing.ComputeDerived()
	require.NoError(t, repo.Create(context.Background(), ing))

	assert.Equal(t, "0043", mem.cell(ingredientSheet, "B5"))
	assert.Equal(t, "Poire", mem.cell(ingredientSheet, "C5"))
	assert.Equal(t, 180.0, mem.cell(ingredientSheet, "H5"))
	assert.Equal(t, "", mem.cell(ingredientSheet, "K5"))
	assert.Equal(t, "", mem.cell(ingredientSheet, "M5"))
}

func TestIngredientRepository_Create_ClientOwnedDerived(t *testing.T) {
	mem := seededIngredients()
	repo := NewIngredientRepository(mem, testLayouts(t, schema.OwnerClient, schema.OwnerFormula), discardLogger())

	ing := &entity.Ingredient{Reference: "0043", Label: "Poire", WeightPerUnit: 200, UnitPrice: 3, Kcal100g: 50}
	ing.ComputeDerived()
	require.NoError(t, repo.Create(context.Background(), ing))

	assert.InDelta(t, 0.6, mem.cell(ingredientSheet, "K5"), 1e-9)
	assert.InDelta(t, 100.0, mem.cell(ingredientSheet, "L5"), 1e-9)
}

func TestIngredientRepository_Update_PreservesFormulas(t *testing.T) {
	mem := seededIngredients()
	repo := NewIngredientRepository(mem, testLayouts(t, schema.OwnerFormula, schema.OwnerFormula), discardLogger())

	ing := &entity.Ingredient{Category: "Fruits", Reference: "0001", Label: "Pomme Gala", Unit: "pièce", WeightPerUnit: 160, UnitPrice: 2.5, Kcal100g: 52}
	require.NoError(t, repo.Update(context.Background(), 2, ing))

	assert.Equal(t, 2, ing.ID)
	assert.Equal(t, "Pomme Gala", mem.cell(ingredientSheet, "C2"))
	assert.Equal(t, "=H2*I2/1000", mem.cell(ingredientSheet, "K2"))
	for _, c := range mem.batches[ingredientSheet] {
		assert.NotContains(t, []string{"K2", "L2", "M2"}, c.Address)
	}
}

func TestIngredientRepository_Update_Errors(t *testing.T) {
	repo := NewIngredientRepository(seededIngredients(), testLayouts(t, schema.OwnerFormula, schema.OwnerFormula), discardLogger())
	ing := &entity.Ingredient{Label: "x"}

	err := repo.Update(context.Background(), 3, ing)
	assert.True(t, errors.Is(err, repository.ErrIngredientNotFound), "row 3 has no label")

	err = repo.Update(context.Background(), 1, ing)
	assert.True(t, errors.Is(err, repository.ErrRowOutOfRange), "row 1 holds the headers")
}
