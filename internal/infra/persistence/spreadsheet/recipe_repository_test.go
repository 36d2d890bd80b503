package spreadsheet

import (
	"context"
	"strconv"
	"testing"

	"nutrisheet/internal/domain/entity"
	"nutrisheet/internal/domain/repository"
	"nutrisheet/internal/infra/sheets"
	"nutrisheet/internal/infra/sheets/schema"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recipeSheet = "recettes"

func recipeRow(number, label string, lines int) []any {
	row := []any{number, label, "TRUE", "4", "Cuire", "=SUM(K2)", "=SUM(M2)", "=SUM(N2)"}
	for i := 1; i <= lines; i++ {
		n := strconv.Itoa(i)
		row = append(row, "000"+n, "Ingrédient "+n, "100", "g", "50", "0,5")
	}

	return row
}

func TestRecipeRepository_List(t *testing.T) {
	mem := newMemAdapter(recipeSheet)
	mem.seed(recipeSheet,
		recipeRow("R001", "Soupe", 3),
		[]any{"R002", "", "FALSE"},
		[]any{"R010", "Salade"},
	)
	repo := NewRecipeRepository(mem, testLayouts(t, schema.OwnerFormula, schema.OwnerFormula), discardLogger())

	recipes, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, recipes, 2)

	soup := recipes[0]
	assert.True(t, soup.Validated)
	assert.InDelta(t, 4, soup.Portions, 1e-9)
	require.Len(t, soup.Lines, 3)
	assert.Equal(t, "0002", soup.Lines[1].Reference)
	assert.InDelta(t, 0.5, soup.Lines[2].Price, 1e-9)

	salad := recipes[1]
	assert.Equal(t, 4, salad.ID)
	assert.InDelta(t, 1, salad.Portions, 1e-9, "missing portions default to one")
	assert.Empty(t, salad.Lines)
}

func TestRecipeRepository_NextNumber(t *testing.T) {
	mem := newMemAdapter(recipeSheet)
	mem.seed(recipeSheet, []any{"R001", "a"}, []any{"R002", "b"}, []any{"R010", "c"})
	repo := NewRecipeRepository(mem, testLayouts(t, schema.OwnerFormula, schema.OwnerFormula), discardLogger())

	number, err := repo.NextNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "R011", number)
}

func TestRecipeRepository_Update_BlanksRemovedLines(t *testing.T) {
	mem := newMemAdapter(recipeSheet)
	mem.seed(recipeSheet, recipeRow("R001", "Soupe", 5))
	repo := NewRecipeRepository(mem, testLayouts(t, schema.OwnerFormula, schema.OwnerFormula), discardLogger())

	recipe := &entity.Recipe{
		Number:   "R001",
		Label:    "Soupe légère",
		Portions: 2,
		Lines: []entity.RecipeLine{
			{Reference: "0001", Name: "Poireau", Quantity: 200, Unit: "g", Kcal: 60, Price: 0.8},
			{Reference: "0009", Name: "Pomme de terre", Quantity: 150, Unit: "g", Kcal: 115, Price: 0.3},
		},
	}
	require.NoError(t, repo.Update(context.Background(), 2, recipe))

	assert.Equal(t, "Soupe légère", mem.cell(recipeSheet, "B2"))
	assert.Equal(t, "Poireau", mem.cell(recipeSheet, "J2"))
	assert.Equal(t, "Pomme de terre", mem.cell(recipeSheet, "P2"))
	assert.Equal(t, "=SUM(M2)", mem.cell(recipeSheet, "G2"), "formula totals untouched")

	// Slots 3 to 15 span columns U through CT.
	for col := sheets.ColumnIndex("U"); col <= sheets.ColumnIndex("CT"); col++ {
		assert.Equal(t, "", mem.cell(recipeSheet, sheets.CellAddress(col, 2)), sheets.ColumnLetter(col))
	}

	recipes, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Len(t, recipes[0].Lines, 2)
}

func TestRecipeRepository_Create_ClientOwnedTotals(t *testing.T) {
	mem := newMemAdapter(recipeSheet)
	repo := NewRecipeRepository(mem, testLayouts(t, schema.OwnerFormula, schema.OwnerClient), discardLogger())

	recipe := &entity.Recipe{Number: "R001", Label: "Omelette", Portions: 1, TotalWeight: 120, TotalKcal: 180, TotalPrice: 0.9,
		Lines: []entity.RecipeLine{{Reference: "0003", Name: "Oeuf", Quantity: 2, Unit: "pièce", Kcal: 180, Price: 0.9}}}
	require.NoError(t, repo.Create(context.Background(), recipe))

	assert.Equal(t, 180.0, mem.cell(recipeSheet, "G2"))
	assert.Equal(t, "0003", mem.cell(recipeSheet, "I2"))
	assert.Equal(t, false, mem.cell(recipeSheet, "C2"))
}

func TestRecipeRepository_FindByNumber_NotFound(t *testing.T) {
	mem := newMemAdapter(recipeSheet)
	repo := NewRecipeRepository(mem, testLayouts(t, schema.OwnerFormula, schema.OwnerFormula), discardLogger())

	_, err := repo.FindByNumber(context.Background(), "R404")
	assert.True(t, errors.Is(err, repository.ErrRecipeNotFound))
}
