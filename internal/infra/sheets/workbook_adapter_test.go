package sheets

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	domainerrors "nutrisheet/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newTestWorkbook(t *testing.T, sheets ...string) (RangeAdapter, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "nutrition.xlsx")
	adapter, err := NewWorkbookAdapter(path, sheets, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return adapter, path
}

func TestWorkbookAdapter_AppendAndRead(t *testing.T) {
	adapter, _ := newTestWorkbook(t, "Journal")
	ctx := context.Background()

	require.NoError(t, adapter.WriteRange(ctx, "Journal", "A1:C1", [][]any{{"Date", "Repas", "Type"}}))
	require.NoError(t, adapter.AppendRows(ctx, "Journal", [][]any{{"25/07/2025", "Déjeuner", "ingredient"}}))
	require.NoError(t, adapter.AppendRows(ctx, "Journal", [][]any{{"26/07/2025", "Dîner", "recette"}}))

	grid, err := adapter.ReadRange(ctx, "Journal", "A2:G1000")
	require.NoError(t, err)
	require.Len(t, grid, 2)
	assert.Equal(t, []any{"25/07/2025", "Déjeuner", "ingredient"}, grid[0])
	assert.Equal(t, "Dîner", grid[1][1])
}

func TestWorkbookAdapter_BatchWriteCells_PreservesFormulas(t *testing.T) {
	adapter, path := newTestWorkbook(t, "recettes")
	ctx := context.Background()

	require.NoError(t, adapter.WriteRange(ctx, "recettes", "A2:G2", [][]any{{"R001", "Soupe", true, 2.0, "Mixer", "", "=SUM(M2)"}}))

	require.NoError(t, adapter.BatchWriteCells(ctx, "recettes", []CellUpdate{
		{Address: "B2", Value: "Soupe verte"},
		{Address: "I2", Value: "'0042"},
	}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	formula, err := f.GetCellFormula("recettes", "G2")
	require.NoError(t, err)
	assert.Equal(t, "SUM(M2)", formula)

	label, err := f.GetCellValue("recettes", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Soupe verte", label)

	ref, err := f.GetCellValue("recettes", "I2")
	require.NoError(t, err)
	assert.Equal(t, "0042", ref)
}

func TestWorkbookAdapter_TrailingBlanksOmitted(t *testing.T) {
	adapter, _ := newTestWorkbook(t, "Journal")
	ctx := context.Background()

	require.NoError(t, adapter.WriteRange(ctx, "Journal", "A2:C4", [][]any{
		{"a", "b", ""},
		{"", "", ""},
		{"c", "", ""},
	}))

	grid, err := adapter.ReadRange(ctx, "Journal", "A2:G1000")
	require.NoError(t, err)
	require.Len(t, grid, 3)
	assert.Equal(t, []any{"a", "b"}, grid[0])
	assert.Empty(t, grid[1])
	assert.Equal(t, []any{"c"}, grid[2])
}

func TestWorkbookAdapter_BatchRead(t *testing.T) {
	adapter, _ := newTestWorkbook(t, "Journal", "Profil")
	ctx := context.Background()

	require.NoError(t, adapter.WriteRange(ctx, "Profil", "A2:B2", [][]any{{"me@example.com", 1800.0}}))

	grids, err := adapter.BatchRead(ctx, []RangeRequest{
		{Sheet: "Journal", Range: "A2:G1000"},
		{Sheet: "Profil", Range: "A2:E10"},
	})
	require.NoError(t, err)
	require.Len(t, grids, 2)
	assert.Empty(t, grids[0])
	assert.Equal(t, []any{"me@example.com", "1800"}, grids[1][0])
}

func TestWorkbookAdapter_MissingSheet(t *testing.T) {
	adapter, _ := newTestWorkbook(t, "Journal")

	_, err := adapter.ReadRange(context.Background(), "Nope", "A1:B2")
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))

	err = adapter.AppendRows(context.Background(), "Nope", [][]any{{"x"}})
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestWorkbookAdapter_AppendOnFreshSheetStartsAtRow2(t *testing.T) {
	adapter, path := newTestWorkbook(t, "Journal")
	ctx := context.Background()

	require.NoError(t, adapter.AppendRows(ctx, "Journal", [][]any{{"25/07/2025", "Déjeuner", "ingredient"}}))

	grid, err := adapter.ReadRange(ctx, "Journal", "A2:G1000")
	require.NoError(t, err)
	require.Len(t, grid, 1)
	assert.Equal(t, "Déjeuner", grid[0][1])

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Journal", "A1")
	require.NoError(t, err)
	assert.Empty(t, header)
}

func TestWorkbookAdapter_LongSheetNames(t *testing.T) {
	const ingredients = "ingredients et preparations de base"
	adapter, path := newTestWorkbook(t, ingredients, "recettes", "Journal", "Profil", "Menus")
	ctx := context.Background()

	require.NoError(t, adapter.AppendRows(ctx, ingredients, [][]any{{"I001", "Pomme"}}))
	require.NoError(t, adapter.BatchWriteCells(ctx, ingredients, []CellUpdate{{Address: "C2", Value: 52.0}}))

	grid, err := adapter.ReadRange(ctx, ingredients, "A2:C1000")
	require.NoError(t, err)
	require.Len(t, grid, 1)
	assert.Equal(t, []any{"I001", "Pomme", "52"}, grid[0])

	grids, err := adapter.BatchRead(ctx, []RangeRequest{{Sheet: ingredients, Range: "A2:B10"}})
	require.NoError(t, err)
	assert.Equal(t, "Pomme", grids[0][0][1])

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), "ingredients et preparations de")

	// Reopening an existing workbook keeps the mapped tab.
	_, err = NewWorkbookAdapter(path, []string{ingredients}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
}

func TestWorkbookAdapter_SheetNameCollision(t *testing.T) {
	_, err := NewWorkbookAdapter(
		filepath.Join(t.TempDir(), "nutrition.xlsx"),
		[]string{"ingredients et preparations de base", "ingredients et preparations de cuisine"},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "same workbook tab")
}

func TestWorkbookSheetName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "short name unchanged", in: "Journal", want: "Journal"},
		{name: "long name truncated", in: "ingredients et preparations de base", want: "ingredients et preparations de"},
		{name: "forbidden characters", in: "Menus [2025]: semaine/1?", want: "Menus (2025)_ semaine_1_"},
		{name: "accents counted as runes", in: "préparations élaborées à la maison", want: "préparations élaborées à la mai"},
		{name: "quotes trimmed", in: "'Profil'", want: "Profil"},
		{name: "empty", in: "", want: "_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WorkbookSheetName(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, WorkbookSheetName(got))
		})
	}
}
