package spreadsheet

import (
	"context"
	"testing"

	"nutrisheet/internal/domain/entity"
	"nutrisheet/internal/domain/repository"
	"nutrisheet/internal/infra/sheets/schema"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const journalSheet = "Journal"

func seededJournal() *memAdapter {
	mem := newMemAdapter(journalSheet)
	mem.seed(journalSheet,
		[]any{"24/07/2025", "Dîner", "recette", "R002", "1", "620"},
		[]any{"25/07/2025", "Petit-déjeuner", "ingredient", "0001", "150", "78"},
		[]any{"", "Déjeuner", "manuel", "Sandwich", "1", "450"},
		[]any{"25/07/2025", "collation", "manual", "Barre", "1", "210", "après sport"},
		[]any{"2025-07-26", "Déjeuner", "recipe", "R001", "2", "800,5"},
	)

	return mem
}

func newTestJournalRepository(t *testing.T, mem *memAdapter) repository.JournalRepository {
	return NewJournalRepository(mem, testLayouts(t, schema.OwnerFormula, schema.OwnerFormula), discardLogger())
}

func TestJournalRepository_List(t *testing.T) {
	repo := newTestJournalRepository(t, seededJournal())
	day := "2025-07-25"
	from := "2025-07-25"

	tests := []struct {
		name       string
		start, end *string
		wantIDs    []int
	}{
		{name: "no bounds", wantIDs: []int{2, 3, 5, 6}},
		{name: "single day", start: &day, end: &day, wantIDs: []int{3, 5}},
		{name: "open end", start: &from, wantIDs: []int{3, 5, 6}},
		{name: "open start", end: &day, wantIDs: []int{2, 3, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := repo.List(context.Background(), tt.start, tt.end)
			require.NoError(t, err)

			ids := make([]int, 0, len(entries))
			for _, e := range entries {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestJournalRepository_List_DecodesEntries(t *testing.T) {
	repo := newTestJournalRepository(t, seededJournal())

	entries, err := repo.List(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	snack := entries[2]
	assert.Equal(t, "2025-07-25", snack.Date)
	assert.Equal(t, "25/07/2025", snack.RawDate)
	assert.Equal(t, entity.EntryManual, snack.Kind)
	assert.Equal(t, "après sport", snack.Note)

	iso := entries[3]
	assert.Equal(t, "2025-07-26", iso.Date)
	assert.Equal(t, entity.EntryRecipe, iso.Kind)
	assert.InDelta(t, 800.5, iso.Kcal, 1e-9)
}

func TestJournalRepository_Create(t *testing.T) {
	mem := seededJournal()
	repo := newTestJournalRepository(t, mem)

	err := repo.Create(context.Background(), &entity.JournalEntry{
		Date: "2025-07-27", Meal: "Déjeuner", Kind: entity.EntryIngredient, Reference: "0042", Quantity: 120, Kcal: 96,
	})
	require.NoError(t, err)

	assert.Equal(t, "27/07/2025", mem.cell(journalSheet, "A7"))
	assert.Equal(t, "ingredient", mem.cell(journalSheet, "C7"))
	assert.Equal(t, "0042", mem.cell(journalSheet, "D7"))
	assert.Equal(t, 96.0, mem.cell(journalSheet, "F7"))
}

func TestJournalRepository_Delete_BlanksRow(t *testing.T) {
	mem := seededJournal()
	repo := newTestJournalRepository(t, mem)

	require.NoError(t, repo.Delete(context.Background(), 3))

	for _, col := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		assert.Equal(t, "", mem.cell(journalSheet, col+"3"))
	}
	assert.Equal(t, "collation", mem.cell(journalSheet, "B5"), "rows below are not shifted")

	entries, err := repo.List(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestJournalRepository_Delete_Errors(t *testing.T) {
	repo := newTestJournalRepository(t, seededJournal())

	err := repo.Delete(context.Background(), 40)
	assert.True(t, errors.Is(err, repository.ErrJournalEntryNotFound))

	err = repo.Delete(context.Background(), 1001)
	assert.True(t, errors.Is(err, repository.ErrRowOutOfRange))
}
