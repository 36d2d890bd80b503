package spreadsheet

import (
	"context"
	"testing"

	"nutrisheet/internal/domain/entity"
	domainerrors "nutrisheet/internal/domain/errors"
	"nutrisheet/internal/domain/repository"
	"nutrisheet/internal/infra/sheets/schema"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profileSheet = "Profil"

func newTestProfileRepository(t *testing.T, mem *memAdapter) repository.ProfileRepository {
	return NewProfileRepository(mem, testLayouts(t, schema.OwnerFormula, schema.OwnerFormula), discardLogger())
}

func TestProfileRepository_FindByEmail(t *testing.T) {
	mem := newMemAdapter(profileSheet)
	mem.seed(profileSheet,
		[]any{"alice@example.com", "1800", "01/07/2025", "72,5", "68"},
		[]any{"bob@example.com", "", "2025-06-15"},
	)
	repo := newTestProfileRepository(t, mem)

	alice, err := repo.FindByEmail(context.Background(), "Alice@Example.com")
	require.NoError(t, err)
	assert.Equal(t, 2, alice.ID)
	assert.InDelta(t, 1800, alice.DailyKcalTarget, 1e-9)
	assert.Equal(t, "2025-07-01", alice.StartDate)
	require.NotNil(t, alice.InitialWeight)
	assert.InDelta(t, 72.5, *alice.InitialWeight, 1e-9)

	bob, err := repo.FindByEmail(context.Background(), "bob@example.com")
	require.NoError(t, err)
	assert.InDelta(t, entity.DefaultKcalTarget, bob.DailyKcalTarget, 1e-9)
	assert.Equal(t, "2025-06-15", bob.StartDate, "ISO dates are accepted")
	assert.Nil(t, bob.TargetWeight)

	_, err = repo.FindByEmail(context.Background(), "carol@example.com")
	assert.True(t, errors.Is(err, repository.ErrProfileNotFound))
}

func TestProfileRepository_Upsert(t *testing.T) {
	mem := newMemAdapter(profileSheet)
	mem.seed(profileSheet,
		[]any{"alice@example.com", "1800", "01/07/2025"},
		[]any{"bob@example.com", "2200", "15/06/2025"},
	)
	repo := newTestProfileRepository(t, mem)

	target := 80.0
	bob := &entity.Profile{Email: "bob@example.com", DailyKcalTarget: 2400, StartDate: "2025-08-01", TargetWeight: &target}
	require.NoError(t, repo.Upsert(context.Background(), bob))
	assert.Equal(t, 3, bob.ID)
	assert.Equal(t, 2400.0, mem.cell(profileSheet, "B3"))
	assert.Equal(t, "01/08/2025", mem.cell(profileSheet, "C3"))
	assert.Equal(t, 80.0, mem.cell(profileSheet, "E3"))

	carol := &entity.Profile{Email: "carol@example.com", DailyKcalTarget: 1900, StartDate: "2025-08-02"}
	require.NoError(t, repo.Upsert(context.Background(), carol))
	assert.Equal(t, "carol@example.com", mem.cell(profileSheet, "A4"))
}

func TestProfileRepository_Upsert_SheetFull(t *testing.T) {
	mem := newMemAdapter(profileSheet)
	rows := make([][]any, 9)
	for i := range rows {
		rows[i] = []any{"user" + string(rune('a'+i)) + "@example.com", "2000"}
	}
	mem.seed(profileSheet, rows...)
	repo := newTestProfileRepository(t, mem)

	err := repo.Upsert(context.Background(), &entity.Profile{Email: "new@example.com"})
	assert.Equal(t, domainerrors.KindValidationFailed, domainerrors.KindOf(err))
}
