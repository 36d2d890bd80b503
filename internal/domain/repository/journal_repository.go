package repository

import (
	"context"

	"nutrisheet/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrJournalEntryNotFound is returned when the addressed row is empty.
var ErrJournalEntryNotFound = errors.New("journal entry not found")

// JournalRepository reads and writes the food journal sheet.
type JournalRepository interface {
	// List returns the entries dated between start and end inclusive (ISO
	// dates). A nil bound is open; both nil returns every entry.
	List(ctx context.Context, start, end *string) ([]*entity.JournalEntry, error)

	// Create appends an entry.
	Create(ctx context.Context, entry *entity.JournalEntry) error

	// Delete blanks row id. Rows are never removed or compacted.
	Delete(ctx context.Context, id int) error
}
