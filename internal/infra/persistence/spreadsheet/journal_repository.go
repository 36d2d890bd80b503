package spreadsheet

import (
	"context"
	"log/slog"

	"nutrisheet/internal/domain/entity"
	"nutrisheet/internal/domain/repository"
	"nutrisheet/internal/infra/persistence/model"
	"nutrisheet/internal/infra/sheets"
	"nutrisheet/internal/infra/sheets/schema"

	"github.com/pkg/errors"
)

// Open bounds applied when only one side of a date filter is given.
const (
	minJournalDate = "1900-01-01"
	maxJournalDate = "2100-01-01"
)

// journalRepository implements the repository.JournalRepository interface.
type journalRepository struct {
	table
}

// NewJournalRepository is the constructor for journalRepository.
func NewJournalRepository(adapter sheets.RangeAdapter, layouts *model.Layouts, logger *slog.Logger) repository.JournalRepository {
	return &journalRepository{
		table: newTable(adapter, layouts.Journal, logger),
	}
}

// List returns the entries dated within [start, end]. ISO dates compare
// lexically, so no parsing is needed.
func (repo *journalRepository) List(ctx context.Context, start, end *string) ([]*entity.JournalEntry, error) {
	records, err := repo.readAll(ctx)
	if err != nil {
		return nil, err
	}

	filter := start != nil || end != nil
	lo, hi := minJournalDate, maxJournalDate
	if start != nil {
		lo = *start
	}
	if end != nil {
		hi = *end
	}

	entries := make([]*entity.JournalEntry, 0, len(records))
	for _, rec := range records {
		entry := repo.toJournalDomain(rec)
		if filter && (entry.Date < lo || entry.Date > hi) {
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Create appends an entry at the end of the journal.
func (repo *journalRepository) Create(ctx context.Context, entry *entity.JournalEntry) error {
	return repo.append(ctx, fromJournalDomain(entry))
}

// Delete blanks every column of the row. The row itself stays in place.
func (repo *journalRepository) Delete(ctx context.Context, id int) error {
	_, ok, err := repo.readRow(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(repository.ErrJournalEntryNotFound, "row %d", id)
	}

	return repo.blank(ctx, id)
}

func (repo *journalRepository) toJournalDomain(rec schema.Record) *entity.JournalEntry {
	f := rec.Fields

	kind, known := entity.ParseEntryKind(f.Text(model.JournalKind))
	if !known {
		repo.logger.Debug("Unknown journal entry kind", slog.Int("row", rec.Row), slog.String("kind", string(kind)))
	}

	return &entity.JournalEntry{
		ID:        rec.Row,
		Date:      f.Text(model.JournalDate),
		RawDate:   rec.Raw[model.JournalDate],
		Meal:      f.Text(model.JournalMeal),
		Kind:      kind,
		Reference: f.Text(model.JournalReference),
		Quantity:  f.Number(model.JournalQuantity),
		Kcal:      f.Number(model.JournalKcal),
		Note:      f.Text(model.JournalNote),
	}
}

func fromJournalDomain(e *entity.JournalEntry) schema.Record {
	rec := schema.NewRecord(e.ID)
	rec.Fields = schema.Values{
		model.JournalDate:      e.Date,
		model.JournalMeal:      e.Meal,
		model.JournalKind:      string(e.Kind),
		model.JournalReference: e.Reference,
		model.JournalQuantity:  e.Quantity,
		model.JournalKcal:      e.Kcal,
		model.JournalNote:      e.Note,
	}

	return rec
}
