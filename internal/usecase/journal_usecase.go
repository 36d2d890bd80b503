package usecase

import (
	"context"

	"nutrisheet/internal/domain/entity"
)

// JournalEntryInput describes a food journal entry. Unit is only used to
// estimate Kcal and is not stored.
type JournalEntryInput struct {
	Date      string           `json:"date"` // ISO; today when empty.
	Meal      string           `json:"meal"`
	Kind      entity.EntryKind `json:"kind"`
	Reference string           `json:"reference"`
	Quantity  float64          `json:"quantity"`
	Unit      string           `json:"unit"`
	Kcal      float64          `json:"kcal"` // Estimated when zero.
	Note      string           `json:"note"`
}

// JournalUsecase defines the interface for the food journal.
type JournalUsecase interface {
	// ListJournal returns entries within the inclusive ISO date bounds.
	ListJournal(ctx context.Context, start, end *string) ([]*entity.JournalEntry, error)

	// AddJournalEntry validates, estimates kcal and appends an entry.
	AddJournalEntry(ctx context.Context, input *JournalEntryInput) (*entity.JournalEntry, error)

	// DeleteJournalEntry blanks the entry stored in row id.
	DeleteJournalEntry(ctx context.Context, id int) error

	// DayTotals sums the kcal of one day per meal slot.
	DayTotals(ctx context.Context, date string) (*entity.DayTotals, error)

	// WeekTotals returns the totals of seven consecutive days from start.
	WeekTotals(ctx context.Context, start string) ([]*entity.DayTotals, error)
}
