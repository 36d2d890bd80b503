// Package sheets reads and writes rectangular cell ranges of the backing
// spreadsheet. Two adapters implement the same contract: the Google Sheets
// API and a local .xlsx workbook.
//
// Every write uses "user entered" semantics: a text value starting with "="
// is a formula and a leading "'" forces literal text. Adapters never retry.
package sheets

import (
	"context"
)

const (
	// ValueInputUserEntered lets the service apply its own type coercion.
	ValueInputUserEntered = "USER_ENTERED"

	// DefaultAppendSpan is wide enough for the recipe layout (98 columns).
	DefaultAppendSpan = "A:CT"
)

// CellUpdate addresses a single cell of a sheet, e.g. {"I12", "0042"}.
type CellUpdate struct {
	Address string
	Value   any
}

// RangeRequest names one range of a batch read.
type RangeRequest struct {
	Sheet string
	Range string
}

// RangeAdapter is the contract between the repositories and the store.
// Grids are row-major; trailing empty rows and cells may be omitted on reads.
type RangeAdapter interface {
	// ReadRange fetches a range; callers slice the rows into records.
	ReadRange(ctx context.Context, sheet, rng string) ([][]any, error)

	// BatchRead fetches several ranges in a single round trip, in order.
	BatchRead(ctx context.Context, requests []RangeRequest) ([][][]any, error)

	// WriteRange overwrites a rectangular region the caller fully owns.
	WriteRange(ctx context.Context, sheet, rng string, grid [][]any) error

	// AppendRows writes rows after the last used row; the service picks the index.
	AppendRows(ctx context.Context, sheet string, grid [][]any) error

	// BatchWriteCells updates exactly the listed cells and nothing else.
	BatchWriteCells(ctx context.Context, sheet string, cells []CellUpdate) error
}
