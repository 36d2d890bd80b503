// Package spreadsheet contains the concrete implementation of the persistence
// layer on top of a sheets.RangeAdapter.
package spreadsheet

import (
	"context"
	"log/slog"
	"strings"

	"nutrisheet/internal/domain/repository"
	"nutrisheet/internal/infra/sheets"
	"nutrisheet/internal/infra/sheets/locale"
	"nutrisheet/internal/infra/sheets/schema"

	"github.com/pkg/errors"
)

// table binds a layout to the adapter and carries the row plumbing shared
// by every repository.
type table struct {
	adapter sheets.RangeAdapter
	schema  *schema.Schema
	logger  *slog.Logger
}

func newTable(adapter sheets.RangeAdapter, s *schema.Schema, logger *slog.Logger) table {
	return table{
		adapter: adapter,
		schema:  s,
		logger:  logger.With(slog.String("sheet", s.Sheet)),
	}
}

// readAll reads the data range and decodes every non-empty row.
func (t table) readAll(ctx context.Context) ([]schema.Record, error) {
	grid, err := t.adapter.ReadRange(ctx, t.schema.Sheet, t.schema.DataRange())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %s", t.schema.Sheet)
	}

	return t.decodeGrid(grid), nil
}

func (t table) decodeGrid(grid [][]any) []schema.Record {
	records := make([]schema.Record, 0, len(grid))
	for i, cells := range grid {
		rec, ok := schema.Decode(t.schema, t.schema.RowNumber(i), cells)
		if !ok {
			continue
		}
		t.logIssues(rec)
		records = append(records, rec)
	}

	return records
}

// readRow decodes a single row. ok is false when the row is empty.
func (t table) readRow(ctx context.Context, row int) (rec schema.Record, ok bool, err error) {
	if !t.schema.ContainsRow(row) {
		return schema.Record{}, false, errors.Wrapf(repository.ErrRowOutOfRange, "row %d of %s", row, t.schema.Sheet)
	}

	grid, err := t.adapter.ReadRange(ctx, t.schema.Sheet, t.schema.RowRange(row))
	if err != nil {
		return schema.Record{}, false, errors.Wrapf(err, "failed to read row %d of %s", row, t.schema.Sheet)
	}
	if len(grid) == 0 {
		return schema.Record{}, false, nil
	}

	rec, ok = schema.Decode(t.schema, row, grid[0])

	return rec, ok, nil
}

// readColumn returns the text of one column for every data row.
func (t table) readColumn(ctx context.Context, field string) ([]string, error) {
	grid, err := t.adapter.ReadRange(ctx, t.schema.Sheet, t.schema.ColumnRange(field))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read column %s of %s", field, t.schema.Sheet)
	}

	values := make([]string, 0, len(grid))
	for _, cells := range grid {
		if len(cells) == 0 {
			continue
		}
		values = append(values, strings.TrimSpace(locale.CellText(cells[0])))
	}

	return values, nil
}

func (t table) append(ctx context.Context, rec schema.Record) error {
	if err := t.adapter.AppendRows(ctx, t.schema.Sheet, [][]any{schema.Encode(t.schema, rec)}); err != nil {
		return errors.Wrapf(err, "failed to append to %s", t.schema.Sheet)
	}

	return nil
}

// writeOwned updates only the cells this application owns in rec.Row so
// formula columns survive.
func (t table) writeOwned(ctx context.Context, rec schema.Record) error {
	if err := t.adapter.BatchWriteCells(ctx, t.schema.Sheet, schema.EncodeOwned(t.schema, rec)); err != nil {
		return errors.Wrapf(err, "failed to update row %d of %s", rec.Row, t.schema.Sheet)
	}

	return nil
}

// blank clears a whole row in place.
func (t table) blank(ctx context.Context, row int) error {
	err := t.adapter.WriteRange(ctx, t.schema.Sheet, t.schema.RowRange(row), [][]any{schema.BlankRow(t.schema)})
	if err != nil {
		return errors.Wrapf(err, "failed to clear row %d of %s", row, t.schema.Sheet)
	}

	return nil
}

func (t table) logIssues(rec schema.Record) {
	for _, issue := range rec.Issues {
		t.logger.Debug("Degraded cell value",
			slog.String("cell", issue.Cell),
			slog.String("field", issue.Field),
			slog.String("reason", issue.Reason),
		)
	}
}
