package sheets

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"

	domainerrors "nutrisheet/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// workbookAdapter implements RangeAdapter on a local .xlsx file. Each call
// opens the workbook, applies the change and saves it, so the file can be
// inspected or edited in a spreadsheet application between calls.
type workbookAdapter struct {
	mu     sync.Mutex
	path   string
	logger *slog.Logger
}

// NewWorkbookAdapter opens (or creates) the workbook at path and makes sure
// the given sheets exist. Sheet names are mapped with WorkbookSheetName here
// and on every call, so callers keep using the Google Sheets names.
func NewWorkbookAdapter(path string, sheetNames []string, logger *slog.Logger) (RangeAdapter, error) {
	if path == "" {
		return nil, errors.New("workbook path is required for xlsx backend")
	}

	mapped, err := workbookSheetNames(sheetNames)
	if err != nil {
		return nil, err
	}

	var f *excelize.File
	if _, err := os.Stat(path); err == nil {
		f, err = excelize.OpenFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open workbook %s", path)
		}
	} else {
		f = excelize.NewFile()
	}
	defer f.Close()

	for _, name := range mapped {
		idx, err := f.GetSheetIndex(name)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid sheet name %q", name)
		}
		if idx == -1 {
			if _, err := f.NewSheet(name); err != nil {
				return nil, errors.Wrapf(err, "failed to create sheet %q", name)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return nil, errors.Wrapf(err, "failed to save workbook %s", path)
	}

	logger.Info("Workbook adapter initialized", slog.String("path", path))

	return &workbookAdapter{path: path, logger: logger}, nil
}

// withFile runs fn on a freshly opened workbook and saves it when write is set.
func (a *workbookAdapter) withFile(sheet string, write bool, fn func(f *excelize.File) error) error {
	sheet = WorkbookSheetName(sheet)

	a.mu.Lock()
	defer a.mu.Unlock()

	f, err := excelize.OpenFile(a.path)
	if err != nil {
		return domainerrors.NewRemoteCallError(domainerrors.ErrRemoteUnavailable, err, "open "+a.path)
	}
	defer f.Close()

	if sheet != "" {
		idx, err := f.GetSheetIndex(sheet)
		if err != nil || idx == -1 {
			return errors.WithStack(domainerrors.ErrNotFound.WithDetails("sheet " + sheet))
		}
	}

	if err := fn(f); err != nil {
		return err
	}

	if !write {
		return nil
	}

	if err := f.Save(); err != nil {
		return domainerrors.NewRemoteCallError(domainerrors.ErrRemoteUnavailable, err, "save "+a.path)
	}

	return nil
}

func (a *workbookAdapter) ReadRange(_ context.Context, sheet, rng string) ([][]any, error) {
	sheet = WorkbookSheetName(sheet)

	var grid [][]any
	err := a.withFile(sheet, false, func(f *excelize.File) error {
		var err error
		grid, err = readGrid(f, sheet, rng)

		return err
	})

	return grid, err
}

func (a *workbookAdapter) BatchRead(_ context.Context, requests []RangeRequest) ([][][]any, error) {
	grids := make([][][]any, len(requests))
	err := a.withFile("", false, func(f *excelize.File) error {
		for i, r := range requests {
			sheet := WorkbookSheetName(r.Sheet)
			if idx, err := f.GetSheetIndex(sheet); err != nil || idx == -1 {
				return errors.WithStack(domainerrors.ErrNotFound.WithDetails("sheet " + r.Sheet))
			}

			grid, err := readGrid(f, sheet, r.Range)
			if err != nil {
				return err
			}
			grids[i] = grid
		}

		return nil
	})

	return grids, err
}

func (a *workbookAdapter) WriteRange(_ context.Context, sheet, rng string, grid [][]any) error {
	sheet = WorkbookSheetName(sheet)

	return a.withFile(sheet, true, func(f *excelize.File) error {
		col, row, _, _, err := parseRange(rng)
		if err != nil {
			return err
		}

		for r, values := range grid {
			for c, v := range values {
				if err := setCell(f, sheet, col+c, row+r, v); err != nil {
					return err
				}
			}
		}

		return nil
	})
}

// AppendRows writes below the last used row, never above row 2 since row 1
// holds the headers.
func (a *workbookAdapter) AppendRows(_ context.Context, sheet string, grid [][]any) error {
	sheet = WorkbookSheetName(sheet)

	return a.withFile(sheet, true, func(f *excelize.File) error {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return domainerrors.NewRemoteCallError(domainerrors.ErrRemoteUnavailable, err, "rows "+sheet)
		}

		next := max(len(rows)+1, 2)
		for r, values := range grid {
			for c, v := range values {
				if err := setCell(f, sheet, c+1, next+r, v); err != nil {
					return err
				}
			}
		}

		return nil
	})
}

func (a *workbookAdapter) BatchWriteCells(_ context.Context, sheet string, cells []CellUpdate) error {
	if len(cells) == 0 {
		return nil
	}
	sheet = WorkbookSheetName(sheet)

	return a.withFile(sheet, true, func(f *excelize.File) error {
		for _, c := range cells {
			col, row, err := excelize.CellNameToCoordinates(c.Address)
			if err != nil {
				return errors.Wrapf(err, "invalid cell address %q", c.Address)
			}
			if err := setCell(f, sheet, col, row, c.Value); err != nil {
				return err
			}
		}

		return nil
	})
}

// readGrid slices a range out of the sheet the way the Sheets API reports it:
// formatted text values, trailing empty cells and rows omitted.
func readGrid(f *excelize.File, sheet, rng string) ([][]any, error) {
	firstCol, firstRow, lastCol, lastRow, err := parseRange(rng)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, domainerrors.NewRemoteCallError(domainerrors.ErrRemoteUnavailable, err, "rows "+sheet)
	}

	var grid [][]any
	for r := firstRow; r <= lastRow && r <= len(rows); r++ {
		src := rows[r-1]
		var out []any
		for c := firstCol; c <= lastCol && c <= len(src); c++ {
			out = append(out, src[c-1])
		}
		grid = append(grid, trimRow(out))
	}

	for len(grid) > 0 && len(grid[len(grid)-1]) == 0 {
		grid = grid[:len(grid)-1]
	}

	return grid, nil
}

func trimRow(row []any) []any {
	for len(row) > 0 && row[len(row)-1] == "" {
		row = row[:len(row)-1]
	}
	if len(row) == 0 {
		return []any{}
	}

	return row
}

// parseRange accepts "A2:M1000" or a single cell "B5".
func parseRange(rng string) (firstCol, firstRow, lastCol, lastRow int, err error) {
	start, end, found := strings.Cut(rng, ":")
	if !found {
		end = start
	}

	firstCol, firstRow, err = excelize.CellNameToCoordinates(start)
	if err != nil {
		return 0, 0, 0, 0, errors.Wrapf(err, "invalid range %q", rng)
	}

	lastCol, lastRow, err = excelize.CellNameToCoordinates(end)
	if err != nil {
		return 0, 0, 0, 0, errors.Wrapf(err, "invalid range %q", rng)
	}

	return firstCol, firstRow, lastCol, lastRow, nil
}

// setCell applies a value with "user entered" semantics.
func setCell(f *excelize.File, sheet string, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return errors.WithStack(err)
	}

	switch v := value.(type) {
	case nil:
		err = f.SetCellValue(sheet, cell, "")
	case string:
		switch {
		case strings.HasPrefix(v, "="):
			err = f.SetCellFormula(sheet, cell, strings.TrimPrefix(v, "="))
		case strings.HasPrefix(v, "'"):
			err = f.SetCellStr(sheet, cell, strings.TrimPrefix(v, "'"))
		default:
			err = f.SetCellStr(sheet, cell, v)
		}
	default:
		err = f.SetCellValue(sheet, cell, v)
	}

	return errors.Wrapf(err, "failed to set %s!%s", sheet, cell)
}
