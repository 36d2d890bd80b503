package spreadsheet

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"testing"

	domainerrors "nutrisheet/internal/domain/errors"
	"nutrisheet/internal/infra/persistence/model"
	"nutrisheet/internal/infra/sheets"
	"nutrisheet/internal/infra/sheets/schema"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// memAdapter is an in-memory sheets.RangeAdapter. It stores cells the way
// the service would under user-entered input and records every write.
type memAdapter struct {
	mu      sync.Mutex
	cells   map[string]map[[2]int]any // sheet -> {row, col} -> value
	batches map[string][]sheets.CellUpdate
	readErr error
}

func newMemAdapter(sheetNames ...string) *memAdapter {
	m := &memAdapter{cells: map[string]map[[2]int]any{}, batches: map[string][]sheets.CellUpdate{}}
	for _, s := range sheetNames {
		m.cells[s] = map[[2]int]any{}
	}

	return m
}

func parseCell(a string) (col, row int) {
	i := strings.IndexFunc(a, func(r rune) bool { return r >= '0' && r <= '9' })
	row, err := strconv.Atoi(a[i:])
	if i <= 0 || err != nil {
		panic("bad cell address " + a)
	}

	return sheets.ColumnIndex(a[:i]), row
}

func (m *memAdapter) sheet(name string) (map[[2]int]any, error) {
	s, ok := m.cells[name]
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrNotFound.WithDetails("sheet " + name))
	}

	return s, nil
}

func store(v any) any {
	if s, ok := v.(string); ok {
		return strings.TrimPrefix(s, "'")
	}

	return v
}

func (m *memAdapter) ReadRange(_ context.Context, sheet, rng string) ([][]any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.readErr != nil {
		return nil, m.readErr
	}
	s, err := m.sheet(sheet)
	if err != nil {
		return nil, err
	}

	bounds := strings.Split(rng, ":")
	c1, r1 := parseCell(bounds[0])
	c2, r2 := c1, r1
	if len(bounds) == 2 {
		c2, r2 = parseCell(bounds[1])
	}

	var grid [][]any
	for r := r1; r <= r2; r++ {
		var row []any
		for c := c1; c <= c2; c++ {
			v, ok := s[[2]int{r, c}]
			if !ok {
				v = ""
			}
			row = append(row, v)
		}
		for len(row) > 0 && row[len(row)-1] == "" {
			row = row[:len(row)-1]
		}
		grid = append(grid, row)
	}
	for len(grid) > 0 && len(grid[len(grid)-1]) == 0 {
		grid = grid[:len(grid)-1]
	}

	return grid, nil
}

func (m *memAdapter) BatchRead(ctx context.Context, requests []sheets.RangeRequest) ([][][]any, error) {
	grids := make([][][]any, 0, len(requests))
	for _, req := range requests {
		g, err := m.ReadRange(ctx, req.Sheet, req.Range)
		if err != nil {
			return nil, err
		}
		grids = append(grids, g)
	}

	return grids, nil
}

func (m *memAdapter) WriteRange(_ context.Context, sheet, rng string, grid [][]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.sheet(sheet)
	if err != nil {
		return err
	}
	c1, r1 := parseCell(strings.Split(rng, ":")[0])
	for i, row := range grid {
		for j, v := range row {
			s[[2]int{r1 + i, c1 + j}] = store(v)
		}
	}

	return nil
}

func (m *memAdapter) AppendRows(_ context.Context, sheet string, grid [][]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.sheet(sheet)
	if err != nil {
		return err
	}
	// Row 1 holds the headers.
	last := 1
	for k, v := range s {
		if v != "" && k[0] > last {
			last = k[0]
		}
	}
	for i, row := range grid {
		for j, v := range row {
			s[[2]int{last + 1 + i, 1 + j}] = store(v)
		}
	}

	return nil
}

func (m *memAdapter) BatchWriteCells(_ context.Context, sheet string, cells []sheets.CellUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.sheet(sheet)
	if err != nil {
		return err
	}
	for _, c := range cells {
		col, row := parseCell(c.Address)
		s[[2]int{row, col}] = store(c.Value)
	}
	m.batches[sheet] = append(m.batches[sheet], cells...)

	return nil
}

// seed writes rows starting at row 2.
func (m *memAdapter) seed(sheet string, rows ...[]any) {
	s := m.cells[sheet]
	for i, row := range rows {
		for j, v := range row {
			s[[2]int{2 + i, 1 + j}] = v
		}
	}
}

func (m *memAdapter) cell(sheet, address string) any {
	col, row := parseCell(address)
	v, ok := m.cells[sheet][[2]int{row, col}]
	if !ok {
		return ""
	}

	return v
}

func testLayouts(t *testing.T, derived, totals schema.Owner) *model.Layouts {
	t.Helper()

	layouts, err := model.NewLayouts(model.LayoutOptions{
		Names:             model.DefaultSheetNames,
		IngredientDerived: derived,
		RecipeTotals:      totals,
	})
	require.NoError(t, err)

	return layouts
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
