// Package schema describes the fixed column layout of each sheet and maps
// raw rows to records and back.
//
// Decoding never fails: unreadable cells decode to zero values and are
// reported as issues, and rows whose required field is empty are dropped.
package schema

import (
	"strconv"

	"nutrisheet/internal/infra/sheets"

	"github.com/pkg/errors"
)

// Kind is the encoding of a cell.
type Kind int

const (
	Text Kind = iota
	Number
	Date // DD/MM/YYYY on the sheet, ISO in records
	Bool
)

// Owner says who writes a column: this application or a spreadsheet formula.
type Owner int

const (
	OwnerClient Owner = iota
	OwnerFormula
)

// ParseOwner reads the configuration spelling of an owner.
func ParseOwner(s string) (Owner, error) {
	switch s {
	case "", "formula":
		return OwnerFormula, nil
	case "client":
		return OwnerClient, nil
	default:
		return OwnerFormula, errors.Errorf("unknown column owner %q", s)
	}
}

// Field maps one column to a record field. Column is 1-based; inside a
// Group it is the 1-based offset within the group.
type Field struct {
	Name   string
	Column int
	Kind   Kind
	Owner  Owner
	// Literal forces text on write so the service keeps leading zeros.
	Literal bool
}

// Group is a block of columns repeated side by side, one block per item.
type Group struct {
	StartColumn int
	Width       int
	MaxGroups   int
	Fields      []Field
	// Keys must all be non-empty for a block to be decoded as an item.
	Keys []string
}

// column returns the absolute column of field f in block i (0-based).
func (g *Group) column(i int, f Field) int {
	return g.StartColumn + i*g.Width + f.Column - 1
}

// LastColumn is the last column covered by the final block.
func (g *Group) LastColumn() int {
	return g.StartColumn + g.MaxGroups*g.Width - 1
}

// Schema is the layout of one sheet.
type Schema struct {
	Sheet    string
	FirstRow int
	LastRow  int
	Fields   []Field
	Group    *Group
	Required string
}

// Validate rejects layouts with overlapping or out-of-range columns.
func (s *Schema) Validate() error {
	if s.Sheet == "" {
		return errors.New("schema without sheet name")
	}
	if s.FirstRow < 1 || s.LastRow < s.FirstRow {
		return errors.Errorf("schema %s: invalid row bounds %d..%d", s.Sheet, s.FirstRow, s.LastRow)
	}

	used := map[int]string{}
	claim := func(col int, name string) error {
		if col < 1 {
			return errors.Errorf("schema %s: field %s has invalid column %d", s.Sheet, name, col)
		}
		if prev, ok := used[col]; ok {
			return errors.Errorf("schema %s: column %s used by %s and %s", s.Sheet, sheets.ColumnLetter(col), prev, name)
		}
		used[col] = name

		return nil
	}

	for _, f := range s.Fields {
		if err := claim(f.Column, f.Name); err != nil {
			return err
		}
	}

	if s.Group != nil {
		g := s.Group
		if g.Width < 1 || g.MaxGroups < 1 {
			return errors.Errorf("schema %s: invalid group dimensions", s.Sheet)
		}
		for _, f := range g.Fields {
			if f.Column < 1 || f.Column > g.Width {
				return errors.Errorf("schema %s: group field %s outside group width", s.Sheet, f.Name)
			}
		}
		for i := range g.MaxGroups {
			for _, f := range g.Fields {
				if err := claim(g.column(i, f), f.Name+"#"+strconv.Itoa(i+1)); err != nil {
					return err
				}
			}
		}
	}

	if s.Required != "" {
		if _, ok := s.field(s.Required); !ok {
			return errors.Errorf("schema %s: required field %s not declared", s.Sheet, s.Required)
		}
	}

	return nil
}

// LastColumn is the right-most column of the layout.
func (s *Schema) LastColumn() int {
	last := 0
	for _, f := range s.Fields {
		last = max(last, f.Column)
	}
	if s.Group != nil {
		last = max(last, s.Group.LastColumn())
	}

	return last
}

// DataRange covers every data row, e.g. "A2:M1000".
func (s *Schema) DataRange() string {
	return sheets.Span(1, s.FirstRow, s.LastColumn(), s.LastRow)
}

// ColumnRange covers a single column of every data row, e.g. "A2:A10".
func (s *Schema) ColumnRange(name string) string {
	f, ok := s.field(name)
	if !ok {
		return ""
	}

	return sheets.Span(f.Column, s.FirstRow, f.Column, s.LastRow)
}

// RowRange covers one full row, e.g. "A5:G5".
func (s *Schema) RowRange(row int) string {
	return sheets.Span(1, row, s.LastColumn(), row)
}

// RowNumber converts an index into the rows returned for DataRange.
func (s *Schema) RowNumber(index int) int {
	return s.FirstRow + index
}

// ContainsRow reports whether row is a data row of this layout.
func (s *Schema) ContainsRow(row int) bool {
	return row >= s.FirstRow && row <= s.LastRow
}

// WithOwner returns a copy of the schema where the named header fields are
// written by owner.
func (s *Schema) WithOwner(owner Owner, names ...string) *Schema {
	clone := *s
	clone.Fields = make([]Field, len(s.Fields))
	copy(clone.Fields, s.Fields)

	for i := range clone.Fields {
		for _, n := range names {
			if clone.Fields[i].Name == n {
				clone.Fields[i].Owner = owner
			}
		}
	}

	return &clone
}

// Owns reports whether the application writes the named header field.
func (s *Schema) Owns(name string) bool {
	f, ok := s.field(name)

	return ok && f.Owner == OwnerClient
}

func (s *Schema) field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}
