package schema

import (
	"strings"

	"nutrisheet/internal/infra/sheets"
	"nutrisheet/internal/infra/sheets/locale"
)

// Values holds decoded cells by field name: string for Text and Date
// (ISO), float64 for Number, bool for Bool.
type Values map[string]any

func (v Values) Text(name string) string {
	s, _ := v[name].(string)

	return s
}

func (v Values) Number(name string) float64 {
	f, _ := v[name].(float64)

	return f
}

func (v Values) Bool(name string) bool {
	b, _ := v[name].(bool)

	return b
}

// Issue records a cell that could only be decoded in degraded form.
type Issue struct {
	Field  string
	Cell   string
	Reason string
}

// Record is one decoded row.
type Record struct {
	Row    int
	Fields Values
	// Raw keeps the cell text of date fields as stored on the sheet.
	Raw    map[string]string
	Groups []Values
	Issues []Issue
}

// NewRecord starts an empty record for encoding.
func NewRecord(row int) Record {
	return Record{Row: row, Fields: Values{}, Raw: map[string]string{}}
}

// Decode maps raw cells of a data row. It returns false when the required
// field is empty, which is how the sheets mark unused or placeholder rows.
func Decode(s *Schema, row int, cells []any) (Record, bool) {
	rec := NewRecord(row)

	for _, f := range s.Fields {
		value, raw, reason := decodeCell(f, cellAt(cells, f.Column))
		rec.Fields[f.Name] = value
		if f.Kind == Date {
			rec.Raw[f.Name] = raw
		}
		if reason != "" {
			rec.Issues = append(rec.Issues, Issue{Field: f.Name, Cell: sheets.CellAddress(f.Column, row), Reason: reason})
		}
	}

	if s.Required != "" && rec.Fields.Text(s.Required) == "" {
		return rec, false
	}

	if g := s.Group; g != nil {
		for i := 0; i < g.MaxGroups; i++ {
			if g.StartColumn+i*g.Width > len(cells) {
				break
			}

			values := Values{}
			for _, f := range g.Fields {
				col := g.column(i, f)
				value, _, reason := decodeCell(f, cellAt(cells, col))
				values[f.Name] = value
				if reason != "" {
					rec.Issues = append(rec.Issues, Issue{Field: f.Name, Cell: sheets.CellAddress(col, row), Reason: reason})
				}
			}

			if hasKeys(values, g.Keys) {
				rec.Groups = append(rec.Groups, values)
			}
		}
	}

	return rec, true
}

func hasKeys(values Values, keys []string) bool {
	for _, k := range keys {
		if values.Text(k) == "" {
			return false
		}
	}

	return true
}

func cellAt(cells []any, col int) any {
	if col < 1 || col > len(cells) {
		return nil
	}

	return cells[col-1]
}

func decodeCell(f Field, cell any) (value any, raw, reason string) {
	switch f.Kind {
	case Number:
		r := locale.ParseNumber(cell)

		return r.Value, "", r.Reason
	case Date:
		raw = strings.TrimSpace(locale.CellText(cell))
		r := locale.NormalizeDate(raw)

		return r.Value, raw, r.Reason
	case Bool:
		r := locale.ParseBool(cell)

		return r.Value, "", r.Reason
	default:
		return strings.TrimSpace(locale.CellText(cell)), "", ""
	}
}

// Encode renders a full row for append or full-row writes. Header cells
// owned by a formula are written as blank placeholders.
func Encode(s *Schema, rec Record) []any {
	row := make([]any, s.LastColumn())
	for i := range row {
		row[i] = ""
	}

	for _, f := range s.Fields {
		if f.Owner == OwnerFormula {
			continue
		}
		row[f.Column-1] = encodeValue(f, rec.Fields[f.Name])
	}

	if g := s.Group; g != nil {
		for i, values := range rec.Groups {
			if i >= g.MaxGroups {
				break
			}
			for _, f := range g.Fields {
				row[g.column(i, f)-1] = encodeValue(f, values[f.Name])
			}
		}
	}

	return row
}

// EncodeOwned renders the cells the application owns in rec.Row and nothing
// else. Every group block is emitted: blocks past the populated items are
// blanked so a shorter list does not leave stale items behind.
func EncodeOwned(s *Schema, rec Record) []sheets.CellUpdate {
	var cells []sheets.CellUpdate

	for _, f := range s.Fields {
		if f.Owner != OwnerClient {
			continue
		}
		cells = append(cells, sheets.CellUpdate{
			Address: sheets.CellAddress(f.Column, rec.Row),
			Value:   encodeValue(f, rec.Fields[f.Name]),
		})
	}

	if g := s.Group; g != nil {
		for i := 0; i < g.MaxGroups; i++ {
			for _, f := range g.Fields {
				var value any = ""
				if i < len(rec.Groups) {
					value = encodeValue(f, rec.Groups[i][f.Name])
				}
				cells = append(cells, sheets.CellUpdate{
					Address: sheets.CellAddress(g.column(i, f), rec.Row),
					Value:   value,
				})
			}
		}
	}

	return cells
}

// BlankRow returns a row of empty strings spanning the layout, used to
// soft-delete a record.
func BlankRow(s *Schema) []any {
	row := make([]any, s.LastColumn())
	for i := range row {
		row[i] = ""
	}

	return row
}

// encodeValue renders a value for a "user entered" write. Zero numbers are
// left blank; blank cells decode back to zero.
func encodeValue(f Field, value any) any {
	switch f.Kind {
	case Number:
		n, _ := value.(float64)
		if n == 0 {
			return ""
		}

		return n
	case Date:
		iso, _ := value.(string)

		return locale.FormatDate(iso).Value
	case Bool:
		b, _ := value.(bool)

		return b
	default:
		s, _ := value.(string)
		if f.Literal && s != "" {
			return "'" + s
		}

		return s
	}
}
