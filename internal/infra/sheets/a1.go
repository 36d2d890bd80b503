package sheets

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ColumnLetter converts a 1-based column index to its letter notation
// (1 -> A, 26 -> Z, 27 -> AA). Out-of-range indexes yield "".
func ColumnLetter(col int) string {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return ""
	}

	return name
}

// ColumnIndex converts column letters back to a 1-based index, 0 if invalid.
func ColumnIndex(letters string) int {
	col, err := excelize.ColumnNameToNumber(letters)
	if err != nil {
		return 0
	}

	return col
}

// CellAddress returns the A1 address of a 1-based column and row.
func CellAddress(col, row int) string {
	return ColumnLetter(col) + strconv.Itoa(row)
}

// Span returns a rectangular range such as "A2:M1000".
func Span(firstCol, firstRow, lastCol, lastRow int) string {
	return CellAddress(firstCol, firstRow) + ":" + CellAddress(lastCol, lastRow)
}

// ColumnSpan returns a whole-column range such as "A:CT".
func ColumnSpan(firstCol, lastCol int) string {
	return ColumnLetter(firstCol) + ":" + ColumnLetter(lastCol)
}

// QualifiedRange prefixes a range with a quoted sheet name: 'Journal'!A2:G1000.
func QualifiedRange(sheet, rng string) string {
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'!" + rng
}
