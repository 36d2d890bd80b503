package sheets

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// MaxWorkbookSheetName is the longest tab name an .xlsx file accepts.
const MaxWorkbookSheetName = 31

var sheetNameReplacer = strings.NewReplacer(
	":", "_", `\`, "_", "/", "_", "?", "_", "*", "_", "[", "(", "]", ")",
)

// WorkbookSheetName maps a Google Sheets tab name to the name used in an
// .xlsx file. Forbidden characters are replaced and the name is cut to
// MaxWorkbookSheetName runes. Names that are already valid are unchanged.
func WorkbookSheetName(name string) string {
	out := sheetNameReplacer.Replace(name)
	if utf8.RuneCountInString(out) > MaxWorkbookSheetName {
		out = string([]rune(out)[:MaxWorkbookSheetName])
	}
	out = strings.TrimSpace(strings.Trim(out, "'"))
	if out == "" {
		return "_"
	}

	return out
}

// workbookSheetNames maps every name and fails when two names collapse
// onto the same workbook tab.
func workbookSheetNames(names []string) ([]string, error) {
	seen := make(map[string]string, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		mapped := WorkbookSheetName(name)
		if prev, ok := seen[strings.ToLower(mapped)]; ok && prev != name {
			return nil, errors.Errorf("sheets %q and %q map to the same workbook tab %q", prev, name, mapped)
		}
		seen[strings.ToLower(mapped)] = name
		out = append(out, mapped)
	}

	return out, nil
}
