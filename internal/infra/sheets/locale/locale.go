// Package locale converts between the French encodings found in the
// spreadsheet cells (DD/MM/YYYY dates, decimal commas) and canonical values.
//
// None of the functions fail. Input that cannot be interpreted is passed
// through or replaced by a zero value, and the returned Result is flagged as
// degraded so callers can tell a genuine zero from a parse failure.
package locale

import (
	"strconv"
	"strings"
	"unicode"
)

// Result is a decoded value tagged with whether decoding had to degrade.
type Result[T any] struct {
	Value    T
	Degraded bool
	Reason   string
}

// Ok wraps a cleanly decoded value.
func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// Degrade wraps a fallback value together with the reason it was used.
func Degrade[T any](v T, reason string) Result[T] {
	return Result[T]{Value: v, Degraded: true, Reason: reason}
}

// ParseDate converts "DD/MM/YYYY" to "YYYY-MM-DD". Text that does not split
// into three "/" parts is returned unchanged.
func ParseDate(text string) Result[string] {
	text = strings.TrimSpace(text)
	if text == "" {
		return Ok("")
	}

	parts := strings.Split(text, "/")
	if len(parts) != 3 {
		return Degrade(text, "not a DD/MM/YYYY date")
	}

	iso := parts[2] + "-" + padTwo(parts[1]) + "-" + padTwo(parts[0])
	if !allDigits(parts...) {
		return Degrade(iso, "non-numeric date component")
	}

	return Ok(iso)
}

// FormatDate converts "YYYY-MM-DD" to "DD/MM/YYYY". Text that does not split
// into three "-" parts is returned unchanged.
func FormatDate(iso string) Result[string] {
	iso = strings.TrimSpace(iso)
	if iso == "" {
		return Ok("")
	}

	parts := strings.Split(iso, "-")
	if len(parts) != 3 {
		return Degrade(iso, "not a YYYY-MM-DD date")
	}

	return Ok(parts[2] + "/" + parts[1] + "/" + parts[0])
}

// NormalizeDate accepts either encoding and returns the ISO form. Dates
// already stored as ISO text (older profile rows) are kept as they are.
func NormalizeDate(text string) Result[string] {
	if strings.Contains(text, "/") {
		return ParseDate(text)
	}

	text = strings.TrimSpace(text)
	if text == "" || len(strings.Split(text, "-")) == 3 {
		return Ok(text)
	}

	return Degrade(text, "unrecognized date")
}

// ParseNumber reads a numeric cell. Native numbers are returned as is;
// strings may use a decimal comma and thousands separators made of spaces.
// Trailing text such as a unit or currency sign is ignored.
func ParseNumber(cell any) Result[float64] {
	switch v := cell.(type) {
	case nil:
		return Ok(0.0)
	case float64:
		return Ok(v)
	case float32:
		return Ok(float64(v))
	case int:
		return Ok(float64(v))
	case int64:
		return Ok(float64(v))
	case bool:
		return Degrade(0.0, "boolean in numeric cell")
	case string:
		return parseNumberText(v)
	default:
		return Degrade(0.0, "unsupported cell type")
	}
}

func parseNumberText(text string) Result[float64] {
	text = strings.TrimSpace(text)
	if text == "" {
		return Ok(0.0)
	}

	text = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\u00a0', '\u202f':
			return -1
		}

		return r
	}, text)
	text = strings.Replace(text, ",", ".", 1)

	prefix := numericPrefix(text)
	if prefix == "" {
		return Degrade(0.0, "no numeric value")
	}

	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return Degrade(0.0, err.Error())
	}

	if len(prefix) != len(text) {
		return Degrade(f, "trailing characters ignored")
	}

	return Ok(f)
}

// numericPrefix returns the longest leading run that looks like a decimal
// number: an optional sign, digits, and at most one dot.
func numericPrefix(s string) string {
	end := 0
	seenDigit, seenDot := false, false

	for i, r := range s {
		switch {
		case (r == '-' || r == '+') && i == 0:
		case r == '.' && !seenDot:
			seenDot = true
		case r >= '0' && r <= '9':
			seenDigit = true
			end = i + 1

			continue
		default:
			if !seenDigit {
				return ""
			}

			return s[:end]
		}
	}

	if !seenDigit {
		return ""
	}

	return s[:end]
}

// FormatNumber renders a float for display or text cells.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ParseBool reads a checkbox or yes/no cell in English or French.
func ParseBool(cell any) Result[bool] {
	switch v := cell.(type) {
	case nil:
		return Ok(false)
	case bool:
		return Ok(v)
	case float64:
		return Ok(v != 0)
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "vrai", "oui", "yes", "1", "x", "✓", "✔":
			return Ok(true)
		case "", "false", "faux", "non", "no", "0":
			return Ok(false)
		}
	}

	return Degrade(false, "not a boolean")
}

// CellText renders a raw cell as the text a user would see.
func CellText(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return FormatNumber(v)
	case bool:
		if v {
			return "TRUE"
		}

		return "FALSE"
	default:
		return ""
	}
}

func padTwo(s string) string {
	if len(s) >= 2 {
		return s
	}

	return strings.Repeat("0", 2-len(s)) + s
}

func allDigits(parts ...string) bool {
	for _, p := range parts {
		if p == "" {
			return false
		}
		for _, r := range p {
			if !unicode.IsDigit(r) {
				return false
			}
		}
	}

	return true
}
