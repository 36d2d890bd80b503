// Package refgen derives the next ingredient reference or recipe number by
// scanning the values already present in a column.
//
// Generation is read-then-append: two clients generating at the same moment
// can pick the same value. The spreadsheet offers no locking to prevent it.
package refgen

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"nutrisheet/internal/infra/sheets/locale"
)

// Generator extracts a sequence number from each existing value with
// Pattern (first capture group) and renders max+1 as Prefix plus a
// zero-padded run of Width digits.
type Generator struct {
	Prefix  string
	Width   int
	Pattern *regexp.Regexp
}

// IngredientReferences numbers ingredients by the trailing digit run of
// their reference ("FRU07" counts as 7).
var IngredientReferences = Generator{
	Width:   4,
	Pattern: regexp.MustCompile(`(\d+)$`),
}

// RecipeNumbers numbers recipes R001, R002, ...
var RecipeNumbers = Generator{
	Prefix:  "R",
	Width:   3,
	Pattern: regexp.MustCompile(`^R(\d+)$`),
}

// Next returns the value following the highest sequence found in existing.
// Values that do not match the pattern are ignored.
func (g Generator) Next(existing []string) string {
	highest := 0
	for _, v := range existing {
		m := g.Pattern.FindStringSubmatch(strings.TrimSpace(v))
		if len(m) < 2 {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		highest = max(highest, n)
	}

	return g.format(highest + 1)
}

// NextOrFallback is Next unless the column could not be read, in which case
// a value derived from the clock is returned, flagged degraded.
func (g Generator) NextOrFallback(existing []string, readErr error, now time.Time) locale.Result[string] {
	if readErr == nil {
		return locale.Ok(g.Next(existing))
	}

	millis := strconv.FormatInt(now.UnixMilli(), 10)
	if len(millis) > g.Width {
		millis = millis[len(millis)-g.Width:]
	}

	return locale.Degrade(g.Prefix+millis, "column unreadable: "+readErr.Error())
}

func (g Generator) format(n int) string {
	digits := strconv.Itoa(n)
	if len(digits) < g.Width {
		digits = strings.Repeat("0", g.Width-len(digits)) + digits
	}

	return g.Prefix + digits
}
