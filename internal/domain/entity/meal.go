package entity

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MealSlot is one of the four meals tracked by the day totals.
type MealSlot string

const (
	MealBreakfast MealSlot = "breakfast"
	MealLunch     MealSlot = "lunch"
	MealDinner    MealSlot = "dinner"
	MealSnack     MealSlot = "snack"
)

var mealAliases = map[string]MealSlot{
	"petit dejeuner": MealBreakfast,
	"petitdejeuner":  MealBreakfast,
	"breakfast":      MealBreakfast,
	"dejeuner":       MealLunch,
	"lunch":          MealLunch,
	"diner":          MealDinner,
	"dinner":         MealDinner,
	"souper":         MealDinner,
	"collation":      MealSnack,
	"encas":          MealSnack,
	"en cas":         MealSnack,
	"gouter":         MealSnack,
	"snack":          MealSnack,
}

// ClassifyMeal maps a free-text meal name to a slot, ignoring case, accents
// and hyphens. Unknown names report false.
func ClassifyMeal(name string) (MealSlot, bool) {
	slot, ok := mealAliases[foldMeal(name)]

	return slot, ok
}

func foldMeal(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	folded = strings.ToLower(folded)
	folded = strings.NewReplacer("-", " ", "_", " ").Replace(folded)

	return strings.Join(strings.Fields(folded), " ")
}
