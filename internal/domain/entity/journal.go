package entity

import "strings"

// EntryKind says what a journal entry refers to.
type EntryKind string

const (
	EntryIngredient EntryKind = "ingredient"
	EntryRecipe     EntryKind = "recette"
	EntryManual     EntryKind = "manuel"
	EntryNote       EntryKind = "note"
)

// ParseEntryKind reads the kind column. English spellings are accepted;
// anything unknown is kept as is and reported as not ok.
func ParseEntryKind(s string) (EntryKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ingredient", "ingrédient":
		return EntryIngredient, true
	case "recette", "recipe":
		return EntryRecipe, true
	case "manuel", "manual":
		return EntryManual, true
	case "note":
		return EntryNote, true
	default:
		return EntryKind(strings.TrimSpace(s)), false
	}
}

// JournalEntry is a row of the food journal.
type JournalEntry struct {
	ID        int       `json:"id"`       // Row number on the sheet.
	Date      string    `json:"date"`     // ISO date.
	RawDate   string    `json:"raw_date"` // Date as stored on the sheet.
	Meal      string    `json:"meal"`     // Meal slot, free text (Déjeuner, Collation, ...).
	Kind      EntryKind `json:"kind"`
	Reference string    `json:"reference"` // Ingredient reference, recipe number or manual label.
	Quantity  float64   `json:"quantity"`
	Kcal      float64   `json:"kcal"`
	Note      string    `json:"note"`
}
