package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyMeal(t *testing.T) {
	tests := []struct {
		name string
		want MealSlot
		ok   bool
	}{
		{"Petit-déjeuner", MealBreakfast, true},
		{"petit dejeuner", MealBreakfast, true},
		{"PETIT-DÉJEUNER", MealBreakfast, true},
		{"Breakfast", MealBreakfast, true},
		{"Déjeuner", MealLunch, true},
		{"dejeuner", MealLunch, true},
		{"Dîner", MealDinner, true},
		{"diner", MealDinner, true},
		{"Collation", MealSnack, true},
		{"en-cas", MealSnack, true},
		{"Brunch", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClassifyMeal(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDayTotals_Add(t *testing.T) {
	totals := DayTotals{Date: "2025-07-25"}
	for _, e := range []*JournalEntry{
		{Meal: "Petit-déjeuner", Kcal: 350},
		{Meal: "déjeuner", Kcal: 700},
		{Meal: "DÎNER", Kcal: 600},
		{Meal: "Collation", Kcal: 150},
		{Meal: "Brunch", Kcal: 200},
	} {
		totals.Add(e)
	}

	assert.InDelta(t, 2000, totals.Total, 1e-9)
	assert.InDelta(t, 350, totals.Breakfast, 1e-9)
	assert.InDelta(t, 700, totals.Lunch, 1e-9)
	assert.InDelta(t, 600, totals.Dinner, 1e-9)
	assert.InDelta(t, 150, totals.Snack, 1e-9)
	assert.Equal(t, 5, totals.Entries)
}

func TestIngredient_ComputeDerived(t *testing.T) {
	ing := Ingredient{WeightPerUnit: 500, UnitPrice: 3, Kcal100g: 360}
	ing.ComputeDerived()

	assert.InDelta(t, 1.5, ing.PricePerUnit, 1e-9)
	assert.InDelta(t, 1800, ing.KcalPerUnit, 1e-9)
	assert.InDelta(t, 1.5/1800, ing.PricePerKcal, 1e-12)

	water := Ingredient{WeightPerUnit: 1000, UnitPrice: 0.5}
	water.ComputeDerived()
	assert.Zero(t, water.PricePerKcal)
}

func TestIngredient_Grams(t *testing.T) {
	egg := Ingredient{Unit: "pièce", WeightPerUnit: 60, Kcal100g: 140}

	assert.InDelta(t, 1500, egg.Grams(1.5, "kg"), 1e-9)
	assert.InDelta(t, 250, egg.Grams(0.25, "L"), 1e-9)
	assert.InDelta(t, 30, egg.Grams(30, "mL"), 1e-9)
	assert.InDelta(t, 120, egg.Grams(2, "pièce"), 1e-9)
	assert.InDelta(t, 80, egg.Grams(80, "g"), 1e-9)
	assert.InDelta(t, 168, egg.KcalFor(2, "pièce"), 1e-9)
}

func TestParseEntryKind(t *testing.T) {
	kind, ok := ParseEntryKind("Recipe")
	assert.True(t, ok)
	assert.Equal(t, EntryRecipe, kind)

	kind, ok = ParseEntryKind("manual")
	assert.True(t, ok)
	assert.Equal(t, EntryManual, kind)

	kind, ok = ParseEntryKind("plat")
	assert.False(t, ok)
	assert.Equal(t, EntryKind("plat"), kind)
}

func TestAllows(t *testing.T) {
	units := []string{"g", "kg", "pièce"}

	assert.True(t, Allows(units, "KG"))
	assert.True(t, Allows(units, ""))
	assert.True(t, Allows(nil, "litre"))
	assert.False(t, Allows(units, "litre"))
}
