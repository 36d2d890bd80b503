package entity

// DayTotals sums the kcal of one day, per meal slot and overall. Entries in
// an unrecognised slot count toward Total only.
type DayTotals struct {
	Date      string  `json:"date"`
	Total     float64 `json:"total"`
	Breakfast float64 `json:"breakfast"`
	Lunch     float64 `json:"lunch"`
	Dinner    float64 `json:"dinner"`
	Snack     float64 `json:"snack"`
	Entries   int     `json:"entries"`
}

// Add accounts for one entry.
func (d *DayTotals) Add(e *JournalEntry) {
	d.Total += e.Kcal
	d.Entries++

	slot, ok := ClassifyMeal(e.Meal)
	if !ok {
		return
	}

	switch slot {
	case MealBreakfast:
		d.Breakfast += e.Kcal
	case MealLunch:
		d.Lunch += e.Kcal
	case MealDinner:
		d.Dinner += e.Kcal
	case MealSnack:
		d.Snack += e.Kcal
	}
}
