package entity

// MaxRecipeLines is the number of ingredient slots a recipe row holds.
const MaxRecipeLines = 15

// Recipe is a row of the recipes sheet.
type Recipe struct {
	ID           int          `json:"id"`           // Row number on the sheet.
	Number       string       `json:"number"`       // Sequence number such as "R011".
	Label        string       `json:"label"`        // Display name, required.
	Validated    bool         `json:"validated"`    // Marked as tried and approved.
	Portions     float64      `json:"portions"`     // Number of portions, at least 1.
	Instructions string       `json:"instructions"` // Preparation steps.
	TotalWeight  float64      `json:"total_weight"` // Grams, sum of the lines.
	TotalKcal    float64      `json:"total_kcal"`   // Sum of the line kcal.
	TotalPrice   float64      `json:"total_price"`  // Sum of the line prices.
	Lines        []RecipeLine `json:"lines"`
}

// RecipeLine is one ingredient slot of a recipe.
type RecipeLine struct {
	Reference string  `json:"reference"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	Kcal      float64 `json:"kcal"`
	Price     float64 `json:"price"`
}

// KcalPerPortion is the energy of one portion, 0 when portions is unset.
func (r *Recipe) KcalPerPortion() float64 {
	if r.Portions <= 0 {
		return 0
	}

	return r.TotalKcal / r.Portions
}
