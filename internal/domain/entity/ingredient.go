// Package entity contains the core business objects of the project.
package entity

import "strings"

// Ingredient is a base ingredient or preparation from the ingredients sheet.
type Ingredient struct {
	ID            int     `json:"id"`              // Row number on the sheet.
	Category      string  `json:"category"`        // Category, one of the menu categories when defined.
	Reference     string  `json:"reference"`       // Unique reference such as "0042".
	Label         string  `json:"label"`           // Display name, required.
	Notes         string  `json:"notes"`           // Free precision notes.
	Supplier      string  `json:"supplier"`        // Where it is bought.
	Packaging     string  `json:"packaging"`       // Packaging description.
	Unit          string  `json:"unit"`            // Unit of sale (g, kg, L, pièce, ...).
	WeightPerUnit float64 `json:"weight_per_unit"` // Grams per unit of sale.
	UnitPrice     float64 `json:"unit_price"`      // Price per kg or litre.
	Kcal100g      float64 `json:"kcal_100g"`       // Energy per 100 g.
	PricePerUnit  float64 `json:"price_per_unit"`  // Derived: price of one unit of sale.
	KcalPerUnit   float64 `json:"kcal_per_unit"`   // Derived: energy of one unit of sale.
	PricePerKcal  float64 `json:"price_per_kcal"`  // Derived: price of one kcal.
}

// ComputeDerived fills the derived columns from the base values.
func (i *Ingredient) ComputeDerived() {
	i.PricePerUnit = i.UnitPrice * i.WeightPerUnit / 1000
	i.KcalPerUnit = i.Kcal100g * i.WeightPerUnit / 100
	i.PricePerKcal = 0
	if i.KcalPerUnit != 0 {
		i.PricePerKcal = i.PricePerUnit / i.KcalPerUnit
	}
}

// Grams converts a quantity expressed in unit to grams. Litres and
// millilitres are taken at the density of water. The ingredient's own unit
// of sale converts through WeightPerUnit; any other unit is read as grams.
func (i *Ingredient) Grams(quantity float64, unit string) float64 {
	switch strings.TrimSpace(unit) {
	case "kg", "L", "l":
		return quantity * 1000
	case "mL", "ml", "g", "":
		return quantity
	}

	if i.WeightPerUnit > 0 && strings.EqualFold(strings.TrimSpace(unit), strings.TrimSpace(i.Unit)) {
		return quantity * i.WeightPerUnit
	}

	return quantity
}

// KcalFor is the energy of a quantity of the ingredient.
func (i *Ingredient) KcalFor(quantity float64, unit string) float64 {
	return i.Kcal100g / 100 * i.Grams(quantity, unit)
}

// PriceFor is the cost of a quantity of the ingredient.
func (i *Ingredient) PriceFor(quantity float64, unit string) float64 {
	return i.UnitPrice * i.Grams(quantity, unit) / 1000
}
