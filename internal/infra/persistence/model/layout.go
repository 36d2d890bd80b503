// Package model declares the column layout of every sheet of the workbook.
package model

import (
	"nutrisheet/internal/infra/sheets/schema"

	"github.com/pkg/errors"
)

// Field names of the ingredients sheet.
const (
	IngredientCategory      = "category"
	IngredientReference     = "reference"
	IngredientLabel         = "label"
	IngredientNotes         = "notes"
	IngredientSupplier      = "supplier"
	IngredientPackaging     = "packaging"
	IngredientUnit          = "unit"
	IngredientWeightPerUnit = "weightPerUnit"
	IngredientUnitPrice     = "unitPrice"
	IngredientKcal100g      = "kcal100g"
	IngredientPricePerUnit  = "pricePerUnit"
	IngredientKcalPerUnit   = "kcalPerUnit"
	IngredientPricePerKcal  = "pricePerKcal"
)

// Field names of the recipes sheet and of its ingredient slots.
const (
	RecipeNumber       = "number"
	RecipeLabel        = "label"
	RecipeValidated    = "validated"
	RecipePortions     = "portions"
	RecipeInstructions = "instructions"
	RecipeTotalWeight  = "totalWeight"
	RecipeTotalKcal    = "totalKcal"
	RecipeTotalPrice   = "totalPrice"

	LineReference = "reference"
	LineName      = "name"
	LineQuantity  = "quantity"
	LineUnit      = "unit"
	LineKcal      = "kcal"
	LinePrice     = "price"
)

// Field names of the journal sheet.
const (
	JournalDate      = "date"
	JournalMeal      = "meal"
	JournalKind      = "kind"
	JournalReference = "reference"
	JournalQuantity  = "quantity"
	JournalKcal      = "kcal"
	JournalNote      = "note"
)

// Field names of the profile sheet.
const (
	ProfileEmail         = "email"
	ProfileKcalTarget    = "kcalTarget"
	ProfileStartDate     = "startDate"
	ProfileInitialWeight = "initialWeight"
	ProfileTargetWeight  = "targetWeight"
)

// Field names of the menus sheet. Each is a vertical list.
const (
	MenuCategories   = "categories"
	MenuSuppliers    = "suppliers"
	MenuUnits        = "units"
	MenuKcalBuckets  = "kcalBuckets"
	MenuPriceBuckets = "priceBuckets"
)

// SheetNames are the tab names of the workbook.
type SheetNames struct {
	Ingredients string
	Recipes     string
	Journal     string
	Profile     string
	Menus       string
}

// DefaultSheetNames matches the workbook template.
var DefaultSheetNames = SheetNames{
	Ingredients: "ingredients et preparations de base",
	Recipes:     "recettes",
	Journal:     "Journal",
	Profile:     "Profil",
	Menus:       "Menus",
}

// All lists the names in a stable order.
func (n SheetNames) All() []string {
	return []string{n.Ingredients, n.Recipes, n.Journal, n.Profile, n.Menus}
}

// LayoutOptions select the sheet names and who computes derived columns.
// The zero Owner is schema.OwnerClient, so owners are always set explicitly.
type LayoutOptions struct {
	Names             SheetNames
	IngredientDerived schema.Owner
	RecipeTotals      schema.Owner
}

// Layouts holds the validated schema of every sheet.
type Layouts struct {
	Ingredients *schema.Schema
	Recipes     *schema.Schema
	Journal     *schema.Schema
	Profile     *schema.Schema
	Menus       *schema.Schema
}

// NewLayouts builds and validates every layout.
func NewLayouts(opts LayoutOptions) (*Layouts, error) {
	l := &Layouts{
		Ingredients: ingredientSchema(opts.Names.Ingredients).
			WithOwner(opts.IngredientDerived, IngredientPricePerUnit, IngredientKcalPerUnit, IngredientPricePerKcal),
		Recipes: recipeSchema(opts.Names.Recipes).
			WithOwner(opts.RecipeTotals, RecipeTotalWeight, RecipeTotalKcal, RecipeTotalPrice),
		Journal: journalSchema(opts.Names.Journal),
		Profile: profileSchema(opts.Names.Profile),
		Menus:   menuSchema(opts.Names.Menus),
	}

	for _, s := range l.All() {
		if err := s.Validate(); err != nil {
			return nil, errors.Wrap(err, "invalid sheet layout")
		}
	}

	return l, nil
}

// All lists the layouts in the order of SheetNames.All.
func (l *Layouts) All() []*schema.Schema {
	return []*schema.Schema{l.Ingredients, l.Recipes, l.Journal, l.Profile, l.Menus}
}

func ingredientSchema(sheet string) *schema.Schema {
	return &schema.Schema{
		Sheet:    sheet,
		FirstRow: 2,
		LastRow:  1000,
		Required: IngredientLabel,
		Fields: []schema.Field{
			{Name: IngredientCategory, Column: 1},
			{Name: IngredientReference, Column: 2, Literal: true},
			{Name: IngredientLabel, Column: 3},
			{Name: IngredientNotes, Column: 4},
			{Name: IngredientSupplier, Column: 5},
			{Name: IngredientPackaging, Column: 6},
			{Name: IngredientUnit, Column: 7},
			{Name: IngredientWeightPerUnit, Column: 8, Kind: schema.Number},
			{Name: IngredientUnitPrice, Column: 9, Kind: schema.Number},
			{Name: IngredientKcal100g, Column: 10, Kind: schema.Number},
			{Name: IngredientPricePerUnit, Column: 11, Kind: schema.Number, Owner: schema.OwnerFormula},
			{Name: IngredientKcalPerUnit, Column: 12, Kind: schema.Number, Owner: schema.OwnerFormula},
			{Name: IngredientPricePerKcal, Column: 13, Kind: schema.Number, Owner: schema.OwnerFormula},
		},
	}
}

func recipeSchema(sheet string) *schema.Schema {
	return &schema.Schema{
		Sheet:    sheet,
		FirstRow: 2,
		LastRow:  1000,
		Required: RecipeLabel,
		Fields: []schema.Field{
			{Name: RecipeNumber, Column: 1},
			{Name: RecipeLabel, Column: 2},
			{Name: RecipeValidated, Column: 3, Kind: schema.Bool},
			{Name: RecipePortions, Column: 4, Kind: schema.Number},
			{Name: RecipeInstructions, Column: 5},
			{Name: RecipeTotalWeight, Column: 6, Kind: schema.Number, Owner: schema.OwnerFormula},
			{Name: RecipeTotalKcal, Column: 7, Kind: schema.Number, Owner: schema.OwnerFormula},
			{Name: RecipeTotalPrice, Column: 8, Kind: schema.Number, Owner: schema.OwnerFormula},
		},
		Group: &schema.Group{
			StartColumn: 9,
			Width:       6,
			MaxGroups:   15,
			Keys:        []string{LineReference, LineName},
			Fields: []schema.Field{
				{Name: LineReference, Column: 1, Literal: true},
				{Name: LineName, Column: 2},
				{Name: LineQuantity, Column: 3, Kind: schema.Number},
				{Name: LineUnit, Column: 4},
				{Name: LineKcal, Column: 5, Kind: schema.Number},
				{Name: LinePrice, Column: 6, Kind: schema.Number},
			},
		},
	}
}

func journalSchema(sheet string) *schema.Schema {
	return &schema.Schema{
		Sheet:    sheet,
		FirstRow: 2,
		LastRow:  1000,
		Required: JournalDate,
		Fields: []schema.Field{
			{Name: JournalDate, Column: 1, Kind: schema.Date},
			{Name: JournalMeal, Column: 2},
			{Name: JournalKind, Column: 3},
			{Name: JournalReference, Column: 4, Literal: true},
			{Name: JournalQuantity, Column: 5, Kind: schema.Number},
			{Name: JournalKcal, Column: 6, Kind: schema.Number},
			{Name: JournalNote, Column: 7},
		},
	}
}

func profileSchema(sheet string) *schema.Schema {
	return &schema.Schema{
		Sheet:    sheet,
		FirstRow: 2,
		LastRow:  10,
		Required: ProfileEmail,
		Fields: []schema.Field{
			{Name: ProfileEmail, Column: 1},
			{Name: ProfileKcalTarget, Column: 2, Kind: schema.Number},
			{Name: ProfileStartDate, Column: 3, Kind: schema.Date},
			{Name: ProfileInitialWeight, Column: 4, Kind: schema.Number},
			{Name: ProfileTargetWeight, Column: 5, Kind: schema.Number},
		},
	}
}

func menuSchema(sheet string) *schema.Schema {
	return &schema.Schema{
		Sheet:    sheet,
		FirstRow: 2,
		LastRow:  200,
		Fields: []schema.Field{
			{Name: MenuCategories, Column: 1},
			{Name: MenuSuppliers, Column: 2},
			{Name: MenuUnits, Column: 3},
			{Name: MenuKcalBuckets, Column: 4},
			{Name: MenuPriceBuckets, Column: 5},
		},
	}
}
