package model

import (
	"testing"

	"nutrisheet/internal/infra/sheets/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLayouts_Ranges(t *testing.T) {
	layouts, err := NewLayouts(LayoutOptions{Names: DefaultSheetNames})
	require.NoError(t, err)

	assert.Equal(t, "A2:M1000", layouts.Ingredients.DataRange())
	assert.Equal(t, "A2:CT1000", layouts.Recipes.DataRange())
	assert.Equal(t, "A2:G1000", layouts.Journal.DataRange())
	assert.Equal(t, "A2:E10", layouts.Profile.DataRange())
	assert.Equal(t, "A2:E200", layouts.Menus.DataRange())
	assert.Equal(t, "B2:B1000", layouts.Ingredients.ColumnRange(IngredientReference))
}

func TestNewLayouts_Ownership(t *testing.T) {
	formula, err := NewLayouts(LayoutOptions{
		Names:             DefaultSheetNames,
		IngredientDerived: schema.OwnerFormula,
		RecipeTotals:      schema.OwnerFormula,
	})
	require.NoError(t, err)
	assert.False(t, formula.Recipes.Owns(RecipeTotalKcal))
	assert.False(t, formula.Ingredients.Owns(IngredientPricePerKcal))
	assert.True(t, formula.Recipes.Owns(RecipeLabel))

	client, err := NewLayouts(LayoutOptions{
		Names:             DefaultSheetNames,
		IngredientDerived: schema.OwnerClient,
		RecipeTotals:      schema.OwnerClient,
	})
	require.NoError(t, err)
	assert.True(t, client.Recipes.Owns(RecipeTotalKcal))
	assert.True(t, client.Ingredients.Owns(IngredientKcalPerUnit))
}

func TestNewLayouts_RejectsMissingSheetName(t *testing.T) {
	_, err := NewLayouts(LayoutOptions{})
	assert.Error(t, err)
}
