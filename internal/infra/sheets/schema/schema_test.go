package schema

import (
	"strconv"
	"testing"

	"nutrisheet/internal/infra/sheets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recipeLikeSchema() *Schema {
	return &Schema{
		Sheet:    "recettes",
		FirstRow: 2,
		LastRow:  1000,
		Required: "label",
		Fields: []Field{
			{Name: "number", Column: 1, Kind: Text},
			{Name: "label", Column: 2, Kind: Text},
			{Name: "validated", Column: 3, Kind: Bool},
			{Name: "portions", Column: 4, Kind: Number},
			{Name: "instructions", Column: 5, Kind: Text},
			{Name: "weight", Column: 6, Kind: Number, Owner: OwnerFormula},
			{Name: "kcal", Column: 7, Kind: Number, Owner: OwnerFormula},
			{Name: "price", Column: 8, Kind: Number, Owner: OwnerFormula},
		},
		Group: &Group{
			StartColumn: 9,
			Width:       6,
			MaxGroups:   15,
			Keys:        []string{"ref", "name"},
			Fields: []Field{
				{Name: "ref", Column: 1, Kind: Text},
				{Name: "name", Column: 2, Kind: Text},
				{Name: "quantity", Column: 3, Kind: Number},
				{Name: "unit", Column: 4, Kind: Text},
				{Name: "kcal", Column: 5, Kind: Number},
				{Name: "price", Column: 6, Kind: Number},
			},
		},
	}
}

func TestSchema_Validate(t *testing.T) {
	require.NoError(t, recipeLikeSchema().Validate())

	overlapping := recipeLikeSchema()
	overlapping.Fields = append(overlapping.Fields, Field{Name: "extra", Column: 9})
	assert.ErrorContains(t, overlapping.Validate(), "column I")

	badRequired := recipeLikeSchema()
	badRequired.Required = "title"
	assert.Error(t, badRequired.Validate())

	wideField := recipeLikeSchema()
	wideField.Group.Fields[0].Column = 7
	assert.Error(t, wideField.Validate())
}

func TestSchema_Ranges(t *testing.T) {
	s := recipeLikeSchema()

	assert.Equal(t, 98, s.LastColumn())
	assert.Equal(t, "A2:CT1000", s.DataRange())
	assert.Equal(t, "A7:CT7", s.RowRange(7))
	assert.Equal(t, "B2:B1000", s.ColumnRange("label"))
	assert.Equal(t, 5, s.RowNumber(3))
}

func TestSchema_WithOwner(t *testing.T) {
	s := recipeLikeSchema()
	client := s.WithOwner(OwnerClient, "weight", "kcal", "price")

	assert.True(t, client.Owns("kcal"))
	assert.False(t, s.Owns("kcal"), "original schema must not change")
}

func TestDecode_DropsRowWithoutRequiredField(t *testing.T) {
	_, ok := Decode(recipeLikeSchema(), 2, []any{"R001", "  ", "TRUE"})
	assert.False(t, ok)

	rec, ok := Decode(recipeLikeSchema(), 3, []any{"R002", "Soupe"})
	require.True(t, ok)
	assert.Equal(t, 3, rec.Row)
	assert.Equal(t, "Soupe", rec.Fields.Text("label"))
	assert.Empty(t, rec.Groups)
}

func TestDecode_GroupsNeedReferenceAndName(t *testing.T) {
	cells := []any{"R001", "Salade", "FALSE", "2", "", "", "", "",
		"0001", "Tomate", "200", "g", "36", "0,80",
		"0002", "", "100", "g", "10", "1",
		"", "Sel", "2", "g", "0", "0",
		"0004", "Huile", "1,5", "cs", "135", "0,2",
	}

	rec, ok := Decode(recipeLikeSchema(), 2, cells)
	require.True(t, ok)
	require.Len(t, rec.Groups, 2)
	assert.Equal(t, "Tomate", rec.Groups[0].Text("name"))
	assert.InDelta(t, 0.8, rec.Groups[0].Number("price"), 1e-9)
	assert.Equal(t, "Huile", rec.Groups[1].Text("name"))
	assert.InDelta(t, 1.5, rec.Groups[1].Number("quantity"), 1e-9)
	assert.InDelta(t, 2.0, rec.Fields.Number("portions"), 1e-9)
}

func TestDecode_RecordsIssues(t *testing.T) {
	rec, ok := Decode(recipeLikeSchema(), 4, []any{"R001", "Soupe", "peut-être", "deux"})
	require.True(t, ok)

	assert.False(t, rec.Fields.Bool("validated"))
	assert.Zero(t, rec.Fields.Number("portions"))
	require.Len(t, rec.Issues, 2)
	assert.Equal(t, "C4", rec.Issues[0].Cell)
	assert.Equal(t, "D4", rec.Issues[1].Cell)
}

func TestEncode_FormulaColumnsArePlaceholders(t *testing.T) {
	rec := NewRecord(0)
	rec.Fields["number"] = "R003"
	rec.Fields["label"] = "Gratin"
	rec.Fields["portions"] = 4.0
	rec.Fields["kcal"] = 1200.0

	row := Encode(recipeLikeSchema(), rec)
	require.Len(t, row, 98)
	assert.Equal(t, "R003", row[0])
	assert.Equal(t, 4.0, row[3])
	assert.Equal(t, "", row[6], "formula-owned kcal must stay blank")

	client := recipeLikeSchema().WithOwner(OwnerClient, "kcal")
	assert.Equal(t, 1200.0, Encode(client, rec)[6])
}

func TestEncode_LiteralText(t *testing.T) {
	s := &Schema{Sheet: "x", FirstRow: 2, LastRow: 10, Fields: []Field{
		{Name: "ref", Column: 1, Kind: Text, Literal: true},
		{Name: "date", Column: 2, Kind: Date},
	}}
	rec := NewRecord(0)
	rec.Fields["ref"] = "0042"
	rec.Fields["date"] = "2025-07-25"

	assert.Equal(t, []any{"'0042", "25/07/2025"}, Encode(s, rec))
}

func TestEncodeOwned_BlanksUnusedSlots(t *testing.T) {
	s := recipeLikeSchema()
	rec := NewRecord(6)
	rec.Fields["number"] = "R004"
	rec.Fields["label"] = "Curry"
	rec.Fields["portions"] = 2.0
	rec.Groups = []Values{
		{"ref": "0001", "name": "Riz", "quantity": 150.0, "unit": "g", "kcal": 520.0, "price": 0.3},
		{"ref": "0007", "name": "Lait de coco", "quantity": 200.0, "unit": "mL", "kcal": 380.0, "price": 1.1},
	}

	cells := EncodeOwned(s, rec)

	// 5 client-owned header fields plus 15 blocks of 6 cells.
	require.Len(t, cells, 5+15*6)

	byAddress := map[string]any{}
	for _, c := range cells {
		byAddress[c.Address] = c.Value
	}

	assert.NotContains(t, byAddress, "F6", "formula-owned totals are never written")
	assert.NotContains(t, byAddress, "G6")
	assert.NotContains(t, byAddress, "H6")
	assert.Equal(t, "Curry", byAddress["B6"])
	assert.Equal(t, "0001", byAddress["I6"])
	assert.Equal(t, "Lait de coco", byAddress["P6"])

	// Slots 3 to 15 are blanked, from U6 to CT6.
	for slot := 3; slot <= 15; slot++ {
		start := 9 + (slot-1)*6
		for col := start; col < start+6; col++ {
			addr := sheets.ColumnLetter(col) + "6"
			assert.Equal(t, "", byAddress[addr], "slot %d %s", slot, addr)
		}
	}
	assert.Contains(t, byAddress, "CT6")
}

func TestRecipeRoundTrip(t *testing.T) {
	s := recipeLikeSchema().WithOwner(OwnerClient, "weight", "kcal", "price")

	rec := NewRecord(9)
	rec.Fields = Values{
		"number":       "R010",
		"label":        "Tajine",
		"validated":    true,
		"portions":     6.0,
		"instructions": "Mijoter 2h",
		"weight":       2400.0,
		"kcal":         3100.5,
		"price":        18.4,
	}
	for i := range 15 {
		n := strconv.Itoa(i + 1)
		rec.Groups = append(rec.Groups, Values{
			"ref":      "00" + n,
			"name":     "Ingrédient " + n,
			"quantity": float64(10 * (i + 1)),
			"unit":     "g",
			"kcal":     float64(i + 1),
			"price":    0.25 * float64(i+1),
		})
	}

	decoded, ok := Decode(s, 9, Encode(s, rec))
	require.True(t, ok)
	assert.Equal(t, rec.Fields, decoded.Fields)
	assert.Equal(t, rec.Groups, decoded.Groups)
	assert.Empty(t, decoded.Issues)

	// A partially filled record decodes back without the empty blocks.
	rec.Groups = rec.Groups[:4]
	decoded, ok = Decode(s, 9, Encode(s, rec))
	require.True(t, ok)
	assert.Equal(t, rec.Groups, decoded.Groups)
}

func TestBlankRow(t *testing.T) {
	row := BlankRow(recipeLikeSchema())
	require.Len(t, row, 98)
	for _, v := range row {
		assert.Equal(t, "", v)
	}
}

func TestParseOwner(t *testing.T) {
	owner, err := ParseOwner("client")
	require.NoError(t, err)
	assert.Equal(t, OwnerClient, owner)

	owner, err = ParseOwner("")
	require.NoError(t, err)
	assert.Equal(t, OwnerFormula, owner)

	_, err = ParseOwner("spreadsheet")
	assert.Error(t, err)
}
