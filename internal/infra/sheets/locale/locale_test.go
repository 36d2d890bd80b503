package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in       string
		want     string
		degraded bool
	}{
		{in: "25/07/2025", want: "2025-07-25"},
		{in: "5/7/2025", want: "2025-07-05"},
		{in: " 01/01/2024 ", want: "2024-01-01"},
		{in: "", want: ""},
		{in: "2025-07-25", want: "2025-07-25", degraded: true},
		{in: "25/07", want: "25/07", degraded: true},
		{in: "aa/07/2025", want: "2025-07-aa", degraded: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseDate(tt.in)
			assert.Equal(t, tt.want, got.Value)
			assert.Equal(t, tt.degraded, got.Degraded)
		})
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "25/07/2025", FormatDate("2025-07-25").Value)
	assert.Equal(t, "", FormatDate("").Value)

	got := FormatDate("25/07/2025")
	assert.Equal(t, "25/07/2025", got.Value)
	assert.True(t, got.Degraded)
}

func TestDateRoundTrip(t *testing.T) {
	for _, iso := range []string{"2025-07-25", "1999-12-31", "2024-02-29", "2030-01-09"} {
		formatted := FormatDate(iso)
		assert.False(t, formatted.Degraded)
		assert.Equal(t, iso, ParseDate(formatted.Value).Value)
	}
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2025-07-25", NormalizeDate("25/07/2025").Value)
	assert.Equal(t, "2025-07-25", NormalizeDate("2025-07-25").Value)
	assert.False(t, NormalizeDate("2025-07-25").Degraded)
	assert.True(t, NormalizeDate("july").Degraded)
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name     string
		in       any
		want     float64
		degraded bool
	}{
		{name: "decimal comma", in: "4,50", want: 4.5},
		{name: "empty", in: "", want: 0},
		{name: "native int", in: 7, want: 7},
		{name: "native float", in: 12.25, want: 12.25},
		{name: "nil", in: nil, want: 0},
		{name: "dot", in: "3.75", want: 3.75},
		{name: "negative", in: "-2,5", want: -2.5},
		{name: "thousands space", in: "1 234,5", want: 1234.5},
		{name: "narrow no-break space", in: "1 000", want: 1000},
		{name: "currency suffix", in: "4,50 €", want: 4.5, degraded: true},
		{name: "garbage", in: "abc", want: 0, degraded: true},
		{name: "only sign", in: "-", want: 0, degraded: true},
		{name: "bool", in: true, want: 0, degraded: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseNumber(tt.in)
			assert.InDelta(t, tt.want, got.Value, 1e-9)
			assert.Equal(t, tt.degraded, got.Degraded)
		})
	}
}

func TestParseBool(t *testing.T) {
	for _, in := range []any{true, "TRUE", "vrai", "Oui", "x", 1.0} {
		assert.True(t, ParseBool(in).Value, "%v", in)
	}
	for _, in := range []any{false, "FALSE", "", nil, "non", 0.0} {
		got := ParseBool(in)
		assert.False(t, got.Value, "%v", in)
		assert.False(t, got.Degraded, "%v", in)
	}

	assert.True(t, ParseBool("peut-être").Degraded)
}

func TestCellText(t *testing.T) {
	assert.Equal(t, "", CellText(nil))
	assert.Equal(t, "abc", CellText("abc"))
	assert.Equal(t, "4.5", CellText(4.5))
	assert.Equal(t, "TRUE", CellText(true))
}
