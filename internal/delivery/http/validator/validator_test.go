package validator

import (
	"testing"

	domainerrors "nutrisheet/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	Date  string  `validate:"omitempty,isodate"`
	Label string  `validate:"required"`
	Qty   float64 `validate:"gte=0"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sample{Date: "2025-07-25", Label: "Pomme"}))
	assert.NoError(t, v.Validate(&sample{Label: "Pomme"}))

	err := v.Validate(&sample{Date: "25/07/2025", Label: "Pomme"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.ErrorContains(t, err, "isodate")

	err = v.Validate(&sample{Qty: -1})
	assert.ErrorContains(t, err, "Label")
}
