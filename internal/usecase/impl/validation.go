package impl

import (
	"fmt"
	"math"
	"strings"
	"time"

	domainerrors "nutrisheet/internal/domain/errors"

	"github.com/pkg/errors"
)

const isoDate = "2006-01-02"

func validationError(format string, args ...any) error {
	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf(format, args...)))
}

func notFound(err error, format string, args ...any) error {
	return errors.Wrap(domainerrors.ErrNotFound.WithDetails(fmt.Sprintf(format, args...)), err.Error())
}

// parseDate checks an ISO date input.
func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(isoDate, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, validationError("%s must be a YYYY-MM-DD date, got %q", field, value)
	}

	return t, nil
}

func roundTo(x float64, places int) float64 {
	p := math.Pow(10, float64(places))

	return math.Round(x*p) / p
}
