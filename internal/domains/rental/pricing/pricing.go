// Package pricing turns a monthly rate into a rental price. Rates are
// quoted per 30-day month; shorter stays pay the 30-day floor, longer
// stays pay pro rata per day.
package pricing

import (
	"fmt"

	"holdhive/shared/failure"

	"github.com/shopspring/decimal"
)

// MinimumDays is the billing floor: any rental shorter than a month is
// charged as a full month.
const MinimumDays = 30

var daysPerMonth = decimal.NewFromInt(MinimumDays)

// Total prices a rental of the given inclusive day span.
// effectiveDays = max(days, 30); total = monthlyRate / 30 * effectiveDays.
func Total(monthlyRate decimal.Decimal, days int) (decimal.Decimal, error) {
	if days <= 0 {
		return decimal.Zero, failure.InvalidRange(fmt.Sprintf("rental span must be positive, got %d days", days)) //nolint:wrapcheck
	}

	if monthlyRate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, failure.InvalidRate("monthly rate must be positive, got " + monthlyRate.String()) //nolint:wrapcheck
	}

	effectiveDays := days
	if effectiveDays < MinimumDays {
		effectiveDays = MinimumDays
	}

	daily := monthlyRate.Div(daysPerMonth)

	return daily.Mul(decimal.NewFromInt(int64(effectiveDays))), nil
}
