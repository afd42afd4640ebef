package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"holdhive/internal/domains/rental/pricing"
	"holdhive/shared/failure"
)

func TestTotal(t *testing.T) {
	tests := []struct {
		name     string
		rate     string
		days     int
		want     string
		wantKind failure.Kind
	}{
		{
			name: "short stay pays the monthly floor",
			rate: "300",
			days: 10,
			want: "300",
		},
		{
			name: "exactly thirty days pays one month",
			rate: "300",
			days: 30,
			want: "300",
		},
		{
			name: "long stay pays pro rata per day",
			rate: "300",
			days: 45,
			want: "450",
		},
		{
			name: "single day still pays a full month",
			rate: "150",
			days: 1,
			want: "150",
		},
		{
			name: "one extra day adds one daily rate",
			rate: "90",
			days: 31,
			want: "93",
		},
		{
			name:     "zero days rejected",
			rate:     "300",
			days:     0,
			wantKind: failure.KindInvalidRange,
		},
		{
			name:     "negative days rejected",
			rate:     "300",
			days:     -5,
			wantKind: failure.KindInvalidRange,
		},
		{
			name:     "zero rate rejected",
			rate:     "0",
			days:     30,
			wantKind: failure.KindInvalidRate,
		},
		{
			name:     "negative rate rejected",
			rate:     "-300",
			days:     30,
			wantKind: failure.KindInvalidRate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := pricing.Total(decimal.RequireFromString(tt.rate), tt.days)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, failure.IsKind(err, tt.wantKind))

				return
			}

			assert.NoError(t, err)
			assert.True(t, total.Equal(decimal.RequireFromString(tt.want)),
				"expected %s, got %s", tt.want, total.String())
		})
	}
}
