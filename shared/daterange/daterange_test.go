package daterange_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"holdhive/shared/daterange"
	"holdhive/shared/failure"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return t
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{
			name:  "valid range",
			start: "2025-01-20",
			end:   "2025-01-25",
		},
		{
			name:  "single day range",
			start: "2025-01-20",
			end:   "2025-01-20",
		},
		{
			name:    "inverted range",
			start:   "2025-01-25",
			end:     "2025-01-20",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng, err := daterange.New(date(tt.start), date(tt.end))

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, failure.IsKind(err, failure.KindInvalidRange))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.start, rng.StartString())
				assert.Equal(t, tt.end, rng.EndString())
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{
			name:  "valid dates",
			start: "2025-03-01",
			end:   "2025-03-15",
		},
		{
			name:    "malformed start date",
			start:   "01-03-2025",
			end:     "2025-03-15",
			wantErr: true,
		},
		{
			name:    "malformed end date",
			start:   "2025-03-01",
			end:     "not-a-date",
			wantErr: true,
		},
		{
			name:    "inverted after parsing",
			start:   "2025-03-15",
			end:     "2025-03-01",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := daterange.Parse(tt.start, tt.end)

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, failure.IsKind(err, failure.KindInvalidRange))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRange_Overlaps(t *testing.T) {
	tests := []struct {
		name   string
		a      [2]string
		b      [2]string
		expect bool
	}{
		{
			name:   "disjoint ranges",
			a:      [2]string{"2025-01-01", "2025-01-10"},
			b:      [2]string{"2025-01-11", "2025-01-20"},
			expect: false,
		},
		{
			name:   "strict containment",
			a:      [2]string{"2025-01-01", "2025-01-31"},
			b:      [2]string{"2025-01-10", "2025-01-15"},
			expect: true,
		},
		{
			name:   "partial overlap",
			a:      [2]string{"2025-01-01", "2025-01-15"},
			b:      [2]string{"2025-01-10", "2025-01-25"},
			expect: true,
		},
		{
			// An existing rental ending on a day blocks one starting on
			// that same day.
			name:   "shared boundary day conflicts",
			a:      [2]string{"2025-01-20", "2025-01-25"},
			b:      [2]string{"2025-01-25", "2025-01-30"},
			expect: true,
		},
		{
			name:   "identical ranges",
			a:      [2]string{"2025-01-20", "2025-01-25"},
			b:      [2]string{"2025-01-20", "2025-01-25"},
			expect: true,
		},
		{
			name:   "adjacent with one day gap",
			a:      [2]string{"2025-01-20", "2025-01-24"},
			b:      [2]string{"2025-01-25", "2025-01-30"},
			expect: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := daterange.New(date(tt.a[0]), date(tt.a[1]))
			assert.NoError(t, err)

			b, err := daterange.New(date(tt.b[0]), date(tt.b[1]))
			assert.NoError(t, err)

			assert.Equal(t, tt.expect, a.Overlaps(b))
			assert.Equal(t, tt.expect, b.Overlaps(a), "overlap must be symmetric")
		})
	}
}

func TestRange_Days(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{
			name:  "single day counts as one",
			start: "2025-01-20",
			end:   "2025-01-20",
			want:  1,
		},
		{
			name:  "inclusive span",
			start: "2025-01-01",
			end:   "2025-01-10",
			want:  10,
		},
		{
			name:  "across month boundary",
			start: "2025-01-20",
			end:   "2025-02-18",
			want:  30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng, err := daterange.New(date(tt.start), date(tt.end))
			assert.NoError(t, err)
			assert.Equal(t, tt.want, rng.Days())
		})
	}
}

func TestConflictsAny(t *testing.T) {
	existing := []daterange.Range{
		mustRange(t, "2025-01-01", "2025-01-10"),
		mustRange(t, "2025-02-01", "2025-02-10"),
	}

	tests := []struct {
		name      string
		candidate daterange.Range
		expect    bool
	}{
		{
			name:      "fits between existing rentals",
			candidate: mustRange(t, "2025-01-11", "2025-01-31"),
			expect:    false,
		},
		{
			name:      "touches the first rental's end",
			candidate: mustRange(t, "2025-01-10", "2025-01-31"),
			expect:    true,
		},
		{
			name:      "covers everything",
			candidate: mustRange(t, "2024-12-01", "2025-03-01"),
			expect:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, daterange.ConflictsAny(existing, tt.candidate))
		})
	}

	t.Run("empty existing set never conflicts", func(t *testing.T) {
		assert.False(t, daterange.ConflictsAny(nil, mustRange(t, "2025-01-01", "2025-01-10")))
	})
}

func mustRange(t *testing.T, start, end string) daterange.Range {
	t.Helper()

	rng, err := daterange.Parse(start, end)
	assert.NoError(t, err)

	return rng
}
