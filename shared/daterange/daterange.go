// Package daterange holds the single overlap predicate used everywhere a
// rental timeline is tested: listing filtering, per-listing availability
// checks, and new-rental admission. Keeping one phrasing avoids contradictory
// answers near shared boundary dates.
package daterange

import (
	"fmt"
	"time"

	"holdhive/shared/constant"
	"holdhive/shared/failure"
)

// Range is a closed range of calendar dates; both Start and End are rented
// days. A rental ending on day D conflicts with one starting on day D:
// the shared day is contested, so same-day turnover is rejected.
type Range struct {
	Start time.Time
	End   time.Time
}

// New builds a Range and rejects inverted input. A start after its end is
// always a caller bug and is never silently swapped.
func New(start, end time.Time) (Range, error) {
	if start.After(end) {
		return Range{}, failure.InvalidRange(fmt.Sprintf(
			"start date %s is after end date %s",
			start.Format(constant.DateOnlyFormat),
			end.Format(constant.DateOnlyFormat),
		))
	}

	return Range{Start: truncate(start), End: truncate(end)}, nil
}

// Parse builds a Range from two YYYY-MM-DD strings.
func Parse(start, end string) (Range, error) {
	startDate, err := time.Parse(constant.DateOnlyFormat, start)
	if err != nil {
		return Range{}, failure.InvalidRange("invalid start date: " + start)
	}

	endDate, err := time.Parse(constant.DateOnlyFormat, end)
	if err != nil {
		return Range{}, failure.InvalidRange("invalid end date: " + end)
	}

	return New(startDate, endDate)
}

// Overlaps reports whether two closed date ranges intersect:
// a1 <= b2 AND a2 >= b1. The SQL rendering of this predicate is
// "start_date <= :end AND end_date >= :start"; no other phrasing may be
// used anywhere.
func (r Range) Overlaps(other Range) bool {
	return !r.Start.After(other.End) && !r.End.Before(other.Start)
}

// Days returns the inclusive span in days; a single-day range counts as 1.
func (r Range) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// StartString returns the start date as YYYY-MM-DD.
func (r Range) StartString() string {
	return r.Start.Format(constant.DateOnlyFormat)
}

// EndString returns the end date as YYYY-MM-DD.
func (r Range) EndString() string {
	return r.End.Format(constant.DateOnlyFormat)
}

// ConflictsAny reports whether the candidate range overlaps any existing
// range. An empty existing set never conflicts.
func ConflictsAny(existing []Range, candidate Range) bool {
	for _, r := range existing {
		if candidate.Overlaps(r) {
			return true
		}
	}

	return false
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
