package service

import (
	"math"
	"time"

	"student_dashboard/internal/domain"
)

// Bucket is the due-date category shown on the board.
type Bucket string

const (
	BucketToday    Bucket = "today"
	BucketThisWeek Bucket = "thisWeek"
	BucketLater    Bucket = "later"
	BucketNone     Bucket = "none"
)

// Classify buckets a due date relative to now. Both sides are truncated to
// local midnight before the whole-day difference is taken.
//
// The classifier is status-agnostic. Callers exclude SUBMITTED tasks from
// "due soon" displays themselves; folding that filter in here has burned us
// before (double-filtering in one call site, no filtering in another).
func Classify(due *domain.DueDate, now time.Time) Bucket {
	t, ok := due.Time()
	if !ok {
		return BucketNone
	}

	days := wholeDays(midnight(now), t)
	switch {
	case days == 0:
		return BucketToday
	case days > 0 && days <= daysUntilEndOfWeek(now):
		return BucketThisWeek
	default:
		// Past-due dates land here too, same as anything beyond the week.
		return BucketLater
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// wholeDays rounds so a DST-shortened or -stretched day still counts as one.
func wholeDays(from, to time.Time) int {
	return int(math.Round(to.Sub(from).Hours() / 24))
}

// daysUntilEndOfWeek counts days left in the week under the fixed
// Monday=1…Sunday=7 convention. On Sunday the window is empty: nothing
// qualifies as "thisWeek" that day.
func daysUntilEndOfWeek(now time.Time) int {
	wd := int(now.Weekday())
	if wd == 0 { // time.Sunday
		return 0
	}
	return 7 - wd
}
