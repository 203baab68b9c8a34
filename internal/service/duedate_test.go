package service

import (
	"testing"
	"time"

	"student_dashboard/internal/domain"
)

// monday is a fixed reference Monday used across classifier tests.
var monday = time.Date(2026, time.January, 12, 15, 30, 0, 0, time.Local)

func TestClassify_Today(t *testing.T) {
	got := Classify(domain.NewDueDate("2026-01-12"), monday)
	if got != BucketToday {
		t.Fatalf("expected today, got %s", got)
	}
}

func TestClassify_ThisWeek(t *testing.T) {
	// Friday of the same week; Monday leaves 6 days until end of week.
	got := Classify(domain.NewDueDate("2026-01-16"), monday)
	if got != BucketThisWeek {
		t.Fatalf("expected thisWeek, got %s", got)
	}
}

func TestClassify_WeekBoundary(t *testing.T) {
	// Sunday 2026-01-18 is exactly 6 days out: still this week.
	if got := Classify(domain.NewDueDate("2026-01-18"), monday); got != BucketThisWeek {
		t.Fatalf("expected thisWeek at boundary, got %s", got)
	}
	// Next Monday falls outside the window.
	if got := Classify(domain.NewDueDate("2026-01-19"), monday); got != BucketLater {
		t.Fatalf("expected later past boundary, got %s", got)
	}
}

func TestClassify_Later(t *testing.T) {
	got := Classify(domain.NewDueDate("2026-01-20"), monday)
	if got != BucketLater {
		t.Fatalf("expected later, got %s", got)
	}
}

func TestClassify_OverdueIsLater(t *testing.T) {
	got := Classify(domain.NewDueDate("2026-01-05"), monday)
	if got != BucketLater {
		t.Fatalf("expected overdue to classify as later, got %s", got)
	}
}

func TestClassify_NoDueDate(t *testing.T) {
	if got := Classify(nil, monday); got != BucketNone {
		t.Fatalf("expected none for nil due date, got %s", got)
	}
	if got := Classify(domain.NewDueDate("not a date"), monday); got != BucketNone {
		t.Fatalf("expected none for unparseable due date, got %s", got)
	}
}

func TestClassify_SundayWindowIsEmpty(t *testing.T) {
	sunday := time.Date(2026, time.January, 18, 9, 0, 0, 0, time.Local)

	if got := Classify(domain.NewDueDate("2026-01-18"), sunday); got != BucketToday {
		t.Fatalf("expected today on Sunday itself, got %s", got)
	}
	// Tomorrow is Monday of the next week; on Sunday nothing can be thisWeek.
	if got := Classify(domain.NewDueDate("2026-01-19"), sunday); got != BucketLater {
		t.Fatalf("expected later for tomorrow on a Sunday, got %s", got)
	}
}

func TestClassify_StructuredDate(t *testing.T) {
	due := domain.NewStructuredDueDate(2026, 1, 16)
	if got := Classify(due, monday); got != BucketThisWeek {
		t.Fatalf("expected thisWeek for structured date, got %s", got)
	}
}
