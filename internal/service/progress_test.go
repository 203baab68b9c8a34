package service

import (
	"fmt"
	"testing"
	"time"

	"student_dashboard/internal/domain"
)

func task(id string, status domain.Status, due string) domain.Task {
	t := domain.Task{ID: id, Title: id, Status: status}
	if due != "" {
		t.DueDate = domain.NewDueDate(due)
	}
	return t
}

func TestSummarize(t *testing.T) {
	now := time.Date(2026, time.January, 12, 10, 0, 0, 0, time.Local) // Monday
	tasks := []domain.Task{
		task("a", domain.StatusPending, "2026-01-12"),    // today
		task("b", domain.StatusInProgress, "2026-01-16"), // this week
		task("c", domain.StatusPending, "2026-01-25"),    // later
		task("d", domain.StatusSubmitted, "2026-01-12"),  // submitted, excluded from due counts
	}

	s := Summarize(tasks, now)
	if s.Total != 4 || s.Completed != 1 || s.Pending != 3 {
		t.Fatalf("unexpected counts: %+v", s)
	}
	if s.ProgressPercent != 25 {
		t.Fatalf("expected 25%%, got %d", s.ProgressPercent)
	}
	if s.DueToday != 1 {
		t.Fatalf("expected 1 due today, got %d", s.DueToday)
	}
	// "due this week" includes today's.
	if s.DueThisWeek != 2 {
		t.Fatalf("expected 2 due this week, got %d", s.DueThisWeek)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, time.Now())
	if s.ProgressPercent != 0 {
		t.Fatalf("expected 0%% on empty set, got %d", s.ProgressPercent)
	}
}

func TestSummarize_Rounding(t *testing.T) {
	tasks := []domain.Task{
		task("a", domain.StatusSubmitted, ""),
		task("b", domain.StatusPending, ""),
		task("c", domain.StatusPending, ""),
	}
	s := Summarize(tasks, time.Now())
	// 1/3 rounds to 33, not truncates to 33.33.
	if s.ProgressPercent != 33 {
		t.Fatalf("expected 33%%, got %d", s.ProgressPercent)
	}
}

func TestPendingAssignments_Order(t *testing.T) {
	tasks := []domain.Task{
		task("late", domain.StatusPending, "2026-02-01"),
		task("nodate", domain.StatusInProgress, ""),
		task("soon", domain.StatusPending, "2026-01-13"),
		task("done", domain.StatusSubmitted, "2026-01-13"),
	}

	got := PendingAssignments(tasks)
	if len(got) != 3 {
		t.Fatalf("expected 3 pending, got %d", len(got))
	}
	want := []string{"soon", "late", "nodate"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestUpcomingDeadlines_Window(t *testing.T) {
	now := time.Date(2026, time.January, 12, 10, 0, 0, 0, time.Local)
	tasks := []domain.Task{
		task("past", domain.StatusPending, "2026-01-11"),
		task("today", domain.StatusPending, "2026-01-12"),
		task("edge", domain.StatusPending, "2026-01-26"), // exactly 14 days out
		task("beyond", domain.StatusPending, "2026-01-27"),
		task("done", domain.StatusSubmitted, "2026-01-13"),
		task("nodate", domain.StatusPending, ""),
	}

	got := UpcomingDeadlines(tasks, now)
	if len(got) != 2 {
		t.Fatalf("expected 2 upcoming, got %d", len(got))
	}
	if got[0].ID != "today" || got[1].ID != "edge" {
		t.Fatalf("unexpected order: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestRecentlySubmitted_CapAndOrder(t *testing.T) {
	now := time.Date(2026, time.January, 12, 10, 0, 0, 0, time.Local)

	var tasks []domain.Task
	for i := 0; i < 12; i++ {
		tasks = append(tasks, task(
			fmt.Sprintf("s%d", i),
			domain.StatusSubmitted,
			fmt.Sprintf("2026-01-%02d", 6+i%7), // all within the trailing week
		))
	}
	tasks = append(tasks, task("old", domain.StatusSubmitted, "2026-01-01"))
	tasks = append(tasks, task("open", domain.StatusPending, "2026-01-10"))

	got := RecentlySubmitted(tasks, now)
	if len(got) != 10 {
		t.Fatalf("expected cap of 10, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		prev, _ := got[i-1].DueDate.Time()
		cur, _ := got[i].DueDate.Time()
		if cur.After(prev) {
			t.Fatalf("not descending at position %d", i)
		}
	}
	for _, g := range got {
		if g.ID == "old" || g.ID == "open" {
			t.Fatalf("unexpected task %s in result", g.ID)
		}
	}
}

func TestRecentlySubmitted_NoDateIncluded(t *testing.T) {
	now := time.Date(2026, time.January, 12, 10, 0, 0, 0, time.Local)
	tasks := []domain.Task{
		task("nodate", domain.StatusSubmitted, ""),
		task("dated", domain.StatusSubmitted, "2026-01-10"),
	}

	got := RecentlySubmitted(tasks, now)
	if len(got) != 2 {
		t.Fatalf("expected 2, got %d", len(got))
	}
	// Undated entries sort last.
	if got[0].ID != "dated" || got[1].ID != "nodate" {
		t.Fatalf("unexpected order: %s, %s", got[0].ID, got[1].ID)
	}
}
