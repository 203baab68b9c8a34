package service

import (
	"math"
	"sort"
	"time"

	"student_dashboard/internal/domain"
)

// Summary holds the dashboard headline numbers.
type Summary struct {
	Total           int `json:"total"`
	Completed       int `json:"completed"`
	Pending         int `json:"pending"`
	ProgressPercent int `json:"progress_percent"`
	DueToday        int `json:"due_today"`
	DueThisWeek     int `json:"due_this_week"`
}

const recentlySubmittedCap = 10

// Summarize computes counts and percentages over the merged task set.
// Completed counts SUBMITTED; pending counts PENDING and IN_PROGRESS.
// Due counts skip SUBMITTED tasks — the classifier itself is status-blind.
func Summarize(tasks []domain.Task, now time.Time) Summary {
	var s Summary
	s.Total = len(tasks)

	for _, t := range tasks {
		switch t.Status {
		case domain.StatusSubmitted:
			s.Completed++
			continue
		case domain.StatusPending, domain.StatusInProgress:
			s.Pending++
		}

		switch Classify(t.DueDate, now) {
		case BucketToday:
			s.DueToday++
			s.DueThisWeek++
		case BucketThisWeek:
			s.DueThisWeek++
		}
	}

	if s.Total > 0 {
		s.ProgressPercent = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}
	return s
}

// PendingAssignments returns PENDING and IN_PROGRESS tasks ascending by due
// date, tasks without a date last.
func PendingAssignments(tasks []domain.Task) []domain.Task {
	var out []domain.Task
	for _, t := range tasks {
		if t.Status == domain.StatusPending || t.Status == domain.StatusInProgress {
			out = append(out, t)
		}
	}
	sortByDue(out, true)
	return out
}

// UpcomingDeadlines returns non-SUBMITTED tasks due between now and now+14
// days inclusive, ascending by due date.
func UpcomingDeadlines(tasks []domain.Task, now time.Time) []domain.Task {
	today := midnight(now)
	horizon := today.AddDate(0, 0, 14)

	var out []domain.Task
	for _, t := range tasks {
		if t.Status == domain.StatusSubmitted {
			continue
		}
		due, ok := t.DueDate.Time()
		if !ok {
			continue
		}
		if !due.Before(today) && !due.After(horizon) {
			out = append(out, t)
		}
	}
	sortByDue(out, true)
	return out
}

// RecentlySubmitted returns SUBMITTED tasks whose due date is within the
// trailing 7 days, newest first, capped at 10. The due date stands in for
// the submission time — no true submission timestamp exists — so tasks
// without a date are included rather than guessed at.
func RecentlySubmitted(tasks []domain.Task, now time.Time) []domain.Task {
	cutoff := midnight(now).AddDate(0, 0, -7)

	var out []domain.Task
	for _, t := range tasks {
		if t.Status != domain.StatusSubmitted {
			continue
		}
		due, ok := t.DueDate.Time()
		if ok && due.Before(cutoff) {
			continue
		}
		out = append(out, t)
	}
	sortByDue(out, false)

	if len(out) > recentlySubmittedCap {
		out = out[:recentlySubmittedCap]
	}
	return out
}

// sortByDue orders tasks by due date; tasks without a date always sort last,
// whichever direction.
func sortByDue(tasks []domain.Task, ascending bool) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, aok := tasks[i].DueDate.Time()
		b, bok := tasks[j].DueDate.Time()
		if !aok || !bok {
			return aok
		}
		if ascending {
			return a.Before(b)
		}
		return a.After(b)
	})
}
