// Package classroom supplies the read-only assignment data the dashboard
// merges with locally authored tasks: either live Google Classroom course
// work or a built-in demo fixture set. The two are mutually exclusive per
// request.
package classroom

import (
	"context"

	"student_dashboard/internal/domain"
)

// CourseAssignments groups one course's assignments, in fetch order.
type CourseAssignments struct {
	Course domain.Course `json:"course"`
	Tasks  []domain.Task `json:"tasks"`
}

// Source yields courses and their assignments. Implementations return
// remote-origin tasks with gc_-prefixed ids; nothing here is ever persisted.
type Source interface {
	Courses(ctx context.Context) ([]domain.Course, error)
	Assignments(ctx context.Context) ([]CourseAssignments, error)
}
