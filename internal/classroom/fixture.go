package classroom

import (
	"context"

	"student_dashboard/internal/domain"
)

// Fixture serves the demo course and assignment set so the dashboard works
// without a Google connection. Implements Source.
type Fixture struct{}

var fixtureCourses = []domain.Course{
	{ID: "course_math", Name: "Mathematics", Color: "#2563eb"},
	{ID: "course_history", Name: "History", Color: "#9333ea"},
	{ID: "course_english", Name: "English", Color: "#15803d"},
}

var fixtureAssignments = []domain.Task{
	{
		ID:         domain.RemoteIDPrefix + "a1",
		CourseID:   "course_math",
		CourseName: "Mathematics",
		Title:      "Fractions worksheet",
		DueText:    "Tomorrow",
		DueDate:    domain.NewDueDate("2026-01-12"),
		Status:     domain.StatusPending,
		Origin:     domain.OriginRemote,
	},
	{
		ID:         domain.RemoteIDPrefix + "a2",
		CourseID:   "course_math",
		CourseName: "Mathematics",
		Title:      "Practice exercises – decimals",
		DueText:    "In 3 days",
		DueDate:    domain.NewDueDate("2026-01-15"),
		Status:     domain.StatusInProgress,
		Origin:     domain.OriginRemote,
	},
	{
		ID:         domain.RemoteIDPrefix + "a3",
		CourseID:   "course_history",
		CourseName: "History",
		Title:      "Short essay: Roman Empire",
		DueText:    "Friday",
		DueDate:    domain.NewDueDate("2026-01-14"),
		Status:     domain.StatusPending,
		Origin:     domain.OriginRemote,
	},
	{
		ID:         domain.RemoteIDPrefix + "a4",
		CourseID:   "course_english",
		CourseName: "English",
		Title:      "Reading comprehension submission",
		DueText:    "Submitted",
		DueDate:    domain.NewDueDate("2026-01-09"),
		Status:     domain.StatusSubmitted,
		Origin:     domain.OriginRemote,
	},
}

func (Fixture) Courses(ctx context.Context) ([]domain.Course, error) {
	out := make([]domain.Course, len(fixtureCourses))
	copy(out, fixtureCourses)
	return out, nil
}

func (Fixture) Assignments(ctx context.Context) ([]CourseAssignments, error) {
	var groups []CourseAssignments
	for _, course := range fixtureCourses {
		group := CourseAssignments{Course: course}
		for _, a := range fixtureAssignments {
			if a.CourseID == course.ID {
				group.Tasks = append(group.Tasks, a)
			}
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// FixtureCourseColor returns the demo color table entry for a course id.
// Checked first by the color resolver.
func FixtureCourseColor(courseID string) (string, bool) {
	for _, c := range fixtureCourses {
		if c.ID == courseID {
			return c.Color, true
		}
	}
	return "", false
}
