package domain

import "time"

// Course as seen by the dashboard. Color is set on fixture courses only;
// live Classroom courses carry none and fall back to the resolver default.
type Course struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Section string `json:"section,omitempty"`
	Color   string `json:"color,omitempty"`
}

// CourseColor is a per-user display-color preference, keyed by course name so
// it applies to custom tasks that reference a course by name only.
type CourseColor struct {
	ID         int64     `db:"id" json:"id"`
	OwnerEmail string    `db:"user_email" json:"user_email"`
	CourseName string    `db:"course_name" json:"course_name"`
	Color      string    `db:"color" json:"color"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}
