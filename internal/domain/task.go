package domain

import (
	"strings"
	"time"
)

// Status of a task on the board.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusSubmitted  Status = "SUBMITTED"
)

// ValidStatus reports whether s is one of the three board statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusSubmitted:
		return true
	}
	return false
}

// Origin tags where a task came from, and with it whether it is mutable.
// Custom tasks are persisted and owner-scoped; remote assignments exist only
// as per-request in-memory records and are never written to the store.
type Origin string

const (
	OriginCustom Origin = "CUSTOM"
	OriginRemote Origin = "REMOTE"
)

// Id prefixes keep task ids globally unique across both origins.
const (
	CustomIDPrefix = "custom_"
	RemoteIDPrefix = "gc_"
)

// Task is the unified record the merge engine produces: either a persisted
// custom task or a transient remote assignment.
type Task struct {
	ID         string    `db:"id" json:"id"`
	OwnerEmail string    `db:"user_email" json:"user_email,omitempty"` // meaningful for CUSTOM only
	CourseID   string    `db:"course_id" json:"course_id"`
	CourseName string    `db:"course_name" json:"course_name"`
	Title      string    `db:"title" json:"title"`
	DueDate    *DueDate  `db:"due_date" json:"due_date"`
	DueText    string    `db:"due_text" json:"due_text,omitempty"` // overrides the computed date display
	Status     Status    `db:"status" json:"status"`
	Origin     Origin    `db:"-" json:"origin"`
	CreatedAt  time.Time `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at,omitzero"`
}

// IsCustomID reports whether a task id names a persisted custom task.
// Remote ids never exist in the store, so this is the test callers use
// before deciding between a persisted write and a transient echo.
func IsCustomID(taskID string) bool {
	return strings.HasPrefix(taskID, CustomIDPrefix)
}
