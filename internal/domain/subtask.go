package domain

import "time"

// SubtaskIDPrefix namespaces checklist item ids.
const SubtaskIDPrefix = "sub_"

// Subtask is a checklist item attached to a task by logical reference.
// TaskID may point at a task of either origin; remote ids never exist in the
// custom_tasks table, which is why the store holds no referential constraint
// to it and accepts any task id without existence validation.
type Subtask struct {
	ID        string    `db:"id" json:"id"`
	TaskID    string    `db:"task_id" json:"task_id"`
	Text      string    `db:"text" json:"text"`
	Completed bool      `db:"completed" json:"completed"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
