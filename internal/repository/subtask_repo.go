package repository

import (
	"context"
	"errors"

	"student_dashboard/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SubtaskRepository persists checklist items. Writes are scoped by
// (subtask id, task id); there is no owner column and no existence check on
// the task id, since subtasks attach to remote assignments too.
type SubtaskRepository struct {
	db *pgxpool.Pool
}

func NewSubtaskRepository(db *pgxpool.Pool) *SubtaskRepository {
	return &SubtaskRepository{db: db}
}

func (r *SubtaskRepository) Create(ctx context.Context, s *domain.Subtask) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO subtasks (id, task_id, text, completed)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		s.ID, s.TaskID, s.Text, s.Completed,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
}

// ListByTask returns a task's subtasks in creation order.
func (r *SubtaskRepository) ListByTask(ctx context.Context, taskID string) ([]domain.Subtask, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, task_id, text, completed, created_at, updated_at
		 FROM subtasks
		 WHERE task_id = $1
		 ORDER BY created_at ASC`,
		taskID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.Subtask
	for rows.Next() {
		var s domain.Subtask
		if err := rows.Scan(&s.ID, &s.TaskID, &s.Text, &s.Completed, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, rows.Err()
}

func (r *SubtaskRepository) GetByID(ctx context.Context, id, taskID string) (*domain.Subtask, error) {
	var s domain.Subtask
	err := r.db.QueryRow(ctx,
		`SELECT id, task_id, text, completed, created_at, updated_at
		 FROM subtasks
		 WHERE id = $1 AND task_id = $2`,
		id, taskID,
	).Scan(&s.ID, &s.TaskID, &s.Text, &s.Completed, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SubtaskRepository) Update(ctx context.Context, id, taskID, text string, completed bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE subtasks
		 SET text = $1, completed = $2, updated_at = now()
		 WHERE id = $3 AND task_id = $4`,
		text, completed, id, taskID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Toggle flips the completed flag in a single statement and returns the
// updated row. Read-then-write would race with itself on double-clicks.
func (r *SubtaskRepository) Toggle(ctx context.Context, id, taskID string) (*domain.Subtask, error) {
	var s domain.Subtask
	err := r.db.QueryRow(ctx,
		`UPDATE subtasks
		 SET completed = NOT completed, updated_at = now()
		 WHERE id = $1 AND task_id = $2
		 RETURNING id, task_id, text, completed, created_at, updated_at`,
		id, taskID,
	).Scan(&s.ID, &s.TaskID, &s.Text, &s.Completed, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SubtaskRepository) Delete(ctx context.Context, id, taskID string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM subtasks WHERE id = $1 AND task_id = $2`,
		id, taskID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByTask removes all of a task's subtasks. Called by the task delete
// handler to cascade; deleting a task that never had subtasks is fine.
func (r *SubtaskRepository) DeleteByTask(ctx context.Context, taskID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM subtasks WHERE task_id = $1`, taskID)
	return err
}
