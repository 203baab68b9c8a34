package repository

import (
	"context"
	"errors"

	"student_dashboard/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TaskRepository persists custom tasks. Remote assignments never pass
// through here.
type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO custom_tasks (id, user_email, title, course_id, course_name, due_date, due_text, status)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), $8)
		 RETURNING created_at, updated_at`,
		t.ID, t.OwnerEmail, t.Title, t.CourseID, t.CourseName, t.DueDate.String(), t.DueText, t.Status,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
}

// ListByOwner returns the owner's custom tasks, newest first.
func (r *TaskRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]domain.Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_email, title, course_id, course_name, due_date, due_text, status, created_at, updated_at
		 FROM custom_tasks
		 WHERE user_email = $1
		 ORDER BY created_at DESC`,
		ownerEmail,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, rows.Err()
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_email, title, course_id, course_name, due_date, due_text, status, created_at, updated_at
		 FROM custom_tasks
		 WHERE id = $1`,
		id,
	)
	t, err := scanTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Update rewrites the mutable field set in one statement scoped by id AND
// owner. Zero rows affected collapses not-found and not-yours into ErrNotFound.
func (r *TaskRepository) Update(ctx context.Context, id, ownerEmail string, t *domain.Task) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE custom_tasks
		 SET title = $1, course_id = $2, course_name = $3, due_date = NULLIF($4, ''),
		     due_text = NULLIF($5, ''), status = $6, updated_at = now()
		 WHERE id = $7 AND user_email = $8`,
		t.Title, t.CourseID, t.CourseName, t.DueDate.String(), t.DueText, t.Status, id, ownerEmail,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the task scoped by id AND owner. Subtasks are not touched
// here: the cascade is caller-driven because the store holds no reference
// between the two tables.
func (r *TaskRepository) Delete(ctx context.Context, id, ownerEmail string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM custom_tasks WHERE id = $1 AND user_email = $2`,
		id, ownerEmail,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanTask(row pgx.Row) (domain.Task, error) {
	var (
		t        domain.Task
		courseID *string
		dueDate  *string
		dueText  *string
	)
	err := row.Scan(&t.ID, &t.OwnerEmail, &t.Title, &courseID, &t.CourseName,
		&dueDate, &dueText, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return t, err
	}
	if courseID != nil {
		t.CourseID = *courseID
	}
	if dueDate != nil {
		t.DueDate = domain.NewDueDate(*dueDate)
	}
	if dueText != nil {
		t.DueText = *dueText
	}
	t.Origin = domain.OriginCustom
	return t, nil
}
