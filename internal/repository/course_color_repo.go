package repository

import (
	"context"
	"errors"

	"student_dashboard/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CourseColorRepository persists per-user course color preferences,
// keyed by (user email, course name).
type CourseColorRepository struct {
	db *pgxpool.Pool
}

func NewCourseColorRepository(db *pgxpool.Pool) *CourseColorRepository {
	return &CourseColorRepository{db: db}
}

func (r *CourseColorRepository) Get(ctx context.Context, ownerEmail, courseName string) (string, error) {
	var color string
	err := r.db.QueryRow(ctx,
		`SELECT color FROM course_colors WHERE user_email = $1 AND course_name = $2`,
		ownerEmail, courseName,
	).Scan(&color)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return color, nil
}

// All returns the owner's preferences as a course-name → color map.
func (r *CourseColorRepository) All(ctx context.Context, ownerEmail string) (map[string]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT course_name, color FROM course_colors WHERE user_email = $1`,
		ownerEmail,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	colors := make(map[string]string)
	for rows.Next() {
		var name, color string
		if err := rows.Scan(&name, &color); err != nil {
			return nil, err
		}
		colors[name] = color
	}
	return colors, rows.Err()
}

// Set upserts a preference: an existing (owner, course) key gets its color and
// timestamp overwritten, never a duplicate row.
func (r *CourseColorRepository) Set(ctx context.Context, pref *domain.CourseColor) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO course_colors (user_email, course_name, color)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_email, course_name) DO UPDATE SET
		     color = excluded.color,
		     updated_at = now()
		 RETURNING id, created_at, updated_at`,
		pref.OwnerEmail, pref.CourseName, pref.Color,
	).Scan(&pref.ID, &pref.CreatedAt, &pref.UpdatedAt)
}

func (r *CourseColorRepository) Delete(ctx context.Context, ownerEmail, courseName string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM course_colors WHERE user_email = $1 AND course_name = $2`,
		ownerEmail, courseName,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
