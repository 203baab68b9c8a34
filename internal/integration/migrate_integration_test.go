package integration

import (
	"context"
	"os"
	"testing"

	"student_dashboard/internal/db"
	"student_dashboard/internal/domain"
	"student_dashboard/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func TestMigrate_Idempotent(t *testing.T) {
	pool := setupDB(t) // first run happens inside setup

	if err := db.Migrate(context.Background(), pool); err != nil {
		t.Fatalf("second migrate run: %v", err)
	}

	pending, err := db.Pending(context.Background(), pool)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected no pending migrations, got %v", pending)
	}
}

// Pending must work before the first run ever created schema_migrations, and
// a fresh Migrate afterwards must re-record every step.
func TestPending_BeforeBootstrap(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()

	if _, err := pool.Exec(ctx, `DROP TABLE schema_migrations`); err != nil {
		t.Fatalf("drop schema_migrations: %v", err)
	}

	pending, err := db.Pending(ctx, pool)
	if err != nil {
		t.Fatalf("pending without schema_migrations: %v", err)
	}
	if len(pending) == 0 {
		t.Fatalf("expected every step pending, got none")
	}

	if err := db.Migrate(ctx, pool); err != nil {
		t.Fatalf("re-migrate: %v", err)
	}
	pending, err = db.Pending(ctx, pool)
	if err != nil {
		t.Fatalf("pending after re-migrate: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected no pending after re-migrate, got %v", pending)
	}
}

// Recreates the legacy schema generation that held a foreign key from
// subtasks to custom_tasks and verifies the rebuild removes it without
// losing rows.
func TestMigrate_SubtaskForeignKeyRebuild(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	ctx := context.Background()
	if err := db.Migrate(ctx, pool); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	// Put the legacy constraint back and erase the step record so the
	// rebuild runs again.
	owner := testEmail()
	taskRepo := repository.NewTaskRepository(pool)
	task := &domain.Task{
		ID:         domain.CustomIDPrefix + uuid.NewString(),
		OwnerEmail: owner,
		Title:      "Anchor task",
		CourseName: "Math",
		Status:     domain.StatusPending,
	}
	if err := taskRepo.Create(ctx, task); err != nil {
		t.Fatalf("create anchor task: %v", err)
	}
	defer taskRepo.Delete(ctx, task.ID, owner)

	subRepo := repository.NewSubtaskRepository(pool)
	sub := &domain.Subtask{
		ID:     domain.SubtaskIDPrefix + uuid.NewString(),
		TaskID: task.ID,
		Text:   "Survivor",
	}
	if err := subRepo.Create(ctx, sub); err != nil {
		t.Fatalf("create subtask: %v", err)
	}
	defer subRepo.DeleteByTask(ctx, task.ID)

	if _, err := pool.Exec(ctx, `
		ALTER TABLE subtasks
		ADD CONSTRAINT subtasks_task_id_fkey FOREIGN KEY (task_id) REFERENCES custom_tasks (id)
		NOT VALID`); err != nil {
		t.Fatalf("recreate legacy constraint: %v", err)
	}
	if _, err := pool.Exec(ctx, `DELETE FROM schema_migrations WHERE version = 2`); err != nil {
		t.Fatalf("reset migration record: %v", err)
	}

	if err := db.Migrate(ctx, pool); err != nil {
		t.Fatalf("rebuild migrate: %v", err)
	}

	var hasFK bool
	err = pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM pg_constraint
			WHERE conrelid = 'subtasks'::regclass AND contype = 'f'
		)`).Scan(&hasFK)
	if err != nil {
		t.Fatalf("inspect constraints: %v", err)
	}
	if hasFK {
		t.Fatalf("foreign key still present after rebuild")
	}

	got, err := subRepo.GetByID(ctx, sub.ID, task.ID)
	if err != nil {
		t.Fatalf("subtask lost in rebuild: %v", err)
	}
	if got.Text != "Survivor" {
		t.Fatalf("subtask data mangled: %+v", got)
	}
}
