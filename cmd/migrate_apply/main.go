package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"student_dashboard/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Lists pending schema steps; applies them with -apply. The server runs the
// same steps on boot, this tool exists for running them ahead of a deploy.
func main() {
	apply := flag.Bool("apply", false, "apply pending migrations")
	flag.Parse()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	ctx := context.Background()

	if !*apply {
		pending, err := db.Pending(ctx, pool)
		if err != nil {
			log.Fatalf("list migrations: %v", err)
		}
		if len(pending) == 0 {
			fmt.Println("no pending migrations")
			return
		}
		for _, name := range pending {
			fmt.Println(name)
		}
		return
	}

	if err := db.Migrate(ctx, pool); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}
	fmt.Println("migrations applied")
}
