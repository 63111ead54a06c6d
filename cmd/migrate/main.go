package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"selfchart/adapters/db/postgres/migrations"
)

func main() {
	_ = godotenv.Load()

	url := os.Getenv("DATABASE_URL")
	if url == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := sqlx.Connect("postgres", url)
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	migrator := migrations.NewMigrator(db.DB)

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "up":
		if err := migrator.Up(ctx); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
		fmt.Println("migrations up to date")
	case "down":
		version, err := migrator.Down(ctx)
		if err != nil {
			log.Fatalf("rollback failed: %v", err)
		}
		fmt.Printf("unrecorded migration %s (revert schema manually)\n", version)
	case "status":
		status, err := migrator.Status(ctx)
		if err != nil {
			log.Fatalf("status failed: %v", err)
		}
		versions := make([]string, 0, len(status))
		for v := range status {
			versions = append(versions, v)
		}
		sort.Strings(versions)
		for _, v := range versions {
			state := "pending"
			if status[v] {
				state = "applied"
			}
			fmt.Printf("%-40s %s\n", v, state)
		}
	default:
		log.Fatalf("unknown command %q (want up, down or status)", command)
	}
}
