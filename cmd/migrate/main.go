package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/config"
	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/internal/database"
)

/*
migrate creates the PostgreSQL schema and exits.

Run with:
  DATABASE_URL=postgres://... go run ./cmd/migrate

The API applies the same statements on boot; this tool exists for deployments
where the service user has no DDL rights.
*/

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if cfg.DatabaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := database.Open(ctx, cfg.DatabaseURL, database.DefaultPoolConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		fmt.Fprintf(os.Stderr, "Error migrating: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Applied %d schema statement(s)\n", len(database.Schema))
}
