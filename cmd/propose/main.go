package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/openpari/parimarket/app/database"
	"github.com/openpari/parimarket/app/proposal"
	"github.com/openpari/parimarket/internal/sanitizer"
	"github.com/openpari/parimarket/models"
)

const usage = `usage: propose <description> <category> <end-time>

Submits a market proposal for admin review.

  description   what the market asks, e.g. "Will it rain in Lisbon on Friday?"
  category      free-form grouping, e.g. "weather"
  end-time      unix seconds or ISO-8601, e.g. 1767225600 or 2026-01-01T00:00:00Z

Database credentials are read from the environment (DB_HOST, DB_PORT,
DB_USER, DB_PASSWORD, DB_NAME); a .env file in the working directory is
loaded when present.`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	// best-effort: absence of a .env file is not an error
	_ = godotenv.Load()

	if len(args) != 3 {
		fmt.Fprintln(os.Stderr, usage)
		return fmt.Errorf("expected 3 arguments, got %d", len(args))
	}
	description, category, endTime := args[0], args[1], args[2]

	cfg := &database.Config{
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Database: os.Getenv("DB_NAME"),
	}
	if cfg.Host == "" || cfg.User == "" || cfg.Database == "" {
		return models.ErrDatabaseCredentialNotConfigured
	}

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	srvs := proposal.NewService(proposal.NewRepository(db), sanitizer.NewHTMLStripper())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := srvs.Submit(ctx, proposal.SubmitProposalRequest{
		Description: description,
		Category:    category,
		EndTime:     endTime,
		Source:      "cli",
	})
	if err != nil {
		return err
	}

	fmt.Printf("proposal %s submitted (status: %s, ends %s)\n",
		result.ID, result.Status, time.Unix(result.EndTime, 0).UTC().Format(time.RFC3339))
	return nil
}
