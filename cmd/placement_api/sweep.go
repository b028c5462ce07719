package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nikhil/placement-hub/internal/db"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Close expired job postings once and exit",
	Long:  `Close every open job whose deadline has passed. The serve command runs this on a schedule; sweep is the one-shot variant for cron or manual runs.`,
	RunE:  runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(_ *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	closed, err := database.CloseExpiredJobs(ctx)
	if err != nil {
		return fmt.Errorf("failed to close expired jobs: %w", err)
	}

	fmt.Printf("Closed %d expired job(s)\n", closed)
	return nil
}
