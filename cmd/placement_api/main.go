// Package main provides the entry point for the placement hub HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "placement_api",
	Short: "Campus placement platform HTTP API server",
	Long:  "Placement Hub connects students with job opportunities: profiles, job matching, application tracking and AI-assisted career tools via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
