// Package main provides the entry point for the talent-scout CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const app = "talent-scout"

var rootCmd = &cobra.Command{
	Use:   app,
	Short: "AI-powered talent sourcing assistant",
	Long:  "talent-scout turns natural-language hiring requests into platform searches, extracts candidate profiles from the results, scores them for risk and serves ranked recommendations over chat, CLI and REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
