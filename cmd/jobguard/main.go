// Package main provides the jobguard command line entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"jobguard/internal/bootstrap"
	"jobguard/internal/session"
	"jobguard/internal/shared/config"
)

var rootCmd = &cobra.Command{
	Use:   "jobguard",
	Short: "Job posting authenticity checker",
	Long:  "jobguard analyzes job descriptions for authenticity, keeps a per-user history of verdicts, and scores postings against your uploaded resume.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func buildApp() (*bootstrap.App, error) {
	return bootstrap.Build(config.Load())
}

func requireSession(app *bootstrap.App) (session.Session, error) {
	sess := app.Session.Load()
	if !sess.LoggedIn() {
		return session.Session{}, fmt.Errorf("not logged in; run `jobguard login` first")
	}
	return sess, nil
}
