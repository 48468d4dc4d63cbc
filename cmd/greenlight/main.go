package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"greenlight/internal/cli"
	"greenlight/internal/db"
	"greenlight/internal/repository"
	"greenlight/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.greenlight/greenlight.db
	dbPath := os.Getenv("GREENLIGHT_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".greenlight", "greenlight.db")
	}

	// Plain output when the report is piped or redirected.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Engine logs go to stderr so piped report output stays clean.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel()}))

	var observers []service.UseCaseObserver
	if os.Getenv("GREENLIGHT_LOG_USE_CASES") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Assessments: service.NewAssessmentService(
			repository.NewSQLiteAssessmentRepo(database),
			logger,
			observers...,
		),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// logLevel keeps engine chatter out of non-interactive runs unless asked for.
func logLevel() slog.Level {
	if os.Getenv("GREENLIGHT_DEBUG") != "" {
		return slog.LevelDebug
	}
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return slog.LevelWarn
	}
	return slog.LevelError
}
