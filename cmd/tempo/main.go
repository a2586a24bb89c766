package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lenacroft/tempo/internal/cli"
	"github.com/lenacroft/tempo/internal/db"
	"github.com/lenacroft/tempo/internal/repository"
	"github.com/lenacroft/tempo/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.tempo/tempo.db
	dbPath := os.Getenv("TEMPO_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".tempo", "tempo.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	taskRepo := repository.NewSQLiteTaskRepo(database)
	scheduleRepo := repository.NewSQLiteScheduleRepo(database)
	calendarRepo := repository.NewSQLiteCalendarRepo(database)
	prefRepo := repository.NewSQLitePreferenceRepo(database)
	orderRepo := repository.NewSQLiteOrderingRepo(database)

	// Unit of work for transactional rebalance application
	uow := db.NewSQLiteUnitOfWork(database)

	// Use-case tracing to stderr when TEMPO_DEBUG is set
	var observers []service.UseCaseObserver
	if os.Getenv("TEMPO_DEBUG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Tasks:       service.NewTaskService(taskRepo),
		Schedule:    service.NewScheduleService(scheduleRepo),
		Calendar:    service.NewCalendarService(calendarRepo),
		Preferences: service.NewPreferenceService(prefRepo),
		Orderings:   service.NewOrderingService(orderRepo, taskRepo),
		Plan:        service.NewPlanService(taskRepo, scheduleRepo, calendarRepo, prefRepo, orderRepo, observers...),
		Rebalance:   service.NewRebalanceService(taskRepo, scheduleRepo, calendarRepo, prefRepo, uow, observers...),
		Feasibility: service.NewFeasibilityService(taskRepo, scheduleRepo, prefRepo),
	}

	// Detect interactive terminal; forms are only offered on a TTY.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
