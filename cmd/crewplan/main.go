package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/alexanderramin/crewplan/internal/app"
	"github.com/alexanderramin/crewplan/internal/cli"
	"github.com/alexanderramin/crewplan/internal/cli/formatter"
	"github.com/alexanderramin/crewplan/internal/config"
	"github.com/alexanderramin/crewplan/internal/db"
	"github.com/alexanderramin/crewplan/internal/metrics"
	"github.com/alexanderramin/crewplan/internal/repository"
	"github.com/alexanderramin/crewplan/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() (err error) {
	cfg, err := config.Load(config.DefaultEnvFiles)
	if err != nil {
		return err
	}
	logger := cfg.NewLogger(os.Stderr)

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	resourceRepo := repository.NewSQLiteResourceRepo(database)
	assignmentRepo := repository.NewSQLiteAssignmentRepo(database)
	auditRepo := repository.NewSQLiteAuditRepo(database)
	scheduleRepo := repository.NewSQLiteScheduleRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	metricsObserver := metrics.NewObserver()
	if cfg.MetricsFile != "" {
		defer func() {
			if werr := metricsObserver.WriteTextfile(cfg.MetricsFile); werr != nil {
				logger.Warn("writing metrics textfile", "path", cfg.MetricsFile, "error", werr)
			}
		}()
	}

	opts := []service.Option{
		service.WithLogger(logger),
		service.WithObservers(service.NewLogUseCaseObserver(logger), metricsObserver),
		service.WithDefaultActor(cfg.Actor),
	}

	application := &cli.App{
		Projects:    service.NewProjectService(projectRepo, assignmentRepo, auditRepo, uow, opts...),
		Tasks:       service.NewTaskService(projectRepo, taskRepo, auditRepo, uow, opts...),
		Resources:   service.NewResourceService(resourceRepo, opts...),
		Assignments: service.NewAssignmentService(projectRepo, taskRepo, resourceRepo, scheduleRepo, uow, opts...),
		Schedules:   service.NewScheduleService(scheduleRepo, opts...),
	}

	// Styling is for terminals only; piped output stays plain.
	out := os.Stdout.Fd()
	formatter.SetPlain(!isatty.IsTerminal(out) && !isatty.IsCygwinTerminal(out))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Execute root command
	rootCmd := cli.NewRootCmd(application)
	err = rootCmd.ExecuteContext(ctx)

	var appErr *app.Error
	if errors.As(err, &appErr) && appErr.Details != nil {
		logger.Debug("command failed", "code", appErr.Code, "details", appErr.Details)
	}
	return err
}
