// Package app is the composition root: it wires the mapping table, rewriter,
// reporter and migration use case from configuration.
package app

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"fantasybasket.io/replace-errors/internal/config"
	"fantasybasket.io/replace-errors/internal/pkg/logger"
	"fantasybasket.io/replace-errors/internal/report"
	"fantasybasket.io/replace-errors/internal/rewriter"
	"fantasybasket.io/replace-errors/internal/substitution"
	"fantasybasket.io/replace-errors/internal/usecase"
)

// Application holds composed application dependencies.
type Application struct {
	Config  *config.Config
	Table   *substitution.Table
	Migrate *usecase.MigrateUseCase
}

// Bootstrap builds the application for the tree at root, printing the
// report to out.
func Bootstrap(cfg *config.Config, root string, out io.Writer) (*Application, error) {
	table, err := substitution.Default()
	if err != nil {
		return nil, fmt.Errorf("load mapping table: %w", err)
	}
	logger.Debug("Mapping table loaded", zap.Int("rules", table.Len()))

	rw := rewriter.New(table, rewriter.UTF8)

	return &Application{
		Config:  cfg,
		Table:   table,
		Migrate: usecase.NewMigrateUseCase(root, rw, report.New(out)),
	}, nil
}

// Run executes the migration and returns the process exit code. The code is
// 0 unless report.fail_on_errors is set and some file failed.
func (a *Application) Run(ctx context.Context) int {
	res := a.Migrate.Execute(ctx)
	if res.Errors > 0 && a.Config.Report.FailOnErrors {
		logger.Warn("Exiting with failure: files could not be processed",
			zap.String("run_id", res.RunID),
			zap.Int("errors", res.Errors),
		)
		return 1
	}
	return 0
}
