// Package usecase holds the migration run: walk the tree, rewrite each
// candidate file, report what changed.
package usecase

import (
	"context"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fantasybasket.io/replace-errors/internal/pkg/logger"
	"fantasybasket.io/replace-errors/internal/report"
	"fantasybasket.io/replace-errors/internal/rewriter"
	"fantasybasket.io/replace-errors/internal/walker"
)

// FileRewriter rewrites a single file. *rewriter.Rewriter satisfies it.
type FileRewriter interface {
	Rewrite(path string) (*rewriter.FileRecord, error)
}

// MigrateResult summarizes a finished run.
type MigrateResult struct {
	RunID   string
	Changed []string
	Errors  int
}

// MigrateUseCase runs the substitution over every candidate file under root.
// Files are processed one at a time; a failing file is reported and skipped.
type MigrateUseCase struct {
	root     string
	rewriter FileRewriter
	reporter *report.Reporter
}

// NewMigrateUseCase creates a MigrateUseCase.
func NewMigrateUseCase(root string, rw FileRewriter, reporter *report.Reporter) *MigrateUseCase {
	return &MigrateUseCase{
		root:     root,
		rewriter: rw,
		reporter: reporter,
	}
}

// Execute walks root and rewrites every candidate. It always finishes with
// the summary, including when ctx is cancelled between files.
func (uc *MigrateUseCase) Execute(ctx context.Context) MigrateResult {
	runID := uuid.NewString()
	log := logger.With(zap.String("run_id", runID), zap.String("root", uc.root))
	log.Info("Migration started")

	candidates := 0
	for path, err := range walker.Candidates(uc.root) {
		if ctx.Err() != nil {
			log.Warn("Migration interrupted", zap.Error(ctx.Err()))
			break
		}
		if err != nil {
			uc.fail(log, path, err)
			continue
		}

		candidates++
		rec, err := uc.rewriter.Rewrite(path)
		if err != nil {
			uc.fail(log, path, err)
			continue
		}
		if !rec.Changed {
			log.Debug("File unchanged", zap.String("path", path))
			continue
		}

		rel := uc.relative(path)
		log.Debug("File updated", zap.String("path", rel))
		uc.reporter.Updated(rel)
	}

	uc.reporter.Summary()

	log.Info("Migration finished",
		zap.Int("candidates", candidates),
		zap.Int("updated", uc.reporter.Count()),
		zap.Int("errors", uc.reporter.Errors()),
	)

	return MigrateResult{
		RunID:   runID,
		Changed: uc.reporter.Files(),
		Errors:  uc.reporter.Errors(),
	}
}

func (uc *MigrateUseCase) fail(log *zap.Logger, path string, err error) {
	log.Warn("Failed to process file", zap.String("path", path), zap.Error(err))
	uc.reporter.Failed(path, err)
}

func (uc *MigrateUseCase) relative(path string) string {
	rel, err := filepath.Rel(uc.root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
