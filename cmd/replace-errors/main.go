// Package main is the entry point for replace-errors.
//
// It rewrites every *Handler.cs file under the current working directory,
// replacing Italian message literals with ErrorCodes constants. It takes no
// arguments. Files are changed in place with no backup; commit first.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"

	"fantasybasket.io/replace-errors/internal/app"
	"fantasybasket.io/replace-errors/internal/config"
	"fantasybasket.io/replace-errors/internal/pkg/logger"
)

// root is the scan root; it is always the working directory.
const root = "."

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
	os.Exit(code)
}

func run() (int, error) {
	cfg, err := config.Load()
	if err != nil {
		return 0, fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return 0, fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	dir, err := filepath.Abs(root)
	if err != nil {
		logger.Warn("Cannot resolve working directory", zap.Error(err))
		dir = root
	}
	logger.Info("Starting replace-errors", zap.String("dir", dir))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.Bootstrap(cfg, root, os.Stdout)
	if err != nil {
		logger.Error("Bootstrap failed", zap.Error(err))
		return 0, fmt.Errorf("bootstrap: %w", err)
	}

	return application.Run(ctx), nil
}
