package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"fitjourney/internal/config"
	"fitjourney/internal/logger"
	"fitjourney/internal/trace"
	"fitjourney/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a fitjourney.yaml config file")
	noMouse := flag.Bool("no-mouse", false, "disable mouse input")
	flag.Parse()

	if err := run(*configPath, *noMouse); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, noMouse bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	mainLog := logger.WithComponent(log, "main")

	trace.LogErrors(mainLog)
	ctx := context.Background()
	rec, err := trace.NewRecorder(ctx, cfg.Tracing)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := rec.Shutdown(shutdownCtx); err != nil {
			mainLog.WithError(err).Warn("failed to flush traces")
		}
	}()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse && !noMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	mainLog.WithField("breakpoint", cfg.UI.Breakpoint).Info("starting")
	model := ui.NewAppModel(cfg.UI, log, rec).AsTeaModel()
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	mainLog.Info("exited")
	return nil
}
