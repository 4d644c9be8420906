package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/goliatone/go-priceform/internal/config"
	"github.com/goliatone/go-priceform/internal/logging"
	"github.com/goliatone/go-priceform/pkg/renderers/tui"
)

const shutdownTimeout = 5 * time.Second

// app carries what every command shares: where config lives, the resolved
// config and logger, and the output streams.
type app struct {
	manager *config.Manager
	stdout  io.Writer
	stderr  io.Writer

	// driver overrides the survey prompt driver for the predict command.
	driver tui.PromptDriver

	cfg    config.Config
	logger *slog.Logger
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		manager: config.NewManager(),
		stdout:  stdout,
		stderr:  stderr,
		logger:  logging.Discard(),
	}
}

// setup loads the config files, applies flag overrides and builds the logger.
// Flags win over the local file, which wins over the global file.
func (a *app) setup(cmd *cli.Command) error {
	if path := cmd.String("config"); path != "" {
		a.manager.SetLocalPath(path)
	}
	cfg, err := a.manager.Load()
	if err != nil {
		return err
	}
	if cmd.IsSet("endpoint") {
		cfg.Endpoint = cmd.String("endpoint")
	}
	if cmd.IsSet("log-level") {
		cfg.Log.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		cfg.Log.Format = cmd.String("log-format")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.New(a.stderr, cfg.Log.Format, level)
	a.logger.Debug("config loaded", "global", a.manager.GlobalPath(), "local", a.manager.LocalPath(), "endpoint", cfg.Endpoint)
	return nil
}

func (a *app) action(run func(context.Context, *cli.Command) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		if err := a.setup(cmd); err != nil {
			return err
		}
		return run(ctx, cmd)
	}
}

// listen serves handler on addr until ctx is cancelled, then shuts down
// gracefully.
func (a *app) listen(ctx context.Context, name, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	a.logger.Info(name+" listening", "addr", addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("%s: %w", name, err)
	case <-ctx.Done():
	}

	a.logger.Info(name+" shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("%s: shutdown: %w", name, err)
	}
	return nil
}
