package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"yieldd/internal/httpapi"
	"yieldd/internal/manager"
)

const shutdownTimeout = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := buildRootCmd(defaultOptions()).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "yieldd:", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, level, format string) zerolog.Logger {
	if strings.EqualFold(format, "console") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Str("svc", "yieldd").Logger()
}

// runServe loads the model once, then serves until ctx is canceled.
func runServe(ctx context.Context, opts *options) error {
	logger := newLogger(os.Stderr, opts.LogLevel, opts.LogFormat)

	mgr, rev, err := opts.newManager()
	if err != nil {
		return err
	}
	mgr.SetEventPublisher(manager.NewLogPublisher(logger))
	for _, c := range mgr.Preflight() {
		ev := logger.Debug()
		if !c.OK {
			ev = logger.Warn()
		}
		ev.Str("check", c.Name).Bool("ok", c.OK).Str("info", c.Info).Str("error", c.Error).Msg("preflight")
	}
	if err := mgr.Load(ctx); err != nil {
		// Predictions stay disabled; the page shows the warning.
		logger.Warn().Err(err).Str("revision", rev.String()).Msg("model unavailable")
	}

	httpapi.SetLogger(logger)
	httpapi.SetDefaultLogLevel(opts.LogLevel)
	httpapi.SetMaxBodyBytes(opts.MaxBodyBytes)
	if origins := splitCSV(opts.CORSOrigins); len(origins) > 0 {
		httpapi.SetCORSOptions(true, origins, []string{"GET", "POST", "OPTIONS"}, []string{"Content-Type", "X-Log-Level"})
	}
	httpapi.SetSwaggerEnabled(opts.Swagger)
	httpapi.SetBaseContext(ctx)

	srv := &http.Server{
		Addr:              opts.Addr,
		Handler:           httpapi.NewMux(mgr),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("addr", opts.Addr).Str("revision", rev.String()).Bool("ready", mgr.Ready()).Msg("yieldd listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			logger.Error().Err(err).Msg("graceful shutdown error")
		}
		return nil
	})
	return g.Wait()
}
