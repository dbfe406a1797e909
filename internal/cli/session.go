package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/sandeepkv93/habitcal/internal/calendar"
	"github.com/sandeepkv93/habitcal/internal/daystate"
	"github.com/sandeepkv93/habitcal/internal/i18n"
	"github.com/sandeepkv93/habitcal/internal/logging"
	"github.com/sandeepkv93/habitcal/internal/storage"
	"github.com/sandeepkv93/habitcal/internal/update"
	"github.com/spf13/cobra"
)

// session is everything one invocation needs: the loaded store, the
// controller over it and the logger, opened in that order.
type session struct {
	cfg     update.RuntimeConfig
	logger  *slog.Logger
	store   *daystate.Store
	ctrl    *calendar.Controller
	tr      i18n.Translator
	closers []io.Closer
}

// loadConfig layers defaults, HABITCAL_* variables and command-line flags.
func loadConfig() (update.RuntimeConfig, error) {
	cfg, err := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())
	if err != nil {
		return cfg, err
	}
	if flags.backend != "" {
		cfg.Backend = flags.backend
	}
	if flags.dataDir != "" {
		cfg.DataDir = flags.dataDir
	}
	if flags.locale != "" {
		cfg.Locale = flags.locale
	}
	return cfg, cfg.Validate()
}

func openSession(ctx context.Context, nowFunc func() time.Time) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return openSessionWithConfig(ctx, cfg, nowFunc)
}

func openSessionWithConfig(ctx context.Context, cfg update.RuntimeConfig, nowFunc func() time.Time) (*session, error) {
	logger, logCloser, err := logging.New(cfg.LogLevel, cfg.LogPath())
	if err != nil {
		return nil, err
	}
	backend, err := storage.Open(storage.Kind(cfg.Backend), cfg.DataDir)
	if err != nil {
		_ = logCloser.Close()
		return nil, err
	}
	store := daystate.Load(ctx, backend, logger)
	return &session{
		cfg:     cfg,
		logger:  logger,
		store:   store,
		ctrl:    calendar.New(store, nowFunc),
		tr:      i18n.New(cfg.Locale),
		closers: []io.Closer{backend, logCloser},
	}, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func (s *session) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
