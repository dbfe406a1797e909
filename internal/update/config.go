package update

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/sandeepkv93/habitcal/internal/logging"
	"github.com/sandeepkv93/habitcal/internal/storage"
)

type RuntimeConfig struct {
	Backend  string `env:"BACKEND"`
	DataDir  string `env:"DATA_DIR"`
	Locale   string `env:"LOCALE"`
	LogLevel string `env:"LOG_LEVEL"`
	LogFile  string `env:"LOG_FILE"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Backend:  string(storage.KindFile),
		DataDir:  defaultDataDir(),
		Locale:   "en",
		LogLevel: "info",
	}
}

// RuntimeConfigFromEnv overlays HABITCAL_* variables on base. Unset
// variables keep the base value.
func RuntimeConfigFromEnv(base RuntimeConfig) (RuntimeConfig, error) {
	cfg := base
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "HABITCAL_"}); err != nil {
		return base, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c RuntimeConfig) Validate() error {
	if !storage.Kind(c.Backend).IsValid() {
		return fmt.Errorf("config: unknown backend %q", c.Backend)
	}
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("config: data dir is required")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// LogPath defaults to habitcal.log inside the data directory.
func (c RuntimeConfig) LogPath() string {
	if strings.TrimSpace(c.LogFile) != "" {
		return c.LogFile
	}
	return filepath.Join(c.DataDir, "habitcal.log")
}

func defaultDataDir() string {
	if xdg := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); xdg != "" {
		return filepath.Join(xdg, "habitcal")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".habitcal"
	}
	return filepath.Join(home, ".local", "share", "habitcal")
}
