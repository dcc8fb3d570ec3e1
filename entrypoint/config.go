package entrypoint

import (
	"log/slog"
	"os"

	"github.com/sarchlab/gogpi/gpi"
)

// Config is the module's only configuration surface: environment
// variables read once at bootstrap (SPEC_FULL.md "Configuration").
type Config struct {
	// Extra is the parsed GPI_EXTRA list (spec.md §6 "extension
	// loading").
	Extra []gpi.ExtraSpec
	// Trace enables gpi.LevelTrace chatter on the default slog logger.
	Trace bool
}

// ConfigFromEnviron reads GPI_EXTRA and GPI_TRACE from the process
// environment.
func ConfigFromEnviron() Config {
	cfg := Config{Extra: gpi.ParseExtraEnv(os.Getenv("GPI_EXTRA"))}
	if v, ok := os.LookupEnv("GPI_TRACE"); ok && v != "" && v != "0" {
		cfg.Trace = true
	}
	return cfg
}

// ApplyLogLevel installs a default slog handler at gpi.LevelTrace when
// cfg.Trace is set, else leaves whatever handler the host process
// already configured alone.
func ApplyLogLevel(cfg Config) {
	if !cfg.Trace {
		return
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: gpi.LevelTrace})
	slog.SetDefault(slog.New(handler))
}
