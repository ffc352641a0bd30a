// Package cli wires configuration, logging and the color scheme services
// behind the darkwatch commands.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/darkwatch/internal/cli/styles"
	"github.com/bnema/darkwatch/internal/domain/build"
	"github.com/bnema/darkwatch/internal/infrastructure/colorscheme"
	"github.com/bnema/darkwatch/internal/infrastructure/config"
	"github.com/bnema/darkwatch/internal/infrastructure/hooks"
	"github.com/bnema/darkwatch/internal/logging"
	"github.com/bnema/darkwatch/pkg/appearance"
)

// Options are the persistent root flags.
type Options struct {
	// ConfigFile replaces the XDG config location when set.
	ConfigFile string
	// LogLevel overrides logging.level when set.
	LogLevel string
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	Portal         *appearance.Client
	PortalDetector *colorscheme.PortalDetector
	Resolver       *colorscheme.Resolver
	Hooks          *hooks.Runner

	ctx       context.Context
	logCfg    logging.Config
	logFile   io.Writer
	logCloser io.Closer
}

// NewApp loads the configuration and builds every service.
func NewApp(opts Options) (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	if opts.ConfigFile != "" {
		mgr.SetConfigFile(opts.ConfigFile)
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	logCfg := newLogConfig(cfg.Logging, opts.LogLevel)
	rotator, err := openLogFile(cfg.Logging)
	if err != nil {
		return nil, err
	}

	a := &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(appearance.ModeDefault),
		logCfg:        logCfg,
	}
	if rotator != nil {
		a.logFile = rotator
		a.logCloser = rotator
	}
	a.ctx = logging.WithContext(context.Background(), logging.NewWithFile(logCfg, a.logFile))
	logging.FromContext(a.ctx).Debug().Str("config", mgr.ConfigFile()).Msg("configuration loaded")

	portal := appearance.New(appearance.Config{
		CallTimeout:  cfg.Portal.CallTimeout(),
		PollInterval: cfg.Portal.PollInterval(),
	})
	portalDetector := colorscheme.NewPortalDetector(a.ctx, portal)

	resolver := colorscheme.NewResolver(colorscheme.NewConfigAdapter(mgr))
	resolver.RegisterDetector(portalDetector)
	resolver.RegisterDetector(colorscheme.NewEnvDetector())
	resolver.RegisterDetector(colorscheme.NewGsettingsDetector())

	a.Portal = portal
	a.PortalDetector = portalDetector
	a.Resolver = resolver
	a.Hooks = hooks.NewRunner(HookCommands(cfg.Hooks), cfg.Hooks.Timeout())
	return a, nil
}

// HookCommands converts the [hooks] section for the runner.
func HookCommands(h config.HooksConfig) hooks.Commands {
	return hooks.Commands{
		Dark:    h.Dark,
		Light:   h.Light,
		Default: h.Default,
	}
}

// newLogConfig applies the --log-level override to the [logging] section.
func newLogConfig(cfg config.LoggingConfig, levelOverride string) logging.Config {
	level := cfg.Level
	if levelOverride != "" {
		level = levelOverride
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(level)
	logCfg.Format = cfg.Format
	logCfg.TimeFormat = "15:04:05"
	return logCfg
}

// openLogFile opens the rotating log file when logging.enable_file_log is set.
func openLogFile(cfg config.LoggingConfig) (*logging.LogRotator, error) {
	if !cfg.EnableFileLog {
		return nil, nil
	}

	rotator, err := logging.NewLogRotator(logging.RotatorConfig{
		Dir:        cfg.LogDir,
		MaxSizeMB:  cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAgeDays: cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	})
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return rotator, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// QuietCtx derives a context from parent whose logger stays off the
// terminal. Events still reach the log file when one is configured.
func (a *App) QuietCtx(parent context.Context) context.Context {
	cfg := a.logCfg
	cfg.Output = io.Discard
	cfg.Format = "json"
	return logging.WithContext(parent, logging.NewWithFile(cfg, a.logFile))
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCloser != nil {
		return a.logCloser.Close()
	}
	return nil
}
