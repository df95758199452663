package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"tableflip.dev/questnote/pkg/app"
	"tableflip.dev/questnote/pkg/calendar"
	"tableflip.dev/questnote/pkg/store"
	"tableflip.dev/questnote/pkg/translate"
)

// env carries what every subcommand needs once flags are parsed.
type env struct {
	verbose  bool
	settings *store.Settings
	logger   *zap.Logger
}

func (e *env) addFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false,
		"Log debug output to stderr.")
}

func (e *env) setup(cmd *cobra.Command, _ []string) error {
	level := zapcore.WarnLevel
	if e.verbose {
		level = zapcore.DebugLevel
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = !e.verbose
	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	e.logger = logger.Named(cmd.Root().Name())

	settings, err := store.LoadConfig()
	if err != nil {
		return err
	}
	e.settings = settings
	e.logger.Debug("loaded settings",
		zap.String("path", settings.Path),
		zap.String("week_start", settings.WeekStart),
		zap.String("translate_url", settings.TranslateURL))
	return nil
}

func (e *env) teardown(*cobra.Command, []string) {
	if e.logger != nil {
		_ = e.logger.Sync()
	}
}

func (e *env) log() *zap.Logger {
	if e.logger == nil {
		return zap.NewNop()
	}
	return e.logger
}

func (e *env) config() *store.Settings {
	if e.settings == nil {
		return store.DefaultSettings()
	}
	return e.settings
}

// service opens the diary on disk.
func (e *env) service(ctx context.Context) (*app.Service, error) {
	settings := e.config()
	ws, err := calendar.ParseWeekday(settings.WeekStart)
	if err != nil {
		return nil, err
	}
	p, err := store.Load(settings, store.WithLogger(e.log()))
	if err != nil {
		return nil, err
	}
	return app.New(ctx, p,
		app.WithLogger(e.log()),
		app.WithWeekStart(ws))
}

func (e *env) translator() *translate.Client {
	settings := e.config()
	return translate.New(settings.TranslateURL, settings.TranslateTimeout, e.log())
}
