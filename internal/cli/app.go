package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/arbor/internal/presentation/tui"
	"github.com/aretw0/arbor/internal/settings"
	"github.com/aretw0/arbor/pkg/adapters/file"
	"github.com/aretw0/arbor/pkg/adapters/redis"
	"github.com/aretw0/arbor/pkg/ports"
	"github.com/aretw0/arbor/pkg/session"
)

// Preference backends accepted by Options.Prefs.
const (
	PrefsFile  = "file"
	PrefsRedis = "redis"
)

// ErrCancelled is returned when the user declines a confirmation.
var ErrCancelled = errors.New("cancelled by user")

// ConfirmFunc asks the user a yes/no question.
type ConfirmFunc func(ctx context.Context, title, description string) (bool, error)

// Options contains the global configuration shared by every command.
type Options struct {
	Debug bool

	Prefs         string // PrefsFile (default) or PrefsRedis
	PrefsPath     string // Settings file; empty selects file.DefaultPath
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	Out io.Writer // Defaults to os.Stdout

	// Store and Confirm replace the configured backends when set.
	Store   ports.PreferenceStore
	Confirm ConfirmFunc
}

// App carries what a command needs: output, logger, preferences and the
// settings decoded from them.
type App struct {
	Out      io.Writer
	Logger   *slog.Logger
	Prefs    ports.PreferenceStore
	Settings settings.Settings

	confirm ConfirmFunc
	render  func(string) (string, error)
	closers []func() error
}

// NewApp opens the preference store and loads the settings.
func NewApp(ctx context.Context, opts Options) (*App, error) {
	app := &App{
		Out:     opts.Out,
		Logger:  createLogger(opts.Debug),
		Prefs:   opts.Store,
		confirm: opts.Confirm,
	}
	if app.Out == nil {
		app.Out = os.Stdout
	}
	if app.confirm == nil {
		app.confirm = tui.Confirm
	}
	if app.Out == os.Stdout && tui.IsTerminal() {
		app.render = tui.NewRenderer()
	}

	if app.Prefs == nil {
		store, closer, err := openPreferences(ctx, opts)
		if err != nil {
			return nil, err
		}
		app.Prefs = store
		if closer != nil {
			app.closers = append(app.closers, closer)
		}
	}

	s, err := settings.Load(ctx, app.Prefs)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Settings = s
	app.Logger.Debug("Settings loaded", "backend", opts.Prefs, "settings", s.Map())
	return app, nil
}

func openPreferences(ctx context.Context, opts Options) (ports.PreferenceStore, func() error, error) {
	switch opts.Prefs {
	case "", PrefsFile:
		return file.New(opts.PrefsPath), nil, nil
	case PrefsRedis:
		store := redis.New(opts.RedisAddr, opts.RedisPassword, opts.RedisDB)
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, nil, fmt.Errorf("failed to reach redis at %s: %w", opts.RedisAddr, err)
		}
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown preference backend %q (want %s or %s)", opts.Prefs, PrefsFile, PrefsRedis)
	}
}

// Close releases the preference store.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	a.closers = nil
	return errors.Join(errs...)
}

// openEditor loads the document at path into an editor configured from the settings.
func (a *App) openEditor(path string) (*session.Editor, error) {
	ed := a.newEditor()
	if err := ed.Open(path); err != nil {
		return nil, err
	}
	return ed, nil
}

func (a *App) newEditor() *session.Editor {
	return session.NewEditor(
		session.WithLogger(a.Logger),
		session.WithRootLabel(a.Settings.DefaultRootLabel),
	)
}

// confirmDestructive asks before a destructive action when the
// confirmDestructiveActions preference is on. assumeYes skips the question.
func (a *App) confirmDestructive(ctx context.Context, assumeYes bool, title, description string) error {
	if assumeYes || !a.Settings.ConfirmDestructiveActions {
		return nil
	}
	ok, err := a.confirm(ctx, title, description)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCancelled
	}
	return nil
}
