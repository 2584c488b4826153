package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Makepad-fr/ihft/internal/config"
	"github.com/Makepad-fr/ihft/internal/dispatch"
	"github.com/Makepad-fr/ihft/internal/logging"
	"github.com/Makepad-fr/ihft/internal/store/linestore"
	"github.com/Makepad-fr/ihft/internal/store/lock"
	"github.com/Makepad-fr/ihft/internal/ui"
)

// Options wire the runner to its environment.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer

	// Intn replaces the random source used by pick. Nil means math/rand.
	Intn func(n int) int
}

// Run executes one invocation and returns the process exit code.
func Run(args []string, opt Options) int {
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}

	a := &app{opt: opt}
	defer a.close()

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(opt.Stdout)
	root.SetErr(opt.Stderr)

	err := root.Execute()
	if err != nil {
		slog.Error("command failed", "args", args, "error", err)
		ui.Fail(opt.Stderr, err.Error())
		if hint := hintFor(err); hint != "" {
			ui.Muted(opt.Stderr, hint)
		}
	}
	return ExitCode(err)
}

func hintFor(err error) string {
	var ue *usageError
	switch {
	case errors.Is(err, dispatch.ErrEmptyStore):
		return "Hint: add something with `ihft add <thing>`"
	case errors.Is(err, dispatch.ErrNotFound):
		return "Hint: run `ihft list` to see what is there"
	case errors.Is(err, dispatch.ErrHistoryWrite):
		return "Hint: this action was not logged and cannot be undone"
	case errors.Is(err, lock.ErrLocked):
		return "Hint: another ihft is running, try again when it exits"
	case errors.As(err, &ue):
		return "Hint: run `ihft --help` for usage"
	}
	return ""
}

// openDispatcher is replaced in tests.
var openDispatcher = dispatch.Open

// app holds per-invocation state shared by the commands.
type app struct {
	opt Options

	// root flags
	dir     string
	theme   string
	noColor bool
	quiet   bool

	cfg       *config.Config
	lk        *lock.Lock
	logCloser io.Closer
}

// setup loads config and applies theme and logging. Safe to call twice.
func (a *app) setup() error {
	if a.cfg != nil {
		return nil
	}
	cfg, err := config.Load(a.dir)
	if err != nil {
		return err
	}
	a.cfg = cfg

	theme := cfg.Theme
	if a.theme != "" {
		theme = a.theme
	}
	ui.SetTheme(theme)
	if a.noColor {
		ui.DisableColor()
	}

	closer, err := logging.Init(cfg.LogDir(), cfg.Level())
	if err != nil {
		// best effort
		logging.Discard()
		return nil
	}
	a.logCloser = closer
	return nil
}

// dispatcher opens both stores, taking the directory lock when enabled.
// It fails rather than waits when another process holds the lock.
func (a *app) dispatcher() (*dispatch.Dispatcher, error) {
	if err := a.setup(); err != nil {
		return nil, err
	}
	if a.cfg.Locking && a.lk == nil {
		if err := os.MkdirAll(a.cfg.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir: %w", err)
		}
		lk, err := lock.TryAcquire(a.cfg.Dir)
		if err != nil {
			return nil, err
		}
		a.lk = lk
	}

	var opts []linestore.Option
	if a.opt.Intn != nil {
		opts = append(opts, linestore.WithRand(a.opt.Intn))
	}
	slog.Debug("opening stores", "things", a.cfg.ThingsPath(), "history", a.cfg.HistoryPath())
	return openDispatcher(a.cfg.ThingsPath(), a.cfg.HistoryPath(), opts...)
}

func (a *app) close() {
	if err := a.lk.Release(); err != nil {
		slog.Warn("releasing lock", "error", err)
	}
	if a.logCloser != nil {
		logging.Discard()
		_ = a.logCloser.Close()
	}
}

// ok prints a success line unless --quiet is set.
func (a *app) ok(msg string) {
	if !a.quiet {
		ui.OK(a.opt.Stdout, msg)
	}
}
