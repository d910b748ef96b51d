package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/fibseq/internal/cli"
	"github.com/agbru/fibseq/internal/config"
	apperrors "github.com/agbru/fibseq/internal/errors"
	"github.com/agbru/fibseq/internal/fibonacci"
	"github.com/agbru/fibseq/internal/logging"
	"github.com/agbru/fibseq/internal/metrics"
	"github.com/agbru/fibseq/internal/tui"
	"github.com/agbru/fibseq/internal/ui"
)

// Application represents the fibseq application instance.
type Application struct {
	Config    config.AppConfig
	Generator fibonacci.Generator
	Logger    logging.Logger
	Metrics   *metrics.Recorder
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithGenerator sets a custom Generator for the application.
func WithGenerator(g fibonacci.Generator) AppOption {
	return func(a *Application) { a.Generator = g }
}

// WithLogger sets a custom Logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithMetrics sets the metrics Recorder for the application.
func WithMetrics(m *metrics.Recorder) AppOption {
	return func(a *Application) { a.Metrics = m }
}

// New creates a new Application instance by parsing command-line arguments.
// args includes the program name, as os.Args does.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "fibseq"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	ui.InitTheme(cfg.NoColor)

	if app.Generator == nil {
		app.Generator = fibonacci.NewDefaultGenerator()
	}
	if app.Logger == nil {
		level := zerolog.InfoLevel
		if cfg.Verbose {
			level = zerolog.DebugLevel
		}
		noColor := ui.GetCurrentTheme().Name == ui.NoColorTheme.Name
		app.Logger = logging.NewConsoleLogger(errWriter, "fibseq", level, noColor)
	}
	if app.Metrics == nil {
		app.Metrics = metrics.NewRecorder()
	}
	return app, nil
}

// Run executes the application based on the configured mode and returns the
// process exit code. in and out are the streams of the prompt and the TUI.
func (a *Application) Run(ctx context.Context, in io.Reader, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}
	if a.Config.Metrics {
		defer a.dumpMetrics()
	}

	if a.Config.TUI {
		return a.runTUI(ctx, in, out)
	}
	return a.runPrompt(ctx, in, out)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion); err != nil {
		fmt.Fprintf(a.ErrWriter, "%sError generating completion: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runTUI launches the interactive terminal interface.
func (a *Application) runTUI(ctx context.Context, in io.Reader, out io.Writer) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	generate := func(n int) []uint64 { return a.generate(ctx, n) }
	onInputError := func(err error) {
		a.Metrics.IncInputErrors()
		a.Logger.Debug("rejected term count", logging.Err(err))
	}
	return tui.Run(ctx, in, out, generate, onInputError, Version)
}

// dumpMetrics writes the collected metrics to the error writer.
func (a *Application) dumpMetrics() {
	if err := apperrors.WrapError(a.Metrics.WriteText(a.ErrWriter), "dumping metrics"); err != nil {
		a.Logger.Error("failed to write metrics", err)
	}
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
