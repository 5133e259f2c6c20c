package app

import (
	"io"

	"github.com/sirupsen/logrus"

	"goredsea/internal/options"
)

// Exit codes handed to the process
const (
	ExitCodeSuccess = 0
	ExitCodeFailure = 1
)

// Application acts on a parsed configuration
type Application struct {
	opts   options.Options
	logger *logrus.Logger
}

// NewApplication creates a new application instance
func NewApplication(opts options.Options, logger *logrus.Logger) *Application {
	return &Application{
		opts:   opts,
		logger: logger,
	}
}

// ExitCode maps a disposition to a process exit code
func ExitCode(opts options.Options) int {
	if opts.Disposition == options.ExitFailure {
		return ExitCodeFailure
	}
	return ExitCodeSuccess
}

// Run prints whatever the configuration asks for and returns the exit code
func (app *Application) Run(stdout, stderr io.Writer) int {
	switch {
	case app.opts.PrintVersion:
		ShowVersion(stdout)
	case app.opts.PrintUsage:
		if app.opts.Disposition == options.ExitFailure {
			ShowUsage(stderr)
		} else {
			ShowUsage(stdout)
		}
	}

	if app.opts.Disposition != options.Continue {
		return ExitCode(app.opts)
	}

	if err := app.opts.Validate(); err != nil {
		app.logger.Error(err.Error())
		return ExitCodeFailure
	}

	app.logger.WithFields(logrus.Fields{
		"version":      Version,
		"input":        app.opts.InputType,
		"output":       app.opts.OutputType,
		"file":         app.opts.SoundFilename,
		"samplerate":   app.opts.SampleRate,
		"rate_defined": app.opts.RateDefined,
		"channels":     app.opts.NumChannels,
		"feed_through": app.opts.FeedThru,
		"rbds":         app.opts.RBDS,
		"loctables":    len(app.opts.LoctableDirs),
	}).Debug("Configuration ready")

	return ExitCodeSuccess
}
