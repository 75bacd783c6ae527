package notebook

import (
	"io"
	"log/slog"
	"os"

	"github.com/traefik/yaegi/interp"
)

// Option configures a notebook run or scope.
type Option func(*options)

type options struct {
	stdout  io.Writer
	stderr  io.Writer
	logger  *slog.Logger
	exports []interp.Exports
}

func defaultOptions() options {
	return options{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// WithStdout routes output written by cells to w.
func WithStdout(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.stdout = w
		}
	}
}

// WithStderr routes error output written by cells to w.
func WithStderr(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.stderr = w
		}
	}
}

// WithLogger sets the logger for run progress. The default is venn.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithExports makes additional binary packages importable from cells.
func WithExports(e interp.Exports) Option {
	return func(o *options) {
		o.exports = append(o.exports, e)
	}
}
