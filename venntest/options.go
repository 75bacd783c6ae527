package venntest

import (
	"log/slog"

	"github.com/gogpu/venn"
)

// Plotter receives every sample point before it is checked.
type Plotter interface {
	Scatter(p venn.Point)
}

// PlotterFunc adapts a function to Plotter.
type PlotterFunc func(p venn.Point)

// Scatter calls f(p).
func (f PlotterFunc) Scatter(p venn.Point) { f(p) }

// Option configures Verify.
type Option func(*options)

type options struct {
	outside venn.RegionID
	plotter Plotter
	logger  *slog.Logger
}

func defaultOptions() options {
	return options{
		outside: venn.Outside,
		plotter: PlotterFunc(func(venn.Point) {}),
	}
}

// WithOutside sets the region key reserved for points outside every region.
// The default is venn.Outside.
func WithOutside(id venn.RegionID) Option {
	return func(o *options) {
		o.outside = id
	}
}

// WithPlotter sets the plotter that receives sample points.
// A nil plotter disables plotting.
func WithPlotter(p Plotter) Option {
	return func(o *options) {
		if p != nil {
			o.plotter = p
		}
	}
}

// WithLogger sets the logger for verification progress. The default is
// venn.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
