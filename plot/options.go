package plot

import "image/color"

// Option configures a Canvas.
type Option func(*options)

type options struct {
	width, height int
	padding       float64
	markerRadius  float64
	background    color.Color
	markerColor   color.Color
	palette       []color.Color
}

func defaultOptions() options {
	return options{
		width:        400,
		height:       400,
		padding:      0.05,
		markerRadius: 3,
		background:   color.White,
		markerColor:  color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
		palette: []color.Color{
			color.NRGBA{R: 0xff, G: 0x00, B: 0x00, A: 0x66},
			color.NRGBA{R: 0x00, G: 0xb0, B: 0x00, A: 0x66},
			color.NRGBA{R: 0x00, G: 0x00, B: 0xff, A: 0x66},
			color.NRGBA{R: 0xff, G: 0xa5, B: 0x00, A: 0x66},
			color.NRGBA{R: 0x80, G: 0x00, B: 0x80, A: 0x66},
			color.NRGBA{R: 0x00, G: 0xa0, B: 0xa0, A: 0x66},
			color.NRGBA{R: 0x80, G: 0x80, B: 0x00, A: 0x66},
		},
	}
}

// WithSize sets the image size in pixels. Non-positive values are ignored.
func WithSize(width, height int) Option {
	return func(o *options) {
		if width > 0 && height > 0 {
			o.width, o.height = width, height
		}
	}
}

// WithMarkerRadius sets the scatter marker radius in pixels.
func WithMarkerRadius(r float64) Option {
	return func(o *options) {
		if r > 0 {
			o.markerRadius = r
		}
	}
}

// WithBackground sets the background color.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithPalette sets the region fill colors, used cyclically in region order.
// An empty palette is ignored.
func WithPalette(colors ...color.Color) Option {
	return func(o *options) {
		if len(colors) > 0 {
			o.palette = colors
		}
	}
}
