package projector

import "image/color"

// Option configures a Registry, DragController, Renderer or Session.
// Each constructor reads the fields it needs and ignores the rest.
//
// Example:
//
//	r := projector.NewRenderer(s, viewport,
//	    projector.WithMode(projector.ModeNativeMultiply),
//	    projector.WithBackground(color.Black),
//	)
type Option func(*options)

type options struct {
	layout      LayoutConfig
	nudgeStep   float64
	sink        ElementSink
	mode        Mode
	background  color.NRGBA
	viewport    Size
	displaySize Size
	loader      *Loader
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		layout:      DefaultLayout(),
		nudgeStep:   DefaultNudgeStep,
		mode:        ModeStack,
		background:  BackgroundWhite,
		viewport:    Size{Width: 800, Height: 600},
		displaySize: Size{Width: DefaultNominalSize, Height: DefaultNominalSize},
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithLayout sets the initial layout constants.
func WithLayout(l LayoutConfig) Option {
	return func(o *options) {
		o.layout = l
	}
}

// WithNudgeStep sets how far one arrow key press moves an image.
// Non-positive or non-finite steps are ignored.
func WithNudgeStep(step float64) Option {
	return func(o *options) {
		if isFinite(step) && step > 0 {
			o.nudgeStep = step
		}
	}
}

// WithElementSink sets the visual-element mirror the controller pushes
// positions and cursors to.
func WithElementSink(s ElementSink) Option {
	return func(o *options) {
		o.sink = s
	}
}

// WithMode sets the initial render mode.
func WithMode(m Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// WithBackground sets the clear color used before every frame.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = color.NRGBAModel.Convert(c).(color.NRGBA)
	}
}

// WithViewport sets the viewport size used for layout and as the canvas
// size when no viewport function is supplied.
func WithViewport(s Size) Option {
	return func(o *options) {
		o.viewport = s
	}
}

// WithDisplaySize sets the on-screen box every source image is scaled to.
func WithDisplaySize(s Size) Option {
	return func(o *options) {
		o.displaySize = s
	}
}

// WithLoader sets the loader a Session decodes sources with.
func WithLoader(l *Loader) Option {
	return func(o *options) {
		o.loader = l
	}
}
