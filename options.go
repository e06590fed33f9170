package brandmark

// ContextOption configures a Context during creation.
// Use functional options to customize Context behavior.
//
// Example:
//
//	// Default anti-aliased rendering
//	dc := brandmark.NewContext(512, 512)
//
//	// Hard-edged rendering
//	dc := brandmark.NewContext(512, 512, brandmark.WithAntialias(false))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	pixmap    *Pixmap
	antialias bool
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		pixmap:    nil, // Will be created if nil
		antialias: true,
	}
}

// WithPixmap sets a custom pixmap for the Context. The Context takes the
// pixmap's dimensions, ignoring the ones passed to NewContext.
//
// Example:
//
//	pm := brandmark.NewPixmap(1024, 1024)
//	dc := brandmark.NewContext(1024, 1024, brandmark.WithPixmap(pm))
func WithPixmap(pm *Pixmap) ContextOption {
	return func(o *contextOptions) {
		o.pixmap = pm
	}
}

// WithAntialias enables or disables anti-aliasing. With it disabled every
// pixel whose coverage reaches one half is painted fully and the rest are
// left untouched, which gives hard edges.
func WithAntialias(aa bool) ContextOption {
	return func(o *contextOptions) {
		o.antialias = aa
	}
}
