package brandmark

import (
	"errors"
	"image"
	"image/color"
	"io"

	"github.com/verifai/brandmark/internal/raster"
)

// ErrContextClosed is returned by drawing operations on a closed Context.
var ErrContextClosed = errors.New("brandmark: context is closed")

// Context is the main drawing context.
// It maintains a pixmap, the current path, the current color and line width.
// Context implements io.Closer for proper resource cleanup.
type Context struct {
	width      int
	height     int
	pixmap     *Pixmap
	rasterizer *raster.Rasterizer

	// Current state
	path      *Path
	color     RGBA
	lineWidth float64

	// Lifecycle
	closed bool // Indicates whether Close has been called
}

// Ensure Context implements io.Closer
var _ io.Closer = (*Context)(nil)

// NewContext creates a new drawing context with the given dimensions.
// The canvas starts fully transparent, the current color is opaque black
// and the line width is 1.
//
//	// Default anti-aliased rendering
//	dc := brandmark.NewContext(800, 600)
//
//	// Draw into an existing pixmap
//	dc := brandmark.NewContext(800, 600, brandmark.WithPixmap(pm))
func NewContext(width, height int, opts ...ContextOption) *Context {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	pixmap := options.pixmap
	if pixmap == nil {
		pixmap = NewPixmap(width, height)
	}
	width, height = pixmap.Width(), pixmap.Height()

	r := raster.NewRasterizer(width, height)
	r.SetAntialias(options.antialias)

	return &Context{
		width:      width,
		height:     height,
		pixmap:     pixmap,
		rasterizer: r,
		path:       NewPath(),
		color:      Black,
		lineWidth:  1,
	}
}

// NewContextForImage creates a context that draws on a copy of img.
func NewContextForImage(img image.Image, opts ...ContextOption) *Context {
	pm := FromImage(img)
	opts = append(opts, WithPixmap(pm))
	return NewContext(pm.Width(), pm.Height(), opts...)
}

// Close releases resources associated with the Context.
// After Close, drawing operations return ErrContextClosed.
// Close is idempotent - multiple calls are safe.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.ClearPath()
	return nil
}

// Width returns the width of the context.
func (c *Context) Width() int {
	return c.width
}

// Height returns the height of the context.
func (c *Context) Height() int {
	return c.height
}

// Antialias reports whether fills are anti-aliased.
func (c *Context) Antialias() bool {
	return c.rasterizer.Antialias()
}

// Pixmap returns the pixmap the context draws into.
func (c *Context) Pixmap() *Pixmap {
	return c.pixmap
}

// Image returns a copy of the context's image.
func (c *Context) Image() image.Image {
	return c.pixmap.ToImage()
}

// SavePNG saves the context to a PNG file. The parent directory must exist.
func (c *Context) SavePNG(path string) error {
	return c.pixmap.SavePNG(path)
}

// EncodePNG writes the context's image to w as PNG.
func (c *Context) EncodePNG(w io.Writer) error {
	return c.pixmap.EncodePNG(w)
}

// Clear makes the entire context transparent.
func (c *Context) Clear() {
	c.pixmap.Clear(Transparent)
}

// ClearWithColor fills the entire context with a specific color.
func (c *Context) ClearWithColor(col RGBA) {
	c.pixmap.Clear(col)
}

// SetColor sets the current drawing color.
func (c *Context) SetColor(col color.Color) {
	c.color = FromColor(col)
}

// SetRGB sets the current color using RGB values (0-1).
func (c *Context) SetRGB(r, g, b float64) {
	c.color = RGB(r, g, b)
}

// SetRGBA sets the current color using RGBA values (0-1).
func (c *Context) SetRGBA(r, g, b, a float64) {
	c.color = RGBA2(r, g, b, a)
}

// SetHexColor sets the current color using a hex string.
func (c *Context) SetHexColor(hex string) {
	c.color = Hex(hex)
}

// CurrentColor returns the current drawing color.
func (c *Context) CurrentColor() RGBA {
	return c.color
}

// SetLineWidth sets the width used by Stroke.
func (c *Context) SetLineWidth(width float64) {
	c.lineWidth = width
}

// LineWidth returns the width used by Stroke.
func (c *Context) LineWidth() float64 {
	return c.lineWidth
}

// MoveTo starts a new subpath at the given point.
func (c *Context) MoveTo(x, y float64) {
	c.path.MoveTo(x, y)
}

// LineTo adds a line to the current path.
func (c *Context) LineTo(x, y float64) {
	c.path.LineTo(x, y)
}

// CubicTo adds a cubic Bezier curve to the current path.
func (c *Context) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.path.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

// ClosePath closes the current subpath.
func (c *Context) ClosePath() {
	c.path.Close()
}

// ClearPath clears the current path.
func (c *Context) ClearPath() {
	c.path.Clear()
}

// Path returns the current path.
func (c *Context) Path() *Path {
	return c.path
}

// Fill fills the current path with the current color and clears the path.
func (c *Context) Fill() error {
	err := c.FillPreserve()
	c.ClearPath()
	return err
}

// FillPreserve fills the current path without clearing it.
func (c *Context) FillPreserve() error {
	return c.fillPath(c.path)
}

// Stroke strokes the current path with the current color and line width,
// then clears the path. Segments get butt ends and no joins.
func (c *Context) Stroke() error {
	err := c.StrokePreserve()
	c.ClearPath()
	return err
}

// StrokePreserve strokes the current path without clearing it.
func (c *Context) StrokePreserve() error {
	if c.closed {
		return ErrContextClosed
	}
	return c.fillPath(strokeOutline(c.path, c.lineWidth))
}

// DrawRectangle adds a rectangle to the current path.
func (c *Context) DrawRectangle(x, y, w, h float64) {
	c.path.Rectangle(x, y, w, h)
}

// DrawCircle adds a circle to the current path.
func (c *Context) DrawCircle(x, y, r float64) {
	c.path.Circle(x, y, r)
}

func (c *Context) fillPath(p *Path) error {
	if c.closed {
		return ErrContextClosed
	}
	elements := convertPath(p)
	if len(elements) == 0 {
		return nil
	}
	Logger().Debug("fill", "elements", len(elements), "color", c.color, "antialias", c.rasterizer.Antialias())
	c.rasterizer.Fill(c.pixmap.rgba(), elements, c.color.NRGBA())
	return nil
}

// convertPath converts Path elements to raster.PathElement.
func convertPath(p *Path) []raster.PathElement {
	elements := make([]raster.PathElement, 0, len(p.Elements()))
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			elements = append(elements, raster.MoveTo{Point: raster.Point(e.Point)})
		case LineTo:
			elements = append(elements, raster.LineTo{Point: raster.Point(e.Point)})
		case CubicTo:
			elements = append(elements, raster.CubicTo{
				Control1: raster.Point(e.Control1),
				Control2: raster.Point(e.Control2),
				Point:    raster.Point(e.Point),
			})
		case Close:
			elements = append(elements, raster.Close{})
		}
	}
	return elements
}
