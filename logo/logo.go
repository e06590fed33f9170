// Package logo draws the four-color ring-and-bar logo.
package logo

import (
	"fmt"

	"github.com/verifai/brandmark"
)

// DefaultPath is where Generate writes when the caller has no preference.
const DefaultPath = "assets/images/google_logo.png"

// Size is the width and height of the logo in pixels.
const Size = 512

// Ring geometry.
const (
	CenterX     = 256.0
	CenterY     = 256.0
	Radius      = 180.0
	InnerRadius = 140.0
)

// Bar geometry. The horizontal bar starts on the vertical center line and
// the vertical bar is flush with its right end.
const (
	BarWidth      = 100.0
	BarHeight     = 40.0
	VertBarWidth  = 40.0
	VertBarHeight = 100.0
)

// Palette
var (
	Blue       = brandmark.Hex("#4285F4")
	Red        = brandmark.Hex("#EA4335")
	Yellow     = brandmark.Hex("#FBBC05")
	Green      = brandmark.Hex("#34A853")
	Background = brandmark.White
)

// Wedge is one colored sector of the ring.
type Wedge struct {
	Start, End float64 // degrees, clockwise from 3 o'clock
	Color      brandmark.RGBA
}

// Wedges lists the ring sectors in drawing order. They span 450 degrees:
// green, drawn last, covers -50..40 of the blue wedge, leaving blue visible
// from 40 to 130.
var Wedges = []Wedge{
	{Start: -50, End: 130, Color: Blue},
	{Start: 130, End: 220, Color: Red},
	{Start: 220, End: 310, Color: Yellow},
	{Start: 310, End: 400, Color: Green},
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Bars returns the horizontal and vertical bar rectangles.
func Bars() [2]Rect {
	return [2]Rect{
		{X: CenterX, Y: CenterY - BarHeight/2, W: BarWidth, H: BarHeight},
		{X: CenterX + BarWidth - VertBarWidth, Y: CenterY - VertBarHeight/2, W: VertBarWidth, H: VertBarHeight},
	}
}

// Render draws the logo onto a new context. Edges are hard unless opts
// turn anti-aliasing back on.
func Render(opts ...brandmark.ContextOption) (*brandmark.Context, error) {
	opts = append([]brandmark.ContextOption{brandmark.WithAntialias(false)}, opts...)
	dc := brandmark.NewContext(Size, Size, opts...)
	dc.ClearWithColor(Background)

	for _, w := range Wedges {
		dc.SetColor(w.Color.Color())
		dc.DrawPieSlice(CenterX, CenterY, Radius, w.Start, w.End)
		if err := dc.Fill(); err != nil {
			return nil, fmt.Errorf("logo: wedge %v..%v: %w", w.Start, w.End, err)
		}
	}

	dc.SetColor(Background.Color())
	dc.DrawCircle(CenterX, CenterY, InnerRadius)
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("logo: inner disc: %w", err)
	}

	dc.SetColor(Blue.Color())
	for _, b := range Bars() {
		dc.DrawRectangle(b.X, b.Y, b.W, b.H)
		if err := dc.Fill(); err != nil {
			return nil, fmt.Errorf("logo: bar: %w", err)
		}
	}
	return dc, nil
}

// Generate renders the logo and writes it to path. The parent directory
// must already exist.
func Generate(path string, opts ...brandmark.ContextOption) error {
	dc, err := Render(opts...)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("logo: %w", err)
	}
	brandmark.Logger().Info("logo generated", "path", path, "size", Size)
	return nil
}
