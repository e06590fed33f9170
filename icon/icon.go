// Package icon draws the application icon: a white shield carrying a
// checkmark. It comes in two variants, an opaque icon and a transparent
// foreground layer for adaptive launcher icons.
package icon

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/verifai/brandmark"
)

// DefaultDir is where Generate writes when the caller has no preference.
const DefaultDir = "assets/icon"

// Output file names inside the target directory.
const (
	AppIconFile    = "app_icon.png"
	ForegroundFile = "app_icon_foreground.png"
)

// Size is the width and height of both variants in pixels.
const Size = 1024

const (
	shieldFraction = 0.6
	checkWidth     = 60.0
)

// Colors
var (
	Brand       = brandmark.Hex("#1976D2")
	ShieldColor = brandmark.White

	// Foreground variant colors carry explicit alpha.
	ForegroundShield = brandmark.RGB8(255, 255, 255, 255)
	ForegroundCheck  = brandmark.RGB8(25, 118, 210, 255)
)

// Segment is a straight line between two points.
type Segment struct {
	From, To brandmark.Point
}

// CheckWidth returns the stroke width of the checkmark.
func CheckWidth() float64 {
	return checkWidth
}

// layout holds the derived measurements for a canvas of a given size.
type layout struct {
	center float64 // both axes
	margin float64
	shield float64 // shield extent
}

func newLayout(size int) layout {
	s := float64(size) * shieldFraction
	return layout{
		center: float64(size / 2),
		margin: math.Floor((float64(size) - s) / 2),
		shield: s,
	}
}

// Shield returns the eight shield vertices for a canvas of the given size,
// clockwise from the top.
func Shield(size int) []brandmark.Point {
	l := newLayout(size)
	c, m, s := l.center, l.margin, l.shield
	return []brandmark.Point{
		brandmark.Pt(c, m+50),          // top
		brandmark.Pt(m+s-100, m+150),   // top right
		brandmark.Pt(m+s-50, c),        // right
		brandmark.Pt(m+s-100, m+s-100), // bottom right
		brandmark.Pt(c, m+s),           // bottom
		brandmark.Pt(m+100, m+s-100),   // bottom left
		brandmark.Pt(m+50, c),          // left
		brandmark.Pt(m+100, m+150),     // top left
	}
}

// Checkmark returns the short and the long stroke of the checkmark. The
// short stroke ends where the long one begins.
func Checkmark(size int) [2]Segment {
	c := newLayout(size).center
	mid := brandmark.Pt(c-40, c+120)
	return [2]Segment{
		{From: brandmark.Pt(c-120, c+20), To: mid},
		{From: mid, To: brandmark.Pt(c+150, c-100)},
	}
}

// RenderApp draws the opaque icon.
func RenderApp(opts ...brandmark.ContextOption) (*brandmark.Context, error) {
	dc := newCanvas(opts)
	dc.ClearWithColor(Brand)
	if err := drawBadge(dc, ShieldColor, Brand); err != nil {
		return nil, fmt.Errorf("icon: app icon: %w", err)
	}
	return dc, nil
}

// RenderForeground draws the transparent adaptive-icon foreground. With the
// default hard edges its alpha is 0 or 255 everywhere.
func RenderForeground(opts ...brandmark.ContextOption) (*brandmark.Context, error) {
	dc := newCanvas(opts)
	dc.Clear()
	if err := drawBadge(dc, ForegroundShield, ForegroundCheck); err != nil {
		return nil, fmt.Errorf("icon: foreground: %w", err)
	}
	return dc, nil
}

// newCanvas creates a Size×Size context with hard edges unless opts
// re-enable anti-aliasing.
func newCanvas(opts []brandmark.ContextOption) *brandmark.Context {
	opts = append([]brandmark.ContextOption{brandmark.WithAntialias(false)}, opts...)
	return brandmark.NewContext(Size, Size, opts...)
}

func drawBadge(dc *brandmark.Context, shield, check brandmark.RGBA) error {
	dc.SetColor(shield.Color())
	dc.DrawPolygon(Shield(dc.Width()))
	if err := dc.Fill(); err != nil {
		return err
	}

	dc.SetColor(check.Color())
	dc.SetLineWidth(checkWidth)
	for _, seg := range Checkmark(dc.Width()) {
		dc.DrawLine(seg.From.X, seg.From.Y, seg.To.X, seg.To.Y)
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

// Generate renders both variants and writes them into dir, which must
// already exist. It returns the paths written, stopping at the first error.
func Generate(dir string, opts ...brandmark.ContextOption) ([]string, error) {
	targets := []struct {
		name   string
		render func(...brandmark.ContextOption) (*brandmark.Context, error)
	}{
		{AppIconFile, RenderApp},
		{ForegroundFile, RenderForeground},
	}

	var written []string
	for _, t := range targets {
		dc, err := t.render(opts...)
		if err != nil {
			return written, err
		}
		p := filepath.Join(dir, t.name)
		err = dc.SavePNG(p)
		_ = dc.Close()
		if err != nil {
			return written, fmt.Errorf("icon: %w", err)
		}
		brandmark.Logger().Info("icon generated", "path", p, "size", Size)
		written = append(written, p)
	}
	return written, nil
}
