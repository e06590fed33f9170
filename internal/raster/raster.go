// Package raster converts path outlines into coverage masks and composites
// them onto RGBA pixel buffers.
package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// PathElement represents an element in an outline.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath.
type MoveTo struct{ Point Point }

func (MoveTo) isPathElement() {}

// LineTo draws a line.
type LineTo struct{ Point Point }

func (LineTo) isPathElement() {}

// CubicTo draws a cubic curve.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isPathElement() {}

// Close closes the subpath.
type Close struct{}

func (Close) isPathElement() {}

// aliasThreshold is the coverage at or above which a pixel counts as
// inside when anti-aliasing is off.
const aliasThreshold = 0x80

// Rasterizer fills outlines with non-zero winding and source-over
// compositing. It reuses its coverage buffers across calls and is not safe
// for concurrent use.
type Rasterizer struct {
	width     int
	height    int
	z         *vector.Rasterizer
	mask      *image.Alpha
	antialias bool
}

// NewRasterizer creates a rasterizer for targets of the given dimensions.
// Anti-aliasing is enabled.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{
		width:     width,
		height:    height,
		z:         vector.NewRasterizer(width, height),
		mask:      image.NewAlpha(image.Rect(0, 0, width, height)),
		antialias: true,
	}
}

// SetAntialias toggles anti-aliasing. When off, partially covered pixels
// are either fully painted or left alone.
func (r *Rasterizer) SetAntialias(aa bool) {
	r.antialias = aa
}

// Antialias reports whether anti-aliasing is enabled.
func (r *Rasterizer) Antialias() bool {
	return r.antialias
}

// Bounds returns the rectangle the rasterizer covers.
func (r *Rasterizer) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// Coverage rasterizes elements into the internal mask and returns it.
// The mask is overwritten by the next call.
func (r *Rasterizer) Coverage(elements []PathElement) *image.Alpha {
	r.z.Reset(r.width, r.height)
	r.z.DrawOp = draw.Src

	var (
		open  bool
		first Point
	)
	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			if open {
				r.z.ClosePath()
			}
			r.z.MoveTo(float32(e.Point.X), float32(e.Point.Y))
			first = e.Point
			open = true
		case LineTo:
			if !open {
				r.z.MoveTo(float32(first.X), float32(first.Y))
				open = true
			}
			r.z.LineTo(float32(e.Point.X), float32(e.Point.Y))
		case CubicTo:
			if !open {
				r.z.MoveTo(float32(first.X), float32(first.Y))
				open = true
			}
			r.z.CubeTo(
				float32(e.Control1.X), float32(e.Control1.Y),
				float32(e.Control2.X), float32(e.Control2.Y),
				float32(e.Point.X), float32(e.Point.Y),
			)
		case Close:
			if open {
				r.z.ClosePath()
				open = false
			}
		}
	}
	if open {
		r.z.ClosePath()
	}

	r.z.Draw(r.mask, r.mask.Bounds(), image.Opaque, image.Point{})

	if !r.antialias {
		for i, a := range r.mask.Pix {
			if a >= aliasThreshold {
				r.mask.Pix[i] = 0xff
			} else {
				r.mask.Pix[i] = 0
			}
		}
	}
	return r.mask
}

// Fill composites c over dst wherever elements cover it. dst must share
// the rasterizer's origin at (0, 0).
func (r *Rasterizer) Fill(dst draw.Image, elements []PathElement, c color.Color) {
	if len(elements) == 0 {
		return
	}
	mask := r.Coverage(elements)
	draw.DrawMask(dst, dst.Bounds().Intersect(r.Bounds()), image.NewUniform(c), image.Point{}, mask, image.Point{}, draw.Over)
}
