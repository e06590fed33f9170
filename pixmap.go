package brandmark

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

// Pixmap represents a rectangular pixel buffer. Pixels are stored
// premultiplied in an *image.RGBA so fills can composite in place.
type Pixmap struct {
	img *image.RGBA
}

// NewPixmap creates a new fully transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.img.Rect.Dx()
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.img.Rect.Dy()
}

// Data returns the raw pixel data (premultiplied RGBA).
func (p *Pixmap) Data() []uint8 {
	return p.img.Pix
}

// SetPixel replaces the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	p.img.Set(x, y, c.NRGBA())
}

// GetPixel returns the straight-alpha color of a single pixel.
// Out-of-range coordinates yield Transparent.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if !(image.Point{X: x, Y: y}).In(p.img.Rect) {
		return Transparent
	}
	return FromColor(p.img.RGBAAt(x, y))
}

// NRGBAAt returns the 8-bit straight-alpha color of a single pixel.
func (p *Pixmap) NRGBAAt(x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(p.img.RGBAAt(x, y)).(color.NRGBA)
}

// Clear fills the entire pixmap with a color, replacing what was there.
func (p *Pixmap) Clear(c RGBA) {
	draw.Draw(p.img, p.img.Rect, image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

// ToImage returns a copy of the pixmap as an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(p.img.Rect)
	copy(img.Pix, p.img.Pix)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(src image.Image) *Pixmap {
	b := src.Bounds()
	pm := NewPixmap(b.Dx(), b.Dy())
	draw.Draw(pm.img, pm.img.Rect, src, b.Min, draw.Src)
	return pm
}

// EncodePNG writes the pixmap to w as PNG.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.img)
}

// SavePNG saves the pixmap to a PNG file. The parent directory must exist.
func (p *Pixmap) SavePNG(path string) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("brandmark: save png: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("brandmark: save png: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := p.EncodePNG(bw); err != nil {
		return fmt.Errorf("brandmark: encode %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("brandmark: save png: %w", err)
	}

	Logger().Debug("saved png", "path", path, "width", p.Width(), "height", p.Height())
	return nil
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.img.At(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return p.img.Rect
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}

// Set implements the draw.Image interface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.img.Set(x, y, c)
}

// rgba returns the backing buffer for in-place compositing.
func (p *Pixmap) rgba() *image.RGBA {
	return p.img
}
