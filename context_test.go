package brandmark

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNewContext(t *testing.T) {
	ctx := NewContext(100, 100)
	if ctx == nil {
		t.Fatal("NewContext returned nil")
	}
	if ctx.Width() != 100 {
		t.Errorf("Width = %d, want 100", ctx.Width())
	}
	if ctx.Height() != 100 {
		t.Errorf("Height = %d, want 100", ctx.Height())
	}
	if got := ctx.pixmap.GetPixel(50, 50); got.A != 0 {
		t.Errorf("new canvas pixel = %+v, want transparent", got)
	}
	if !ctx.Antialias() {
		t.Error("anti-aliasing should be on by default")
	}
}

func TestClear(t *testing.T) {
	ctx := NewContext(10, 10)
	ctx.ClearWithColor(RGB(1, 0, 0))

	pixel := ctx.pixmap.GetPixel(5, 5)
	if pixel.R != 1.0 || pixel.G != 0.0 || pixel.B != 0.0 || pixel.A != 1.0 {
		t.Errorf("Pixel color = %+v, want red", pixel)
	}

	ctx.Clear()
	if pixel := ctx.pixmap.GetPixel(5, 5); pixel.A != 0 {
		t.Errorf("Clear left %+v, want transparent", pixel)
	}
}

func TestDrawRectangle(t *testing.T) {
	ctx := NewContext(100, 100)
	ctx.ClearWithColor(White)
	ctx.SetRGB(1, 0, 0)
	ctx.DrawRectangle(10, 10, 50, 50)
	if err := ctx.Fill(); err != nil {
		t.Fatalf("Fill() = %v", err)
	}

	// Check pixel inside rectangle (should be red)
	pixel := ctx.pixmap.GetPixel(30, 30)
	if pixel.R < 0.99 || pixel.G > 0.01 {
		t.Errorf("Pixel inside rectangle not red: %+v", pixel)
	}

	// Check pixel outside rectangle (should still be white)
	pixel = ctx.pixmap.GetPixel(5, 5)
	if pixel.R < 0.99 || pixel.G < 0.99 || pixel.B < 0.99 {
		t.Errorf("Pixel outside rectangle not white: %+v", pixel)
	}

	// Edges on integer coordinates are crisp even with anti-aliasing.
	if got := ctx.pixmap.NRGBAAt(9, 30); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("pixel left of rectangle = %v, want white", got)
	}
	if got := ctx.pixmap.NRGBAAt(10, 30); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("first pixel of rectangle = %v, want red", got)
	}
}

func TestDrawCircle(t *testing.T) {
	ctx := NewContext(100, 100)
	ctx.ClearWithColor(White)
	ctx.SetRGB(0, 0, 1)
	ctx.DrawCircle(50, 50, 25)
	if err := ctx.Fill(); err != nil {
		t.Fatalf("Fill() = %v", err)
	}

	// Check pixel inside circle
	pixel := ctx.pixmap.GetPixel(50, 50)
	if pixel.B < 0.99 || pixel.R > 0.01 {
		t.Errorf("Pixel at center not blue: %+v", pixel)
	}

	// Check pixel outside circle (should still be white)
	pixel = ctx.pixmap.GetPixel(10, 10)
	if pixel.R < 0.99 || pixel.G < 0.99 || pixel.B < 0.99 {
		t.Errorf("Pixel outside circle not white: %+v", pixel)
	}
}

func TestFillClearsPath(t *testing.T) {
	ctx := NewContext(20, 20)
	ctx.DrawRectangle(0, 0, 10, 10)
	if err := ctx.Fill(); err != nil {
		t.Fatalf("Fill() = %v", err)
	}
	if ctx.Path().HasCurrentPoint() {
		t.Error("Fill should clear the path")
	}

	ctx.DrawRectangle(0, 0, 10, 10)
	if err := ctx.FillPreserve(); err != nil {
		t.Fatalf("FillPreserve() = %v", err)
	}
	if !ctx.Path().HasCurrentPoint() {
		t.Error("FillPreserve should keep the path")
	}
}

func TestFillEmptyPath(t *testing.T) {
	ctx := NewContext(10, 10)
	if err := ctx.Fill(); err != nil {
		t.Errorf("Fill() on empty path = %v, want nil", err)
	}
	for i, v := range ctx.pixmap.Data() {
		if v != 0 {
			t.Fatalf("empty fill modified byte %d", i)
		}
	}
}

func TestSourceOverOnTransparent(t *testing.T) {
	ctx := NewContext(10, 10)
	ctx.SetRGBA(1, 1, 1, 0.5)
	ctx.DrawRectangle(0, 0, 10, 10)
	if err := ctx.Fill(); err != nil {
		t.Fatalf("Fill() = %v", err)
	}

	got := ctx.pixmap.NRGBAAt(5, 5)
	if got.A < 127 || got.A > 128 {
		t.Errorf("alpha = %d, want ~128", got.A)
	}
	if got.R < 254 {
		t.Errorf("straight red = %d, want 255", got.R)
	}
}

func TestClosedContext(t *testing.T) {
	ctx := NewContext(10, 10)
	if err := ctx.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if err := ctx.Close(); err != nil {
		t.Errorf("second Close() = %v, want nil", err)
	}

	ctx.DrawRectangle(0, 0, 5, 5)
	if err := ctx.Fill(); !errors.Is(err, ErrContextClosed) {
		t.Errorf("Fill() after Close = %v, want ErrContextClosed", err)
	}
	ctx.DrawLine(0, 0, 5, 5)
	if err := ctx.Stroke(); !errors.Is(err, ErrContextClosed) {
		t.Errorf("Stroke() after Close = %v, want ErrContextClosed", err)
	}
}

func TestNewContextForImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 10, 30, 20))
	src.SetNRGBA(10, 10, color.NRGBA{0, 255, 0, 255})

	ctx := NewContextForImage(src)
	if ctx.Width() != 20 || ctx.Height() != 10 {
		t.Fatalf("size = %dx%d, want 20x10", ctx.Width(), ctx.Height())
	}
	if got := ctx.pixmap.NRGBAAt(0, 0); got != (color.NRGBA{0, 255, 0, 255}) {
		t.Errorf("origin pixel = %v, want green", got)
	}
}

func TestSetColorVariants(t *testing.T) {
	ctx := NewContext(1, 1)

	ctx.SetHexColor("#1976D2")
	if got := ctx.CurrentColor().NRGBA(); got != (color.NRGBA{25, 118, 210, 255}) {
		t.Errorf("SetHexColor = %v", got)
	}

	ctx.SetColor(color.NRGBA{10, 20, 30, 255})
	if got := ctx.CurrentColor().NRGBA(); got != (color.NRGBA{10, 20, 30, 255}) {
		t.Errorf("SetColor = %v", got)
	}

	ctx.SetRGBA(0, 0, 0, 0)
	if got := ctx.CurrentColor(); got != Transparent {
		t.Errorf("SetRGBA = %+v", got)
	}
}
