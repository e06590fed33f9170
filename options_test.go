package brandmark

import (
	"image/color"
	"testing"
)

func TestNewContextWithPixmap(t *testing.T) {
	pm := NewPixmap(30, 20)

	dc := NewContext(100, 100, WithPixmap(pm))
	if dc.Pixmap() != pm {
		t.Fatal("context does not draw into the injected pixmap")
	}
	if dc.Width() != 30 || dc.Height() != 20 {
		t.Errorf("size = %dx%d, want the pixmap's 30x20", dc.Width(), dc.Height())
	}

	dc.SetRGB(1, 0, 0)
	dc.DrawRectangle(0, 0, 30, 20)
	if err := dc.Fill(); err != nil {
		t.Fatalf("Fill() = %v", err)
	}
	if got := pm.NRGBAAt(29, 19); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("injected pixmap pixel = %v, want red", got)
	}
}

func TestWithAntialias(t *testing.T) {
	tests := []struct {
		name    string
		opts    []ContextOption
		want    bool
		partial bool // whether an edge pixel may hold partial coverage
	}{
		{"default", nil, true, true},
		{"on", []ContextOption{WithAntialias(true)}, true, true},
		{"off", []ContextOption{WithAntialias(false)}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dc := NewContext(20, 20, tt.opts...)
			if dc.Antialias() != tt.want {
				t.Fatalf("Antialias() = %v, want %v", dc.Antialias(), tt.want)
			}

			// Half-pixel offsets put the left and right edges mid-pixel.
			dc.SetRGB(0, 0, 0)
			dc.DrawRectangle(2.5, 2, 10, 10)
			if err := dc.Fill(); err != nil {
				t.Fatalf("Fill() = %v", err)
			}

			a := dc.Pixmap().NRGBAAt(2, 5).A
			isPartial := a != 0 && a != 255
			if isPartial != tt.partial {
				t.Errorf("edge alpha = %d, partial = %v, want partial = %v", a, isPartial, tt.partial)
			}
		})
	}
}
