// Package brandmark provides a small immediate-mode 2D drawing library and
// the procedural generators for the project's brand assets.
//
// # Overview
//
// A Context owns a pixel buffer, a current path and a current color. Shapes
// are added to the path and painted with Fill or Stroke; the result is
// written out with SavePNG or EncodePNG. The logo and icon sub-packages
// build the shipped artifacts from literal geometry on top of it.
//
// # Quick Start
//
//	import "github.com/verifai/brandmark"
//
//	// Create a drawing context (dc = drawing context convention)
//	dc := brandmark.NewContext(512, 512)
//	dc.ClearWithColor(brandmark.White)
//
//	// Draw shapes
//	dc.SetHexColor("#4285F4")
//	dc.DrawPieSlice(256, 256, 180, -50, 130)
//	if err := dc.Fill(); err != nil {
//		return err
//	}
//
//	// Save to PNG
//	if err := dc.SavePNG("output.png"); err != nil {
//		return err
//	}
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Radian angles (DrawArc) and degree angles (DrawPieSlice) are both
//     measured from the positive x axis and grow clockwise on screen
//
// # Rendering
//
// Fills use the non-zero winding rule and source-over compositing.
// Rasterization is done by golang.org/x/image/vector; output is fully
// deterministic for a given sequence of calls.
package brandmark
