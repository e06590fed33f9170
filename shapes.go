package brandmark

import "math"

// DrawPolygon adds a closed polygon through pts to the current path.
func (c *Context) DrawPolygon(pts []Point) {
	c.path.Polygon(pts)
}

// DrawRegularPolygon adds a regular polygon with n sides to the current path.
func (c *Context) DrawRegularPolygon(n int, x, y, r, rotation float64) {
	if n < 3 {
		return
	}
	pts := make([]Point, n)
	angle := 2.0 * math.Pi / float64(n)
	for i := range pts {
		a := rotation + angle*float64(i)
		pts[i] = Pt(x+r*math.Cos(a), y+r*math.Sin(a))
	}
	c.path.Polygon(pts)
}

// DrawPieSlice adds a filled-sector outline to the current path.
// Angles are in degrees, clockwise from 3 o'clock.
func (c *Context) DrawPieSlice(x, y, r, startDeg, endDeg float64) {
	c.path.PieSlice(x, y, r, startDeg, endDeg)
}

// DrawArc adds a circular arc to the current path (angles in radians).
func (c *Context) DrawArc(x, y, r, angle1, angle2 float64) {
	c.path.Arc(x, y, r, angle1, angle2)
}

// DrawLine adds a line segment to the current path. Call Stroke to paint
// it with the current line width.
func (c *Context) DrawLine(x1, y1, x2, y2 float64) {
	c.MoveTo(x1, y1)
	c.LineTo(x2, y2)
}
