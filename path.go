package brandmark

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// flattenTolerance is the maximum distance in pixels between a cubic
// and the polyline that replaces it.
const flattenTolerance = 0.1

// Path represents a vector path.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// HasCurrentPoint returns true if the path has a current point.
func (p *Path) HasCurrentPoint() bool {
	return len(p.elements) > 0
}

// Rectangle adds a rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Circle adds a circle to the path using cubic Bezier curves.
func (p *Path) Circle(cx, cy, r float64) {
	// 4/3 * (sqrt(2) - 1)
	const k = 0.5522847498307936
	offset := r * k

	p.MoveTo(cx+r, cy)
	p.CubicTo(cx+r, cy+offset, cx+offset, cy+r, cx, cy+r)
	p.CubicTo(cx-offset, cy+r, cx-r, cy+offset, cx-r, cy)
	p.CubicTo(cx-r, cy-offset, cx-offset, cy-r, cx, cy-r)
	p.CubicTo(cx+offset, cy-r, cx+r, cy-offset, cx+r, cy)
	p.Close()
}

// Polygon adds a closed polygon through pts. Fewer than three points
// add nothing.
func (p *Path) Polygon(pts []Point) {
	if len(pts) < 3 {
		return
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
}

// Arc adds a circular arc from angle1 to angle2 (radians) around (cx, cy).
// The arc is joined to the current point with a straight line, or starts a
// new subpath if the path is empty.
func (p *Path) Arc(cx, cy, r, angle1, angle2 float64) {
	const twoPi = 2 * math.Pi
	for angle2 < angle1 {
		angle2 += twoPi
	}

	x1 := cx + r*math.Cos(angle1)
	y1 := cy + r*math.Sin(angle1)
	if len(p.elements) == 0 {
		p.MoveTo(x1, y1)
	} else {
		p.LineTo(x1, y1)
	}
	p.arc(cx, cy, r, angle1, angle2)
}

// PieSlice adds a closed circular sector. Angles are in degrees, measured
// clockwise from the positive x axis on a y-down canvas. An end angle below
// the start is advanced by whole turns; spans of a full turn or more
// produce a full circle.
func (p *Path) PieSlice(cx, cy, r, startDeg, endDeg float64) {
	for endDeg < startDeg {
		endDeg += 360
	}
	switch span := endDeg - startDeg; {
	case span >= 360:
		p.Circle(cx, cy, r)
		return
	case span == 0:
		return
	}

	a1 := startDeg * math.Pi / 180
	a2 := endDeg * math.Pi / 180
	p.MoveTo(cx, cy)
	p.LineTo(cx+r*math.Cos(a1), cy+r*math.Sin(a1))
	p.arc(cx, cy, r, a1, a2)
	p.Close()
}

// arc appends cubic segments of at most 90 degrees each. The current point
// must already be at angle1.
func (p *Path) arc(cx, cy, r, angle1, angle2 float64) {
	const maxAngle = math.Pi / 2
	// The epsilon keeps exact multiples of 90 degrees from gaining a
	// segment through rounding.
	numSegments := int(math.Ceil((angle2-angle1)/maxAngle - 1e-9))
	if numSegments <= 0 {
		return
	}
	angleStep := (angle2 - angle1) / float64(numSegments)

	for i := 0; i < numSegments; i++ {
		a1 := angle1 + float64(i)*angleStep
		p.arcSegment(cx, cy, r, a1, a1+angleStep)
	}
}

// arcSegment adds a single arc segment (<= 90 degrees).
func (p *Path) arcSegment(cx, cy, r, a1, a2 float64) {
	t := math.Tan((a2 - a1) / 2)
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*t*t) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1 := cx + r*cos1
	y1 := cy + r*sin1
	x2 := cx + r*cos2
	y2 := cy + r*sin2

	p.CubicTo(
		x1-alpha*r*sin1, y1+alpha*r*cos1,
		x2+alpha*r*sin2, y2-alpha*r*cos2,
		x2, y2,
	)
}

// polyline is one flattened subpath.
type polyline struct {
	points []Point
	closed bool
}

// flatten converts the path into polylines, replacing cubics with line
// segments within tolerance.
func (p *Path) flatten(tolerance float64) []polyline {
	var (
		out     []polyline
		cur     *polyline
		current Point
	)
	begin := func(pt Point) {
		out = append(out, polyline{points: []Point{pt}})
		cur = &out[len(out)-1]
		current = pt
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			begin(e.Point)
		case LineTo:
			if cur == nil {
				begin(current)
			}
			cur.points = append(cur.points, e.Point)
			current = e.Point
		case CubicTo:
			if cur == nil {
				begin(current)
			}
			flattenCubic(current, e.Control1, e.Control2, e.Point, tolerance, &cur.points)
			current = e.Point
		case Close:
			if cur != nil {
				cur.closed = true
				current = cur.points[0]
				cur = nil
			}
		}
	}
	return out
}

// flattenCubic recursively subdivides a cubic Bezier curve, appending the
// end point of every flat-enough piece.
func flattenCubic(p0, p1, p2, p3 Point, tolerance float64, points *[]Point) {
	if math.Max(distanceToSegment(p1, p0, p3), distanceToSegment(p2, p0, p3)) < tolerance {
		*points = append(*points, p3)
		return
	}

	// de Casteljau split at t=0.5
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	flattenCubic(p0, q0, r0, s, tolerance, points)
	flattenCubic(s, r1, q2, p3, tolerance, points)
}

// distanceToSegment calculates the distance from p to segment (a, b).
func distanceToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLen2 := ab.Dot(ab)
	if abLen2 < 1e-20 {
		return p.Distance(a)
	}

	t := p.Sub(a).Dot(ab) / abLen2
	switch {
	case t < 0:
		return p.Distance(a)
	case t > 1:
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}
