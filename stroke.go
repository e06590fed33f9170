package brandmark

// strokeOutline expands every segment of p into a quad of the given width
// with butt ends and no joins. Curves are flattened first. All quads share
// one winding direction so overlapping segments merge under non-zero fill
// instead of cancelling.
func strokeOutline(p *Path, width float64) *Path {
	out := NewPath()
	if width <= 0 {
		return out
	}
	hw := width / 2

	for _, pl := range p.flatten(flattenTolerance) {
		pts := pl.points
		if pl.closed && len(pts) > 2 && pts[len(pts)-1] != pts[0] {
			pts = append(pts, pts[0])
		}
		for i := 1; i < len(pts); i++ {
			segmentQuad(out, pts[i-1], pts[i], hw)
		}
	}
	return out
}

// segmentQuad adds the rectangle of half-width hw around segment (a, b).
// Zero-length segments have no direction and add nothing.
func segmentQuad(out *Path, a, b Point, hw float64) {
	d := b.Sub(a)
	if d.Length() == 0 {
		return
	}
	n := d.Normalize().Perp().Mul(hw)
	out.Polygon([]Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
}
