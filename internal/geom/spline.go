package geom

// SmoothPoints densifies a freehand point sequence with Catmull-Rom spline
// interpolation so strokes render as curves instead of polylines. Inputs with
// fewer than 3 points are returned unchanged. segments controls how many
// interpolated points are emitted per input segment (values < 1 fall back
// to 1).
//
// The tension argument is accepted for API symmetry but does not alter the
// basis; the standard Catmull-Rom blend is always used. Downstream visuals
// depend on the current curve shape, so do not wire it in without changing
// the contract.
func SmoothPoints(points []Point, tension float64, segments int) []Point {
	_ = tension
	if len(points) < 3 {
		return points
	}
	if segments < 1 {
		segments = 1
	}

	out := make([]Point, 0, (len(points)-1)*segments+1)
	out = append(out, points[0])

	for i := 0; i < len(points)-1; i++ {
		p0 := points[max(i-1, 0)]
		p1 := points[i]
		p2 := points[i+1]
		p3 := points[min(i+2, len(points)-1)]

		for s := 1; s <= segments; s++ {
			t := float64(s) / float64(segments)
			out = append(out, catmullRom(p0, p1, p2, p3, t))
		}
	}
	return out
}

// catmullRom evaluates the uniform Catmull-Rom basis at t in [0,1] for the
// segment between p1 and p2.
func catmullRom(p0, p1, p2, p3 Point, t float64) Point {
	t2 := t * t
	t3 := t2 * t
	return Point{
		X: 0.5 * (2*p1.X +
			(-p0.X+p2.X)*t +
			(2*p0.X-5*p1.X+4*p2.X-p3.X)*t2 +
			(-p0.X+3*p1.X-3*p2.X+p3.X)*t3),
		Y: 0.5 * (2*p1.Y +
			(-p0.Y+p2.Y)*t +
			(2*p0.Y-5*p1.Y+4*p2.Y-p3.Y)*t2 +
			(-p0.Y+3*p1.Y-3*p2.Y+p3.Y)*t3),
	}
}
