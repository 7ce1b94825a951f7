package geom

// Point is a single coordinate on the annotation surface. Pressure and Time
// are optional and only present on captured input; synthesized points leave
// them zero.
type Point struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Pressure float64 `json:"pressure,omitempty"`
	Time     float64 `json:"time,omitempty"`
}

// BoundingBox computes the axis-aligned bounding box of a point set.
// An empty input yields a zero box.
func BoundingBox(points []Point) (minX, minY, maxX, maxY float64) {
	if len(points) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = points[0].X, points[0].Y
	maxX, maxY = points[0].X, points[0].Y
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return minX, minY, maxX, maxY
}
