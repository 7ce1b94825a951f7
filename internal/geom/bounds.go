package geom

// Bounds is the safe interior of a rendering surface. Generated geometry is
// clamped into [MinX+SafeMargin, MaxX-SafeMargin] x [MinY+SafeMargin,
// MaxY-SafeMargin] so nothing lands off-canvas.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
	SafeMargin float64
}

// BoundsForCanvas derives Bounds from a canvas pixel size and margin.
func BoundsForCanvas(width, height, margin float64) Bounds {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Bounds{MinX: 0, MaxX: width, MinY: 0, MaxY: height, SafeMargin: margin}
}

func (b Bounds) safe() (loX, hiX, loY, hiY float64) {
	loX, hiX = b.MinX+b.SafeMargin, b.MaxX-b.SafeMargin
	loY, hiY = b.MinY+b.SafeMargin, b.MaxY-b.SafeMargin
	// A margin wider than the surface collapses to the center.
	if loX > hiX {
		mid := (b.MinX + b.MaxX) / 2
		loX, hiX = mid, mid
	}
	if loY > hiY {
		mid := (b.MinY + b.MaxY) / 2
		loY, hiY = mid, mid
	}
	return loX, hiX, loY, hiY
}

// ClampPoint returns p moved into the safe interior.
func (b Bounds) ClampPoint(p Point) Point {
	loX, hiX, loY, hiY := b.safe()
	p.X = clamp(p.X, loX, hiX)
	p.Y = clamp(p.Y, loY, hiY)
	return p
}

// ClampToBounds clamps every point of a set into the safe interior. The
// input slice is not modified.
func ClampToBounds(points []Point, b Bounds) []Point {
	if len(points) == 0 {
		return nil
	}
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = b.ClampPoint(p)
	}
	return out
}

// ConstrainPathToBounds clamps a rectangle (anchor + size) into the safe
// interior, shrinking it if it cannot fit at its anchor.
func ConstrainPathToBounds(x, y, w, h float64, b Bounds) (cx, cy, cw, ch float64) {
	loX, hiX, loY, hiY := b.safe()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	cx = clamp(x, loX, hiX)
	cy = clamp(y, loY, hiY)
	cw = w
	if cx+cw > hiX {
		cw = hiX - cx
	}
	ch = h
	if cy+ch > hiY {
		ch = hiY - cy
	}
	return cx, cy, cw, ch
}
