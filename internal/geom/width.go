package geom

import "math"

// widthFalloff is the inter-point distance (in px) at which a stroke thins
// to half its base width.
const widthFalloff = 8.0

// CalculateStrokeWidths derives a per-point width from the gap between
// consecutive points, a cheap velocity proxy: fast segments (large gaps)
// thin out toward min, slow segments thicken toward max. The first point
// always gets base. The result has one width per input point and every
// width lies in [min, max].
func CalculateStrokeWidths(points []Point, base, min, max float64) []float64 {
	if len(points) == 0 {
		return nil
	}
	if min > max {
		min, max = max, min
	}

	widths := make([]float64, len(points))
	widths[0] = base
	for i := 1; i < len(points); i++ {
		dx := points[i].X - points[i-1].X
		dy := points[i].Y - points[i-1].Y
		dist := math.Hypot(dx, dy)

		w := base * (2 * widthFalloff / (widthFalloff + dist))
		widths[i] = clamp(w, min, max)
	}
	return widths
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
