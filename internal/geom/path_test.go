package geom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointsToSmoothPathDegenerate(t *testing.T) {
	assert.Nil(t, PointsToSmoothPath(nil))

	single := PointsToSmoothPath([]Point{{X: 3, Y: 4}})
	require.Len(t, single, 1)
	assert.Equal(t, MoveTo, single[0].Op)

	pair := PointsToSmoothPath([]Point{{X: 0, Y: 0}, {X: 5, Y: 5}})
	require.Len(t, pair, 2)
	assert.Equal(t, MoveTo, pair[0].Op)
	assert.Equal(t, LineTo, pair[1].Op)
}

func TestPointsToSmoothPathStructure(t *testing.T) {
	pts := []Point{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 0}, {X: 30, Y: 10}}
	path := PointsToSmoothPath(pts)
	require.NotEmpty(t, path)

	assert.Equal(t, MoveTo, path[0].Op)
	assert.Equal(t, LineTo, path[len(path)-1].Op)
	for _, c := range path[1 : len(path)-1] {
		assert.Equal(t, CurveTo, c.Op)
	}

	// The path ends on the last input point.
	assert.InDelta(t, 30.0, path[len(path)-1].X, 1e-9)
	assert.InDelta(t, 10.0, path[len(path)-1].Y, 1e-9)
}

func TestPathSVG(t *testing.T) {
	p := Path{
		{Op: MoveTo, X: 0, Y: 0},
		{Op: CurveTo, CX: 5, CY: 5, X: 10, Y: 10},
		{Op: LineTo, X: 20, Y: 10.25},
	}
	svg := p.SVG()
	assert.Equal(t, "M 0 0 Q 5 5 10 10 L 20 10.25", svg)
	assert.True(t, strings.HasPrefix(svg, "M "))
}
