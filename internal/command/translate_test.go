package command

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SharedSlate/internal/geom"
	"SharedSlate/internal/state"
)

func testTranslator(canvasW, canvasH, margin float64) *Translator {
	engine := geom.NewEngine(geom.Config{}, rand.New(rand.NewSource(1)))
	return NewTranslator(engine, canvasW, canvasH, margin, nil)
}

func TestTranslateTextRescalesToCanvas(t *testing.T) {
	// Logical center (500,350) of the 1000x700 space lands at the canvas
	// center on a double-size canvas.
	tr := testTranslator(2000, 1400, 0)
	els := tr.Translate(Command{
		Type:     TypeDrawText,
		Content:  "hello",
		Position: &geom.Point{X: 500, Y: 350},
	})

	require.Len(t, els, 1)
	require.Equal(t, state.KindText, els[0].Kind)
	assert.Equal(t, 1000.0, els[0].Text.Anchor.X)
	assert.Equal(t, 700.0, els[0].Text.Anchor.Y)
	assert.Equal(t, 18.0, els[0].Text.FontSize)
	assert.Equal(t, "#000000", els[0].Text.Color)
}

func TestTranslateTextNormalizesNotation(t *testing.T) {
	tr := testTranslator(1000, 700, 0)
	els := tr.Translate(Command{
		Type:     TypeDrawText,
		Content:  `\(\alpha + \beta\)`,
		Position: &geom.Point{X: 100, Y: 100},
	})

	require.Len(t, els, 1)
	assert.Equal(t, "$α + β$", els[0].Text.Content)
}

func TestTranslateTextHandwrittenMode(t *testing.T) {
	tr := testTranslator(1000, 700, 16)
	tr.HandwrittenText = true
	els := tr.Translate(Command{
		Type:     TypeDrawText,
		Content:  "12",
		Position: &geom.Point{X: 500, Y: 350},
		FontSize: 20,
	})

	require.NotEmpty(t, els)
	for _, el := range els {
		assert.Equal(t, state.KindStroke, el.Kind)
		require.NotNil(t, el.Stroke)
		assert.NotEmpty(t, el.Stroke.Points)
	}
}

func TestTranslateTextIncompleteSkipped(t *testing.T) {
	tr := testTranslator(1000, 700, 0)
	assert.Nil(t, tr.Translate(Command{Type: TypeDrawText, Content: "x"}))
	assert.Nil(t, tr.Translate(Command{Type: TypeDrawText, Position: &geom.Point{X: 1, Y: 1}}))
}

func TestTranslateShapeRectangleScaledAndConstrained(t *testing.T) {
	tr := testTranslator(2000, 1400, 10)
	els := tr.Translate(Command{
		Type:     TypeDrawShape,
		Shape:    "rectangle",
		Position: &geom.Point{X: 100, Y: 100},
		Width:    50,
		Height:   50,
		Color:    "#0000ff",
	})

	require.Len(t, els, 1)
	sh := els[0].Shape
	require.NotNil(t, sh)
	assert.Equal(t, state.ShapeRectangle, sh.Kind)
	// Logical 100 -> device 200, logical 50 wide -> device 100.
	assert.Equal(t, 200.0, sh.Anchor.X)
	assert.Equal(t, 200.0, sh.Anchor.Y)
	assert.Equal(t, 100.0, sh.Width)
	assert.Equal(t, 100.0, sh.Height)
	assert.Equal(t, "#0000ff", sh.StrokeColor)
}

func TestTranslateShapeOversizedShrinksIntoBounds(t *testing.T) {
	tr := testTranslator(1000, 700, 20)
	els := tr.Translate(Command{
		Type:     TypeDrawShape,
		Shape:    "rectangle",
		Position: &geom.Point{X: 900, Y: 600},
		Width:    500,
		Height:   500,
	})

	require.Len(t, els, 1)
	sh := els[0].Shape
	assert.LessOrEqual(t, sh.Anchor.X+sh.Width, 980.0)
	assert.LessOrEqual(t, sh.Anchor.Y+sh.Height, 680.0)
}

func TestTranslateShapeLineUsesEndpoints(t *testing.T) {
	tr := testTranslator(1000, 700, 0)
	els := tr.Translate(Command{
		Type:  TypeDrawShape,
		Shape: "line",
		Start: &geom.Point{X: 100, Y: 100},
		End:   &geom.Point{X: 300, Y: 200},
	})

	require.Len(t, els, 1)
	sh := els[0].Shape
	assert.Equal(t, state.ShapeLine, sh.Kind)
	assert.Equal(t, 100.0, sh.Anchor.X)
	assert.Equal(t, 200.0, sh.Width)
	assert.Equal(t, 100.0, sh.Height)
}

func TestTranslateShapeLineWithoutEndpointsSkipped(t *testing.T) {
	tr := testTranslator(1000, 700, 0)
	assert.Nil(t, tr.Translate(Command{
		Type:  TypeDrawShape,
		Shape: "arrow",
		Start: &geom.Point{X: 1, Y: 1},
	}))
}

func TestTranslateShapeUnknownSkipped(t *testing.T) {
	tr := testTranslator(1000, 700, 0)
	assert.Nil(t, tr.Translate(Command{
		Type:     TypeDrawShape,
		Shape:    "dodecahedron",
		Position: &geom.Point{X: 1, Y: 1},
	}))
}

func TestTranslateSymbolProducesStrokesInBounds(t *testing.T) {
	tr := testTranslator(1000, 700, 16)
	els := tr.Translate(Command{
		Type:     TypeDrawSymbol,
		Symbol:   "integral",
		Position: &geom.Point{X: 980, Y: 10}, // near a corner
		Size:     60,
	})

	require.NotEmpty(t, els)
	for _, el := range els {
		require.Equal(t, state.KindStroke, el.Kind)
		for _, p := range el.Stroke.Points {
			assert.GreaterOrEqual(t, p.X, 16.0)
			assert.LessOrEqual(t, p.X, 984.0)
			assert.GreaterOrEqual(t, p.Y, 16.0)
			assert.LessOrEqual(t, p.Y, 684.0)
		}
	}
}

func TestTranslateSymbolUnknownFallsBackToDot(t *testing.T) {
	tr := testTranslator(1000, 700, 0)
	els := tr.Translate(Command{
		Type:     TypeDrawSymbol,
		Symbol:   "snowman",
		Position: &geom.Point{X: 500, Y: 350},
	})
	require.Len(t, els, 1)
	assert.NotEmpty(t, els[0].Stroke.Points)
}

func TestTranslateUnknownTypeSkipped(t *testing.T) {
	tr := testTranslator(1000, 700, 0)
	assert.Nil(t, tr.Translate(Command{Type: "draw_fractal"}))
}
