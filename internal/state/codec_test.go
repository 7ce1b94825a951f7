package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SharedSlate/internal/geom"
)

func TestSnapshotRoundtrip(t *testing.T) {
	doc := Document{
		Revision: 7,
		Elements: []Element{
			NewStrokeElement([]geom.Point{{X: 1, Y: 2, Pressure: 0.5}}, "#112233", 3),
			NewShapeElement(ShapeRectangle, geom.Point{X: 10, Y: 10}, 40, 20, "#000000", ""),
			NewTextElement("α + β", geom.Point{X: 5, Y: 5}, 16, "#000000"),
		},
	}
	for i := range doc.Elements {
		doc.Elements[i].Z = i
	}

	data, err := MarshalSnapshot(doc)
	require.NoError(t, err)

	got, err := UnmarshalSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestUnmarshalSnapshotCorrupt(t *testing.T) {
	for _, data := range [][]byte{
		[]byte("not json"),
		[]byte(`{"revision": "seven"}`),
		[]byte(`[1,2,3]`),
	} {
		_, err := UnmarshalSnapshot(data)
		assert.ErrorIs(t, err, ErrCorruptSnapshot)
	}
}
