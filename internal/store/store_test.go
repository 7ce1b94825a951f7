package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SharedSlate/internal/geom"
	"SharedSlate/internal/session"
	"SharedSlate/internal/state"
)

func sampleDoc(revision uint64) state.Document {
	return state.Document{
		Revision: revision,
		Elements: []state.Element{
			state.NewStrokeElement([]geom.Point{{X: 1, Y: 2}, {X: 3, Y: 4}}, "#000000", 2),
		},
	}
}

func TestMemoryLoadMissing(t *testing.T) {
	m := NewMemory()
	_, err := m.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestMemorySaveLoadRoundtrip(t *testing.T) {
	m := NewMemory()
	doc := sampleDoc(3)
	require.NoError(t, m.Save(context.Background(), "s1", doc))

	got, err := m.Load(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, doc, got)

	// The store holds its own copy.
	got.Elements[0].Stroke.Color = "#ff0000"
	again, err := m.Load(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "#000000", again.Elements[0].Stroke.Color)
}

func TestSQLiteRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshots.sqlite3")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()

	_, err = s.Load(ctx, "classroom")
	assert.ErrorIs(t, err, session.ErrNotFound)

	doc := sampleDoc(5)
	require.NoError(t, s.Save(ctx, "classroom", doc))

	got, err := s.Load(ctx, "classroom")
	require.NoError(t, err)
	assert.Equal(t, doc, got)

	// Save overwrites in place.
	doc2 := sampleDoc(6)
	require.NoError(t, s.Save(ctx, "classroom", doc2))
	got, err = s.Load(ctx, "classroom")
	require.NoError(t, err)
	assert.Equal(t, uint64(6), got.Revision)

	ids, err := s.Sessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"classroom"}, ids)
}

type failingStore struct {
	err error
}

func (f *failingStore) Load(context.Context, string) (state.Document, error) {
	return state.Document{}, f.err
}

func (f *failingStore) Save(context.Context, string, state.Document) error {
	return f.err
}

func TestBreakerOpensAfterConsecutiveSaveFailures(t *testing.T) {
	inner := &failingStore{err: errors.New("disk full")}
	b := NewBreaker(inner)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := b.Save(ctx, "s", sampleDoc(1))
		require.Error(t, err)
		assert.NotErrorIs(t, err, gobreaker.ErrOpenState)
	}

	// Sixth call fails fast without reaching the store.
	err := b.Save(ctx, "s", sampleDoc(1))
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}

func TestBreakerNotFoundIsNotAFailure(t *testing.T) {
	inner := &failingStore{err: session.ErrNotFound}
	b := NewBreaker(inner)
	ctx := context.Background()

	// Well past the trip threshold: ErrNotFound never opens the breaker.
	for i := 0; i < 20; i++ {
		_, err := b.Load(ctx, "s")
		assert.ErrorIs(t, err, session.ErrNotFound)
	}
}

func TestBreakerPassesThroughOnHealthyStore(t *testing.T) {
	b := NewBreaker(NewMemory())
	ctx := context.Background()

	doc := sampleDoc(2)
	require.NoError(t, b.Save(ctx, "s1", doc))
	got, err := b.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}
