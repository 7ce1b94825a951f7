package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRosterAttachDetach(t *testing.T) {
	r := NewRoster(0, nil)

	r.Attach("bob")
	r.Attach("alice")
	assert.Equal(t, []string{"alice", "bob"}, r.IDs())
	assert.Equal(t, 2, r.Count())

	r.Detach("bob")
	assert.Equal(t, []string{"alice"}, r.IDs())
}

func TestRosterAttachIdempotent(t *testing.T) {
	r := NewRoster(0, nil)
	var changes int
	r.SetOnChange(func([]string) { changes++ })

	r.Attach("alice")
	r.Attach("alice")
	r.Attach("alice")

	assert.Equal(t, 1, r.Count())
	assert.Equal(t, 1, changes, "re-attach must not re-notify")
}

func TestRosterDetachUnknownIsNoop(t *testing.T) {
	r := NewRoster(0, nil)
	var changes int
	r.SetOnChange(func([]string) { changes++ })

	r.Detach("ghost")
	assert.Equal(t, 0, changes)
	assert.Equal(t, 0, r.Count())
}

func TestRosterSweepExpiresStale(t *testing.T) {
	r := NewRoster(100*time.Millisecond, nil)
	r.Attach("slow")
	r.Attach("fast")

	time.Sleep(60 * time.Millisecond)
	r.Heartbeat("fast")
	time.Sleep(60 * time.Millisecond)

	// "slow" is past the ttl, "fast" refreshed midway.
	r.Sweep(time.Now())
	assert.Equal(t, []string{"fast"}, r.IDs())
}

func TestRosterHeartbeatIsNotAttach(t *testing.T) {
	r := NewRoster(time.Minute, nil)
	r.Heartbeat("nobody")
	assert.Equal(t, 0, r.Count())
}

func TestRosterSweepDisabledWithoutTTL(t *testing.T) {
	r := NewRoster(0, nil)
	r.Attach("alice")
	r.Sweep(time.Now().Add(24 * time.Hour))
	require.Equal(t, 1, r.Count())
}
