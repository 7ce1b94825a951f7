package session

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"
)

// Roster tracks which participants are attached to one session. It holds
// only participant ids, never document content, so presence churn stays
// decoupled from content mutation. Consumers re-derive "who's online" from
// the full id set on every change; no incremental diffs.
type Roster struct {
	mu           sync.Mutex
	participants map[string]time.Time // last heartbeat
	ttl          time.Duration
	onChange     func(ids []string)
	log          *slog.Logger
}

// NewRoster creates an empty roster. Participants that go ttl without a
// heartbeat are dropped by Sweep; a ttl of 0 disables expiry.
func NewRoster(ttl time.Duration, log *slog.Logger) *Roster {
	if log == nil {
		log = slog.Default()
	}
	return &Roster{
		participants: make(map[string]time.Time),
		ttl:          ttl,
		log:          log,
	}
}

// SetOnChange registers the callback fired with the full id set after any
// roster change.
func (r *Roster) SetOnChange(fn func(ids []string)) {
	r.mu.Lock()
	r.onChange = fn
	r.mu.Unlock()
}

// Attach joins a participant. Re-attaching an existing id just refreshes
// its heartbeat.
func (r *Roster) Attach(id string) {
	r.mu.Lock()
	_, existed := r.participants[id]
	r.participants[id] = time.Now()
	ids, hook := r.snapshotLocked()
	r.mu.Unlock()

	if !existed {
		r.log.Info("participant attached", "id", id, "count", len(ids))
		notify(hook, ids)
	}
}

// Detach removes a participant. Detaching an unknown id is a no-op, not an
// error.
func (r *Roster) Detach(id string) {
	r.mu.Lock()
	_, existed := r.participants[id]
	delete(r.participants, id)
	ids, hook := r.snapshotLocked()
	r.mu.Unlock()

	if existed {
		r.log.Info("participant detached", "id", id, "count", len(ids))
		notify(hook, ids)
	}
}

// Heartbeat refreshes a participant's expiry deadline. Unknown ids are
// ignored; a heartbeat is not an implicit attach.
func (r *Roster) Heartbeat(id string) {
	r.mu.Lock()
	if _, ok := r.participants[id]; ok {
		r.participants[id] = time.Now()
	}
	r.mu.Unlock()
}

// IDs returns the sorted participant id set.
func (r *Roster) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids, _ := r.snapshotLocked()
	return ids
}

// Count returns the number of attached participants.
func (r *Roster) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.participants)
}

// Sweep drops participants whose last heartbeat is older than the ttl.
func (r *Roster) Sweep(now time.Time) {
	if r.ttl <= 0 {
		return
	}
	r.mu.Lock()
	expired := make([]string, 0)
	for id, last := range r.participants {
		if now.Sub(last) > r.ttl {
			expired = append(expired, id)
			delete(r.participants, id)
		}
	}
	ids, hook := r.snapshotLocked()
	r.mu.Unlock()

	if len(expired) > 0 {
		r.log.Info("participants expired", "ids", expired, "count", len(ids))
		notify(hook, ids)
	}
}

// StartSweeping runs Sweep periodically until ctx is cancelled.
func (r *Roster) StartSweeping(ctx context.Context, interval time.Duration) {
	if r.ttl <= 0 || interval <= 0 {
		return
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case now := <-t.C:
				r.Sweep(now)
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (r *Roster) snapshotLocked() ([]string, func(ids []string)) {
	ids := make([]string, 0, len(r.participants))
	for id := range r.participants {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, r.onChange
}

func notify(hook func(ids []string), ids []string) {
	if hook != nil {
		hook(ids)
	}
}
