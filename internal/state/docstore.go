package state

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// ConflictPolicy names the divergence-resolution strategy in effect.
type ConflictPolicy string

// LastWriterWinsBySnapshot: remote snapshots with a higher revision replace
// the local document wholesale; lower or equal revisions are discarded.
// Two concurrent edits between snapshots will see one discarded — an
// accepted tradeoff for a low-contention classroom surface, kept explicit
// here so it is not silently upgraded to a field-level merge.
const LastWriterWinsBySnapshot ConflictPolicy = "last_writer_wins_by_snapshot"

// Delta is one local edit batch: elements to insert or replace, and
// element ids to remove.
type Delta struct {
	Upsert []Element
	Remove []string
}

// DocStore owns the canonical Document for one client session. All
// mutation funnels through it; local edits bump the revision and notify
// the commit hook, remote snapshots are gated on the revision check.
type DocStore struct {
	mu       sync.Mutex
	doc      Document
	disposed bool
	siteID   string
	onCommit func(Document)
	log      *slog.Logger
}

// NewDocStore creates an empty store at revision 0.
func NewDocStore(log *slog.Logger) *DocStore {
	if log == nil {
		log = slog.Default()
	}
	return &DocStore{siteID: uuid.NewString(), log: log}
}

// SiteID is this client's session-unique identifier.
func (s *DocStore) SiteID() string { return s.siteID }

// Policy reports the conflict policy; there is only one.
func (s *DocStore) Policy() ConflictPolicy { return LastWriterWinsBySnapshot }

// SetOnCommit registers the hook invoked with a snapshot after every
// locally committed mutation. The sync channel uses it to schedule a
// debounced push.
func (s *DocStore) SetOnCommit(fn func(Document)) {
	s.mu.Lock()
	s.onCommit = fn
	s.mu.Unlock()
}

// ApplyLocalEdit applies a delta, increments the revision and returns the
// new canonical snapshot. Upserts replace an existing element in place
// (keeping its z-order) or append with the next z. On a disposed store the
// call is a no-op returning the last snapshot.
func (s *DocStore) ApplyLocalEdit(delta Delta) Document {
	s.mu.Lock()
	if s.disposed {
		snap := s.doc.Clone()
		s.mu.Unlock()
		return snap
	}

	for _, el := range delta.Upsert {
		s.upsertLocked(el)
	}
	for _, id := range delta.Remove {
		s.removeLocked(id)
	}
	s.doc.Revision++

	snap := s.doc.Clone()
	hook := s.onCommit
	s.mu.Unlock()

	s.log.Debug("local edit committed", "revision", snap.Revision, "elements", len(snap.Elements))
	if hook != nil {
		hook(snap)
	}
	return snap
}

// ApplyRemoteSnapshot reconciles a snapshot received from a peer. A
// revision at or below the local one is stale (out-of-order delivery or a
// local echo) and is silently discarded; otherwise the document is
// replaced wholesale. The boolean reports whether the snapshot was
// applied.
func (s *DocStore) ApplyRemoteSnapshot(revision uint64, elements []Element) (Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed || revision <= s.doc.Revision {
		s.log.Debug("remote snapshot discarded", "remote", revision, "local", s.doc.Revision)
		return s.doc.Clone(), false
	}

	s.doc = Document{Revision: revision, Elements: elements}.Clone()
	s.log.Debug("remote snapshot applied", "revision", revision, "elements", len(elements))
	return s.doc.Clone(), true
}

// Document returns the current canonical snapshot.
func (s *DocStore) Document() Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Dispose ends the store's life; later operations are no-ops. There is no
// transition back.
func (s *DocStore) Dispose() {
	s.mu.Lock()
	s.disposed = true
	s.onCommit = nil
	s.mu.Unlock()
}

// Disposed reports whether Dispose has been called.
func (s *DocStore) Disposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}

func (s *DocStore) upsertLocked(el Element) {
	for i, existing := range s.doc.Elements {
		if existing.ID == el.ID {
			el.Z = existing.Z
			s.doc.Elements[i] = el
			return
		}
	}
	el.Z = len(s.doc.Elements)
	s.doc.Elements = append(s.doc.Elements, el)
}

func (s *DocStore) removeLocked(id string) {
	for i, existing := range s.doc.Elements {
		if existing.ID == id {
			s.doc.Elements = append(s.doc.Elements[:i], s.doc.Elements[i+1:]...)
			return
		}
	}
}
