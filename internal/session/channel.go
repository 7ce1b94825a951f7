package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"SharedSlate/internal/state"
)

// Store is the persistence collaborator: eventually-consistent key-value
// storage of the latest snapshot per session.
type Store interface {
	Load(ctx context.Context, sessionID string) (state.Document, error)
	Save(ctx context.Context, sessionID string, doc state.Document) error
}

// Broadcast is the broadcast collaborator. Delivery is at-most-once per
// publish with no ordering guarantee; ordering is enforced at application
// time by the revision gate, not here.
type Broadcast interface {
	Subscribe(ctx context.Context, sessionID string, onUpdate func(state.Document)) error
	Publish(ctx context.Context, sessionID string, doc state.Document) error
}

// ErrNotFound is returned by a Store when a session has no snapshot yet.
var ErrNotFound = errors.New("no snapshot for session")

// Status is the channel's connectivity state. Failures surface here, not
// as errors on the drawing path.
type Status string

const (
	StatusConnected    Status = "connected"
	StatusDisconnected Status = "disconnected"
)

const (
	DefaultQuiescence   = 2 * time.Second
	DefaultMaxWait      = 10 * time.Second
	DefaultHeartbeatTTL = 30 * time.Second
)

// Config holds the channel's timing knobs. Zero values get defaults.
type Config struct {
	SessionID    string
	Quiescence   time.Duration
	MaxWait      time.Duration
	HeartbeatTTL time.Duration
}

func (c Config) withDefaults() Config {
	if c.Quiescence <= 0 {
		c.Quiescence = DefaultQuiescence
	}
	if c.MaxWait <= 0 {
		c.MaxWait = DefaultMaxWait
	}
	if c.HeartbeatTTL <= 0 {
		c.HeartbeatTTL = DefaultHeartbeatTTL
	}
	return c
}

// Channel moves Document snapshots between the local DocStore and the
// store/broadcast collaborators, and tracks session presence. Local edits
// are debounced into snapshot pushes; remote snapshots are forwarded
// verbatim to the DocStore's revision gate.
type Channel struct {
	cfg       Config
	store     Store
	broadcast Broadcast
	docs      *state.DocStore
	roster    *Roster
	deb       *Debouncer
	log       *slog.Logger

	mu      sync.Mutex
	pending state.Document
	dirty   bool
	status  Status
}

// NewChannel wires a channel to its collaborators. Call Start to load the
// persisted snapshot and begin receiving remote updates.
func NewChannel(cfg Config, store Store, broadcast Broadcast, docs *state.DocStore, log *slog.Logger) *Channel {
	if log == nil {
		log = slog.Default()
	}
	cfg = cfg.withDefaults()
	c := &Channel{
		cfg:       cfg,
		store:     store,
		broadcast: broadcast,
		docs:      docs,
		roster:    NewRoster(cfg.HeartbeatTTL, log),
		log:       log.With("session", cfg.SessionID),
		status:    StatusConnected,
	}
	c.deb = NewDebouncer(cfg.Quiescence, cfg.MaxWait, c.flush)
	docs.SetOnCommit(c.PushLocalChange)
	return c
}

// Roster exposes the presence roster.
func (c *Channel) Roster() *Roster { return c.roster }

// Start loads the persisted snapshot (a missing one means an empty
// document), subscribes to remote updates and begins the presence sweep.
// A corrupt snapshot is surfaced so the caller can decide to start empty.
func (c *Channel) Start(ctx context.Context) error {
	doc, err := c.store.Load(ctx, c.cfg.SessionID)
	switch {
	case errors.Is(err, ErrNotFound):
		// Fresh session.
	case err != nil:
		return err
	default:
		c.docs.ApplyRemoteSnapshot(doc.Revision, doc.Elements)
	}

	if err := c.broadcast.Subscribe(ctx, c.cfg.SessionID, c.OnRemoteUpdate); err != nil {
		return err
	}
	c.roster.StartSweeping(ctx, c.cfg.HeartbeatTTL/2)
	return nil
}

// OnRemoteUpdate forwards a remote snapshot to the document store. The
// channel does not interpret the snapshot; stale revisions are the
// store's business.
func (c *Channel) OnRemoteUpdate(doc state.Document) {
	c.docs.ApplyRemoteSnapshot(doc.Revision, doc.Elements)
}

// PushLocalChange schedules a debounced push of the given snapshot.
// Repeated calls within the quiescence window coalesce into one outbound
// push carrying the latest state.
func (c *Channel) PushLocalChange(doc state.Document) {
	c.mu.Lock()
	c.pending = doc
	c.dirty = true
	c.mu.Unlock()
	c.deb.Trigger()
}

// Attach joins a participant to the session roster.
func (c *Channel) Attach(participantID string) { c.roster.Attach(participantID) }

// Detach removes a participant. In-flight pushes are not cancelled; a push
// completing after the last detach is simply ignored downstream.
func (c *Channel) Detach(participantID string) { c.roster.Detach(participantID) }

// Heartbeat refreshes a participant's presence deadline.
func (c *Channel) Heartbeat(participantID string) { c.roster.Heartbeat(participantID) }

// Status reports connectivity. Disconnected means the last push may not
// have landed; the next local edit retries.
func (c *Channel) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Close stops the debouncer, pushing any pending state first.
func (c *Channel) Close() {
	c.deb.Flush()
	c.deb.Stop()
}

func (c *Channel) flush() {
	c.mu.Lock()
	if !c.dirty {
		c.mu.Unlock()
		return
	}
	doc := c.pending
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var failed bool
	if err := c.broadcast.Publish(ctx, c.cfg.SessionID, doc); err != nil {
		c.log.Warn("publish failed, will retry on next edit", "err", err)
		failed = true
	}
	if err := c.store.Save(ctx, c.cfg.SessionID, doc); err != nil {
		c.log.Warn("save failed, will retry on next edit", "err", err)
		failed = true
	}

	c.mu.Lock()
	if failed {
		// Keep dirty so the next local edit re-pushes this state.
		c.status = StatusDisconnected
	} else {
		// Only clear when nothing newer arrived while flushing.
		if c.pending.Revision == doc.Revision {
			c.dirty = false
		}
		c.status = StatusConnected
	}
	c.mu.Unlock()
}
