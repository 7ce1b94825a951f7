// Package net carries session snapshots between peers. The hub is the
// broadcast medium the sync channel publishes into: it relays whole
// snapshots to every other subscriber of a session and persists the latest
// one. Delivery is at-most-once per publish with no ordering guarantee;
// the revision gate on the receiving side is what keeps application
// ordered.
package net

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"SharedSlate/internal/session"
	"SharedSlate/internal/state"
)

// Hub relays snapshots between the clients of each session and tracks
// per-session presence.
type Hub struct {
	store    session.Store
	upgrader websocket.Upgrader
	log      *slog.Logger

	mu       sync.Mutex
	sessions map[string]*hubSession
}

type hubSession struct {
	conns  map[*websocket.Conn]*hubConn
	roster *session.Roster
}

type hubConn struct {
	participant string
	writeMu     sync.Mutex
}

// NewHub creates a hub persisting snapshots into store.
func NewHub(store session.Store, log *slog.Logger) *Hub {
	if log == nil {
		log = slog.Default()
	}
	return &Hub{
		store:    store,
		upgrader: websocket.Upgrader{ReadBufferSize: 4096, WriteBufferSize: 4096},
		log:      log,
		sessions: make(map[string]*hubSession),
	}
}

// Router returns the hub's HTTP routes.
func (h *Hub) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/ws/{session}", h.handleWS)
	r.HandleFunc("/sessions/{session}/presence", h.handlePresence).Methods(http.MethodGet)
	return r
}

func (h *Hub) handleWS(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session"]
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", "err", err)
		return
	}

	hs, hc := h.register(sessionID, conn)
	defer h.unregister(sessionID, conn)

	for {
		var env Envelope
		if err := conn.ReadJSON(&env); err != nil {
			h.log.Info("client disconnected", "session", sessionID, "participant", hc.participant, "err", err)
			return
		}

		switch env.Type {
		case TypeHello:
			hc.participant = env.Participant
			hs.roster.Attach(env.Participant)
			h.broadcastPresence(sessionID, hs)
		case TypeSnapshot:
			doc := state.Document{Revision: env.Revision, Elements: env.Elements}
			if err := h.store.Save(r.Context(), sessionID, doc); err != nil {
				h.log.Warn("snapshot persist failed", "session", sessionID, "err", err)
			}
			h.relay(sessionID, conn, env)
			if hc.participant != "" {
				hs.roster.Heartbeat(hc.participant)
			}
		default:
			h.log.Debug("ignoring unknown frame", "type", env.Type)
		}
	}
}

func (h *Hub) handlePresence(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session"]
	h.mu.Lock()
	hs := h.sessions[sessionID]
	h.mu.Unlock()

	env := Envelope{Type: TypePresence}
	if hs != nil {
		env.Participants = hs.roster.IDs()
	}
	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, env)
}

func (h *Hub) register(sessionID string, conn *websocket.Conn) (*hubSession, *hubConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	hs, ok := h.sessions[sessionID]
	if !ok {
		hs = &hubSession{
			conns:  make(map[*websocket.Conn]*hubConn),
			roster: session.NewRoster(0, h.log),
		}
		h.sessions[sessionID] = hs
	}
	hc := &hubConn{}
	hs.conns[conn] = hc
	return hs, hc
}

func (h *Hub) unregister(sessionID string, conn *websocket.Conn) {
	h.mu.Lock()
	hs, ok := h.sessions[sessionID]
	var participant string
	if ok {
		if hc := hs.conns[conn]; hc != nil {
			participant = hc.participant
		}
		delete(hs.conns, conn)
		if len(hs.conns) == 0 {
			// Sessions are ephemeral: no participants, no session.
			delete(h.sessions, sessionID)
			hs = nil
		}
	}
	h.mu.Unlock()
	conn.Close()

	if hs != nil && participant != "" {
		hs.roster.Detach(participant)
		h.broadcastPresence(sessionID, hs)
	}
}

// relay forwards a frame to every other connection of the session.
func (h *Hub) relay(sessionID string, from *websocket.Conn, env Envelope) {
	h.mu.Lock()
	hs := h.sessions[sessionID]
	if hs == nil {
		h.mu.Unlock()
		return
	}
	targets := make(map[*websocket.Conn]*hubConn, len(hs.conns))
	for c, hc := range hs.conns {
		if c != from {
			targets[c] = hc
		}
	}
	h.mu.Unlock()

	for c, hc := range targets {
		hc.writeMu.Lock()
		err := c.WriteJSON(env)
		hc.writeMu.Unlock()
		if err != nil {
			h.log.Warn("relay failed", "session", sessionID, "err", err)
		}
	}
}

func (h *Hub) broadcastPresence(sessionID string, hs *hubSession) {
	h.relay(sessionID, nil, Envelope{Type: TypePresence, Participants: hs.roster.IDs()})
}

// Serve runs the hub's HTTP server until ctx is cancelled.
func (h *Hub) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: h.Router()}
	go func() {
		<-ctx.Done()
		srv.Close()
	}()
	h.log.Info("hub listening", "addr", addr)
	err := srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func writeJSON(w http.ResponseWriter, v any) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Debug("response encode failed", "err", err)
	}
}
