package net

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"SharedSlate/internal/state"
)

// Client implements the broadcast collaborator over a websocket to a hub.
// One connection per session, shared between the subscribe read loop and
// publishes. Outbound publishes pass a rate ceiling so a misbehaving
// caller cannot flood the hub even if it bypasses the debouncer.
type Client struct {
	hubAddr     string
	participant string
	limiter     *rate.Limiter
	log         *slog.Logger

	mu    sync.Mutex
	conns map[string]*clientConn
}

type clientConn struct {
	ws      *websocket.Conn
	writeMu sync.Mutex
}

// NewClient creates a client for the hub at hubAddr (host:port). The
// participant id is announced on every session join.
func NewClient(hubAddr, participant string, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		hubAddr:     hubAddr,
		participant: participant,
		limiter:     rate.NewLimiter(rate.Limit(4), 8),
		log:         log,
		conns:       make(map[string]*clientConn),
	}
}

// Subscribe joins a session and forwards every snapshot frame to onUpdate.
// The read loop runs until the connection drops or ctx is cancelled.
func (c *Client) Subscribe(ctx context.Context, sessionID string, onUpdate func(state.Document)) error {
	cc, err := c.conn(ctx, sessionID)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		c.drop(sessionID)
	}()

	go func() {
		for {
			var env Envelope
			if err := cc.ws.ReadJSON(&env); err != nil {
				c.log.Info("subscription closed", "session", sessionID, "err", err)
				c.drop(sessionID)
				return
			}
			switch env.Type {
			case TypeSnapshot:
				onUpdate(state.Document{Revision: env.Revision, Elements: env.Elements})
			case TypePresence:
				c.log.Debug("presence update", "session", sessionID, "participants", env.Participants)
			}
		}
	}()
	return nil
}

// Publish sends a snapshot to the session's hub.
func (c *Client) Publish(ctx context.Context, sessionID string, doc state.Document) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	cc, err := c.conn(ctx, sessionID)
	if err != nil {
		return err
	}

	cc.writeMu.Lock()
	defer cc.writeMu.Unlock()
	if err := cc.ws.WriteJSON(Envelope{
		Type:     TypeSnapshot,
		Revision: doc.Revision,
		Elements: doc.Elements,
	}); err != nil {
		c.drop(sessionID)
		return fmt.Errorf("publish snapshot: %w", err)
	}
	return nil
}

// Close drops all session connections.
func (c *Client) Close() {
	c.mu.Lock()
	conns := c.conns
	c.conns = make(map[string]*clientConn)
	c.mu.Unlock()
	for _, cc := range conns {
		cc.ws.Close()
	}
}

func (c *Client) conn(ctx context.Context, sessionID string) (*clientConn, error) {
	c.mu.Lock()
	if cc, ok := c.conns[sessionID]; ok {
		c.mu.Unlock()
		return cc, nil
	}
	c.mu.Unlock()

	url := fmt.Sprintf("ws://%s/ws/%s", c.hubAddr, sessionID)
	ws, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial hub %s: %w", url, err)
	}
	cc := &clientConn{ws: ws}

	if err := ws.WriteJSON(Envelope{Type: TypeHello, Participant: c.participant}); err != nil {
		ws.Close()
		return nil, fmt.Errorf("announce participant: %w", err)
	}

	c.mu.Lock()
	// Another goroutine may have raced us here; keep the first connection.
	if existing, ok := c.conns[sessionID]; ok {
		c.mu.Unlock()
		ws.Close()
		return existing, nil
	}
	c.conns[sessionID] = cc
	c.mu.Unlock()

	c.log.Info("joined session", "session", sessionID, "hub", c.hubAddr)
	return cc, nil
}

func (c *Client) drop(sessionID string) {
	c.mu.Lock()
	cc, ok := c.conns[sessionID]
	delete(c.conns, sessionID)
	c.mu.Unlock()
	if ok {
		cc.ws.Close()
	}
}
