package net

import "SharedSlate/internal/state"

// Envelope is the wire frame exchanged on a session's websocket.
type Envelope struct {
	Type string `json:"type"`

	// hello
	Participant string `json:"participant,omitempty"`

	// snapshot
	Revision uint64          `json:"revision,omitempty"`
	Elements []state.Element `json:"elements,omitempty"`

	// presence: full roster, not a diff
	Participants []string `json:"participants,omitempty"`
}

const (
	TypeHello    = "hello"
	TypeSnapshot = "snapshot"
	TypePresence = "presence"
)
