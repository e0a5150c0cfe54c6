package room

import "dodge/protocol"

type Conn interface {
	Send([]byte) error
	Close() error
}

// Join: issued once after the join envelope is parsed
type Join struct {
	ConnID string
	Name   string
	Conn   Conn
}

// Leave: issued on disconnect
type Leave struct {
	ConnID string
}

// Start: host (or anyone) asks to begin a round
type Start struct {
	ConnID string
}

// SetKey: keydown/keyup for a player
type SetKey struct {
	ConnID  string
	Key     protocol.Key
	Pressed bool
}
