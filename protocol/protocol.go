package protocol

import (
	"encoding/json"
)

const (
	MsgJoin      = "join"
	MsgStart     = "start"
	MsgKeyDown   = "keydown"
	MsgKeyUp     = "keyup"
	MsgStartInfo = "startinfo"
	MsgRoomCount = "roomCount"
	MsgGameState = "gameState"
)

const (
	SimTickHz   = 30
	BroadcastHz = 30
)

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"` // raw payload bytes
}
