package protocol

import (
	"encoding/json"
)

const (
	MsgHello   = "hello"
	MsgControl = "control"
	MsgWelcome = "welcome"
	MsgState   = "state"
	MsgError   = "error"
)

const (
	SimTickHz   = 60
	BroadcastHz = 20
)

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"` // raw payload bytes
}
