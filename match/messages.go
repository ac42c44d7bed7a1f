package match

import "hexclash/protocol"

// Conn is the write side of a connected viewer.
type Conn interface {
	Send([]byte) error
	Close() error
}

// Join: issued once after hello is parsed.
type Join struct {
	Conn   Conn
	Name   string
	Width  float64
	Height float64
	Reply  chan<- JoinResult
}

type JoinResult struct {
	ViewerID string
}

// Control: one control-surface operation from a viewer.
type Control struct {
	ViewerID string
	Control  protocol.Control
}

// Leave: issued on disconnect.
type Leave struct {
	ViewerID string
}
