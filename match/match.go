package match

import (
	"fmt"
	"sync/atomic"
	"time"

	"hexclash/game"
	"hexclash/protocol"
)

// Defaults for a match before any viewer reports a canvas size.
const (
	defaultWidth        = 960.0
	defaultHeight       = 640.0
	defaultBallsPerTeam = 3
	defaultSpeed        = 1.0
)

// Match runs one simulation on its own goroutine. The goroutine is the
// only thing that ever touches the Sim, so the single-logical-thread
// contract of the core holds without locks: commands arrive on Inbox and
// the ticker drives frames, never both at once.
type Match struct {
	Inbox          chan any
	tickHz         int
	broadcastEvery int
	sim            *game.Sim
	clients        map[string]Conn
	viewers        atomic.Int32 // mirrors len(clients) for readers off the match goroutine
	nextID         int
	ticks          int
	lastTick       time.Time
	quit           chan struct{}

	Code    string            // match code (e.g. "ABC123")
	OnEmpty func(code string) // called when the last viewer leaves
}

// New builds a match with an idle simulation at the default field size.
// The first viewer's hello resizes it to their canvas.
func New() (*Match, error) {
	return NewWithRates(protocol.SimTickHz, protocol.BroadcastHz)
}

// NewWithRates builds a match ticking at tickHz and broadcasting at
// broadcastHz.
func NewWithRates(tickHz, broadcastHz int) (*Match, error) {
	if tickHz <= 0 {
		tickHz = protocol.SimTickHz
	}
	broadcastEvery := 1
	if broadcastHz > 0 && tickHz/broadcastHz > 0 {
		broadcastEvery = tickHz / broadcastHz
	}
	sim, err := game.NewSim(game.Config{
		Width:        defaultWidth,
		Height:       defaultHeight,
		BallsPerTeam: defaultBallsPerTeam,
		Speed:        defaultSpeed,
	})
	if err != nil {
		return nil, fmt.Errorf("new match: %w", err)
	}
	return &Match{
		Inbox:          make(chan any, 256),
		tickHz:         tickHz,
		broadcastEvery: broadcastEvery,
		sim:            sim,
		clients:        make(map[string]Conn),
		nextID:         1,
		quit:           make(chan struct{}),
	}, nil
}

func (m *Match) Stop() {
	close(m.quit)
}

// NumViewers returns the current number of connected viewers. Safe to
// call from any goroutine.
func (m *Match) NumViewers() int {
	return int(m.viewers.Load())
}

// Run drives the match until Stop. The ticker fires at the simulation
// rate; the sim itself ignores ticks while paused, so an idle match costs
// a timestamp read per tick.
func (m *Match) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(m.tickHz))
	defer ticker.Stop()
	m.lastTick = time.Now()

	for {
		select {
		case <-m.quit:
			return
		case cmd := <-m.Inbox:
			m.handleCommand(cmd)
		case now := <-ticker.C:
			dt := now.Sub(m.lastTick).Seconds()
			m.lastTick = now
			m.ticks++
			m.sim.Tick(dt)
			if m.ticks%m.broadcastEvery == 0 {
				m.broadcastState()
			}
		}
	}
}

func (m *Match) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Join:
		idNum := m.nextID
		viewerID := fmt.Sprintf("v%d", idNum)
		m.nextID++
		m.clients[viewerID] = c.Conn
		m.viewers.Store(int32(len(m.clients)))

		// First viewer sizes the field to their canvas.
		if len(m.clients) == 1 && c.Width > 0 && c.Height > 0 {
			m.sim.Resize(c.Width, c.Height)
		}

		c.Reply <- JoinResult{ViewerID: viewerID}
		m.sendWelcome(c.Conn, viewerID)
		m.sendStateTo(c.Conn)
	case Control:
		if _, ok := m.clients[c.ViewerID]; !ok {
			return
		}
		m.applyControl(c.Control)
	case Leave:
		m.handleLeave(c.ViewerID)
	}
}

// applyControl maps a wire operation onto the simulation control surface.
// Rebuilding ops broadcast immediately so the shells repaint without
// waiting for the next running frame.
func (m *Match) applyControl(c protocol.Control) {
	switch c.Op {
	case protocol.OpStart:
		m.sim.Start()
	case protocol.OpStop:
		m.sim.Stop()
	case protocol.OpResetGrid:
		m.sim.ResetGrid()
	case protocol.OpSetSpeed:
		m.sim.SetSpeed(c.Value)
	case protocol.OpSetBallsPerTeam:
		m.sim.SetBallsPerTeam(c.Count)
	case protocol.OpSetNumBalls:
		m.sim.SetNumBalls(c.Count)
	case protocol.OpResize:
		m.sim.Resize(c.Width, c.Height)
	default:
		return
	}
	m.broadcastState()
}

func (m *Match) handleLeave(viewerID string) {
	c, ok := m.clients[viewerID]
	if ok {
		_ = c.Close()
		delete(m.clients, viewerID)
		m.viewers.Store(int32(len(m.clients)))
	}
	if len(m.clients) == 0 && m.OnEmpty != nil && m.Code != "" {
		m.OnEmpty(m.Code)
	}
}

func (m *Match) removeViewer(viewerID string) {
	if c, ok := m.clients[viewerID]; ok {
		_ = c.Close()
	}
	delete(m.clients, viewerID)
	m.viewers.Store(int32(len(m.clients)))
}

func (m *Match) sendWelcome(c Conn, viewerID string) {
	b, err := protocol.Encode(protocol.MsgWelcome, protocol.Welcome{
		ViewerID: viewerID,
		TickHz:   m.tickHz,
	})
	if err != nil {
		return
	}
	_ = c.Send(b)
}

func (m *Match) broadcastState() {
	b, err := protocol.Encode(protocol.MsgState, m.buildState())
	if err != nil {
		return
	}

	var failed []string
	for id, c := range m.clients {
		if err := c.Send(b); err != nil {
			failed = append(failed, id)
		}
	}
	for _, id := range failed {
		m.removeViewer(id)
	}
}

func (m *Match) sendStateTo(c Conn) {
	b, err := protocol.Encode(protocol.MsgState, m.buildState())
	if err != nil {
		return
	}
	_ = c.Send(b)
}

// buildState converts the render snapshot into its wire form.
func (m *Match) buildState() protocol.State {
	snap := m.sim.Snapshot()
	st := protocol.State{
		Frame:     snap.Frame,
		Phase:     snap.Phase.String(),
		Width:     snap.Width,
		Height:    snap.Height,
		HexRadius: snap.HexRadius,
		Hexes:     make([]protocol.HexSnapshot, 0, len(snap.Hexes)),
		Balls:     make([]protocol.BallSnapshot, 0, len(snap.Balls)),
		OwnedA:    snap.OwnedA,
		OwnedB:    snap.OwnedB,
		PointsA:   snap.PointsA,
		PointsB:   snap.PointsB,
	}
	for _, hx := range snap.Hexes {
		st.Hexes = append(st.Hexes, protocol.HexSnapshot{
			Q:     hx.Coord.Q,
			R:     hx.Coord.R,
			X:     hx.CX,
			Y:     hx.CY,
			Owner: uint8(hx.Owner),
		})
	}
	for _, b := range snap.Balls {
		st.Balls = append(st.Balls, protocol.BallSnapshot{
			Team:   uint8(b.Team),
			X:      b.X,
			Y:      b.Y,
			Radius: b.Radius,
		})
	}
	return st
}
