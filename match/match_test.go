package match

import (
	"testing"
	"time"

	"hexclash/protocol"
)

type fakeConn struct {
	sendCh chan []byte
}

func (f *fakeConn) Send(b []byte) error {
	cp := make([]byte, len(b))
	copy(cp, b)
	f.sendCh <- cp
	return nil
}

func (f *fakeConn) Close() error {
	return nil
}

func join(t *testing.T, m *Match, fc *fakeConn) JoinResult {
	t.Helper()
	reply := make(chan JoinResult, 1)
	m.Inbox <- Join{Conn: fc, Name: "test", Width: 600, Height: 400, Reply: reply}
	select {
	case res := <-reply:
		if res.ViewerID == "" {
			t.Fatalf("expected viewer id, got empty")
		}
		return res
	case <-time.After(time.Second):
		t.Fatalf("timed out joining")
		return JoinResult{}
	}
}

// nextState pulls envelopes off a fake connection until a state message
// satisfying ok arrives.
func nextState(t *testing.T, fc *fakeConn, ok func(protocol.State) bool) protocol.State {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case b := <-fc.sendCh:
			env, err := protocol.DecodeEnvelope(b)
			if err != nil {
				t.Fatalf("decode envelope: %v", err)
			}
			if env.T != protocol.MsgState {
				continue
			}
			st, err := protocol.DecodePayload[protocol.State](env)
			if err != nil {
				t.Fatalf("decode state: %v", err)
			}
			if ok(st) {
				return st
			}
		case <-timeout:
			t.Fatalf("timed out waiting for state")
		}
	}
}

func TestJoinReceivesWelcomeThenState(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("new match: %v", err)
	}
	go m.Run()
	defer m.Stop()

	fc := &fakeConn{sendCh: make(chan []byte, 64)}
	join(t, m, fc)

	b := <-fc.sendCh
	env, err := protocol.DecodeEnvelope(b)
	if err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.T != protocol.MsgWelcome {
		t.Fatalf("first message = %q, want welcome", env.T)
	}
	w, err := protocol.DecodePayload[protocol.Welcome](env)
	if err != nil {
		t.Fatalf("decode welcome: %v", err)
	}
	if w.ViewerID == "" || w.TickHz <= 0 {
		t.Fatalf("welcome = %+v", w)
	}

	st := nextState(t, fc, func(protocol.State) bool { return true })
	if st.Phase != "ready" {
		t.Fatalf("initial phase = %q, want ready", st.Phase)
	}
	if len(st.Hexes) == 0 {
		t.Fatalf("initial state has no hexes")
	}
	if st.Width != 600 || st.Height != 400 {
		t.Fatalf("field not sized to first viewer: %gx%g", st.Width, st.Height)
	}
}

func TestStartAdvancesFramesAndStopHalts(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("new match: %v", err)
	}
	go m.Run()
	defer m.Stop()

	fc := &fakeConn{sendCh: make(chan []byte, 256)}
	res := join(t, m, fc)

	m.Inbox <- Control{ViewerID: res.ViewerID, Control: protocol.Control{Op: protocol.OpStart}}
	st := nextState(t, fc, func(s protocol.State) bool { return s.Frame > 0 })
	if st.Phase != "running" {
		t.Fatalf("phase while advancing = %q", st.Phase)
	}

	m.Inbox <- Control{ViewerID: res.ViewerID, Control: protocol.Control{Op: protocol.OpStop}}
	st = nextState(t, fc, func(s protocol.State) bool { return s.Phase == "paused" })

	// Frames freeze once paused; drain a few more broadcasts and check.
	frame := st.Frame
	last := nextState(t, fc, func(s protocol.State) bool { return true })
	last = nextState(t, fc, func(s protocol.State) bool { return true })
	if last.Frame != frame {
		t.Fatalf("frames advanced while paused: %d -> %d", frame, last.Frame)
	}
}

func TestControlClampsBallCount(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("new match: %v", err)
	}
	go m.Run()
	defer m.Stop()

	fc := &fakeConn{sendCh: make(chan []byte, 256)}
	res := join(t, m, fc)

	m.Inbox <- Control{ViewerID: res.ViewerID, Control: protocol.Control{Op: protocol.OpSetBallsPerTeam, Count: 99}}
	st := nextState(t, fc, func(s protocol.State) bool { return len(s.Balls) != 6 })
	if len(st.Balls) != 10 {
		t.Fatalf("balls after clamped set = %d, want 10", len(st.Balls))
	}
}

func TestResetFromControlSurface(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("new match: %v", err)
	}
	go m.Run()
	defer m.Stop()

	fc := &fakeConn{sendCh: make(chan []byte, 256)}
	res := join(t, m, fc)

	m.Inbox <- Control{ViewerID: res.ViewerID, Control: protocol.Control{Op: protocol.OpStart}}
	nextState(t, fc, func(s protocol.State) bool { return s.OwnedA+s.OwnedB > 0 })

	m.Inbox <- Control{ViewerID: res.ViewerID, Control: protocol.Control{Op: protocol.OpResetGrid}}
	st := nextState(t, fc, func(s protocol.State) bool { return s.Phase == "ready" })
	if st.Frame != 0 || st.OwnedA != 0 || st.OwnedB != 0 || st.PointsA != 0 || st.PointsB != 0 {
		t.Fatalf("state after reset = %+v", st)
	}
	for _, hx := range st.Hexes {
		if hx.Owner != 0 {
			t.Fatalf("hex (%d,%d) still owned after reset", hx.Q, hx.R)
		}
	}
}

func TestManagerCreatesAndRemovesMatches(t *testing.T) {
	mg := NewManager()
	code := mg.CreateMatch()
	if code == "" {
		t.Fatalf("empty match code")
	}
	if len(mg.List()) != 1 {
		t.Fatalf("list = %v", mg.List())
	}
	m := mg.GetOrCreate(code)
	if m == nil || m.Code != code {
		t.Fatalf("lookup of created match failed")
	}

	// Last viewer leaving tears the match down.
	fc := &fakeConn{sendCh: make(chan []byte, 256)}
	res := join(t, m, fc)
	m.Inbox <- Leave{ViewerID: res.ViewerID}

	deadline := time.After(2 * time.Second)
	for len(mg.List()) != 0 {
		select {
		case <-deadline:
			t.Fatalf("empty match not removed")
		case <-time.After(10 * time.Millisecond):
		}
	}
}
