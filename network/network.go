package network

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"hexclash/match"
	"hexclash/protocol"
)

const (
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingInterval = 25 * time.Second
	maxMsgSize   = 1 << 20 // 1MB
)

var upgrader = websocket.Upgrader{
	// For dev, allow all origins. Lock this down in prod.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsConn adapts a websocket connection to match.Conn. Send is called from
// the match goroutine and Close from either side, so writes take a mutex.
type wsConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *wsConn) Send(b []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, b)
}

func (c *wsConn) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

func (c *wsConn) Close() error {
	return c.conn.Close()
}

// Register wires the websocket endpoint, the match-list API, and the
// static host shell onto mux.
func Register(mux *http.ServeMux, mg *match.Manager, webDir string) {
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		wsHandler(w, r, mg)
	})
	mux.HandleFunc("/api/matches", func(w http.ResponseWriter, r *http.Request) {
		matchesHandler(w, r, mg)
	})
	mux.Handle("/", http.FileServer(http.Dir(webDir)))
}

func matchesHandler(w http.ResponseWriter, r *http.Request, mg *match.Manager) {
	switch r.Method {
	case http.MethodGet:
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(mg.List())
	case http.MethodPost:
		code := mg.CreateMatch()
		if code == "" {
			http.Error(w, "could not create match", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(match.MatchInfo{Code: code})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func wsHandler(w http.ResponseWriter, r *http.Request, mg *match.Manager) {
	code := r.URL.Query().Get("match")
	m := mg.GetOrCreate(code)
	if m == nil {
		http.Error(w, "missing or bad match code", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}
	wc := &wsConn{conn: conn}
	defer conn.Close()

	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	done := make(chan struct{})
	defer close(done)
	go pingLoop(wc, done)

	// First message must be hello.
	hello, err := readHello(conn)
	if err != nil {
		log.Println("hello:", err)
		sendError(wc, "expected hello")
		return
	}

	reply := make(chan match.JoinResult, 1)
	m.Inbox <- match.Join{
		Conn:   wc,
		Name:   hello.Name,
		Width:  hello.Width,
		Height: hello.Height,
		Reply:  reply,
	}
	res := <-reply
	defer func() {
		m.Inbox <- match.Leave{ViewerID: res.ViewerID}
	}()

	// Control pump.
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		env, err := protocol.DecodeEnvelope(msg)
		if err != nil {
			log.Println("envelope:", err)
			continue
		}
		if env.T != protocol.MsgControl {
			continue
		}
		ctl, err := protocol.DecodePayload[protocol.Control](env)
		if err != nil {
			log.Println("control:", err)
			continue
		}
		m.Inbox <- match.Control{ViewerID: res.ViewerID, Control: ctl}
	}
}

func readHello(conn *websocket.Conn) (protocol.Hello, error) {
	_, msg, err := conn.ReadMessage()
	if err != nil {
		return protocol.Hello{}, err
	}
	env, err := protocol.DecodeEnvelope(msg)
	if err != nil {
		return protocol.Hello{}, err
	}
	if env.T != protocol.MsgHello {
		return protocol.Hello{}, errNotHello
	}
	return protocol.DecodePayload[protocol.Hello](env)
}

var errNotHello = &protocolError{"first message is not hello"}

type protocolError struct{ msg string }

func (e *protocolError) Error() string { return e.msg }

func sendError(c *wsConn, msg string) {
	b, err := protocol.Encode(protocol.MsgError, protocol.ErrorMsg{Msg: msg})
	if err != nil {
		return
	}
	_ = c.Send(b)
}

func pingLoop(c *wsConn, done <-chan struct{}) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := c.ping(); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
