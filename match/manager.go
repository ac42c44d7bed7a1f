package match

import (
	"crypto/rand"
	"math/big"
	"sync"
)

// MatchInfo is returned by the API for the match list.
type MatchInfo struct {
	Code    string `json:"code"`
	Viewers int    `json:"viewers"`
}

// Manager holds live matches by code. Matches are created on first join or
// via CreateMatch, and torn down when the last viewer leaves.
type Manager struct {
	mu          sync.RWMutex
	matches     map[string]*Match
	tickHz      int
	broadcastHz int
}

func NewManager() *Manager {
	return NewManagerWithRates(0, 0)
}

// NewManagerWithRates builds a manager whose matches tick and broadcast at
// the given rates; zero values fall back to the protocol defaults.
func NewManagerWithRates(tickHz, broadcastHz int) *Manager {
	return &Manager{
		matches:     make(map[string]*Match),
		tickHz:      tickHz,
		broadcastHz: broadcastHz,
	}
}

// GetOrCreate returns the match for the given code, creating and starting
// its goroutine if needed. Returns nil for an empty code or if the match
// cannot be built.
func (mg *Manager) GetOrCreate(code string) *Match {
	if code == "" {
		return nil
	}
	mg.mu.Lock()
	defer mg.mu.Unlock()
	if m, ok := mg.matches[code]; ok {
		return m
	}
	m, err := NewWithRates(mg.tickHz, mg.broadcastHz)
	if err != nil {
		return nil
	}
	m.Code = code
	m.OnEmpty = func(c string) {
		mg.remove(c)
	}
	mg.matches[code] = m
	go m.Run()
	return m
}

func (mg *Manager) remove(code string) {
	mg.mu.Lock()
	defer mg.mu.Unlock()
	if m, ok := mg.matches[code]; ok {
		m.Stop()
		delete(mg.matches, code)
	}
}

const codeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// CreateMatch generates a unique 6-char code, starts the match, and
// returns the code.
func (mg *Manager) CreateMatch() string {
	mg.mu.Lock()
	defer mg.mu.Unlock()
	for {
		code := generateCode(6)
		if _, exists := mg.matches[code]; exists {
			continue
		}
		m, err := NewWithRates(mg.tickHz, mg.broadcastHz)
		if err != nil {
			return ""
		}
		m.Code = code
		m.OnEmpty = func(c string) {
			mg.remove(c)
		}
		mg.matches[code] = m
		go m.Run()
		return code
	}
}

// List returns all live matches with code and viewer count.
func (mg *Manager) List() []MatchInfo {
	mg.mu.RLock()
	defer mg.mu.RUnlock()
	out := make([]MatchInfo, 0, len(mg.matches))
	for code, m := range mg.matches {
		out = append(out, MatchInfo{Code: code, Viewers: m.NumViewers()})
	}
	return out
}

func generateCode(n int) string {
	b := make([]byte, n)
	max := big.NewInt(int64(len(codeChars)))
	for i := range b {
		idx, _ := rand.Int(rand.Reader, max)
		b[i] = codeChars[idx.Int64()]
	}
	return string(b)
}
