package game

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Phase is the controller lifecycle state.
type Phase uint8

const (
	PhaseUninitialized Phase = iota
	PhaseReady               // built, not yet advancing
	PhaseRunning
	PhasePaused
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	default:
		return "uninitialized"
	}
}

// Config is the initial simulation setup.
type Config struct {
	Width        float64
	Height       float64
	BallsPerTeam int
	Speed        float64
	Seed         int64 // 0 means seed from the clock
}

// ConfigurationError reports an init-time problem. It is the only error
// the simulation ever surfaces; every later parameter change clamps
// instead of failing.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("simulation config: %s", e.Reason)
}

// Sim owns the whole simulation state: grid, balls, scores, phase. It is
// not safe for concurrent use; exactly one goroutine drives it and no tick
// overlaps another. Every per-frame operation is synchronous and bounded.
type Sim struct {
	grid  *Grid
	balls []Ball
	score Score

	phase        Phase
	width        float64
	height       float64
	speedMul     float64
	ballsPerTeam int
	frame        uint64

	rng   *rand.Rand
	flips []Flip // reused across ticks
}

// NewSim builds a simulation in PhaseReady. Non-finite or non-positive
// dimensions are a ConfigurationError; balls-per-team and speed are
// clamped, never rejected.
func NewSim(cfg Config) (*Sim, error) {
	if !isFiniteSize(cfg.Width, cfg.Height) {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("bad canvas size %gx%g", cfg.Width, cfg.Height)}
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Sim{
		phase:    PhaseReady,
		width:    cfg.Width,
		height:   cfg.Height,
		speedMul: clampSpeed(cfg.Speed),
		rng:      rand.New(rand.NewSource(seed)),
	}
	s.ballsPerTeam = clampBallsPerTeam(cfg.BallsPerTeam)
	s.rebuild()
	return s, nil
}

func isFiniteSize(w, h float64) bool {
	return !math.IsNaN(w) && !math.IsInf(w, 0) && w > 0 &&
		!math.IsNaN(h) && !math.IsInf(h, 0) && h > 0
}

func clampSpeed(mul float64) float64 {
	if math.IsNaN(mul) {
		return SpeedMulMin
	}
	return math.Min(math.Max(mul, SpeedMulMin), SpeedMulMax)
}

func clampBallsPerTeam(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxBallsPerTeam {
		return MaxBallsPerTeam
	}
	return n
}

// rebuild constructs a fresh grid and ball set for the current dimensions
// and settings, then swaps them in together. Scores are not touched here.
func (s *Sim) rebuild() {
	grid := NewGrid(s.width, s.height, HexRadiusFor(s.width, s.height))
	balls := SpawnBalls(s.ballsPerTeam, grid, s.width, s.height, s.rng)
	s.grid = grid
	s.balls = balls
	s.score.Retally(s.grid)
}

// Phase returns the current lifecycle phase.
func (s *Sim) Phase() Phase { return s.phase }

// Start moves Ready or Paused to Running. Benign if already Running or
// never initialized.
func (s *Sim) Start() {
	if s.phase == PhaseReady || s.phase == PhasePaused {
		s.phase = PhaseRunning
	}
}

// Stop halts advancement, keeping all state for resume. Idempotent.
func (s *Sim) Stop() {
	if s.phase == PhaseRunning {
		s.phase = PhasePaused
	}
}

// ResetGrid rebuilds the grid, respawns the balls at their initial
// configuration, clears both scores and returns to PhaseReady.
func (s *Sim) ResetGrid() {
	if s.phase == PhaseUninitialized {
		return
	}
	s.rebuild()
	s.score.Clear()
	s.frame = 0
	s.phase = PhaseReady
}

// SetSpeed updates the speed multiplier, clamped to its range.
func (s *Sim) SetSpeed(mul float64) {
	s.speedMul = clampSpeed(mul)
}

// Speed returns the current speed multiplier.
func (s *Sim) Speed() float64 { return s.speedMul }

// SetBallsPerTeam clamps n to [0, MaxBallsPerTeam] and respawns the whole
// ball set: ball counts cannot change in place without redistributing
// starting positions. Grid ownership and scores are left alone.
func (s *Sim) SetBallsPerTeam(n int) {
	if s.phase == PhaseUninitialized {
		return
	}
	s.ballsPerTeam = clampBallsPerTeam(n)
	s.balls = SpawnBalls(s.ballsPerTeam, s.grid, s.width, s.height, s.rng)
}

// SetNumBalls is a back-compatibility alias for SetBallsPerTeam.
func (s *Sim) SetNumBalls(n int) { s.SetBallsPerTeam(n) }

// BallsPerTeam returns the current per-team ball setting.
func (s *Sim) BallsPerTeam() int { return s.ballsPerTeam }

// Resize retiles the grid for the new canvas size and clamps existing
// balls into the new bounds. Balls are not respawned and the phase does
// not change; ownership restarts unclaimed on the new tiling. Non-finite
// sizes are ignored.
func (s *Sim) Resize(w, h float64) {
	if s.phase == PhaseUninitialized || !isFiniteSize(w, h) {
		return
	}
	s.width = w
	s.height = h
	s.grid = NewGrid(w, h, HexRadiusFor(w, h))
	clampToBounds(s.balls, w, h)
	s.score.Retally(s.grid)
}

// Tick advances one frame if Running: physics, then territory, then score.
// dt is wall seconds since the previous tick, clamped to [0, MaxTickDt].
// In any other phase Tick is a no-op; the host repaints from Snapshot.
func (s *Sim) Tick(dt float64) {
	if s.phase != PhaseRunning {
		return
	}
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	} else if dt > MaxTickDt {
		dt = MaxTickDt
	}

	Step(s.balls, dt, s.speedMul, s.width, s.height, s.rng)
	s.flips = ResolveTerritory(s.balls, s.grid, s.flips[:0])
	s.score.AddFlips(s.flips)
	s.score.Retally(s.grid)
	s.frame++
}

// Score returns the current score aggregates.
func (s *Sim) Score() Score { return s.score }

// Frame returns the number of simulation frames advanced since the last
// reset.
func (s *Sim) Frame() uint64 { return s.frame }

// Bounds returns the playfield size.
func (s *Sim) Bounds() (w, h float64) { return s.width, s.height }

// Grid exposes the current grid for in-process readers. Callers must not
// retain it across lifecycle operations.
func (s *Sim) Grid() *Grid { return s.grid }

// Balls exposes the current ball slice under the same caveat as Grid.
func (s *Sim) Balls() []Ball { return s.balls }
