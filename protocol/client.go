package protocol

// Messages coming in from the host shell.

// Hello opens a session. Width and height are the shell's canvas size in
// CSS pixels; the match resizes its playfield to the first viewer's canvas.
type Hello struct {
	V      int     `json:"v"`              // protocol version
	Name   string  `json:"name,omitempty"` // optional display name
	Width  float64 `json:"w,omitempty"`
	Height float64 `json:"h,omitempty"`
}

// Control surface operations. Parameter values out of range are clamped
// server-side, never rejected: the shell drives these from sliders.
const (
	OpStart           = "start"
	OpStop            = "stop"
	OpResetGrid       = "reset_grid"
	OpSetSpeed        = "set_speed"
	OpSetBallsPerTeam = "set_balls_per_team"
	OpSetNumBalls     = "set_num_balls" // alias of set_balls_per_team
	OpResize          = "resize"
)

// Control carries one control-surface operation. Only the fields the op
// reads are meaningful.
type Control struct {
	Op     string  `json:"op"`
	Value  float64 `json:"value,omitempty"` // set_speed
	Count  int     `json:"count,omitempty"` // set_balls_per_team / set_num_balls
	Width  float64 `json:"w,omitempty"`     // resize
	Height float64 `json:"h,omitempty"`     // resize
}
