package game

import "math"

// Team identifies a hex owner or ball side.
type Team uint8

const (
	TeamNone Team = iota
	TeamA         // left side, light balls
	TeamB         // right side, dark balls
)

// Axial is a hex position in axial coordinates (q, r).
type Axial struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// S returns the implicit third cube coordinate (q + r + s = 0).
func (a Axial) S() int { return -a.Q - a.R }

// Add returns a+b in axial space.
func (a Axial) Add(b Axial) Axial { return Axial{a.Q + b.Q, a.R + b.R} }

// Directions lists the six axial neighbor offsets.
var Directions = [6]Axial{
	{+1, 0}, {+1, -1}, {0, -1}, {-1, 0}, {-1, +1}, {0, +1},
}

// Cell is one hex of the playfield with its cached pixel center.
type Cell struct {
	Coord Axial
	CX    float64
	CY    float64
	Owner Team
}

// Grid is a flat-top hex tiling of the playfield. Columns advance by 1.5*R
// in x; odd columns shift down half a hex height. Cells are stored column
// major and addressed either by slice index or axial coordinate (odd-q
// offset mapping). Ownership mutates only through the claim operations in
// territory.go; a rebuild is the only way cells appear or disappear.
type Grid struct {
	Cells []Cell
	Cols  int
	Rows  int
	R     float64 // hex radius, center to corner
	HexH  float64 // vertical step, sqrt(3)*R
}

// Dimensions derives the column and row counts that fit a canvas of the
// given size at hex radius r. Both are clamped to at least 1 so degenerate
// canvases still yield a usable grid.
func Dimensions(w, h, r float64) (cols, rows int) {
	hexH := math.Sqrt(3) * r
	stepX := 1.5 * r

	for x := r; x+r <= w-1; x += stepX {
		cols++
	}
	if cols == 0 {
		cols = 1
	}

	// Odd columns sit half a hex lower, so they may fit one row fewer.
	rowsEven := 0
	for y := hexH / 2; y+hexH/2 <= h-1; y += hexH {
		rowsEven++
	}
	rowsOdd := 0
	for y := hexH; y+hexH/2 <= h-1; y += hexH {
		rowsOdd++
	}
	rows = rowsEven
	if rowsOdd < rows {
		rows = rowsOdd
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

// NewGrid builds an unclaimed grid that fits a w×h canvas at hex radius r.
func NewGrid(w, h, r float64) *Grid {
	cols, rows := Dimensions(w, h, r)
	hexH := math.Sqrt(3) * r
	stepX := 1.5 * r

	g := &Grid{
		Cells: make([]Cell, 0, cols*rows),
		Cols:  cols,
		Rows:  rows,
		R:     r,
		HexH:  hexH,
	}
	for col := 0; col < cols; col++ {
		cx := r + float64(col)*stepX
		offsetY := 0.0
		if col%2 == 1 {
			offsetY = hexH / 2
		}
		for row := 0; row < rows; row++ {
			cy := hexH/2 + offsetY + float64(row)*hexH
			g.Cells = append(g.Cells, Cell{
				Coord: axialFromOffset(col, row),
				CX:    cx,
				CY:    cy,
				Owner: TeamNone,
			})
		}
	}
	return g
}

// axialFromOffset converts odd-q offset coordinates to axial.
func axialFromOffset(col, row int) Axial {
	return Axial{Q: col, R: row - (col-(col&1))/2}
}

// offsetFromAxial is the inverse of axialFromOffset.
func offsetFromAxial(a Axial) (col, row int) {
	return a.Q, a.R + (a.Q-(a.Q&1))/2
}

// Total returns the number of hexes in the grid.
func (g *Grid) Total() int { return len(g.Cells) }

func (g *Grid) index(a Axial) int {
	col, row := offsetFromAxial(a)
	if col < 0 || col >= g.Cols || row < 0 || row >= g.Rows {
		return -1
	}
	return col*g.Rows + row
}

// Contains reports whether a names a hex of this grid.
func (g *Grid) Contains(a Axial) bool { return g.index(a) >= 0 }

// CenterOf returns the pixel center of hex a.
func (g *Grid) CenterOf(a Axial) (x, y float64, ok bool) {
	i := g.index(a)
	if i < 0 {
		return 0, 0, false
	}
	return g.Cells[i].CX, g.Cells[i].CY, true
}

// OwnerOf returns the owning team of hex a, TeamNone if unclaimed or out
// of bounds.
func (g *Grid) OwnerOf(a Axial) Team {
	i := g.index(a)
	if i < 0 {
		return TeamNone
	}
	return g.Cells[i].Owner
}

// HexAt maps a pixel position to the hex containing it, rounding to the
// nearest column and then the nearest row within that column's offset.
// ok is false outside the tiling.
func (g *Grid) HexAt(x, y float64) (Axial, bool) {
	stepX := 1.5 * g.R

	col := int(math.Round((x - g.R) / stepX))
	if col < 0 || col >= g.Cols {
		return Axial{}, false
	}
	offset := 0.0
	if col%2 == 1 {
		offset = g.HexH / 2
	}
	row := int(math.Round((y - g.HexH/2 - offset) / g.HexH))
	if row < 0 || row >= g.Rows {
		return Axial{}, false
	}
	return axialFromOffset(col, row), true
}

// Neighbors appends the in-bounds neighbors of a to dst and returns it.
// A hex has up to six; edge hexes have fewer.
func (g *Grid) Neighbors(a Axial, dst []Axial) []Axial {
	for _, d := range Directions {
		n := a.Add(d)
		if g.Contains(n) {
			dst = append(dst, n)
		}
	}
	return dst
}

// ClearOwnership resets every hex to TeamNone.
func (g *Grid) ClearOwnership() {
	for i := range g.Cells {
		g.Cells[i].Owner = TeamNone
	}
}
