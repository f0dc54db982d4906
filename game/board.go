package game

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Board is a 9x9 grid of rings. It is a plain value: assigning a Board copies it.
type Board struct {
	Kind  Kind
	cells [GridCells]Ring
}

// NewBoard returns the fresh layout of kind k with every ring vacant.
func NewBoard(k Kind) Board {
	if !k.Valid() {
		panic(fmt.Sprintf("game: board kind %d has no layout", int(k)))
	}
	b := Board{Kind: k}
	for _, c := range AllCoordinates() {
		if k.Contains(c) {
			b.cells[index(c)] = Vacant
		}
	}
	return b
}

func index(c Coordinate) int {
	return c.X + GridSize*c.Y
}

func inGrid(c Coordinate) bool {
	return c.X >= 0 && c.X < GridSize && c.Y >= 0 && c.Y < GridSize
}

// Get returns the ring at c, or false if c is outside the grid.
func (b Board) Get(c Coordinate) (Ring, bool) {
	if !inGrid(c) {
		return Nonexistent, false
	}
	return b.cells[index(c)], true
}

// Neighbor returns the ring next to c in direction d, or false if there is no such cell.
func (b Board) Neighbor(c Coordinate, d Direction) (Ring, bool) {
	n, ok := c.Adjacent(d)
	if !ok {
		return Nonexistent, false
	}
	return b.Get(n)
}

// At returns the ring at c. It panics if c is outside the grid.
func (b Board) At(c Coordinate) Ring {
	if !inGrid(c) {
		panic(fmt.Sprintf("game: %v is outside the grid", c))
	}
	return b.cells[index(c)]
}

// Set overwrites the ring at c. It panics if c is outside the grid.
func (b *Board) Set(c Coordinate, r Ring) {
	if !inGrid(c) {
		panic(fmt.Sprintf("game: %v is outside the grid", c))
	}
	b.cells[index(c)] = r
}

// Count tallies the marbles on the board.
func (b Board) Count() MarbleCount {
	var mc MarbleCount
	for _, r := range b.cells {
		if m, ok := r.Marble(); ok {
			mc.Add(m, 1)
		}
	}
	return mc
}

// Rings returns the number of rings still on the board.
func (b Board) Rings() int {
	n := 0
	for _, r := range b.cells {
		if r.Present() {
			n++
		}
	}
	return n
}

// edgePairs are the neighbor pairs that, when both are missing, leave a ring free to slide out.
var edgePairs = [6][2]Direction{
	{UpRight, Up},
	{Left, Up},
	{Left, LeftDown},
	{Down, LeftDown},
	{Down, Right},
	{UpRight, Right},
}

func (b Board) missing(c Coordinate, d Direction) bool {
	r, ok := b.Neighbor(c, d)
	return !ok || r == Nonexistent
}

// IsRemovable reports whether the ring at c is vacant and sits on an open edge.
func (b Board) IsRemovable(c Coordinate) bool {
	if r, ok := b.Get(c); !ok || r != Vacant {
		return false
	}
	for _, pair := range edgePairs {
		if b.missing(c, pair[0]) && b.missing(c, pair[1]) {
			return true
		}
	}
	return false
}

// RemovableRings lists every removable ring in (y, x) order.
func (b Board) RemovableRings() []Coordinate {
	var out []Coordinate
	for _, c := range AllCoordinates() {
		if b.IsRemovable(c) {
			out = append(out, c)
		}
	}
	return out
}

// String renders the board top row first, shifting each row so hex neighbors line up.
func (b Board) String() string {
	var sb strings.Builder
	for y := GridSize - 1; y >= 0; y-- {
		row := b.row(y)
		if strings.Trim(row, ".") == "" {
			continue
		}
		sb.WriteString(strings.Repeat(" ", y))
		for x := 0; x < GridSize; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(row[x])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b Board) row(y int) string {
	buf := make([]byte, GridSize)
	for x := 0; x < GridSize; x++ {
		buf[x] = b.cells[index(Coordinate{X: x, Y: y})].symbol()
	}
	return string(buf)
}

type boardJSON struct {
	Kind Kind     `json:"kind"`
	Rows []string `json:"rows"`
}

func (b Board) MarshalJSON() ([]byte, error) {
	out := boardJSON{Kind: b.Kind, Rows: make([]string, GridSize)}
	for y := 0; y < GridSize; y++ {
		out.Rows[y] = b.row(y)
	}
	return json.Marshal(out)
}

func (b *Board) UnmarshalJSON(data []byte) error {
	var in boardJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if !in.Kind.Valid() {
		return fmt.Errorf("%w: board kind %d", ErrMalformed, int(in.Kind))
	}
	if len(in.Rows) != GridSize {
		return fmt.Errorf("%w: expected %d rows, got %d", ErrMalformed, GridSize, len(in.Rows))
	}

	decoded := Board{Kind: in.Kind}
	for y, row := range in.Rows {
		if len(row) != GridSize {
			return fmt.Errorf("%w: row %d has %d cells", ErrMalformed, y, len(row))
		}
		for x := 0; x < GridSize; x++ {
			r, ok := ringFromSymbol(row[x])
			if !ok {
				return fmt.Errorf("%w: unknown cell %q at (%d, %d)", ErrMalformed, row[x], x, y)
			}
			c := Coordinate{X: x, Y: y}
			if r.Present() && !in.Kind.Contains(c) {
				return fmt.Errorf("%w: ring at %v is outside a %d board", ErrMalformed, c, int(in.Kind))
			}
			decoded.cells[index(c)] = r
		}
	}
	*b = decoded
	return nil
}
