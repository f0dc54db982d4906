package game

import "fmt"

// Direction is a combination of primitive grid moves. The hex board is embedded in a square
// grid by skewing it, so two of the six hex neighbors are diagonal combinations.
type Direction uint8

const (
	Left  Direction = 1 << iota // x - 1
	Right                       // x + 1
	Up                          // y + 1
	Down                        // y - 1

	UpRight  = Up | Right
	LeftDown = Left | Down
)

// HexDirections lists the six hex neighbors counter-clockwise, starting at up-right.
var HexDirections = [6]Direction{UpRight, Up, Left, LeftDown, Down, Right}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	case UpRight:
		return "up-right"
	case LeftDown:
		return "left-down"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Coordinate is a position on the backing grid.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Coord is shorthand for Coordinate{X: x, Y: y}.
func Coord(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// Less orders coordinates by row first, then column.
func (c Coordinate) Less(o Coordinate) bool {
	if c.Y == o.Y {
		return c.X < o.X
	}
	return c.Y < o.Y
}

// Compare returns -1, 0 or +1 following the same (y, x) order as Less.
func (c Coordinate) Compare(o Coordinate) int {
	switch {
	case c == o:
		return 0
	case c.Less(o):
		return -1
	default:
		return 1
	}
}

// Adjacent returns the neighbor in direction d, or false when a move would go below zero.
// Moves past the top of the grid succeed; the board lookup rejects them.
func (c Coordinate) Adjacent(d Direction) (Coordinate, bool) {
	out := c
	if d&Left != 0 {
		if out.X == 0 {
			return Coordinate{}, false
		}
		out.X--
	}
	if d&Right != 0 {
		out.X++
	}
	if d&Up != 0 {
		out.Y++
	}
	if d&Down != 0 {
		if out.Y == 0 {
			return Coordinate{}, false
		}
		out.Y--
	}
	return out, true
}

// RawAdjacent is Adjacent without the underflow check. Callers must already know the
// neighbor exists, in practice by only moving right or up.
func (c Coordinate) RawAdjacent(d Direction) Coordinate {
	out := c
	if d&Left != 0 {
		out.X--
	}
	if d&Right != 0 {
		out.X++
	}
	if d&Up != 0 {
		out.Y++
	}
	if d&Down != 0 {
		out.Y--
	}
	return out
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// AllCoordinates returns every grid coordinate in (y, x) order.
func AllCoordinates() []Coordinate {
	out := make([]Coordinate, 0, GridCells)
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			out = append(out, Coordinate{X: x, Y: y})
		}
	}
	return out
}
