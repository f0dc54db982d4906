package game

import "fmt"

const (
	GridSize  = 9
	GridCells = GridSize * GridSize
)

// Sentinel is a grid cell that no board kind uses. Every removed ring is joined to it.
var Sentinel = Coordinate{X: 8, Y: 0}

// Kind names a board layout by its initial ring count.
type Kind int

const (
	Kind37 Kind = 37
	Kind40 Kind = 40
	Kind43 Kind = 43
	Kind44 Kind = 44
	Kind48 Kind = 48
	Kind61 Kind = 61
)

// Kinds lists every supported layout.
var Kinds = []Kind{Kind37, Kind40, Kind43, Kind44, Kind48, Kind61}

type span struct{ lo, hi int }

// templates maps a kind to the inclusive x range of rings on each row, from y = 0 up.
var templates = map[Kind][]span{
	Kind37: {{0, 3}, {0, 4}, {0, 5}, {0, 6}, {1, 6}, {2, 6}, {3, 6}},
	Kind40: {{0, 3}, {0, 4}, {0, 5}, {0, 6}, {1, 6}, {2, 6}, {3, 6}, {4, 6}},
	Kind43: {{0, 3}, {0, 4}, {0, 5}, {0, 6}, {1, 7}, {2, 7}, {3, 7}, {4, 6}},
	Kind44: {{0, 3}, {0, 4}, {0, 5}, {0, 6}, {0, 6}, {1, 6}, {2, 6}, {3, 6}},
	Kind48: {{0, 4}, {0, 5}, {0, 6}, {0, 7}, {1, 7}, {2, 7}, {3, 7}, {4, 7}},
	Kind61: {{0, 4}, {0, 5}, {0, 6}, {0, 7}, {0, 8}, {1, 8}, {2, 8}, {3, 8}, {4, 8}},
}

// ParseKind converts a ring count to a Kind.
func ParseKind(n int) (Kind, error) {
	k := Kind(n)
	if _, ok := templates[k]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrInvalidBoardKind, n)
	}
	return k, nil
}

// Valid reports whether k is a supported layout.
func (k Kind) Valid() bool {
	_, ok := templates[k]
	return ok
}

// Contains reports whether the kind's fresh board has a ring at c.
func (k Kind) Contains(c Coordinate) bool {
	rows := templates[k]
	if c.Y < 0 || c.Y >= len(rows) {
		return false
	}
	return c.X >= rows[c.Y].lo && c.X <= rows[c.Y].hi
}
