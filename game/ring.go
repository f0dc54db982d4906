package game

import "fmt"

// Marble is one of the three marble colors.
type Marble uint8

const (
	White Marble = iota
	Gray
	Black
)

// Marbles lists every color in tally order.
var Marbles = [3]Marble{White, Gray, Black}

func (m Marble) String() string {
	switch m {
	case White:
		return "white"
	case Gray:
		return "gray"
	case Black:
		return "black"
	default:
		return fmt.Sprintf("Marble(%d)", uint8(m))
	}
}

func (m Marble) MarshalText() ([]byte, error) {
	if m > Black {
		return nil, fmt.Errorf("%w: marble %d", ErrMalformed, uint8(m))
	}
	return []byte(m.String()), nil
}

func (m *Marble) UnmarshalText(text []byte) error {
	parsed, err := ParseMarble(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMarble accepts the lowercase color names.
func ParseMarble(s string) (Marble, error) {
	switch s {
	case "white":
		return White, nil
	case "gray":
		return Gray, nil
	case "black":
		return Black, nil
	}
	return 0, fmt.Errorf("%w: unknown marble %q", ErrMalformed, s)
}

// Ring is the content of one grid cell.
type Ring uint8

const (
	Nonexistent Ring = iota // no ring, either outside the board or removed
	Vacant
	WhiteRing
	GrayRing
	BlackRing
)

// Occupied returns the ring holding marble m.
func Occupied(m Marble) Ring {
	return WhiteRing + Ring(m)
}

// Present reports whether a ring exists, with or without a marble.
func (r Ring) Present() bool {
	return r != Nonexistent
}

// Marble returns the marble on the ring, if any.
func (r Ring) Marble() (Marble, bool) {
	if r < WhiteRing || r > BlackRing {
		return 0, false
	}
	return Marble(r - WhiteRing), true
}

func (r Ring) IsOccupied() bool {
	_, ok := r.Marble()
	return ok
}

func (r Ring) symbol() byte {
	switch r {
	case Vacant:
		return 'O'
	case WhiteRing:
		return 'W'
	case GrayRing:
		return 'G'
	case BlackRing:
		return 'B'
	default:
		return '.'
	}
}

func ringFromSymbol(b byte) (Ring, bool) {
	switch b {
	case '.':
		return Nonexistent, true
	case 'O':
		return Vacant, true
	case 'W':
		return WhiteRing, true
	case 'G':
		return GrayRing, true
	case 'B':
		return BlackRing, true
	}
	return 0, false
}

func (r Ring) String() string {
	return string(r.symbol())
}

// MarbleCount tallies marbles per color.
type MarbleCount struct {
	White int `json:"white"`
	Gray  int `json:"gray"`
	Black int `json:"black"`
}

// Of returns the tally for one color.
func (mc MarbleCount) Of(m Marble) int {
	switch m {
	case White:
		return mc.White
	case Gray:
		return mc.Gray
	default:
		return mc.Black
	}
}

// Add changes the tally for one color by delta.
func (mc *MarbleCount) Add(m Marble, delta int) {
	switch m {
	case White:
		mc.White += delta
	case Gray:
		mc.Gray += delta
	default:
		mc.Black += delta
	}
}

// Plus returns the color-wise sum.
func (mc MarbleCount) Plus(o MarbleCount) MarbleCount {
	return MarbleCount{White: mc.White + o.White, Gray: mc.Gray + o.Gray, Black: mc.Black + o.Black}
}

// Total returns the number of marbles of all colors.
func (mc MarbleCount) Total() int {
	return mc.White + mc.Gray + mc.Black
}

func (mc MarbleCount) negative() bool {
	return mc.White < 0 || mc.Gray < 0 || mc.Black < 0
}

// Player identifies a side. Tie only appears as a game result.
type Player uint8

const (
	PlayerOne Player = iota
	PlayerTwo
	Tie
)

// Opponent returns the other player. Tie has no opponent and maps to itself.
func (p Player) Opponent() Player {
	switch p {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		return p
	}
}

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "one"
	case PlayerTwo:
		return "two"
	case Tie:
		return "tie"
	default:
		return fmt.Sprintf("Player(%d)", uint8(p))
	}
}

func (p Player) MarshalText() ([]byte, error) {
	if p > Tie {
		return nil, fmt.Errorf("%w: player %d", ErrMalformed, uint8(p))
	}
	return []byte(p.String()), nil
}

func (p *Player) UnmarshalText(text []byte) error {
	switch string(text) {
	case "one":
		*p = PlayerOne
	case "two":
		*p = PlayerTwo
	case "tie":
		*p = Tie
	default:
		return fmt.Errorf("%w: unknown player %q", ErrMalformed, text)
	}
	return nil
}
