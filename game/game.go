package game

import (
	"fmt"

	"zertz/unionfind"
	"zertz/utils"
)

// State is the step of the turn protocol the game is waiting for.
type State uint8

const (
	// AwaitingCaptureCheck expects an empty request that looks for available jumps.
	AwaitingCaptureCheck State = iota
	AwaitingPlacement
	AwaitingCapture
	Ended
)

var stateNames = [...]string{"capture-check", "placement", "capture", "ended"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

func (s State) MarshalText() ([]byte, error) {
	if int(s) >= len(stateNames) {
		return nil, fmt.Errorf("%w: state %d", ErrMalformed, uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	i := utils.FindIndex(stateNames[:], string(text))
	if i < 0 {
		return fmt.Errorf("%w: unknown state %q", ErrMalformed, text)
	}
	*s = State(i)
	return nil
}

// RepetitionLimit is the number of repeated positions that ends the game in a tie.
const RepetitionLimit = 3

// Game is a single match. It is not safe for concurrent use.
type Game struct {
	board      Board
	components *unionfind.Set[Coordinate]
	rules      Rules

	current Player
	state   State
	winner  Player

	scores [2]MarbleCount
	pool   MarbleCount

	candidates []CatchableMove // jumps the current player must choose from

	replays []Board // boards reached by jumps since the last removal
	repeats int
}

// New starts a game on a fresh board of the given kind. Nil rules select the standard rules.
func New(kind Kind, rules Rules) (*Game, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBoardKind, int(kind))
	}
	if rules == nil {
		rules = NewStandardRules()
	}
	g := &Game{
		board:      NewBoard(kind),
		components: newComponents(),
		rules:      rules,
		current:    PlayerOne,
		state:      AwaitingCaptureCheck,
		pool:       rules.Supply(),
	}
	g.rebuildComponents()
	return g, nil
}

func newComponents() *unionfind.Set[Coordinate] {
	return unionfind.New(AllCoordinates())
}

// Play applies one request. On error the game is left unchanged.
func (g *Game) Play(req Request) error {
	switch g.state {
	case Ended:
		return ErrGameEnded

	case AwaitingCaptureCheck:
		if !req.empty() {
			return fmt.Errorf("%w: expected an empty request during the capture check, got %v", ErrInvalidRequest, req)
		}
		g.candidates = g.Captures()
		if len(g.candidates) > 0 {
			g.state = AwaitingCapture
		} else {
			g.state = AwaitingPlacement
		}
		return nil

	case AwaitingPlacement:
		if req.Placement == nil || req.Capture != nil {
			return fmt.Errorf("%w: expected a placement, got %v", ErrInvalidRequest, req)
		}
		return g.place(*req.Placement)

	case AwaitingCapture:
		if req.Capture == nil || req.Placement != nil {
			return fmt.Errorf("%w: expected a capture, got %v", ErrInvalidRequest, req)
		}
		return g.capture(*req.Capture)
	}
	panic(fmt.Sprintf("game: unknown state %d", g.state))
}

func (g *Game) place(p Placement) error {
	if r, ok := g.board.Get(p.Put); !ok || r != Vacant {
		return fmt.Errorf("%w: %v is not a vacant ring", ErrInvalidPlacement, p.Put)
	}
	if p.Marble > Black {
		return fmt.Errorf("%w: unknown marble %d", ErrInvalidPlacement, uint8(p.Marble))
	}

	source := &g.pool
	if g.pool.Of(p.Marble) == 0 {
		source = &g.scores[g.current]
		if source.Of(p.Marble) == 0 {
			return fmt.Errorf("%w: no %v marble left for player %v", ErrInvalidPlacement, p.Marble, g.current)
		}
	}

	next := g.board
	next.Set(p.Put, Occupied(p.Marble))
	removed := false
	if removable := next.RemovableRings(); len(removable) > 0 {
		if utils.FindIndex(removable, p.Remove) < 0 {
			return fmt.Errorf("%w: %v", ErrInvalidRemoval, p.Remove)
		}
		next.Set(p.Remove, Nonexistent)
		removed = true
	}

	g.board = next
	source.Add(p.Marble, -1)

	mover := g.current
	isolated := false
	if removed {
		g.replays = nil
		g.repeats = 0
		g.rebuildComponents()
		isolated = g.captureIsolated(mover)
	}

	g.current = mover.Opponent()
	g.candidates = nil
	if isolated && g.judge(mover) {
		return nil
	}
	g.state = AwaitingCaptureCheck
	return nil
}

// Board returns a copy of the current board.
func (g *Game) Board() Board {
	return g.board
}

func (g *Game) Current() Player {
	return g.current
}

func (g *Game) State() State {
	return g.state
}

// Winner returns the result once the game has ended.
func (g *Game) Winner() (Player, bool) {
	if g.state != Ended {
		return 0, false
	}
	return g.winner, true
}

// RemovableRings lists the rings that could be removed right now, in (y, x) order.
func (g *Game) RemovableRings() []Coordinate {
	return g.board.RemovableRings()
}

// Pool returns the marbles not yet placed.
func (g *Game) Pool() MarbleCount {
	return g.pool
}

// Scores returns the captured marbles of both players.
func (g *Game) Scores() [2]MarbleCount {
	return g.scores
}

// Score returns the captured marbles of p. Tie has no score.
func (g *Game) Score(p Player) MarbleCount {
	if p > PlayerTwo {
		return MarbleCount{}
	}
	return g.scores[p]
}

// Candidates returns the jumps available while a capture is awaited.
func (g *Game) Candidates() []CatchableMove {
	return append([]CatchableMove(nil), g.candidates...)
}

func (g *Game) Rules() Rules {
	return g.rules
}

// Repeats returns how many jump positions repeated an earlier one since the last removal.
func (g *Game) Repeats() int {
	return g.repeats
}
