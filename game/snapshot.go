package game

import (
	"encoding/json"
	"fmt"
)

// Snapshot is a position that can be restored into a Game.
type Snapshot struct {
	Board   Board          `json:"board"`
	Current Player         `json:"current"`
	Scores  [2]MarbleCount `json:"scores"`
	Pool    MarbleCount    `json:"pool"`
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Board:   g.board,
		Current: g.current,
		Scores:  g.scores,
		Pool:    g.pool,
	}
}

// Validate checks that s describes a reachable position under rules.
func (s Snapshot) Validate(rules Rules) error {
	if !s.Board.Kind.Valid() {
		return fmt.Errorf("%w: board kind %d", ErrMalformed, int(s.Board.Kind))
	}
	if s.Current > PlayerTwo {
		return fmt.Errorf("%w: %v cannot be the player to move", ErrMalformed, s.Current)
	}
	if s.Pool.negative() || s.Scores[0].negative() || s.Scores[1].negative() {
		return fmt.Errorf("%w: negative marble count", ErrMalformed)
	}
	total := s.Pool.Plus(s.Board.Count()).Plus(s.Scores[0]).Plus(s.Scores[1])
	if total != rules.Supply() {
		return fmt.Errorf("%w: marble total %+v does not match supply %+v", ErrMalformed, total, rules.Supply())
	}
	return nil
}

// Restore replaces the position with s. The game resumes at the capture check,
// or ends at once if either player already holds a winning tally.
// The repetition record is left alone; only a ring removal clears it.
func (g *Game) Restore(s Snapshot) error {
	if err := s.Validate(g.rules); err != nil {
		return err
	}
	g.board = s.Board
	g.current = s.Current
	g.scores = s.Scores
	g.pool = s.Pool
	g.candidates = nil
	g.rebuildComponents()

	g.state = AwaitingCaptureCheck
	g.judge(g.current.Opponent())
	return nil
}

type gameJSON struct {
	Rules      string          `json:"rules"`
	Board      Board           `json:"board"`
	Current    Player          `json:"current"`
	State      State           `json:"state"`
	Winner     *Player         `json:"winner,omitempty"`
	Scores     [2]MarbleCount  `json:"scores"`
	Pool       MarbleCount     `json:"pool"`
	Candidates []CatchableMove `json:"candidates,omitempty"`
	Replays    []Board         `json:"replays,omitempty"`
	Repeats    int             `json:"repeats"`
}

func (g *Game) MarshalJSON() ([]byte, error) {
	out := gameJSON{
		Rules:      g.rules.Name(),
		Board:      g.board,
		Current:    g.current,
		State:      g.state,
		Scores:     g.scores,
		Pool:       g.pool,
		Candidates: g.candidates,
		Replays:    g.replays,
		Repeats:    g.repeats,
	}
	if w, ok := g.Winner(); ok {
		out.Winner = &w
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores a game written by MarshalJSON, including the pending turn step.
// Connectivity is always rebuilt from the board.
func (g *Game) UnmarshalJSON(data []byte) error {
	var in gameJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	rules, err := RulesByName(in.Rules)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	s := Snapshot{Board: in.Board, Current: in.Current, Scores: in.Scores, Pool: in.Pool}
	if err := s.Validate(rules); err != nil {
		return err
	}
	if in.State > Ended {
		return fmt.Errorf("%w: state %d", ErrMalformed, uint8(in.State))
	}
	if in.State == Ended && in.Winner == nil {
		return fmt.Errorf("%w: ended game without a result", ErrMalformed)
	}
	if in.Repeats < 0 {
		return fmt.Errorf("%w: negative repeat count", ErrMalformed)
	}

	restored := Game{
		board:      in.Board,
		components: g.components,
		rules:      rules,
		current:    in.Current,
		state:      in.State,
		scores:     in.Scores,
		pool:       in.Pool,
		candidates: in.Candidates,
		replays:    in.Replays,
		repeats:    in.Repeats,
	}
	if restored.components == nil {
		restored.components = newComponents()
	}
	if in.Winner != nil {
		restored.winner = *in.Winner
	}
	if restored.state == AwaitingCapture {
		for _, cm := range restored.candidates {
			if !restored.isCapture(cm) {
				return fmt.Errorf("%w: %v is not a capture on this board", ErrMalformed, cm)
			}
		}
		if len(restored.candidates) == 0 {
			return fmt.Errorf("%w: capture awaited without candidates", ErrMalformed)
		}
	} else {
		restored.candidates = nil
	}
	restored.rebuildComponents()
	*g = restored
	return nil
}

func (g *Game) isCapture(cm CatchableMove) bool {
	if r, ok := g.board.Get(cm.Origin); !ok || !r.IsOccupied() {
		return false
	}
	for _, c := range g.capturesFrom(cm.Origin) {
		if c == cm {
			return true
		}
	}
	return false
}
