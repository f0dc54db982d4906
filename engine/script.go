package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/exp/slices"

	"zertz/game"
	"zertz/gamemaster"
)

// point is a coordinate written as [x, y].
type point [2]int

func (p point) coord() game.Coordinate {
	return game.Coord(p[0], p[1])
}

// scriptMove is either a placement (put, marble and optionally remove) or a capture (from, to).
type scriptMove struct {
	Put    *point       `json:"put,omitempty"`
	Remove *point       `json:"remove,omitempty"`
	Marble *game.Marble `json:"marble,omitempty"`
	From   *point       `json:"from,omitempty"`
	To     *point       `json:"to,omitempty"`
}

func (sm scriptMove) isPlacement() bool {
	return sm.Put != nil
}

func (sm scriptMove) validate() error {
	placement := sm.Put != nil || sm.Remove != nil || sm.Marble != nil
	capture := sm.From != nil || sm.To != nil
	switch {
	case placement && capture:
		return fmt.Errorf("mixes a placement and a capture")
	case placement && (sm.Put == nil || sm.Marble == nil):
		return fmt.Errorf("placement needs put and marble")
	case capture && (sm.From == nil || sm.To == nil):
		return fmt.Errorf("capture needs from and to")
	case !placement && !capture:
		return fmt.Errorf("empty move")
	}
	return nil
}

// ScriptSource replays a fixed list of moves. Captures are matched against the jumps on offer.
type ScriptSource struct {
	moves []scriptMove
	next  int
}

// LoadScript reads a JSON array of moves such as
// [{"put":[3,3],"remove":[0,0],"marble":"white"},{"from":[0,0],"to":[0,2]}].
func LoadScript(r io.Reader) (*ScriptSource, error) {
	var moves []scriptMove
	if err := json.NewDecoder(r).Decode(&moves); err != nil {
		return nil, fmt.Errorf("cannot decode script: %w", err)
	}
	for i, m := range moves {
		if err := m.validate(); err != nil {
			return nil, fmt.Errorf("script move %d: %w", i+1, err)
		}
	}
	return &ScriptSource{moves: moves}, nil
}

// Remaining returns the number of moves not yet handed out.
func (s *ScriptSource) Remaining() int {
	return len(s.moves) - s.next
}

func (s *ScriptSource) NextMove(ctx context.Context, view gamemaster.View) (game.Request, error) {
	if err := ctx.Err(); err != nil {
		return game.Request{}, err
	}
	if s.next >= len(s.moves) {
		return game.Request{}, ErrSourceExhausted
	}
	m := s.moves[s.next]
	n := s.next + 1

	switch view.State {
	case game.AwaitingPlacement:
		if !m.isPlacement() {
			return game.Request{}, fmt.Errorf("script move %d: expected a placement", n)
		}
		remove := m.Put.coord()
		if m.Remove != nil {
			remove = m.Remove.coord()
		}
		s.next++
		return game.Place(*m.Marble, m.Put.coord(), remove), nil

	case game.AwaitingCapture:
		if m.isPlacement() {
			return game.Request{}, fmt.Errorf("script move %d: expected a capture", n)
		}
		from, to := m.From.coord(), m.To.coord()
		i := slices.IndexFunc(view.Candidates, func(cm game.CatchableMove) bool {
			return cm.Origin == from && cm.Landing == to
		})
		if i < 0 {
			return game.Request{}, fmt.Errorf("script move %d: no capture from %v to %v", n, from, to)
		}
		s.next++
		return game.Capture(view.Candidates[i]), nil
	}
	return game.Request{}, fmt.Errorf("script move %d: game is in state %v", n, view.State)
}
