package game

import (
	"fmt"

	"zertz/utils"
)

// Captures lists every jump on the board, grouped by origin in (y, x) order.
func (g *Game) Captures() []CatchableMove {
	var out []CatchableMove
	for _, c := range AllCoordinates() {
		if g.board.At(c).IsOccupied() {
			out = append(out, g.capturesFrom(c)...)
		}
	}
	return out
}

// capturesFrom lists the jumps of the marble at origin over an adjacent marble onto a vacant ring.
func (g *Game) capturesFrom(origin Coordinate) []CatchableMove {
	var out []CatchableMove
	for _, d := range HexDirections {
		over, ok := origin.Adjacent(d)
		if !ok {
			continue
		}
		if r, ok := g.board.Get(over); !ok || !r.IsOccupied() {
			continue
		}
		landing, ok := over.Adjacent(d)
		if !ok {
			continue
		}
		if r, ok := g.board.Get(landing); !ok || r != Vacant {
			continue
		}
		out = append(out, CatchableMove{Origin: origin, Captured: over, Landing: landing})
	}
	return out
}

func (g *Game) capture(cm CatchableMove) error {
	if utils.FindIndex(g.candidates, cm) < 0 {
		return fmt.Errorf("%w: %v is not an available capture", ErrInvalidRequest, cm)
	}
	jumper, ok := g.board.At(cm.Origin).Marble()
	if !ok {
		return fmt.Errorf("%w: origin %v", ErrCaptureInvariant, cm.Origin)
	}
	taken, ok := g.board.At(cm.Captured).Marble()
	if !ok {
		return fmt.Errorf("%w: %v", ErrCaptureInvariant, cm.Captured)
	}

	capturer := g.current
	g.scores[capturer].Add(taken, 1)
	g.board.Set(cm.Landing, Occupied(jumper))
	g.board.Set(cm.Origin, Vacant)
	g.board.Set(cm.Captured, Vacant)
	g.recordReplay()

	if next := g.capturesFrom(cm.Landing); len(next) > 0 {
		g.candidates = next
		g.state = AwaitingCapture
	} else {
		g.candidates = nil
		g.current = capturer.Opponent()
		g.state = AwaitingPlacement
	}

	if g.judge(capturer) {
		return nil
	}
	if g.repeats >= RepetitionLimit {
		g.end(Tie)
	}
	return nil
}
