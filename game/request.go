package game

import "fmt"

// Placement puts a marble on a vacant ring and removes a free ring.
// Remove is ignored when no ring can be removed after the put.
type Placement struct {
	Put    Coordinate `json:"put"`
	Remove Coordinate `json:"remove"`
	Marble Marble     `json:"marble"`
}

// CatchableMove is a jump from Origin over Captured onto Landing.
type CatchableMove struct {
	Origin   Coordinate `json:"origin"`
	Captured Coordinate `json:"captured"`
	Landing  Coordinate `json:"landing"`
}

func (cm CatchableMove) String() string {
	return fmt.Sprintf("%v x %v -> %v", cm.Origin, cm.Captured, cm.Landing)
}

// Request is the input to Game.Play. The zero value advances past a capture check.
type Request struct {
	Placement *Placement     `json:"placement,omitempty"`
	Capture   *CatchableMove `json:"capture,omitempty"`
}

// Advance is the empty request accepted while a capture check is pending.
func Advance() Request {
	return Request{}
}

func Place(m Marble, put, remove Coordinate) Request {
	return Request{Placement: &Placement{Put: put, Remove: remove, Marble: m}}
}

func Capture(cm CatchableMove) Request {
	return Request{Capture: &cm}
}

func (r Request) empty() bool {
	return r.Placement == nil && r.Capture == nil
}

func (r Request) String() string {
	switch {
	case r.Placement != nil && r.Capture != nil:
		return "invalid request"
	case r.Placement != nil:
		p := r.Placement
		return fmt.Sprintf("put %v at %v, remove %v", p.Marble, p.Put, p.Remove)
	case r.Capture != nil:
		return "capture " + r.Capture.String()
	default:
		return "advance"
	}
}
