package game

import "fmt"

type Rules interface {
	Name() string
	// Supply is the number of marbles of each color in play.
	Supply() MarbleCount
	IsWin(captured MarbleCount) bool
}

type StandardRules struct {
	Label    string
	Pool     MarbleCount
	Goal     MarbleCount // captures of a single color that win
	GoalEach int         // captures of every color that win
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		Label:    "standard",
		Pool:     MarbleCount{White: 6, Gray: 8, Black: 10},
		Goal:     MarbleCount{White: 4, Gray: 5, Black: 6},
		GoalEach: 3,
	}
}

// NewBlitzRules is the shorter variant played with fewer marbles.
func NewBlitzRules() *StandardRules {
	return &StandardRules{
		Label:    "blitz",
		Pool:     MarbleCount{White: 5, Gray: 7, Black: 9},
		Goal:     MarbleCount{White: 3, Gray: 4, Black: 5},
		GoalEach: 2,
	}
}

func (sr *StandardRules) Name() string {
	return sr.Label
}

func (sr *StandardRules) Supply() MarbleCount {
	return sr.Pool
}

func (sr *StandardRules) IsWin(captured MarbleCount) bool {
	if captured.White >= sr.Goal.White || captured.Gray >= sr.Goal.Gray || captured.Black >= sr.Goal.Black {
		return true
	}
	return captured.White >= sr.GoalEach && captured.Gray >= sr.GoalEach && captured.Black >= sr.GoalEach
}

// RulesByName returns a fresh rule set for a name produced by Rules.Name.
func RulesByName(name string) (Rules, error) {
	switch name {
	case "", "standard":
		return NewStandardRules(), nil
	case "blitz":
		return NewBlitzRules(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownRules, name)
}
