package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"zertz/game"
	"zertz/gamemaster"
)

var ErrNotFound = errors.New("store: match not found")

// Match is a saved match. Data holds the full export, so the match can be resumed and rewound.
type Match struct {
	ID        uuid.UUID
	Kind      game.Kind
	Rules     string
	State     game.State
	Winner    *game.Player
	Moves     int
	Data      []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store persists matches. Implementations are safe for concurrent use.
type Store interface {
	// Save inserts or replaces the match with the same ID. CreatedAt is kept from the first save.
	Save(ctx context.Context, m Match) error
	Get(ctx context.Context, id uuid.UUID) (Match, error)
	// List returns every match, oldest first.
	List(ctx context.Context) ([]Match, error)
}

// NewMatch captures the current state of master under id.
func NewMatch(id uuid.UUID, master *gamemaster.Master) (Match, error) {
	data, err := master.Export()
	if err != nil {
		return Match{}, err
	}
	v := master.View()
	return Match{
		ID:     id,
		Kind:   v.Board.Kind,
		Rules:  v.Rules,
		State:  v.State,
		Winner: v.Winner,
		Moves:  v.Moves,
		Data:   data,
	}, nil
}

// Master resumes the saved match.
func (m Match) Master() (*gamemaster.Master, error) {
	master, err := gamemaster.Load(m.Data)
	if err != nil {
		return nil, fmt.Errorf("match %s: %w", m.ID, err)
	}
	return master, nil
}

// Result describes the outcome for listings.
func (m Match) Result() string {
	if m.Winner == nil {
		return "in progress"
	}
	if *m.Winner == game.Tie {
		return "tie"
	}
	return "player " + m.Winner.String() + " won"
}
