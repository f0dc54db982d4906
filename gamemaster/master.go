package gamemaster

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"zertz/game"
	"zertz/meta"
	"zertz/utils"
)

var (
	ErrLoadFailed = errors.New("gamemaster: cannot load match")
	ErrSaveFailed = errors.New("gamemaster: cannot save match")
)

// Master runs one match and keeps the positions reached by every committed move.
// It is not safe for concurrent use; see communication.Local.
type Master struct {
	game    *game.Game
	history []game.Snapshot // oldest first, history[0] is the starting position
	prev    *game.Snapshot  // position a plain Rewind returns to
}

func New(kind game.Kind, rules game.Rules) (*Master, error) {
	g, err := game.New(kind, rules)
	if err != nil {
		return nil, err
	}
	return fromGame(g), nil
}

func fromGame(g *game.Game) *Master {
	history := make([]game.Snapshot, 0, meta.HISTORY_CAPACITY)
	return &Master{
		game:    g,
		history: append(history, g.Snapshot()),
	}
}

// Play submits a request. Placements and captures that succeed are recorded in the history.
func (m *Master) Play(req game.Request) error {
	player := m.game.Current()
	if err := m.game.Play(req); err != nil {
		log.Debug().Err(err).Msgf("player %v: rejected %v", player, req)
		return err
	}
	if req.Placement == nil && req.Capture == nil {
		return nil
	}

	m.history = append(m.history, m.game.Snapshot())
	m.prev = nil
	log.Debug().Msgf("player %v: %v", player, req)

	if winner, ok := m.game.Winner(); ok {
		if winner == game.Tie {
			log.Info().Msgf("game ended in a tie after %d moves", m.Moves())
		} else {
			log.Info().Msgf("player %v wins after %d moves", winner, m.Moves())
		}
	}
	return nil
}

// Rewind undoes the last committed move. Calling it again without playing returns to the
// same position rather than going further back.
func (m *Master) Rewind() error {
	if m.prev != nil {
		return m.restore(*m.prev)
	}
	if len(m.history) < 2 {
		return m.restore(m.history[0])
	}
	m.history, _, _ = utils.Pop(m.history)
	top, _ := utils.Last(m.history)
	m.prev = &top
	return m.restore(top)
}

// ForceRewind steps back one committed move on every call, down to the starting position.
func (m *Master) ForceRewind() error {
	if len(m.history) > 1 {
		m.history, _, _ = utils.Pop(m.history)
	}
	top, _ := utils.Last(m.history)
	m.prev = &top
	return m.restore(top)
}

func (m *Master) restore(s game.Snapshot) error {
	if err := m.game.Restore(s); err != nil {
		return fmt.Errorf("cannot restore position %d: %w", len(m.history)-1, err)
	}
	log.Debug().Msgf("rewound to position %d, player %v to move", len(m.history)-1, s.Current)
	return nil
}

// Moves returns the number of committed moves in the history.
func (m *Master) Moves() int {
	return len(m.history) - 1
}

// History returns a copy of the recorded positions, oldest first.
func (m *Master) History() []game.Snapshot {
	return slices.Clone(m.history)
}

// Game exposes the live game for queries. Requests must go through Play.
func (m *Master) Game() *game.Game {
	return m.game
}

// View bundles everything a client needs to show the current turn.
type View struct {
	Rules      string               `json:"rules"`
	State      game.State           `json:"state"`
	Winner     *game.Player         `json:"winner,omitempty"`
	Current    game.Player          `json:"current"`
	Board      game.Board           `json:"board"`
	Candidates []game.CatchableMove `json:"candidates,omitempty"`
	Removable  []game.Coordinate    `json:"removable"`
	Pool       game.MarbleCount     `json:"pool"`
	Scores     [2]game.MarbleCount  `json:"scores"`
	Moves      int                  `json:"moves"`
}

func (m *Master) View() View {
	v := View{
		Rules:      m.game.Rules().Name(),
		State:      m.game.State(),
		Current:    m.game.Current(),
		Board:      m.game.Board(),
		Candidates: m.game.Candidates(),
		Removable:  m.game.RemovableRings(),
		Pool:       m.game.Pool(),
		Scores:     m.game.Scores(),
		Moves:      m.Moves(),
	}
	if w, ok := m.game.Winner(); ok {
		v.Winner = &w
	}
	return v
}

type record struct {
	Game     *game.Game      `json:"game"`
	History  []game.Snapshot `json:"history"`
	Previous *game.Snapshot  `json:"previous,omitempty"`
}

// Export writes the live game together with its history.
func (m *Master) Export() ([]byte, error) {
	data, err := json.Marshal(record{Game: m.game, History: m.history, Previous: m.prev})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	return data, nil
}

// ExportPosition writes the live game only.
func (m *Master) ExportPosition() ([]byte, error) {
	data, err := json.Marshal(m.game)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	return data, nil
}

// Load reads a match written by Export.
func Load(data []byte) (*Master, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, loadError(err)
	}
	if rec.Game == nil {
		return nil, fmt.Errorf("%w: %w: missing game", ErrLoadFailed, game.ErrMalformed)
	}
	if len(rec.History) == 0 {
		return nil, fmt.Errorf("%w: %w: empty history", ErrLoadFailed, game.ErrMalformed)
	}

	kind := rec.Game.Board().Kind
	check := slices.Clone(rec.History)
	if rec.Previous != nil {
		check = append(check, *rec.Previous)
	}
	for i, s := range check {
		if s.Board.Kind != kind {
			return nil, fmt.Errorf("%w: %w: position %d is on a %d board", ErrLoadFailed, game.ErrMalformed, i, int(s.Board.Kind))
		}
		if err := s.Validate(rec.Game.Rules()); err != nil {
			return nil, fmt.Errorf("%w: position %d: %w", ErrLoadFailed, i, err)
		}
	}

	return &Master{game: rec.Game, history: rec.History, prev: rec.Previous}, nil
}

// LoadPosition reads a game written by ExportPosition. The loaded position starts a new history.
func LoadPosition(data []byte) (*Master, error) {
	var g game.Game
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, loadError(err)
	}
	return fromGame(&g), nil
}

func loadError(err error) error {
	if errors.Is(err, game.ErrMalformed) {
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return fmt.Errorf("%w: %w: %v", ErrLoadFailed, game.ErrMalformed, err)
}
