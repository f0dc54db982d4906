package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

type memory struct {
	mu      sync.RWMutex
	matches map[uuid.UUID]Match
}

// NewMemoryStore keeps matches in process memory. Everything is lost on exit.
func NewMemoryStore() Store {
	return &memory{matches: make(map[uuid.UUID]Match)}
}

func (s *memory) Save(ctx context.Context, m Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	m.CreatedAt = now
	if old, ok := s.matches[m.ID]; ok {
		m.CreatedAt = old.CreatedAt
	}
	m.UpdatedAt = now
	m.Data = append([]byte(nil), m.Data...)
	s.matches[m.ID] = m
	return nil
}

func (s *memory) Get(ctx context.Context, id uuid.UUID) (Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.matches[id]
	if !ok {
		return Match{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	m.Data = append([]byte(nil), m.Data...)
	return m, nil
}

func (s *memory) List(ctx context.Context) ([]Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Match, 0, len(s.matches))
	for _, m := range s.matches {
		m.Data = append([]byte(nil), m.Data...)
		out = append(out, m)
	}
	slices.SortFunc(out, func(a, b Match) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	return out, nil
}
