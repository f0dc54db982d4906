package communication

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"zertz/game"
	"zertz/gamemaster"
)

var ErrClosed = errors.New("communication: match is closed")

type job func(m *gamemaster.Master)

// Local serves a match from a single owner goroutine. Callers never touch the
// Master directly; they send closures that the owner runs one at a time.
type Local struct {
	jobs chan job
	done chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

func NewLocal(m *gamemaster.Master) *Local {
	l := &Local{
		jobs: make(chan job),
		done: make(chan struct{}),
	}
	l.wg.Add(1)
	go l.serve(m)
	return l
}

func (l *Local) serve(m *gamemaster.Master) {
	defer l.wg.Done()
	for {
		select {
		case j := <-l.jobs:
			j(m)
		case <-l.done:
			log.Debug().Msg("local match closed")
			return
		}
	}
}

// do runs f on the owner goroutine and waits for it to finish.
func do[T any](ctx context.Context, l *Local, f func(m *gamemaster.Master) (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	type result struct {
		value T
		err   error
	}
	out := make(chan result, 1)
	j := func(m *gamemaster.Master) {
		v, err := f(m)
		out <- result{v, err}
	}

	select {
	case l.jobs <- j:
	case <-l.done:
		return zero, ErrClosed
	case <-ctx.Done():
		return zero, ctx.Err()
	}

	// The owner has the job; it runs to completion, so report its real outcome.
	r := <-out
	return r.value, r.err
}

func (l *Local) Play(ctx context.Context, req game.Request) error {
	_, err := do(ctx, l, func(m *gamemaster.Master) (struct{}, error) {
		return struct{}{}, m.Play(req)
	})
	return err
}

func (l *Local) View(ctx context.Context) (gamemaster.View, error) {
	return do(ctx, l, func(m *gamemaster.Master) (gamemaster.View, error) {
		return m.View(), nil
	})
}

func (l *Local) Rewind(ctx context.Context) error {
	_, err := do(ctx, l, func(m *gamemaster.Master) (struct{}, error) {
		return struct{}{}, m.Rewind()
	})
	return err
}

func (l *Local) ForceRewind(ctx context.Context) error {
	_, err := do(ctx, l, func(m *gamemaster.Master) (struct{}, error) {
		return struct{}{}, m.ForceRewind()
	})
	return err
}

func (l *Local) Export(ctx context.Context) ([]byte, error) {
	return do(ctx, l, func(m *gamemaster.Master) ([]byte, error) {
		return m.Export()
	})
}

// Close stops the owner goroutine after the job in progress, if any, finishes.
func (l *Local) Close() error {
	l.once.Do(func() { close(l.done) })
	l.wg.Wait()
	return nil
}
