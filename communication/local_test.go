package communication

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"zertz/game"
	"zertz/gamemaster"
)

func newLocal(t *testing.T) *Local {
	t.Helper()
	m, err := gamemaster.New(game.Kind37, nil)
	require.NoError(t, err)
	l := NewLocal(m)
	t.Cleanup(func() { l.Close() })
	return l
}

func TestLocalPlay(t *testing.T) {
	ctx := context.Background()
	l := newLocal(t)

	require.NoError(t, l.Play(ctx, game.Advance()))
	require.NoError(t, l.Play(ctx, game.Place(game.White, game.Coord(3, 3), game.Coord(0, 0))))

	v, err := l.View(ctx)
	require.NoError(t, err)
	require.Equal(t, game.PlayerTwo, v.Current)
	require.Equal(t, 1, v.Moves)

	err = l.Play(ctx, game.Place(game.White, game.Coord(3, 3), game.Coord(1, 0)))
	require.ErrorIs(t, err, game.ErrInvalidRequest, "Errors should come back to the caller")

	require.NoError(t, l.ForceRewind(ctx))
	v, err = l.View(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, v.Moves)

	require.NoError(t, l.Rewind(ctx))
	data, err := l.Export(ctx)
	require.NoError(t, err)
	_, err = gamemaster.Load(data)
	require.NoError(t, err)
}

func TestLocalConcurrentViews(t *testing.T) {
	ctx := context.Background()
	l := newLocal(t)
	require.NoError(t, l.Play(ctx, game.Advance()))

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := l.View(ctx)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}

func TestLocalClose(t *testing.T) {
	l := newLocal(t)

	require.NoError(t, l.Close())
	require.NoError(t, l.Close(), "Close should be idempotent")

	err := l.Play(context.Background(), game.Advance())
	require.ErrorIs(t, err, ErrClosed)
}

func TestLocalCancelAfterAccept(t *testing.T) {
	l := newLocal(t)
	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})
	release := make(chan struct{})
	go func() {
		<-started
		cancel()
		close(release)
	}()

	_, err := do(ctx, l, func(m *gamemaster.Master) (struct{}, error) {
		close(started)
		<-release
		return struct{}{}, m.Play(game.Advance())
	})

	require.NoError(t, err, "An accepted job should report its own outcome")
	v, err := l.View(context.Background())
	require.NoError(t, err)
	require.Equal(t, game.AwaitingPlacement, v.State)
}

func TestLocalContext(t *testing.T) {
	l := newLocal(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	<-ctx.Done()

	_, err := l.View(ctx)

	require.ErrorIs(t, err, context.DeadlineExceeded)
}
