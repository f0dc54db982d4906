package communication

import (
	"context"

	"zertz/game"
	"zertz/gamemaster"
)

// Communicator abstracts how a client reaches a running match.
type Communicator interface {
	Play(ctx context.Context, req game.Request) error
	View(ctx context.Context) (gamemaster.View, error)
	Rewind(ctx context.Context) error
	ForceRewind(ctx context.Context) error
	Export(ctx context.Context) ([]byte, error)
	Close() error
}
