package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"zertz/communication"
	"zertz/game"
	"zertz/gamemaster"
	"zertz/meta"
)

// ErrSourceExhausted is returned by a MoveSource that has no more moves to offer.
var ErrSourceExhausted = errors.New("engine: move source exhausted")

// MoveSource decides the next placement or capture for the player to move.
type MoveSource interface {
	NextMove(ctx context.Context, view gamemaster.View) (game.Request, error)
}

// SourceFunc adapts a function to MoveSource.
type SourceFunc func(ctx context.Context, view gamemaster.View) (game.Request, error)

func (f SourceFunc) NextMove(ctx context.Context, view gamemaster.View) (game.Request, error) {
	return f(ctx, view)
}

type Option func(e *Engine)

type Engine struct {
	comm        communication.Communicator
	source      MoveSource
	maxTurns    int
	moveTimeout time.Duration
}

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithMoveTimeout bounds how long the source may take to pick each move.
func WithMoveTimeout(timeout time.Duration) Option {
	return func(e *Engine) {
		if timeout > 0 {
			e.moveTimeout = timeout
		}
	}
}

func New(comm communication.Communicator, source MoveSource, options ...Option) *Engine {
	e := &Engine{
		comm:     comm,
		source:   source,
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Result describes where a run stopped.
type Result struct {
	Winner   game.Player
	Finished bool // the game reached its end
	Turns    int  // placements and captures submitted
	View     gamemaster.View
}

// Run drives the match until it ends, the source runs out of moves or the turn cap is reached.
// Capture checks are answered automatically and do not count as turns.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	var res Result
	for {
		view, err := e.comm.View(ctx)
		if err != nil {
			return res, err
		}
		res.View = view

		switch {
		case view.State == game.Ended:
			res.Finished = true
			res.Winner = *view.Winner
			log.Info().Msgf("match finished after %d turns, result: %v", res.Turns, res.Winner)
			return res, nil
		case view.State == game.AwaitingCaptureCheck:
			if err := e.comm.Play(ctx, game.Advance()); err != nil {
				return res, fmt.Errorf("cannot check for captures: %w", err)
			}
			continue
		case res.Turns >= e.maxTurns:
			log.Warn().Msgf("stopping after %d turns without a result", res.Turns)
			return res, nil
		}

		req, err := e.nextMove(ctx, view)
		if errors.Is(err, ErrSourceExhausted) {
			log.Info().Msgf("move source exhausted after %d turns", res.Turns)
			return res, nil
		}
		if err != nil {
			return res, fmt.Errorf("turn %d: %w", res.Turns+1, err)
		}

		if err := e.comm.Play(ctx, req); err != nil {
			return res, fmt.Errorf("turn %d: player %v cannot play %v: %w", res.Turns+1, view.Current, req, err)
		}
		res.Turns++
	}
}

func (e *Engine) nextMove(ctx context.Context, view gamemaster.View) (game.Request, error) {
	if e.moveTimeout <= 0 {
		return e.source.NextMove(ctx, view)
	}
	ctx, cancel := context.WithTimeout(ctx, e.moveTimeout)
	defer cancel()
	return e.source.NextMove(ctx, view)
}
