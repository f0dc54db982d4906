package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRestore(t *testing.T) {
	t.Run("restores the position and rebuilds connectivity", func(t *testing.T) {
		g := newGame(t, Kind37)
		start := g.Snapshot()
		require.NoError(t, g.Play(Advance()))
		require.NoError(t, g.Play(Place(White, Coord(3, 3), Coord(0, 0))))

		require.NoError(t, g.Restore(start))

		require.Equal(t, start, g.Snapshot())
		require.Equal(t, AwaitingCaptureCheck, g.State())
		require.False(t, g.components.Connected(Coord(0, 0), Sentinel), "Restored ring should be back on the board")
	})

	t.Run("winning tallies end the game", func(t *testing.T) {
		g := newGame(t, Kind37)
		s := g.Snapshot()
		s.Scores[PlayerOne].Black = 6
		s.Pool.Black = 4
		s.Current = PlayerTwo

		require.NoError(t, g.Restore(s))

		winner, ended := g.Winner()
		require.True(t, ended)
		require.Equal(t, PlayerOne, winner)
	})

	t.Run("rejects positions that break conservation", func(t *testing.T) {
		g := newGame(t, Kind37)
		s := g.Snapshot()
		s.Pool.White = 7

		require.ErrorIs(t, g.Restore(s), ErrMalformed)
		require.Equal(t, 6, g.Pool().White, "Failed restore should leave the game alone")
	})

	t.Run("rejects a tie as the player to move", func(t *testing.T) {
		g := newGame(t, Kind37)
		s := g.Snapshot()
		s.Current = Tie

		require.ErrorIs(t, g.Restore(s), ErrMalformed)
	})
}

func TestGameJSON(t *testing.T) {
	t.Run("round trip keeps the pending capture", func(t *testing.T) {
		g, err := New(Kind40, NewBlitzRules())
		require.NoError(t, err)
		preset(g, Coord(3, 3), White)
		preset(g, Coord(3, 4), Black)
		require.NoError(t, g.Play(Advance()))

		data, err := json.Marshal(g)
		require.NoError(t, err)

		var decoded Game
		require.NoError(t, json.Unmarshal(data, &decoded))

		require.Equal(t, g.Snapshot(), decoded.Snapshot())
		require.Equal(t, AwaitingCapture, decoded.State())
		require.Equal(t, g.Candidates(), decoded.Candidates())
		require.Equal(t, "blitz", decoded.Rules().Name())
		require.True(t, decoded.components.Connected(Coord(3, 3), Coord(3, 4)))

		require.NoError(t, decoded.Play(Capture(decoded.Candidates()[0])))
	})

	t.Run("ended games keep their result", func(t *testing.T) {
		g := newGame(t, Kind37)
		award(g, PlayerOne, Gray, 4)
		preset(g, Coord(0, 0), White)
		preset(g, Coord(0, 1), Gray)
		require.NoError(t, g.Play(Advance()))
		require.NoError(t, g.Play(Capture(g.Candidates()[0])))

		data, err := json.Marshal(g)
		require.NoError(t, err)
		require.Contains(t, string(data), `"winner":"one"`)

		var decoded Game
		require.NoError(t, json.Unmarshal(data, &decoded))
		winner, ended := decoded.Winner()
		require.True(t, ended)
		require.Equal(t, PlayerOne, winner)
	})

	t.Run("rejects captures that are not on the board", func(t *testing.T) {
		g := newGame(t, Kind37)
		preset(g, Coord(3, 3), White)
		preset(g, Coord(3, 4), Black)
		require.NoError(t, g.Play(Advance()))
		g.candidates = []CatchableMove{{Origin: Coord(0, 0), Captured: Coord(0, 1), Landing: Coord(0, 2)}}

		data, err := json.Marshal(g)
		require.NoError(t, err)

		var decoded Game
		require.ErrorIs(t, json.Unmarshal(data, &decoded), ErrMalformed)
	})

	t.Run("rejects unknown rules", func(t *testing.T) {
		g := newGame(t, Kind37)
		data, err := json.Marshal(g)
		require.NoError(t, err)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(data, &raw))
		raw["rules"] = "speed"
		data, err = json.Marshal(raw)
		require.NoError(t, err)

		var decoded Game
		require.ErrorIs(t, json.Unmarshal(data, &decoded), ErrMalformed)
	})
}
