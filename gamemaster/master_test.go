package gamemaster

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"zertz/game"
)

func newMaster(t *testing.T) *Master {
	t.Helper()
	m, err := New(game.Kind37, game.NewStandardRules())
	require.NoError(t, err)
	return m
}

// playOpening advances and places twice, leaving a capture for player one.
func playOpening(t *testing.T, m *Master) {
	t.Helper()
	require.NoError(t, m.Play(game.Advance()))
	require.NoError(t, m.Play(game.Place(game.White, game.Coord(0, 0), game.Coord(2, 0))))
	require.NoError(t, m.Play(game.Advance()))
	require.NoError(t, m.Play(game.Place(game.Gray, game.Coord(0, 1), game.Coord(6, 6))))
	require.NoError(t, m.Play(game.Advance()))
}

func TestPlayRecordsHistory(t *testing.T) {
	m := newMaster(t)

	playOpening(t, m)

	require.Equal(t, 2, m.Moves(), "Capture checks should not be recorded")
	history := m.History()
	require.Len(t, history, 3)
	require.Equal(t, game.NewBoard(game.Kind37), history[0].Board)
	require.Equal(t, m.Game().Snapshot(), history[2])

	err := m.Play(game.Advance())
	require.ErrorIs(t, err, game.ErrInvalidRequest)
	require.Equal(t, 2, m.Moves(), "Rejected requests should not be recorded")
}

func TestRewind(t *testing.T) {
	t.Run("repeated rewinds stay on the same position", func(t *testing.T) {
		m := newMaster(t)
		playOpening(t, m)
		afterFirst := m.History()[1]

		require.NoError(t, m.Rewind())
		require.Equal(t, afterFirst, m.Game().Snapshot())
		require.Equal(t, game.AwaitingCaptureCheck, m.Game().State())

		require.NoError(t, m.Play(game.Advance()))
		require.NoError(t, m.Rewind())
		require.NoError(t, m.Rewind())

		require.Equal(t, afterFirst, m.Game().Snapshot())
		require.Equal(t, 1, m.Moves())
	})

	t.Run("a new move allows rewinding again", func(t *testing.T) {
		m := newMaster(t)
		playOpening(t, m)
		require.NoError(t, m.Rewind())
		require.NoError(t, m.Play(game.Advance()))
		require.NoError(t, m.Play(game.Place(game.Black, game.Coord(3, 3), game.Coord(6, 6))))

		require.NoError(t, m.Rewind())

		require.Equal(t, m.History()[1], m.Game().Snapshot())
		require.Equal(t, 1, m.Moves())
	})

	t.Run("nothing to undo at the start", func(t *testing.T) {
		m := newMaster(t)
		require.NoError(t, m.Play(game.Advance()))

		require.NoError(t, m.Rewind())

		require.Equal(t, 0, m.Moves())
		require.Equal(t, game.AwaitingCaptureCheck, m.Game().State())
	})
}

func TestForceRewind(t *testing.T) {
	m := newMaster(t)
	playOpening(t, m)
	start := m.History()[0]

	require.NoError(t, m.ForceRewind())
	require.Equal(t, 1, m.Moves())
	require.NoError(t, m.ForceRewind())
	require.Equal(t, 0, m.Moves())
	require.Equal(t, start, m.Game().Snapshot())

	require.NoError(t, m.ForceRewind())
	require.Equal(t, start, m.Game().Snapshot(), "Force rewind should stop at the start")

	require.NoError(t, m.Rewind())
	require.Equal(t, start, m.Game().Snapshot())
}

func TestRewindCapture(t *testing.T) {
	m := newMaster(t)
	playOpening(t, m)
	before := m.Game().Snapshot()
	require.NoError(t, m.Play(game.Capture(m.Game().Candidates()[0])))

	require.NoError(t, m.Rewind())

	require.Equal(t, before, m.Game().Snapshot())
	require.NoError(t, m.Play(game.Advance()))
	require.Equal(t, game.AwaitingCapture, m.Game().State(), "The capture should be offered again")
}

func TestView(t *testing.T) {
	m := newMaster(t)
	playOpening(t, m)

	v := m.View()

	require.Equal(t, game.AwaitingCapture, v.State)
	require.Equal(t, game.PlayerOne, v.Current)
	require.Nil(t, v.Winner)
	require.Len(t, v.Candidates, 1)
	require.Equal(t, 2, v.Moves)
	require.Equal(t, "standard", v.Rules)

	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.Contains(t, string(data), `"state":"capture"`)
	require.Contains(t, string(data), `"current":"one"`)
}

func TestExport(t *testing.T) {
	t.Run("full match keeps history and rewind slot", func(t *testing.T) {
		m := newMaster(t)
		playOpening(t, m)
		require.NoError(t, m.Rewind())

		data, err := m.Export()
		require.NoError(t, err)
		loaded, err := Load(data)
		require.NoError(t, err)

		require.Equal(t, m.History(), loaded.History())
		require.Equal(t, m.View(), loaded.View())

		require.NoError(t, loaded.Rewind())
		require.Equal(t, 1, loaded.Moves(), "Loaded rewind slot should keep the position")
	})

	t.Run("position only starts a new history", func(t *testing.T) {
		m := newMaster(t)
		playOpening(t, m)

		data, err := m.ExportPosition()
		require.NoError(t, err)
		loaded, err := LoadPosition(data)
		require.NoError(t, err)

		require.Equal(t, 0, loaded.Moves())
		require.Equal(t, m.View().Board, loaded.View().Board)
		require.Equal(t, game.AwaitingCapture, loaded.Game().State())
		require.NoError(t, loaded.Play(game.Capture(loaded.Game().Candidates()[0])))
	})
}

func TestLoadMalformed(t *testing.T) {
	m := newMaster(t)
	playOpening(t, m)
	good, err := m.Export()
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(good, &raw))
	withHistory := func(history string) []byte {
		copied := map[string]json.RawMessage{}
		for k, v := range raw {
			copied[k] = v
		}
		copied["history"] = json.RawMessage(history)
		data, err := json.Marshal(copied)
		require.NoError(t, err)
		return data
	}

	cases := map[string][]byte{
		"not json":      []byte("{"),
		"missing game":  []byte(`{"history":[]}`),
		"empty history": withHistory(`[]`),
		"bad snapshot":  withHistory(`[{"board":{"kind":37,"rows":[]}}]`),
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(data)
			require.ErrorIs(t, err, ErrLoadFailed)
			require.ErrorIs(t, err, game.ErrMalformed)
		})
	}

	t.Run("position", func(t *testing.T) {
		_, err := LoadPosition([]byte(`{"rules":"standard","board":{"kind":37}}`))
		require.ErrorIs(t, err, ErrLoadFailed)
		require.ErrorIs(t, err, game.ErrMalformed)
	})
}
