package agent

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jnakos01/freckers2/game"
)

func testProfile() Profile {
	p := Blitz()
	p.MaxDepth = 2
	p.Budget = 50 * time.Millisecond
	return p
}

func TestAgentMirrorsOwnMoves(t *testing.T) {
	red, err := New(game.Red, testProfile())
	require.NoError(t, err)

	move, _, err := red.ChooseMove(context.Background(), 0)
	require.NoError(t, err)

	want, err := game.NewBoard().Play(move)
	require.NoError(t, err)
	require.Equal(t, want, red.Board(), "the mirror advanced by the chosen move")
	require.Equal(t, game.Blue, red.Board().SideToMove())
}

func TestAgentAppliesOpponentMoves(t *testing.T) {
	blue, err := New(game.Blue, testProfile())
	require.NoError(t, err)

	opening := game.NewMove(game.Sq(0, 3), game.Down)
	require.NoError(t, blue.OnOpponentMove(opening))

	want, err := game.NewBoard().Play(opening)
	require.NoError(t, err)
	require.Equal(t, want, blue.Board())

	// Now it is blue's turn and it can answer.
	move, _, err := blue.ChooseMove(context.Background(), 0)
	require.NoError(t, err)
	require.Contains(t, want.LegalMoves(game.Blue), move)
}

func TestAgentDesync(t *testing.T) {
	t.Run("illegal opponent move", func(t *testing.T) {
		blue, err := New(game.Blue, testProfile())
		require.NoError(t, err)

		err = blue.OnOpponentMove(game.NewMove(game.Sq(4, 4), game.Down))
		require.ErrorIs(t, err, ErrDesync)
	})

	t.Run("opponent move on own turn", func(t *testing.T) {
		red, err := New(game.Red, testProfile())
		require.NoError(t, err)

		err = red.OnOpponentMove(game.GrowMove())
		require.ErrorIs(t, err, ErrDesync)
	})

	t.Run("choose move out of turn", func(t *testing.T) {
		blue, err := New(game.Blue, testProfile())
		require.NoError(t, err)

		_, _, err = blue.ChooseMove(context.Background(), 0)
		require.ErrorIs(t, err, ErrDesync)
	})
}

func TestAgentSurvivesTinyBudget(t *testing.T) {
	red, err := New(game.Red, testProfile())
	require.NoError(t, err)

	// Budget exhaustion is diagnostic, never an error to the caller.
	move, _, err := red.ChooseMove(context.Background(), time.Nanosecond)
	require.NoError(t, err)
	require.Contains(t, game.NewBoard().LegalMoves(game.Red), move)
}

func TestNewRejectsBadProfile(t *testing.T) {
	bad := testProfile()
	bad.MaxDepth = 0
	_, err := New(game.Red, bad)
	require.Error(t, err)
}
