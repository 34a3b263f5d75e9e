package game

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	require.Equal(t, Red, b.SideToMove(), "red opens")
	require.Equal(t, 0, b.Ply)
	require.Equal(t, FrogsPerSide, bits.OnesCount64(b.Red))
	require.Equal(t, FrogsPerSide, bits.OnesCount64(b.Blue))
	require.Zero(t, b.Red&b.Blue, "a cell holds at most one frog")
	require.Equal(t, b.Red|b.Blue, (b.Red|b.Blue)&b.Pads, "every frog sits on a pad")
	require.Equal(t, Ongoing, b.Outcome())

	for c := 1; c <= 6; c++ {
		require.NotZero(t, b.Red&Sq(0, c).Bit(), "red frog at (0,%d)", c)
		require.NotZero(t, b.Blue&Sq(7, c).Bit(), "blue frog at (7,%d)", c)
		require.NotZero(t, b.Pads&Sq(1, c).Bit(), "pad at (1,%d)", c)
		require.NotZero(t, b.Pads&Sq(6, c).Bit(), "pad at (6,%d)", c)
	}
	for _, sq := range []Square{Sq(0, 0), Sq(0, 7), Sq(7, 0), Sq(7, 7)} {
		require.NotZero(t, b.Pads&sq.Bit(), "corner pad at %s", sq)
	}
}

func TestPlayStep(t *testing.T) {
	b := NewBoard()
	m := NewMove(Sq(0, 3), Down)

	next, err := b.Play(m)
	require.NoError(t, err)

	require.Zero(t, next.Red&Sq(0, 3).Bit(), "frog left the source")
	require.NotZero(t, next.Red&Sq(1, 3).Bit(), "frog landed on the pad")
	require.Zero(t, next.Pads&Sq(0, 3).Bit(), "source pad sinks")
	require.NotZero(t, next.Pads&Sq(1, 3).Bit(), "destination pad stays")
	require.Equal(t, Blue, next.SideToMove())
	require.Equal(t, 1, next.Ply)

	// The receiver is untouched.
	require.Equal(t, NewBoard(), b)
}

func TestPlayGrow(t *testing.T) {
	b := NewBoard()

	next, err := b.Play(GrowMove())
	require.NoError(t, err)

	// Red frogs occupy (0,1)..(0,6): their empty neighbourhood gains
	// pads, in particular the previously bare (0,0) stays padded and
	// (1,0) and (1,7) sprout.
	require.NotZero(t, next.Pads&Sq(1, 0).Bit())
	require.NotZero(t, next.Pads&Sq(1, 7).Bit())
	require.Equal(t, b.Red, next.Red, "grow moves no frogs")
	require.Equal(t, b.Blue, next.Blue)
	require.Equal(t, Blue, next.SideToMove())

	// Occupied cells never gain anything; frog cells are unchanged.
	require.Zero(t, (next.Pads^b.Pads)&next.Occupied())
}

func TestPlayIllegal(t *testing.T) {
	b := NewBoard()

	cases := []struct {
		name string
		move Move
	}{
		{"no frog at source", NewMove(Sq(4, 4), Down)},
		{"backwards direction", NewMove(Sq(0, 3), Up)},
		{"destination has no pad", NewMove(Sq(0, 3), Right)}, // (0,4) is a frog, jump to (0,5) also a frog
		{"empty path", Move{From: Sq(0, 3)}},
		{"step onto bare water", NewMove(Sq(0, 1), Left)},
	}
	// (0,1) moving Left: (0,0) holds a pad, so use a board without it.
	noCorner := b
	noCorner.Pads &^= Sq(0, 0).Bit()

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			board := b
			if tc.name == "step onto bare water" {
				board = noCorner
			}
			_, err := board.Play(tc.move)
			require.ErrorIs(t, err, ErrIllegalMove)
		})
	}
}

func TestPlayJumpChain(t *testing.T) {
	// Red frog at (2,2); frogs to hop over at (3,2) and (5,2); pads at
	// the landings (4,2) and (6,2).
	b := Board{Turn: Red}
	b.Red = Sq(2, 2).Bit() | Sq(3, 2).Bit()
	b.Blue = Sq(5, 2).Bit() | Sq(7, 0).Bit()
	b.Pads = b.Red | b.Blue | Sq(4, 2).Bit() | Sq(6, 2).Bit()

	next, err := b.Play(NewMove(Sq(2, 2), Down, Down))
	require.NoError(t, err)
	require.NotZero(t, next.Red&Sq(6, 2).Bit(), "frog landed at the end of the chain")
	require.Zero(t, next.Pads&Sq(2, 2).Bit(), "origin pad sinks")
	require.NotZero(t, next.Pads&Sq(4, 2).Bit(), "intermediate landing pad is not consumed")
	require.NotZero(t, next.Red&Sq(3, 2).Bit(), "jumped frogs stay put")
	require.NotZero(t, next.Blue&Sq(5, 2).Bit(), "jumped frogs stay put")
}

func TestIsJump(t *testing.T) {
	b := Board{Turn: Red}
	b.Red = Sq(2, 2).Bit() | Sq(3, 2).Bit()
	b.Blue = Sq(7, 0).Bit()
	b.Pads = b.Red | b.Blue | Sq(4, 2).Bit() | Sq(2, 3).Bit()

	require.True(t, b.IsJump(NewMove(Sq(2, 2), Down)), "hop over the frog at (3,2)")
	require.False(t, b.IsJump(NewMove(Sq(2, 2), Right)), "(2,3) is empty, so this is a step")
	require.False(t, b.IsJump(GrowMove()))
	require.True(t, b.IsJump(NewMove(Sq(2, 2), Down, Down)), "multi-hop paths are always chains")
}

func TestOutcome(t *testing.T) {
	t.Run("all frogs home wins", func(t *testing.T) {
		var b Board
		for c := 1; c <= 6; c++ {
			b.Red |= Sq(7, c).Bit()
			b.Blue |= Sq(6, c).Bit()
		}
		b.Pads = b.Red | b.Blue
		require.Equal(t, RedWin, b.Outcome())
		require.True(t, b.Terminal())

		_, err := b.Play(GrowMove())
		require.ErrorIs(t, err, ErrIllegalMove, "no moves on a finished game")
	})

	t.Run("ply limit counts goal rows", func(t *testing.T) {
		b := NewBoard()
		b.Ply = MaxPly
		require.Equal(t, Draw, b.Outcome(), "nobody home yet")

		b.Red &^= Sq(0, 1).Bit()
		b.Red |= Sq(7, 0).Bit()
		b.Pads |= Sq(7, 0).Bit()
		require.Equal(t, RedWin, b.Outcome(), "one red frog home breaks the tie")
	})

	t.Run("game keeps going before the limit", func(t *testing.T) {
		b := NewBoard()
		b.Ply = MaxPly - 1
		require.Equal(t, Ongoing, b.Outcome())
	})
}

func TestHash(t *testing.T) {
	b := NewBoard()
	require.Equal(t, b.Hash(), NewBoard().Hash(), "hash is a pure function of position")

	stepped, err := b.Play(NewMove(Sq(0, 3), Down))
	require.NoError(t, err)
	require.NotEqual(t, b.Hash(), stepped.Hash())

	flipped := b
	flipped.Turn = Blue
	require.NotEqual(t, b.Hash(), flipped.Hash(), "side to move is part of the position")

	samePosition := stepped
	samePosition.Ply = 99
	require.NotEqual(t, stepped.Hash(), samePosition.Hash(),
		"the turn limit makes the same layout at another ply a different position")
}
