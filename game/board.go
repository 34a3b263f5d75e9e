package game

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
	"math/bits"
	"strings"
)

// ErrIllegalMove reports a move inconsistent with the board's rules.
// Moves produced by LegalMoves never trigger it; seeing it on a
// generated move indicates an engine bug.
var ErrIllegalMove = errors.New("illegal move")

// Board is a complete snapshot of a Freckers position. It is a value
// type: Play returns a new Board and never mutates the receiver, so a
// state under search and the state held by an agent never alias.
type Board struct {
	Pads uint64 // cells carrying a lily pad (frogs sit on pads)
	Red  uint64 // cells occupied by red frogs
	Blue uint64 // cells occupied by blue frogs
	Turn Player
	Ply  int
}

// NewBoard returns the standard starting position: six frogs per side on
// the back rows, pads beneath them, on the four corners, and across the
// two rows in front of the frogs.
func NewBoard() Board {
	var b Board
	for c := 1; c <= 6; c++ {
		b.Red |= Sq(0, c).Bit()
		b.Blue |= Sq(BoardN-1, c).Bit()
		b.Pads |= Sq(1, c).Bit() | Sq(BoardN-2, c).Bit()
	}
	b.Pads |= b.Red | b.Blue
	b.Pads |= Sq(0, 0).Bit() | Sq(0, BoardN-1).Bit()
	b.Pads |= Sq(BoardN-1, 0).Bit() | Sq(BoardN-1, BoardN-1).Bit()
	b.Turn = Red
	return b
}

func (b Board) SideToMove() Player { return b.Turn }

// Frogs returns the bitboard of p's frogs.
func (b Board) Frogs(p Player) uint64 {
	if p == Red {
		return b.Red
	}
	return b.Blue
}

// Occupied returns the bitboard of all frogs.
func (b Board) Occupied() uint64 { return b.Red | b.Blue }

func rankMask(row int) uint64 {
	return 0xFF << (row * BoardN)
}

// GoalCount is the number of p's frogs already on p's goal row.
func (b Board) GoalCount(p Player) int {
	return bits.OnesCount64(b.Frogs(p) & rankMask(p.GoalRow()))
}

// Outcome classifies the position. A side wins the moment all of its
// frogs stand on its goal row. At the ply limit the side with more
// frogs on its goal row wins, otherwise the game is drawn.
func (b Board) Outcome() Result {
	if b.Red != 0 && b.Red&^rankMask(Red.GoalRow()) == 0 {
		return RedWin
	}
	if b.Blue != 0 && b.Blue&^rankMask(Blue.GoalRow()) == 0 {
		return BlueWin
	}
	if b.Ply >= MaxPly {
		red, blue := b.GoalCount(Red), b.GoalCount(Blue)
		switch {
		case red > blue:
			return RedWin
		case blue > red:
			return BlueWin
		default:
			return Draw
		}
	}
	return Ongoing
}

func (b Board) Terminal() bool { return b.Outcome() != Ongoing }

// Destination resolves where a move action lands the frog on this
// board, without applying it. Returns ErrIllegalMove for GROW or for a
// path the rules reject.
func (b Board) Destination(m Move) (Square, error) {
	if m.Grow {
		return 0, fmt.Errorf("%w: GROW has no destination", ErrIllegalMove)
	}
	return b.resolvePath(m, b.Turn)
}

// resolvePath walks a move path and returns the landing square. A
// one-hop path resolves as a step onto an adjacent empty pad or as a
// single jump; multi-hop paths must be jumps the whole way, never
// revisiting a landing cell.
func (b Board) resolvePath(m Move, p Player) (Square, error) {
	if m.Hops == 0 || m.Hops > MaxHops {
		return 0, fmt.Errorf("%w: path of %d hops", ErrIllegalMove, m.Hops)
	}
	if b.Frogs(p)&m.From.Bit() == 0 {
		return 0, fmt.Errorf("%w: no %s frog at %s", ErrIllegalMove, p, m.From)
	}
	occ := b.Occupied()
	cur := m.From
	visited := m.From.Bit()
	for i := uint8(0); i < m.Hops; i++ {
		d := m.Path[i]
		if !directionLegal(p, d) {
			return 0, fmt.Errorf("%w: %s cannot move %s", ErrIllegalMove, p, d)
		}
		next, ok := cur.shift(d)
		if !ok {
			return 0, fmt.Errorf("%w: %s off the board from %s", ErrIllegalMove, d, cur)
		}
		if occ&next.Bit() != 0 {
			// Jump over the adjacent frog.
			land, ok := next.shift(d)
			if !ok {
				return 0, fmt.Errorf("%w: jump %s lands off the board", ErrIllegalMove, d)
			}
			if occ&land.Bit() != 0 || b.Pads&land.Bit() == 0 {
				return 0, fmt.Errorf("%w: no free pad at %s", ErrIllegalMove, land)
			}
			if visited&land.Bit() != 0 {
				return 0, fmt.Errorf("%w: jump chain revisits %s", ErrIllegalMove, land)
			}
			cur = land
		} else {
			// Plain step, only ever a whole move by itself.
			if m.Hops != 1 {
				return 0, fmt.Errorf("%w: step inside a jump chain", ErrIllegalMove)
			}
			if b.Pads&next.Bit() == 0 {
				return 0, fmt.Errorf("%w: no pad at %s", ErrIllegalMove, next)
			}
			cur = next
		}
		visited |= cur.Bit()
	}
	return cur, nil
}

// IsJump reports whether m is a jump action on this board: its first
// hop passes over an occupied cell instead of stepping beside it.
// Multi-hop paths are always jump chains.
func (b Board) IsJump(m Move) bool {
	if m.Grow || m.Hops == 0 {
		return false
	}
	if m.Hops > 1 {
		return true
	}
	over, ok := m.From.shift(m.Path[0])
	return ok && b.Occupied()&over.Bit() != 0
}

// growMask returns the cells that sprout pads when p grows: every empty
// cell in the 8-neighbourhood of any of p's frogs.
func (b Board) growMask(p Player) uint64 {
	return neighbours(b.Frogs(p)) &^ b.Occupied()
}

const (
	fileA = 0x0101010101010101
	fileH = 0x8080808080808080
)

func neighbours(bb uint64) uint64 {
	horiz := bb | (bb&^fileA)>>1 | (bb&^fileH)<<1
	return (horiz | horiz<<BoardN | horiz>>BoardN) &^ bb
}

// Play validates m for the side to move and returns the successor
// board. The validation is defensive: generated moves always pass.
func (b Board) Play(m Move) (Board, error) {
	if b.Terminal() {
		return b, fmt.Errorf("%w: game is over (%s)", ErrIllegalMove, b.Outcome())
	}
	next := b
	if m.Grow {
		next.Pads |= b.growMask(b.Turn)
	} else {
		to, err := b.resolvePath(m, b.Turn)
		if err != nil {
			return b, err
		}
		// The pad sinks when the frog leaves it.
		next.Pads &^= m.From.Bit()
		if b.Turn == Red {
			next.Red = b.Red&^m.From.Bit() | to.Bit()
		} else {
			next.Blue = b.Blue&^m.From.Bit() | to.Bit()
		}
	}
	next.Turn = b.Turn.Opponent()
	next.Ply = b.Ply + 1
	return next, nil
}

// Hash returns an FNV-1a digest of the position, suitable for
// transposition keying. The ply counter is hashed too: the turn limit
// makes the value of a layout depend on how many plies are left, so
// only same-ply transpositions may share table entries.
func (b Board) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, v := range [...]uint64{b.Pads, b.Red, b.Blue, uint64(b.Turn), uint64(b.Ply)} {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	return h.Sum64()
}

// String renders the board with R/B for frogs, * for free pads and .
// for water.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < BoardN; r++ {
		for c := 0; c < BoardN; c++ {
			bit := Sq(r, c).Bit()
			switch {
			case b.Red&bit != 0:
				sb.WriteByte('R')
			case b.Blue&bit != 0:
				sb.WriteByte('B')
			case b.Pads&bit != 0:
				sb.WriteByte('*')
			default:
				sb.WriteByte('.')
			}
			if c < BoardN-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
