package game

import (
	"fmt"
	"strings"
)

// Square indexes a board cell as row*BoardN+col, row 0 at the top.
type Square uint8

func Sq(row, col int) Square {
	return Square(row*BoardN + col)
}

func (s Square) Row() int { return int(s) / BoardN }
func (s Square) Col() int { return int(s) % BoardN }

func (s Square) Bit() uint64 { return 1 << s }

// shift returns the square one cell away in the given direction, and
// false when that would leave the board.
func (s Square) shift(d Direction) (Square, bool) {
	r := s.Row() + d.dr()
	c := s.Col() + d.dc()
	if r < 0 || r >= BoardN || c < 0 || c >= BoardN {
		return 0, false
	}
	return Sq(r, c), true
}

func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.Row(), s.Col())
}

type Direction uint8

const (
	Down Direction = iota
	DownLeft
	DownRight
	Up
	UpLeft
	UpRight
	Left
	Right
	numDirections
)

var dirOffsets = [numDirections][2]int{
	Down:      {1, 0},
	DownLeft:  {1, -1},
	DownRight: {1, 1},
	Up:        {-1, 0},
	UpLeft:    {-1, -1},
	UpRight:   {-1, 1},
	Left:      {0, -1},
	Right:     {0, 1},
}

var dirNames = [numDirections]string{
	"Down", "DownLeft", "DownRight", "Up", "UpLeft", "UpRight", "Left", "Right",
}

func (d Direction) dr() int { return dirOffsets[d][0] }
func (d Direction) dc() int { return dirOffsets[d][1] }

func (d Direction) String() string {
	if d >= numDirections {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return dirNames[d]
}

// legalDirections holds each player's movement directions in generation
// order. Frogs never move towards their own home row.
var legalDirections = [2][5]Direction{
	Red:  {Down, DownLeft, DownRight, Left, Right},
	Blue: {Up, UpLeft, UpRight, Left, Right},
}

func directionLegal(p Player, d Direction) bool {
	for _, ld := range legalDirections[p] {
		if ld == d {
			return true
		}
	}
	return false
}

// MaxHops caps the length of a jump chain. Chains anywhere near this
// long are unreachable with twelve frogs on an 8x8 board.
const MaxHops = 12

// Move is a single Freckers action: either GROW, or a frog moving from
// From along Path. A one-hop path is a plain step or a single jump
// depending on the board it is applied to; longer paths are always jump
// chains. Move is comparable so it can key killer slots and tables.
type Move struct {
	Grow bool
	From Square
	Path [MaxHops]Direction
	Hops uint8
}

// GrowMove returns the always-legal GROW action.
func GrowMove() Move {
	return Move{Grow: true}
}

// NewMove builds a move action from a direction sequence. Sequences
// longer than MaxHops are truncated; the generator never produces them.
func NewMove(from Square, dirs ...Direction) Move {
	m := Move{From: from}
	for _, d := range dirs {
		if m.Hops == MaxHops {
			break
		}
		m.Path[m.Hops] = d
		m.Hops++
	}
	return m
}

// Directions returns the move's path as a slice.
func (m Move) Directions() []Direction {
	return append([]Direction(nil), m.Path[:m.Hops]...)
}

func (m Move) String() string {
	if m.Grow {
		return "GROW"
	}
	dirs := make([]string, m.Hops)
	for i := uint8(0); i < m.Hops; i++ {
		dirs[i] = m.Path[i].String()
	}
	return fmt.Sprintf("MOVE %s [%s]", m.From, strings.Join(dirs, ", "))
}
