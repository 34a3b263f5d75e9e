package game

const (
	// BoardN is the side length of the square board.
	BoardN = 8

	// FrogsPerSide is the number of frogs each player starts with. The
	// count never changes: frogs are jumped over, never captured.
	FrogsPerSide = 6

	// MaxPly is the total turn limit. A game still running at this point
	// is scored by goal-row counts.
	MaxPly = 150
)

type Player uint8

const (
	Red Player = iota
	Blue
)

func (p Player) Opponent() Player {
	if p == Red {
		return Blue
	}
	return Red
}

// GoalRow is the row a player's frogs race towards: the bottom row for
// red, the top row for blue.
func (p Player) GoalRow() int {
	if p == Red {
		return BoardN - 1
	}
	return 0
}

func (p Player) String() string {
	if p == Red {
		return "RED"
	}
	return "BLUE"
}

// Result classifies a board position.
type Result uint8

const (
	Ongoing Result = iota
	RedWin
	BlueWin
	Draw
)

func (r Result) String() string {
	switch r {
	case RedWin:
		return "RED wins"
	case BlueWin:
		return "BLUE wins"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

// WinnerOf maps a player to its winning result.
func WinnerOf(p Player) Result {
	if p == Red {
		return RedWin
	}
	return BlueWin
}
