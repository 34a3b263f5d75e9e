package game

import "math/bits"

// Score sentinels. WinScore/LossScore dominate every heuristic value so
// a forced win is always preferred over any positional advantage; the
// ply adjustment in Evaluate makes faster wins score higher still.
const (
	WinScore  = 1 << 20
	LossScore = -WinScore

	// HeuristicBound is a hard ceiling on |heuristic| scores. Weights
	// are validated against it so sentinels stay dominant.
	HeuristicBound = WinScore / 2
)

// Weights tunes the evaluation features. All features are symmetric
// differentials (own minus opponent).
type Weights struct {
	// Advance weights total forward progress of the frogs.
	Advance int `yaml:"advance"`
	// Goal weights frogs already home on the goal row.
	Goal int `yaml:"goal"`
	// Mobility weights frogs with a jump available.
	Mobility int `yaml:"mobility"`
	// Pads weights empty pads reachable by a single step.
	Pads int `yaml:"pads"`
}

// DefaultWeights returns the tuning used by the balanced profile.
func DefaultWeights() Weights {
	return Weights{Advance: 10, Goal: 40, Mobility: 3, Pads: 1}
}

// Evaluate scores the board from perspective's point of view: positive
// favours perspective. It is a pure function of the board, a
// requirement for alpha-beta correctness and transposition reuse.
// Terminal boards bypass the heuristic and return ply-adjusted
// sentinels.
func Evaluate(b Board, perspective Player, w Weights) int {
	switch out := b.Outcome(); out {
	case Draw:
		return 0
	case RedWin, BlueWin:
		if out == WinnerOf(perspective) {
			return WinScore - b.Ply
		}
		return LossScore + b.Ply
	}

	opp := perspective.Opponent()
	score := w.Advance * (progress(b, perspective) - progress(b, opp))
	score += w.Goal * (b.GoalCount(perspective) - b.GoalCount(opp))
	score += w.Mobility * (bits.OnesCount64(b.JumpOrigins(perspective)) - bits.OnesCount64(b.JumpOrigins(opp)))
	score += w.Pads * (bits.OnesCount64(b.StepTargets(perspective)) - bits.OnesCount64(b.StepTargets(opp)))
	return score
}

// progress sums, over p's frogs, the rows already covered towards p's
// goal row. The vertical-distance differential is the backbone of the
// evaluation.
func progress(b Board, p Player) int {
	sum := 0
	for fr := b.Frogs(p); fr != 0; fr &= fr - 1 {
		row := Square(bits.TrailingZeros64(fr)).Row()
		if p == Red {
			sum += row
		} else {
			sum += BoardN - 1 - row
		}
	}
	return sum
}
