package searcher

import "github.com/jnakos01/freckers2/game"

// Move-ordering bonuses. The hash move (previous best) always goes
// first; killers outrank quiet moves but not big jump chains.
const (
	hashMoveBonus     = 1 << 16
	advanceWeight     = 64
	jumpBonus         = 16
	firstKillerBonus  = 50
	secondKillerBonus = 40
)

// orderMoves sorts moves best-guess-first so alpha-beta cuts early:
// the hash/previous-best move, then moves by rows gained towards the
// goal (long jump chains naturally float up), with killer moves from
// earlier siblings at this ply boosted. A zero ttMove matches nothing.
func (s *Searcher) orderMoves(b game.Board, moves []game.Move, ply int, ttMove game.Move) {
	scores := make([]int, len(moves))
	for i, m := range moves {
		scores[i] = s.moveScore(b, m, ply, ttMove)
	}
	sortMoves(moves, scores)
}

func (s *Searcher) moveScore(b game.Board, m game.Move, ply int, ttMove game.Move) int {
	if m == ttMove {
		return hashMoveBonus
	}
	score := 0
	if !m.Grow {
		if dest, err := b.Destination(m); err == nil {
			adv := dest.Row() - m.From.Row()
			if b.Turn == game.Blue {
				adv = -adv
			}
			score += advanceWeight * adv
		}
		// Lateral jump chains gain no rows but still reshape the board;
		// rank them above plain sideways steps.
		if b.IsJump(m) {
			score += jumpBonus * int(m.Hops)
		}
	}
	if ply < maxSearchPly {
		if m == s.killers[ply][0] {
			score += firstKillerBonus
		} else if m == s.killers[ply][1] {
			score += secondKillerBonus
		}
	}
	return score
}

// sortMoves orders moves descending by score, stable so equal-scored
// moves keep their generation order.
func sortMoves(moves []game.Move, scores []int) {
	for i := 1; i < len(moves); i++ {
		for j := i; j > 0 && scores[j-1] < scores[j]; j-- {
			moves[j], moves[j-1] = moves[j-1], moves[j]
			scores[j], scores[j-1] = scores[j-1], scores[j]
		}
	}
}
