package searcher

import (
	"context"
	"fmt"
	"time"

	"github.com/jnakos01/freckers2/game"
)

// negamax searches b to the given depth inside the (alpha, beta)
// window and returns the score from the side to move's perspective.
// Terminal and depth-0 nodes return the evaluation, which carries the
// dominant win/loss sentinels; each level negates the child's score so
// "good for the mover" stays symmetric across plies.
func (s *Searcher) negamax(ctx context.Context, b game.Board, depth, alpha, beta, ply int) (int, error) {
	s.nodes++
	if s.nodes%timeCheckInterval == 0 {
		if time.Now().After(s.deadline) {
			return 0, errDeadline
		}
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}
	}

	if depth <= 0 || b.Terminal() {
		return game.Evaluate(b, b.Turn, s.weights), nil
	}

	alphaOrig := alpha
	var hash uint64
	var ttMove game.Move
	if s.table != nil {
		hash = b.Hash()
		if e, ok := s.table.probe(hash); ok {
			s.ttHits++
			ttMove = e.move
			if int(e.depth) >= depth {
				score := int(e.score)
				switch e.flag {
				case boundExact:
					return score, nil
				case boundLower:
					if score > alpha {
						alpha = score
					}
				case boundUpper:
					if score < beta {
						beta = score
					}
				}
				if alpha >= beta {
					return score, nil
				}
			}
		}
	}

	moves := b.LegalMoves(b.Turn)
	if len(moves) == 0 {
		// Cannot happen while GROW is legal; classified as a loss for
		// the stuck side to keep the search total.
		return game.LossScore + b.Ply, nil
	}
	s.orderMoves(b, moves, ply, ttMove)

	best := -inf
	bestMove := moves[0]
	for i, m := range moves {
		child, err := b.Play(m)
		if err != nil {
			return 0, fmt.Errorf("generated move %s at ply %d: %w", m, ply, err)
		}
		score, err := s.negamax(ctx, child, depth-1, -beta, -alpha, ply+1)
		if err != nil {
			return 0, err
		}
		score = -score
		if i == 0 || score > best {
			best = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			s.cutoffs++
			s.storeKiller(ply, m)
			break
		}
	}

	if s.table != nil {
		flag := boundExact
		if best <= alphaOrig {
			flag = boundUpper
		} else if best >= beta {
			flag = boundLower
		}
		s.table.store(hash, depth, best, flag, bestMove)
	}
	return best, nil
}

func (s *Searcher) storeKiller(ply int, m game.Move) {
	if ply >= maxSearchPly || s.killers[ply][0] == m {
		return
	}
	s.killers[ply][1] = s.killers[ply][0]
	s.killers[ply][0] = m
}
