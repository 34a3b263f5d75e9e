package searcher

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jnakos01/freckers2/game"
)

// searchRootParallel splits the ordered root moves across workers, each
// searching its subtree with a full window and its own killer table.
// Full windows cost extra nodes versus the sequential alpha share, but
// every root score is exact rather than a bound, so merging by
// (score, ordering index) picks the same move the sequential search
// would. Workers skip the
// shared transposition table: insertion order under contention would
// make probes, and with them node counts, nondeterministic.
func (s *Searcher) searchRootParallel(ctx context.Context, b game.Board, moves []game.Move, depth int, prevBest game.Move) (game.Move, int, error) {
	ordered := make([]game.Move, len(moves))
	copy(ordered, moves)
	s.orderMoves(b, ordered, 0, prevBest)

	workers := s.parallelism
	if workers > len(ordered) {
		workers = len(ordered)
	}

	scores := make([]int, len(ordered))
	clones := make([]*Searcher, workers)
	var next atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		clone := &Searcher{
			maxDepth: s.maxDepth,
			weights:  s.weights,
			deadline: s.deadline,
		}
		clones[w] = clone
		g.Go(func() error {
			for {
				i := int(next.Add(1)) - 1
				if i >= len(ordered) {
					return nil
				}
				if time.Now().After(clone.deadline) {
					return errDeadline
				}
				child, err := b.Play(ordered[i])
				if err != nil {
					return fmt.Errorf("root move %s: %w", ordered[i], err)
				}
				score, err := clone.negamax(gctx, child, depth-1, -inf, inf, 1)
				if err != nil {
					return err
				}
				scores[i] = -score
			}
		})
	}
	err := g.Wait()
	for _, clone := range clones {
		s.nodes += clone.nodes
		s.cutoffs += clone.cutoffs
	}
	if err != nil {
		return game.Move{}, 0, err
	}

	best, bestScore := ordered[0], scores[0]
	for i := 1; i < len(ordered); i++ {
		if scores[i] > bestScore {
			best, bestScore = ordered[i], scores[i]
		}
	}
	return best, bestScore, nil
}
