package searcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/jnakos01/freckers2/game"
)

// ErrBudgetExceeded reports that the move budget ran out before even a
// depth-1 iteration completed. The searcher still returns a legal move;
// the error is diagnostic.
var ErrBudgetExceeded = errors.New("search budget exhausted before any depth completed")

// errDeadline aborts the in-flight iteration; Decide falls back to the
// last completed one.
var errDeadline = errors.New("search deadline reached")

const (
	// maxSearchPly bounds search depth and the killer-move table.
	maxSearchPly = 64

	// timeCheckInterval is the node count between wall-clock checks, so
	// a slow deep iteration cannot overrun the budget unnoticed.
	timeCheckInterval = 1024

	// inf sits strictly outside every reachable score.
	inf = game.WinScore * 2

	defaultBudget    = time.Second
	defaultTableSize = 1 << 18
)

type Option func(*Searcher)

// WithMaxDepth caps iterative deepening.
func WithMaxDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

// WithBudget sets the default wall-clock budget per decision.
func WithBudget(budget time.Duration) Option {
	return func(s *Searcher) {
		if budget > 0 {
			s.budget = budget
		}
	}
}

// WithWeights sets the evaluation weights.
func WithWeights(w game.Weights) Option {
	return func(s *Searcher) {
		s.weights = w
	}
}

// WithTableSize sets the transposition table capacity in entries,
// rounded down to a power of two. Zero disables the table.
func WithTableSize(entries int) Option {
	return func(s *Searcher) {
		if entries > 0 {
			s.table = newTable(entries)
		} else {
			s.table = nil
		}
	}
}

// WithParallelism splits the root move set across n workers. Results
// merge by (score, ordering index) so the chosen move is the same as
// the sequential search's.
func WithParallelism(n int) Option {
	return func(s *Searcher) {
		if n > 1 {
			s.parallelism = n
		}
	}
}

// WithSeed enables seeded shuffling of the root move list for
// tie-break variety. The RNG state advances across decisions, so
// reproducibility holds for the same seed and the same call sequence,
// not per board. Without this option the searcher is fully
// deterministic.
func WithSeed(seed uint64) Option {
	return func(s *Searcher) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// Searcher owns all state for one agent's decisions: killer slots,
// transposition table, RNG and counters. Lifetime is one game
// instance; nothing is shared across searchers.
type Searcher struct {
	maxDepth    int
	budget      time.Duration
	weights     game.Weights
	parallelism int
	table       *table
	rng         *rand.Rand

	killers  [maxSearchPly][2]game.Move
	deadline time.Time
	nodes    int64
	cutoffs  int64
	ttHits   int64
}

func New(options ...Option) *Searcher {
	s := &Searcher{
		maxDepth: maxSearchPly,
		budget:   defaultBudget,
		weights:  game.DefaultWeights(),
		table:    newTable(defaultTableSize),
	}
	for _, option := range options {
		option(s)
	}
	if s.maxDepth > maxSearchPly {
		s.maxDepth = maxSearchPly
	}
	return s
}

// Decide runs iterative-deepening negamax on b for the side to move and
// returns the best move found within the budget. A context deadline
// earlier than the budget takes precedence. Repeated calls with the
// same board, budget headroom and seed return the same move.
func (s *Searcher) Decide(ctx context.Context, b game.Board, budget time.Duration) (game.Move, Metrics, error) {
	start := time.Now()
	if budget <= 0 {
		budget = s.budget
	}
	s.deadline = start.Add(budget)
	if d, ok := ctx.Deadline(); ok && d.Before(s.deadline) {
		s.deadline = d
	}
	s.nodes, s.cutoffs, s.ttHits = 0, 0, 0
	s.killers = [maxSearchPly][2]game.Move{}

	moves := b.LegalMoves(b.Turn)
	if len(moves) == 0 {
		return game.Move{}, s.collect(start, 0), fmt.Errorf("no legal moves for %s", b.Turn)
	}
	if s.rng != nil {
		s.rng.Shuffle(len(moves), func(i, j int) {
			moves[i], moves[j] = moves[j], moves[i]
		})
	}

	var best game.Move
	bestScore, depthDone := 0, 0
	for depth := 1; depth <= s.maxDepth; depth++ {
		var (
			move  game.Move
			score int
			err   error
		)
		if s.parallelism > 1 {
			move, score, err = s.searchRootParallel(ctx, b, moves, depth, best)
		} else {
			move, score, err = s.searchRoot(ctx, b, moves, depth, best)
		}
		if err != nil {
			if errors.Is(err, errDeadline) || errors.Is(err, context.DeadlineExceeded) {
				break // discard the incomplete iteration
			}
			// Internal bug (illegal generated move) or cancellation:
			// abort the decision rather than return a dubious move.
			return game.Move{}, s.collect(start, depthDone), err
		}
		best, bestScore, depthDone = move, score, depth
		if score >= game.WinScore-game.MaxPly || score <= game.LossScore+game.MaxPly {
			break // forced result, deeper iterations cannot improve it
		}
		if !time.Now().Before(s.deadline) {
			break
		}
	}

	metrics := s.collect(start, depthDone)
	if depthDone == 0 {
		// Fail safe: never report "no move". The first generated move is
		// legal by construction.
		return moves[0], metrics, fmt.Errorf("depth 1 unfinished after %v: %w", budget, ErrBudgetExceeded)
	}
	log.Debug().
		Int("depth", depthDone).
		Int64("nodes", metrics.Nodes).
		Int("score", bestScore).
		Stringer("move", best).
		Dur("elapsed", metrics.Elapsed).
		Msg("search complete")
	return best, metrics, nil
}

// searchRoot runs one full-width iteration at the given depth. The
// previous iteration's best move (zero on the first iteration) is
// ordered first. Ties at the root keep the first move encountered.
func (s *Searcher) searchRoot(ctx context.Context, b game.Board, moves []game.Move, depth int, prevBest game.Move) (game.Move, int, error) {
	ordered := make([]game.Move, len(moves))
	copy(ordered, moves)
	s.orderMoves(b, ordered, 0, prevBest)

	alpha := -inf
	best := ordered[0]
	for i, m := range ordered {
		if time.Now().After(s.deadline) {
			return game.Move{}, 0, errDeadline
		}
		child, err := b.Play(m)
		if err != nil {
			return game.Move{}, 0, fmt.Errorf("root move %s: %w", m, err)
		}
		score, err := s.negamax(ctx, child, depth-1, -inf, -alpha, 1)
		if err != nil {
			return game.Move{}, 0, err
		}
		score = -score
		if i == 0 || score > alpha {
			alpha = score
			best = m
		}
	}
	return best, alpha, nil
}
