// Package agent adapts the search engine to the referee contract: it
// mirrors the authoritative board, replays moves reported for the
// opponent, and produces this player's move each turn.
package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jnakos01/freckers2/game"
	"github.com/jnakos01/freckers2/searcher"
)

// ErrDesync reports that the mirrored board diverged from the
// referee's: an opponent move could not be applied legally. Not
// recoverable within the game instance.
var ErrDesync = errors.New("agent board desynchronized from referee")

type Agent struct {
	player   game.Player
	board    game.Board
	profile  Profile
	searcher *searcher.Searcher
	logger   zerolog.Logger
}

// New builds an agent playing as p under the given profile, starting
// from the standard opening board.
func New(p game.Player, profile Profile) (*Agent, error) {
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("profile %q: %w", profile.Name, err)
	}
	return &Agent{
		player:   p,
		board:    game.NewBoard(),
		profile:  profile,
		searcher: profile.newSearcher(),
		logger:   log.With().Stringer("player", p).Str("profile", profile.Name).Logger(),
	}, nil
}

func (a *Agent) Player() game.Player { return a.player }

// Board returns the agent's current view of the game.
func (a *Agent) Board() game.Board { return a.board }

// OnOpponentMove applies a referee-reported opponent move to the
// mirror. A move that cannot be applied means the mirror and the
// referee disagree; the returned ErrDesync is fatal for this game.
func (a *Agent) OnOpponentMove(m game.Move) error {
	if a.board.SideToMove() == a.player {
		return fmt.Errorf("%w: opponent move %s arrived on own turn", ErrDesync, m)
	}
	next, err := a.board.Play(m)
	if err != nil {
		return fmt.Errorf("%w: opponent move %s: %v", ErrDesync, m, err)
	}
	a.board = next
	return nil
}

// ChooseMove searches the mirrored board within budget, applies the
// chosen move to the mirror and returns it. Budget overruns are logged
// and swallowed: a legal move always comes back. Any other search error
// is an internal bug and aborts the decision.
func (a *Agent) ChooseMove(ctx context.Context, budget time.Duration) (game.Move, searcher.Metrics, error) {
	if a.board.SideToMove() != a.player {
		return game.Move{}, searcher.Metrics{}, fmt.Errorf("%w: asked to move on opponent's turn", ErrDesync)
	}
	move, metrics, err := a.searcher.Decide(ctx, a.board, budget)
	if err != nil {
		if !errors.Is(err, searcher.ErrBudgetExceeded) {
			return game.Move{}, metrics, err
		}
		a.logger.Warn().Err(err).Dur("budget", budget).Msg("search overran budget, using fail-safe move")
	}
	next, err := a.board.Play(move)
	if err != nil {
		return game.Move{}, metrics, fmt.Errorf("searcher returned illegal move %s: %w", move, err)
	}
	a.board = next
	return move, metrics, nil
}
