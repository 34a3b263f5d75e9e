// Package engine hosts local Freckers matches: it owns the
// authoritative board, alternates the two agents, relays moves between
// their mirrors and classifies the outcome. It stands in for the
// external referee when playing agents against each other.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jnakos01/freckers2/agent"
	"github.com/jnakos01/freckers2/game"
	"github.com/jnakos01/freckers2/searcher"
)

// MoveRecord is one turn of a finished match.
type MoveRecord struct {
	Ply    int
	Player game.Player
	Move   game.Move
	Search searcher.Metrics
}

// Result summarizes a finished match.
type Result struct {
	Outcome   game.Result
	Plies     int
	StartTime time.Time
	Duration  time.Duration
	Moves     []MoveRecord
}

type Local struct {
	agents [2]*agent.Agent
	budget time.Duration
	board  game.Board
}

// NewLocal prepares a match between a red and a blue agent with the
// given per-move budget.
func NewLocal(red, blue *agent.Agent, budget time.Duration) (*Local, error) {
	if red.Player() != game.Red || blue.Player() != game.Blue {
		return nil, fmt.Errorf("agents must play RED and BLUE, got %s and %s", red.Player(), blue.Player())
	}
	if budget <= 0 {
		return nil, fmt.Errorf("per-move budget must be positive, got %v", budget)
	}
	return &Local{
		agents: [2]*agent.Agent{game.Red: red, game.Blue: blue},
		budget: budget,
		board:  game.NewBoard(),
	}, nil
}

// Board returns the authoritative board.
func (l *Local) Board() game.Board { return l.board }

// Run plays the match to completion. The turn limit inside the board
// rules guarantees termination. A desync between an agent's mirror and
// the authoritative board aborts the match with an error.
func (l *Local) Run(ctx context.Context) (Result, error) {
	result := Result{StartTime: time.Now()}
	defer func() { result.Duration = time.Since(result.StartTime) }()

	for l.board.Outcome() == game.Ongoing {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		mover := l.board.SideToMove()

		move, metrics, err := l.agents[mover].ChooseMove(ctx, l.budget)
		if err != nil {
			return result, fmt.Errorf("%s to move at ply %d: %w", mover, l.board.Ply, err)
		}

		next, err := l.board.Play(move)
		if err != nil {
			// The agent's mirror accepted a move the authoritative board
			// rejects: the two views have diverged.
			return result, fmt.Errorf("%w: %s played %s: %v", agent.ErrDesync, mover, move, err)
		}
		l.board = next

		if err := l.agents[mover.Opponent()].OnOpponentMove(move); err != nil {
			return result, fmt.Errorf("relaying %s's move: %w", mover, err)
		}

		result.Moves = append(result.Moves, MoveRecord{
			Ply:    l.board.Ply,
			Player: mover,
			Move:   move,
			Search: metrics,
		})
		log.Debug().
			Stringer("player", mover).
			Stringer("move", move).
			Int("ply", l.board.Ply).
			Int("depth", metrics.Depth).
			Int64("nodes", metrics.Nodes).
			Msg("turn played")
	}

	result.Outcome = l.board.Outcome()
	result.Plies = l.board.Ply
	log.Info().
		Stringer("outcome", result.Outcome).
		Int("plies", result.Plies).
		Msg("match over")
	return result, nil
}
