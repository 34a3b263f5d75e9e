package game

import "math/bits"

// LegalMoves enumerates every legal action for p on this board, in a
// deterministic order: GROW first, then for each frog in ascending
// square order its plain steps (in direction order) followed by its
// jump chains, depth-first. The board is never mutated.
//
// GROW is always legal, so the result is never empty on a live board.
func (b Board) LegalMoves(p Player) []Move {
	moves := make([]Move, 0, 32)
	moves = append(moves, GrowMove())

	dirs := legalDirections[p]
	occ := b.Occupied()
	for fr := b.Frogs(p); fr != 0; fr &= fr - 1 {
		from := Square(bits.TrailingZeros64(fr))
		for _, d := range dirs {
			to, ok := from.shift(d)
			if !ok {
				continue
			}
			if occ&to.Bit() == 0 && b.Pads&to.Bit() != 0 {
				moves = append(moves, NewMove(from, d))
			}
		}
		var chain [MaxHops]Direction
		moves = b.exploreJumps(moves, from, from, chain, 0, from.Bit(), dirs)
	}
	return moves
}

// exploreJumps extends a jump chain from cur, appending every legal
// prefix as its own move. Occupancy is taken from the unmoved board, as
// a chain is a single action; visited landing cells guard against
// cycles.
func (b Board) exploreJumps(moves []Move, cur, from Square, chain [MaxHops]Direction, hops uint8, visited uint64, dirs [5]Direction) []Move {
	if hops == MaxHops {
		return moves
	}
	occ := b.Occupied()
	for _, d := range dirs {
		over, ok := cur.shift(d)
		if !ok || occ&over.Bit() == 0 {
			continue
		}
		land, ok := over.shift(d)
		if !ok {
			continue
		}
		if occ&land.Bit() != 0 || b.Pads&land.Bit() == 0 || visited&land.Bit() != 0 {
			continue
		}
		chain[hops] = d
		moves = append(moves, Move{From: from, Path: chain, Hops: hops + 1})
		moves = b.exploreJumps(moves, land, from, chain, hops+1, visited|land.Bit(), dirs)
	}
	return moves
}

// JumpOrigins returns the bitboard of p's frogs that have at least one
// legal jump available. Used by the evaluator as a cheap mobility
// signal.
func (b Board) JumpOrigins(p Player) uint64 {
	var origins uint64
	occ := b.Occupied()
	for fr := b.Frogs(p); fr != 0; fr &= fr - 1 {
		from := Square(bits.TrailingZeros64(fr))
		for _, d := range legalDirections[p] {
			over, ok := from.shift(d)
			if !ok || occ&over.Bit() == 0 {
				continue
			}
			land, ok := over.shift(d)
			if ok && occ&land.Bit() == 0 && b.Pads&land.Bit() != 0 {
				origins |= from.Bit()
				break
			}
		}
	}
	return origins
}

// StepTargets returns the empty pads p's frogs can step onto this turn.
func (b Board) StepTargets(p Player) uint64 {
	var targets uint64
	occ := b.Occupied()
	for fr := b.Frogs(p); fr != 0; fr &= fr - 1 {
		from := Square(bits.TrailingZeros64(fr))
		for _, d := range legalDirections[p] {
			if to, ok := from.shift(d); ok && occ&to.Bit() == 0 && b.Pads&to.Bit() != 0 {
				targets |= to.Bit()
			}
		}
	}
	return targets
}
