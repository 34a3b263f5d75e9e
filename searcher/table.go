package searcher

import "github.com/jnakos01/freckers2/game"

type boundType uint8

const (
	boundExact boundType = iota
	boundLower
	boundUpper
)

type entry struct {
	hash  uint64
	score int32
	depth int8
	flag  boundType
	move  game.Move
}

// table is a fixed-size transposition table with depth-preferred
// replacement. It belongs to one Searcher; there is no global cache.
type table struct {
	entries []entry
	mask    uint64
}

func newTable(size int) *table {
	n := 1
	for n*2 <= size {
		n *= 2
	}
	return &table{entries: make([]entry, n), mask: uint64(n - 1)}
}

func (t *table) probe(hash uint64) (entry, bool) {
	e := t.entries[hash&t.mask]
	return e, e.hash == hash && e.hash != 0
}

func (t *table) store(hash uint64, depth, score int, flag boundType, move game.Move) {
	e := &t.entries[hash&t.mask]
	if e.hash == hash && int(e.depth) > depth {
		return
	}
	*e = entry{hash: hash, score: int32(score), depth: int8(depth), flag: flag, move: move}
}
