package searcher

import "time"

// Metrics describes one completed decision.
type Metrics struct {
	// Depth is the deepest fully completed iteration; 0 means the
	// fail-safe path was taken.
	Depth   int
	Nodes   int64
	Cutoffs int64
	TTHits  int64
	Elapsed time.Duration
}

func (s *Searcher) collect(start time.Time, depth int) Metrics {
	return Metrics{
		Depth:   depth,
		Nodes:   s.nodes,
		Cutoffs: s.cutoffs,
		TTHits:  s.ttHits,
		Elapsed: time.Since(start),
	}
}
