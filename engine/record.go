package engine

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Recorder writes match and per-move records as CSV files under a
// timestamped directory, one pair of files per session.
type Recorder struct {
	baseDir string
}

func NewRecorder(root string) (*Recorder, error) {
	timestamp := time.Now().UTC().Format("2006-01-02T15-04-05Z")
	baseDir := filepath.Join(root, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("creating record directory: %w", err)
	}
	return &Recorder{baseDir: baseDir}, nil
}

// Dir returns the directory records are written to.
func (r *Recorder) Dir() string { return r.baseDir }

// WriteMatches writes one row per finished match.
func (r *Recorder) WriteMatches(results []Result) error {
	f, err := os.Create(filepath.Join(r.baseDir, "matches.csv"))
	if err != nil {
		return fmt.Errorf("creating matches file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"match", "outcome", "plies", "start_time", "duration"}); err != nil {
		return fmt.Errorf("writing matches header: %w", err)
	}
	for i, res := range results {
		row := []string{
			strconv.Itoa(i + 1),
			res.Outcome.String(),
			strconv.Itoa(res.Plies),
			res.StartTime.UTC().Format(time.RFC3339),
			res.Duration.String(),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing match row: %w", err)
		}
	}
	return w.Error()
}

// WriteMoves writes one row per turn across all matches.
func (r *Recorder) WriteMoves(results []Result) error {
	f, err := os.Create(filepath.Join(r.baseDir, "moves.csv"))
	if err != nil {
		return fmt.Errorf("creating moves file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"match", "ply", "player", "move", "depth", "nodes", "cutoffs", "tt_hits", "elapsed"}); err != nil {
		return fmt.Errorf("writing moves header: %w", err)
	}
	for i, res := range results {
		for _, mv := range res.Moves {
			row := []string{
				strconv.Itoa(i + 1),
				strconv.Itoa(mv.Ply),
				mv.Player.String(),
				mv.Move.String(),
				strconv.Itoa(mv.Search.Depth),
				strconv.FormatInt(mv.Search.Nodes, 10),
				strconv.FormatInt(mv.Search.Cutoffs, 10),
				strconv.FormatInt(mv.Search.TTHits, 10),
				mv.Search.Elapsed.String(),
			}
			if err := w.Write(row); err != nil {
				return fmt.Errorf("writing move row: %w", err)
			}
		}
	}
	return w.Error()
}
