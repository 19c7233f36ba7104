package bench

import (
	"testing"

	"github.com/Aaryan94/Tic-Tac-Toe-Unbeatable-AI/engine"
)

func TestPositionsForSizeAreLegal(t *testing.T) {
	for _, size := range []int{3, 4, 5, 6} {
		positions, err := positionsForSize(size)
		if err != nil {
			t.Fatalf("size %d: %v", size, err)
		}
		if len(positions) == 0 {
			t.Fatalf("size %d: no positions", size)
		}
		for i, position := range positions {
			board, err := buildBoard(size, position)
			if err != nil {
				t.Fatalf("size %d position %d: %v", size, i, err)
			}
			if board.Winner() != engine.MarkEmpty {
				t.Fatalf("size %d position %d: already won", size, i)
			}
			if board.IsFull() {
				t.Fatalf("size %d position %d: already full", size, i)
			}
		}
	}
}

func TestPositionsForSizeRejectsSmallBoards(t *testing.T) {
	if _, err := positionsForSize(2); err == nil {
		t.Fatalf("expected error for size 2")
	}
}

func TestRunComparisonModesAgree(t *testing.T) {
	comparison, err := RunComparison([]int{3}, 0, 0)
	if err != nil {
		t.Fatalf("RunComparison: %v", err)
	}
	if comparison.RunID == "" {
		t.Fatalf("missing run id")
	}

	type key struct {
		size, pos int
	}
	bySetup := make(map[key]map[string]Measurement)
	for _, m := range comparison.Results {
		k := key{m.Size, m.Position}
		if bySetup[k] == nil {
			bySetup[k] = make(map[string]Measurement)
		}
		bySetup[k][m.Mode] = m
	}
	for k, group := range bySetup {
		plain, ok1 := group[ModeMinimax]
		pruned, ok2 := group[ModeAlphaBeta]
		ordered, ok3 := group[ModeOrdered]
		if !ok1 || !ok2 || !ok3 {
			t.Fatalf("position %v missing a mode", k)
		}
		// Pruning and ordering are pure speedups: the game-theoretic value
		// never changes, and pruning never adds nodes.
		if plain.Score != pruned.Score || pruned.Score != ordered.Score {
			t.Fatalf("position %v: scores diverge: %f %f %f",
				k, plain.Score, pruned.Score, ordered.Score)
		}
		if pruned.Nodes > plain.Nodes {
			t.Fatalf("position %v: pruning added nodes: %d > %d", k, pruned.Nodes, plain.Nodes)
		}
		if pruned.Cutoffs == 0 {
			t.Fatalf("position %v: pruning recorded no cutoffs", k)
		}
		if plain.Cutoffs != 0 {
			t.Fatalf("position %v: plain minimax recorded cutoffs", k)
		}
	}
}

func TestRunMatchAllDrawsOn3x3(t *testing.T) {
	result, err := RunMatch(3, 2, engine.DefaultSearchConfig())
	if err != nil {
		t.Fatalf("RunMatch: %v", err)
	}
	if result.Draws != 2 || result.XWins != 0 || result.OWins != 0 {
		t.Fatalf("optimal self-play should always draw: %+v", result)
	}
	if result.TotalNodes == 0 {
		t.Fatalf("expected search instrumentation in match result")
	}
}
