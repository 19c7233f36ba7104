package engine

import "testing"

func TestOrderedMovesCentreFirstOddBoard(t *testing.T) {
	board := mustBoard(t, 3)
	ordered := OrderedMoves(board.LegalMoves(), 3)
	if !ordered[0].Equals(Move{Row: 1, Col: 1}) {
		t.Fatalf("expected centre first on 3x3, got %v", ordered[0])
	}
	// Corners are the furthest cells and must come last.
	last := ordered[len(ordered)-1]
	if centreDistance(last, 3) != 4 {
		t.Fatalf("expected a corner last, got %v", last)
	}
}

func TestOrderedMovesEvenBoardTieBreak(t *testing.T) {
	board := mustBoard(t, 4)
	ordered := OrderedMoves(board.LegalMoves(), 4)
	// Four cells tie for the centre; stable sort keeps row-major order among
	// them, so (1,1) leads.
	want := []Move{{1, 1}, {1, 2}, {2, 1}, {2, 2}}
	for i, move := range want {
		if !ordered[i].Equals(move) {
			t.Fatalf("position %d: got %v want %v", i, ordered[i], move)
		}
	}
}

func TestOrderedMovesIsPermutation(t *testing.T) {
	board := mustBoard(t, 5)
	mustPlace(t, board, 2, 2, MarkX)
	mustPlace(t, board, 0, 0, MarkO)

	input := board.LegalMoves()
	ordered := OrderedMoves(input, 5)
	if len(ordered) != len(input) {
		t.Fatalf("ordering changed move count: %d vs %d", len(ordered), len(input))
	}
	seen := make(map[Move]bool, len(ordered))
	for _, move := range ordered {
		if seen[move] {
			t.Fatalf("duplicate move %v in ordering", move)
		}
		seen[move] = true
	}
	for _, move := range input {
		if !seen[move] {
			t.Fatalf("move %v lost in ordering", move)
		}
	}
}

func TestOrderedMovesDoesNotMutateInput(t *testing.T) {
	input := []Move{{0, 0}, {2, 2}, {1, 1}}
	OrderedMoves(input, 3)
	want := []Move{{0, 0}, {2, 2}, {1, 1}}
	for i := range want {
		if !input[i].Equals(want[i]) {
			t.Fatalf("input slice mutated at %d: %v", i, input[i])
		}
	}
}

func TestOrderedMovesDeterministic(t *testing.T) {
	board := mustBoard(t, 4)
	input := board.LegalMoves()
	first := OrderedMoves(input, 4)
	second := OrderedMoves(input, 4)
	for i := range first {
		if !first[i].Equals(second[i]) {
			t.Fatalf("ordering not deterministic at %d: %v vs %v", i, first[i], second[i])
		}
	}
}
