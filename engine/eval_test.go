package engine

import "testing"

func TestEvaluateEmptyBoardIsNeutral(t *testing.T) {
	board := mustBoard(t, 3)
	if score := Evaluate(board, MarkX, DefaultHeuristicWeights()); score != 0 {
		t.Fatalf("empty board should score 0, got %f", score)
	}
}

func TestEvaluateMoreMarksOnOpenLineScoresHigher(t *testing.T) {
	weights := DefaultHeuristicWeights()

	one := mustBoard(t, 4)
	mustPlace(t, one, 0, 0, MarkX)

	two := mustBoard(t, 4)
	mustPlace(t, two, 0, 0, MarkX)
	mustPlace(t, two, 0, 1, MarkX)

	if Evaluate(two, MarkX, weights) <= Evaluate(one, MarkX, weights) {
		t.Fatalf("two marks on an open line should beat one: one=%f two=%f",
			Evaluate(one, MarkX, weights), Evaluate(two, MarkX, weights))
	}
}

func TestEvaluateContestedLineIsWorthless(t *testing.T) {
	weights := DefaultHeuristicWeights()
	board := mustBoard(t, 3)
	// Row 0 holds one mark of each; it helps neither side.
	mustPlace(t, board, 0, 0, MarkX)
	mustPlace(t, board, 0, 2, MarkO)

	// Columns 0 and 2 and the diagonals are still open for their owners, so
	// the score is not zero, but the contested row must contribute nothing:
	// the position is mirror symmetric, so everything cancels.
	if score := Evaluate(board, MarkX, weights); score != 0 {
		t.Fatalf("mirror-symmetric position should score 0, got %f", score)
	}
}

func TestEvaluateOpponentThreatDominates(t *testing.T) {
	weights := DefaultHeuristicWeights()
	board := mustBoard(t, 3)
	// O needs one more mark on row 1; X has scattered positional credit.
	mustPlace(t, board, 1, 0, MarkO)
	mustPlace(t, board, 1, 1, MarkO)
	mustPlace(t, board, 0, 0, MarkX)

	score := Evaluate(board, MarkX, weights)
	if score > -weights.ThreatPenalty/2 {
		t.Fatalf("immediate opponent threat should dominate, got %f", score)
	}
}

func TestEvaluateIsAntisymmetric(t *testing.T) {
	weights := DefaultHeuristicWeights()
	board := mustBoard(t, 4)
	mustPlace(t, board, 0, 0, MarkX)
	mustPlace(t, board, 1, 1, MarkX)
	mustPlace(t, board, 3, 0, MarkO)

	forX := Evaluate(board, MarkX, weights)
	forO := Evaluate(board, MarkO, weights)
	if forX != -forO {
		t.Fatalf("evaluation should be antisymmetric: X=%f O=%f", forX, forO)
	}
	if forX <= 0 {
		t.Fatalf("X has the stronger position, expected positive score, got %f", forX)
	}
}

func TestEvaluateStaysBelowWinScore(t *testing.T) {
	weights := DefaultHeuristicWeights()
	// Stack a large board with uncontested X lines; the clamp keeps the
	// heuristic an order of magnitude below any terminal score.
	board := mustBoard(t, 8)
	for row := 0; row < 8; row++ {
		for col := 0; col < 7; col++ {
			if (row+col)%2 == 0 {
				mustPlace(t, board, row, col, MarkX)
			}
		}
	}
	score := Evaluate(board, MarkX, weights)
	if score >= winScore {
		t.Fatalf("heuristic must stay below win score, got %f", score)
	}
	if score > heuristicCap {
		t.Fatalf("heuristic exceeded its cap: %f", score)
	}
}
