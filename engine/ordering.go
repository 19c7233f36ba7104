package engine

import "sort"

// OrderedMoves returns moves sorted centre-first: ascending Manhattan
// distance to the board centre, stable row-major tie-break for equidistant
// cells. Central cells participate in more lines, so exploring them first
// tightens alpha-beta bounds earlier. The transform is pure, stateless, and
// deterministic; it never consults the evaluator.
func OrderedMoves(moves []Move, size int) []Move {
	ordered := make([]Move, len(moves))
	copy(ordered, moves)
	sort.SliceStable(ordered, func(i, j int) bool {
		return centreDistance(ordered[i], size) < centreDistance(ordered[j], size)
	})
	return ordered
}

// centreDistance is the Manhattan distance to the centre, doubled to stay in
// integers on even boards where the centre falls between cells.
func centreDistance(move Move, size int) int {
	c := size - 1
	return abs(2*move.Row-c) + abs(2*move.Col-c)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
