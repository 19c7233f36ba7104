package engine

import "sync"

// A line is a slice of flat cell indices forming a row, column, or diagonal.
// Lines are read-only and shared across evaluations, so they are built once
// per size and cached.
type lineCache struct {
	mu    sync.Mutex
	lines map[int][][]int
}

var cachedLines = &lineCache{lines: make(map[int][][]int)}

// Lines returns the n rows, n columns, and 2 diagonals of a size×size board
// as flat index slices. The result is shared; callers must not mutate it.
func Lines(size int) [][]int {
	cachedLines.mu.Lock()
	defer cachedLines.mu.Unlock()
	if lines, ok := cachedLines.lines[size]; ok {
		return lines
	}
	lines := buildLines(size)
	cachedLines.lines[size] = lines
	return lines
}

func buildLines(size int) [][]int {
	lines := make([][]int, 0, 2*size+2)
	for row := 0; row < size; row++ {
		line := make([]int, 0, size)
		for col := 0; col < size; col++ {
			line = append(line, row*size+col)
		}
		lines = append(lines, line)
	}
	for col := 0; col < size; col++ {
		line := make([]int, 0, size)
		for row := 0; row < size; row++ {
			line = append(line, row*size+col)
		}
		lines = append(lines, line)
	}
	diag := make([]int, 0, size)
	for i := 0; i < size; i++ {
		diag = append(diag, i*size+i)
	}
	lines = append(lines, diag)
	anti := make([]int, 0, size)
	for i := 0; i < size; i++ {
		anti = append(anti, i*size+(size-1-i))
	}
	return append(lines, anti)
}

// LineTally counts the marks along one line from a player's perspective.
type LineTally struct {
	Mine   int
	Theirs int
	Empty  int
}

// TallyLine is a pure function of the current board state.
func TallyLine(b *Board, line []int, player Mark) LineTally {
	tally := LineTally{}
	for _, idx := range line {
		switch b.cells[idx] {
		case MarkEmpty:
			tally.Empty++
		case player:
			tally.Mine++
		default:
			tally.Theirs++
		}
	}
	return tally
}
