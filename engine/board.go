// Package engine implements the n×n tic-tac-toe core: board state with
// mutate/undo, line-based heuristic evaluation, centre-first move ordering,
// and alpha-beta minimax search. It does no I/O and holds no global game
// state; all search knobs travel in SearchConfig.
package engine

import "strings"

type Mark int

const (
	MarkEmpty Mark = iota
	MarkX
	MarkO
)

func (m Mark) String() string {
	switch m {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return "."
	}
}

// Opponent returns the other player's mark. Passing MarkEmpty returns
// MarkEmpty.
func Opponent(m Mark) Mark {
	switch m {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return MarkEmpty
	}
}

type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (m Move) Equals(other Move) bool {
	return m.Row == other.Row && m.Col == other.Col
}

// Board is an n×n grid with win length equal to n. A single mutable instance
// is shared by reference throughout one search call; Place and Undo are the
// only mutations.
type Board struct {
	size        int
	cells       []Mark
	filled      int
	lastMove    Move
	hasLastMove bool
}

// NewBoard creates an empty size×size board. Sizes below 3 cannot produce a
// meaningful game and are rejected with *InvalidSizeError.
func NewBoard(size int) (*Board, error) {
	if size < 3 {
		return nil, &InvalidSizeError{Size: size}
	}
	return &Board{
		size:  size,
		cells: make([]Mark, size*size),
	}, nil
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) InBounds(move Move) bool {
	return move.Row >= 0 && move.Col >= 0 && move.Row < b.size && move.Col < b.size
}

func (b *Board) At(row, col int) Mark {
	return b.cells[row*b.size+col]
}

func (b *Board) CountEmpty() int {
	return b.size*b.size - b.filled
}

func (b *Board) IsFull() bool {
	return b.filled == b.size*b.size
}

// LastMove reports the most recent placement, if any.
func (b *Board) LastMove() (Move, bool) {
	return b.lastMove, b.hasLastMove
}

// Place sets the cell at move to mark and records it as the last move.
// Occupied or out-of-range cells fail with *InvalidMoveError.
func (b *Board) Place(move Move, mark Mark) error {
	if mark != MarkX && mark != MarkO {
		return &InvalidMoveError{Move: move, Reason: "mark must be X or O"}
	}
	if !b.InBounds(move) {
		return &InvalidMoveError{Move: move, Reason: "out of range"}
	}
	if b.cells[move.Row*b.size+move.Col] != MarkEmpty {
		return &InvalidMoveError{Move: move, Reason: "cell occupied"}
	}
	b.place(move, mark)
	return nil
}

// place skips validation; search uses it on moves already known to be legal.
func (b *Board) place(move Move, mark Mark) {
	b.cells[move.Row*b.size+move.Col] = mark
	b.filled++
	b.lastMove = move
	b.hasLastMove = true
}

// Undo clears the cell at move back to empty. Callers must only undo the most
// recent placement at that cell; search relies on strict backtracking order
// and this is a usage contract, not enforced here.
func (b *Board) Undo(move Move) {
	idx := move.Row*b.size + move.Col
	if !b.InBounds(move) || b.cells[idx] == MarkEmpty {
		return
	}
	b.cells[idx] = MarkEmpty
	b.filled--
	if b.lastMove.Equals(move) {
		b.hasLastMove = false
	}
}

// LegalMoves returns all empty-cell coordinates in row-major order. The slice
// is recomputed on every call since the board mutates between calls.
func (b *Board) LegalMoves() []Move {
	moves := make([]Move, 0, b.CountEmpty())
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if b.cells[row*b.size+col] == MarkEmpty {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

// CheckWin reports the winning mark if lastMove completed a full row, column,
// or diagonal. It examines only the lines through lastMove, so the check is
// O(n) rather than a full-board rescan: a win can only be completed by the
// move just made.
func (b *Board) CheckWin(lastMove Move) Mark {
	if !b.InBounds(lastMove) {
		return MarkEmpty
	}
	target := b.cells[lastMove.Row*b.size+lastMove.Col]
	if target == MarkEmpty {
		return MarkEmpty
	}
	directions := [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}
	for i := 0; i < 4; i++ {
		dr := directions[i][0]
		dc := directions[i][1]
		count := 1
		count += b.countDirection(lastMove, dr, dc)
		count += b.countDirection(lastMove, -dr, -dc)
		if count >= b.size {
			return target
		}
	}
	return MarkEmpty
}

func (b *Board) countDirection(start Move, dr, dc int) int {
	target := b.cells[start.Row*b.size+start.Col]
	row := start.Row + dr
	col := start.Col + dc
	count := 0
	for row >= 0 && col >= 0 && row < b.size && col < b.size && b.cells[row*b.size+col] == target {
		count++
		row += dr
		col += dc
	}
	return count
}

// Winner scans the whole board for a completed line. O(n²); used only for
// top-level terminal checks where no last move is available. Search-time win
// detection goes through CheckWin.
func (b *Board) Winner() Mark {
	for _, line := range Lines(b.size) {
		first := b.cells[line[0]]
		if first == MarkEmpty {
			continue
		}
		complete := true
		for _, idx := range line[1:] {
			if b.cells[idx] != first {
				complete = false
				break
			}
		}
		if complete {
			return first
		}
	}
	return MarkEmpty
}

func (b *Board) IsDraw() bool {
	return b.IsFull() && b.Winner() == MarkEmpty
}

func (b *Board) Clone() *Board {
	clone := &Board{
		size:        b.size,
		cells:       make([]Mark, len(b.cells)),
		filled:      b.filled,
		lastMove:    b.lastMove,
		hasLastMove: b.hasLastMove,
	}
	copy(clone.cells, b.cells)
	return clone
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			sb.WriteString(b.At(row, col).String())
			if col < b.size-1 {
				sb.WriteByte(' ')
			}
		}
		if row < b.size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
