package engine

import "fmt"

// InvalidSizeError is returned by NewBoard for sizes that cannot produce a
// meaningful game.
type InvalidSizeError struct {
	Size int
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("invalid board size %d: must be at least 3", e.Size)
}

// InvalidMoveError is returned by Place for occupied or out-of-range cells.
// It always indicates a caller bug, never a recoverable condition.
type InvalidMoveError struct {
	Move   Move
	Reason string
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move (%d,%d): %s", e.Move.Row, e.Move.Col, e.Reason)
}

// SearchMisuseError is returned by ChooseMove when the board is already
// terminal (won or full).
type SearchMisuseError struct {
	Reason string
}

func (e *SearchMisuseError) Error() string {
	return "search misuse: " + e.Reason
}
