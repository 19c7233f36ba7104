// Package bench measures search efficiency: node counts and wall time of
// plain minimax vs alpha-beta vs alpha-beta with centre-first move ordering,
// plus AI-vs-AI match runs. Results can be persisted to SQLite for
// comparison across engine changes.
package bench

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Aaryan94/Tic-Tac-Toe-Unbeatable-AI/engine"
	"github.com/Aaryan94/Tic-Tac-Toe-Unbeatable-AI/game"
)

const (
	ModeMinimax   = "minimax"
	ModeAlphaBeta = "alphabeta"
	ModeOrdered   = "alphabeta+ordering"
)

var modes = []string{ModeMinimax, ModeAlphaBeta, ModeOrdered}

type placement struct {
	move engine.Move
	mark engine.Mark
}

// Measurement is one search call on one position in one mode.
type Measurement struct {
	Size      int         `json:"size"`
	Position  int         `json:"position"`
	Mode      string      `json:"mode"`
	Nodes     int64       `json:"nodes"`
	Cutoffs   int64       `json:"cutoffs"`
	ElapsedMs float64     `json:"elapsed_ms"`
	Move      engine.Move `json:"move"`
	Score     float64     `json:"score"`
}

// Comparison is one full benchmark run across sizes, positions, and modes.
type Comparison struct {
	RunID     string        `json:"run_id"`
	StartedAt time.Time     `json:"started_at"`
	MaxDepth  int           `json:"max_depth"`
	TimeMs    int           `json:"time_ms"`
	Results   []Measurement `json:"results"`
}

// RunComparison searches every canned mid-game position for every size in
// each of the three modes and records nodes and timing. Depth and time budget
// apply identically to all modes so the numbers are comparable.
func RunComparison(sizes []int, maxDepth, timeMs int) (Comparison, error) {
	comparison := Comparison{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
		MaxDepth:  maxDepth,
		TimeMs:    timeMs,
	}
	for _, size := range sizes {
		positions, err := positionsForSize(size)
		if err != nil {
			return Comparison{}, err
		}
		for posIdx, position := range positions {
			for _, mode := range modes {
				board, err := buildBoard(size, position)
				if err != nil {
					return Comparison{}, err
				}
				config := configForMode(mode, maxDepth, timeMs)
				result, err := engine.ChooseMove(board, engine.MarkX, config)
				if err != nil {
					return Comparison{}, fmt.Errorf("size %d position %d mode %s: %w", size, posIdx, mode, err)
				}
				comparison.Results = append(comparison.Results, Measurement{
					Size:      size,
					Position:  posIdx,
					Mode:      mode,
					Nodes:     result.NodesVisited,
					Cutoffs:   result.Cutoffs,
					ElapsedMs: float64(result.Elapsed.Microseconds()) / 1000.0,
					Move:      result.BestMove,
					Score:     result.Score,
				})
			}
		}
	}
	return comparison, nil
}

func configForMode(mode string, maxDepth, timeMs int) engine.SearchConfig {
	config := engine.DefaultSearchConfig()
	config.MaxDepth = maxDepth
	config.TimeBudgetMs = timeMs
	switch mode {
	case ModeMinimax:
		config.Pruning = false
		config.MoveOrdering = false
	case ModeAlphaBeta:
		config.Pruning = true
		config.MoveOrdering = false
	default:
		config.Pruning = true
		config.MoveOrdering = true
	}
	return config
}

// positionsForSize builds canned mid-game openings so that measurements run
// on realistic boards where pruning and ordering differences show up, not on
// the symmetric empty board.
func positionsForSize(size int) ([][]placement, error) {
	if size < 3 {
		return nil, &engine.InvalidSizeError{Size: size}
	}
	at := func(row, col int, mark engine.Mark) placement {
		return placement{move: engine.Move{Row: row, Col: col}, mark: mark}
	}
	if size%2 == 1 {
		m := size / 2
		return [][]placement{
			{at(m, m, engine.MarkO)},
			{at(m, m, engine.MarkX)},
			{at(m, m, engine.MarkO), at(0, 0, engine.MarkX)},
			{at(m, m, engine.MarkX), at(0, size-1, engine.MarkO)},
			{at(0, 0, engine.MarkX), at(size-1, size-1, engine.MarkO)},
			{at(0, 0, engine.MarkX), at(m, m-1, engine.MarkO)},
		}, nil
	}
	a := size/2 - 1
	b := size / 2
	return [][]placement{
		{at(a, a, engine.MarkO)},
		{at(a, b, engine.MarkX)},
		{at(a, a, engine.MarkX), at(b, b, engine.MarkO)},
		{at(0, 0, engine.MarkX), at(b, a, engine.MarkO)},
		{at(0, 0, engine.MarkX), at(size-1, size-1, engine.MarkO)},
		{at(0, 0, engine.MarkO), at(0, size-2, engine.MarkX)},
	}, nil
}

func buildBoard(size int, position []placement) (*engine.Board, error) {
	board, err := engine.NewBoard(size)
	if err != nil {
		return nil, err
	}
	for _, p := range position {
		if err := board.Place(p.move, p.mark); err != nil {
			return nil, err
		}
	}
	return board, nil
}

// MatchResult aggregates AI-vs-AI self-play games.
type MatchResult struct {
	Games      int     `json:"games"`
	XWins      int     `json:"x_wins"`
	OWins      int     `json:"o_wins"`
	Draws      int     `json:"draws"`
	TotalNodes int64   `json:"total_nodes"`
	ElapsedMs  float64 `json:"elapsed_ms"`
}

// RunMatch plays games of AI vs AI with the given config on both sides. With
// optimal play on 3×3 every game is a draw; deviations show up here first.
func RunMatch(size, games int, config engine.SearchConfig) (MatchResult, error) {
	start := time.Now()
	result := MatchResult{Games: games}
	for i := 0; i < games; i++ {
		x := game.NewAIPlayer(engine.MarkX, config)
		o := game.NewAIPlayer(engine.MarkO, config)
		g, err := game.New(game.Settings{BoardSize: size}, x, o)
		if err != nil {
			return MatchResult{}, err
		}
		outcome, err := g.Play()
		if err != nil {
			return MatchResult{}, err
		}
		switch {
		case outcome.Draw:
			result.Draws++
		case outcome.Winner == engine.MarkX:
			result.XWins++
		default:
			result.OWins++
		}
		for _, entry := range g.History().All() {
			result.TotalNodes += entry.Nodes
		}
	}
	result.ElapsedMs = float64(time.Since(start).Milliseconds())
	return result, nil
}
