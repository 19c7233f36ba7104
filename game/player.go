package game

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/Aaryan94/Tic-Tac-Toe-Unbeatable-AI/engine"
)

// Player produces one move for a given board. Implementations must return a
// legal move; the game loop rejects anything else.
type Player interface {
	Mark() engine.Mark
	ChooseMove(board *engine.Board) (engine.Move, error)
}

// Depth used on boards too large for exhaustive search when the caller left
// depth on auto.
const (
	autoDepthLargeBoard  = 3
	autoBudgetLargeBoard = 200
)

// AIPlayer wraps the search engine. With MaxDepth == 0 it picks an automatic
// policy: exhaustive on 3×3, shallow with a small time budget on anything
// larger. A negative MaxDepth forces unbounded search on any size.
type AIPlayer struct {
	mark       engine.Mark
	config     engine.SearchConfig
	lastResult engine.SearchResult
}

func NewAIPlayer(mark engine.Mark, config engine.SearchConfig) *AIPlayer {
	return &AIPlayer{mark: mark, config: config}
}

func (p *AIPlayer) Mark() engine.Mark {
	return p.mark
}

func (p *AIPlayer) ChooseMove(board *engine.Board) (engine.Move, error) {
	config := p.config
	if config.MaxDepth == 0 && board.Size() > 3 {
		config.MaxDepth = autoDepthLargeBoard
		if config.TimeBudgetMs == 0 {
			config.TimeBudgetMs = autoBudgetLargeBoard
		}
	}
	result, err := engine.ChooseMove(board, p.mark, config)
	if err != nil {
		return engine.Move{}, err
	}
	p.lastResult = result
	return result.BestMove, nil
}

// LastResult exposes the instrumentation of the most recent search.
func (p *AIPlayer) LastResult() engine.SearchResult {
	return p.lastResult
}

// RandomPlayer picks a uniformly random legal move. Seedable for
// reproducible games.
type RandomPlayer struct {
	mark engine.Mark
	rng  *rand.Rand
}

func NewRandomPlayer(mark engine.Mark, seed int64) *RandomPlayer {
	return &RandomPlayer{mark: mark, rng: rand.New(rand.NewSource(seed))}
}

func (p *RandomPlayer) Mark() engine.Mark {
	return p.mark
}

func (p *RandomPlayer) ChooseMove(board *engine.Board) (engine.Move, error) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return engine.Move{}, fmt.Errorf("no legal moves for %s", p.mark)
	}
	return moves[p.rng.Intn(len(moves))], nil
}

// HumanPlayer reads "row col" pairs from in, re-prompting until the input
// parses and names an empty cell.
type HumanPlayer struct {
	mark    engine.Mark
	scanner *bufio.Scanner
	out     io.Writer
}

func NewHumanPlayer(mark engine.Mark, in io.Reader, out io.Writer) *HumanPlayer {
	return &HumanPlayer{
		mark:    mark,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (p *HumanPlayer) Mark() engine.Mark {
	return p.mark
}

func (p *HumanPlayer) ChooseMove(board *engine.Board) (engine.Move, error) {
	max := board.Size() - 1
	for {
		fmt.Fprintf(p.out, "%s's turn. Enter move as \"row col\" (0-%d): ", p.mark, max)
		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return engine.Move{}, err
			}
			return engine.Move{}, io.EOF
		}
		fields := strings.Fields(p.scanner.Text())
		if len(fields) != 2 {
			fmt.Fprintln(p.out, "Invalid input. Enter two numbers separated by a space.")
			continue
		}
		var row, col int
		if _, err := fmt.Sscanf(fields[0]+" "+fields[1], "%d %d", &row, &col); err != nil {
			fmt.Fprintln(p.out, "Invalid input. Enter two numbers separated by a space.")
			continue
		}
		move := engine.Move{Row: row, Col: col}
		if !board.InBounds(move) || board.At(row, col) != engine.MarkEmpty {
			fmt.Fprintln(p.out, "Invalid square. Try again.")
			continue
		}
		return move, nil
	}
}
