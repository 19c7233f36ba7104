// Package game runs complete games between pluggable players (AI, random,
// human) over the search engine, with history, rendering, and an observer
// hook for spectators.
package game

import (
	"fmt"
	"io"
	"time"

	"github.com/Aaryan94/Tic-Tac-Toe-Unbeatable-AI/engine"
)

type Settings struct {
	BoardSize int `json:"board_size"`
	// DelayMs paces move application so console and spectator output stays
	// readable. Zero for tests and benchmarks.
	DelayMs int `json:"delay_ms"`
}

func DefaultSettings() Settings {
	return Settings{BoardSize: 3, DelayMs: 500}
}

// Result is the outcome of one finished game.
type Result struct {
	Winner engine.Mark `json:"winner"`
	Draw   bool        `json:"draw"`
	Moves  int         `json:"moves"`
}

// MoveEvent is published to the observer after every applied move. The board
// is a copy; observers may keep it.
type MoveEvent struct {
	Board      *engine.Board
	Move       engine.Move
	Mark       engine.Mark
	MoveNumber int
	IsAI       bool
	Nodes      int64
	Cutoffs    int64
	ElapsedMs  float64
	Winner     engine.Mark
	Draw       bool
}

// Game owns a board and two players and runs the turn loop. X always moves
// first. The engine core never does I/O; rendering, pacing, and game-over
// messaging all live here.
type Game struct {
	settings Settings
	board    *engine.Board
	xPlayer  Player
	oPlayer  Player
	history  History
	out      io.Writer
	onMove   func(MoveEvent)
}

func New(settings Settings, xPlayer, oPlayer Player) (*Game, error) {
	if xPlayer.Mark() != engine.MarkX || oPlayer.Mark() != engine.MarkO {
		return nil, fmt.Errorf("players must be created for X and O respectively")
	}
	board, err := engine.NewBoard(settings.BoardSize)
	if err != nil {
		return nil, err
	}
	return &Game{
		settings: settings,
		board:    board,
		xPlayer:  xPlayer,
		oPlayer:  oPlayer,
		out:      io.Discard,
	}, nil
}

// SetOutput enables console rendering of the game to w.
func (g *Game) SetOutput(w io.Writer) {
	g.out = w
}

// SetObserver registers a callback invoked after every applied move, from the
// game loop goroutine.
func (g *Game) SetObserver(fn func(MoveEvent)) {
	g.onMove = fn
}

func (g *Game) Board() *engine.Board {
	return g.board.Clone()
}

func (g *Game) History() History {
	return g.history
}

// Play runs the game to completion and returns the result.
func (g *Game) Play() (Result, error) {
	fmt.Fprintf(g.out, "%dx%d board. Need %d in a row to win.\n", g.board.Size(), g.board.Size(), g.board.Size())
	g.render()

	toMove := g.xPlayer
	moves := 0
	for {
		turnStart := time.Now()
		move, err := toMove.ChooseMove(g.board)
		if err != nil {
			return Result{}, fmt.Errorf("%s to move: %w", toMove.Mark(), err)
		}
		if err := g.board.Place(move, toMove.Mark()); err != nil {
			return Result{}, fmt.Errorf("%s played an illegal move: %w", toMove.Mark(), err)
		}
		moves++
		elapsedMs := float64(time.Since(turnStart).Milliseconds())
		ai, isAI := toMove.(*AIPlayer)
		entry := HistoryEntry{Move: move, Mark: toMove.Mark(), ElapsedMs: elapsedMs, IsAI: isAI}
		if isAI {
			entry.Nodes = ai.LastResult().NodesVisited
			entry.Cutoffs = ai.LastResult().Cutoffs
		}
		g.history.Push(entry)

		fmt.Fprintf(g.out, "%s plays (%d,%d)\n", toMove.Mark(), move.Row, move.Col)
		g.render()

		winner := g.board.CheckWin(move)
		draw := winner == engine.MarkEmpty && g.board.IsFull()
		g.publish(move, entry, moves, winner, draw)

		if winner != engine.MarkEmpty {
			fmt.Fprintf(g.out, "%s wins!\n", winner)
			return Result{Winner: winner, Moves: moves}, nil
		}
		if draw {
			fmt.Fprintln(g.out, "It's a tie!")
			return Result{Draw: true, Moves: moves}, nil
		}

		if toMove == g.xPlayer {
			toMove = g.oPlayer
		} else {
			toMove = g.xPlayer
		}
		if g.settings.DelayMs > 0 {
			time.Sleep(time.Duration(g.settings.DelayMs) * time.Millisecond)
		}
	}
}

func (g *Game) publish(move engine.Move, entry HistoryEntry, moveNumber int, winner engine.Mark, draw bool) {
	if g.onMove == nil {
		return
	}
	g.onMove(MoveEvent{
		Board:      g.board.Clone(),
		Move:       move,
		Mark:       entry.Mark,
		MoveNumber: moveNumber,
		IsAI:       entry.IsAI,
		Nodes:      entry.Nodes,
		Cutoffs:    entry.Cutoffs,
		ElapsedMs:  entry.ElapsedMs,
		Winner:     winner,
		Draw:       draw,
	})
}

func (g *Game) render() {
	if g.out == io.Discard {
		return
	}
	size := g.board.Size()
	for row := 0; row < size; row++ {
		fmt.Fprint(g.out, "| ")
		for col := 0; col < size; col++ {
			mark := g.board.At(row, col)
			cell := " "
			if mark != engine.MarkEmpty {
				cell = mark.String()
			}
			fmt.Fprintf(g.out, "%s | ", cell)
		}
		fmt.Fprintln(g.out)
	}
	fmt.Fprintln(g.out)
}
