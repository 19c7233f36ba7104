package engine

import (
	"math"
	"time"
)

// winScore is the base magnitude for terminal win/loss scores. It dominates
// the heuristic (capped at heuristicCap) by an order of magnitude, and the
// remaining-empties term layered on top makes faster wins score strictly
// higher and faster losses strictly lower.
const winScore = 1000000000.0

// SearchConfig carries all knobs for one ChooseMove call. There is no
// process-wide search state; benchmark and test code vary settings per call
// without cross-test interference.
type SearchConfig struct {
	// MaxDepth limits recursion depth; <= 0 means unbounded (exhaustive).
	MaxDepth int `json:"max_depth"`
	// TimeBudgetMs is a soft wall-clock cap checked at node boundaries;
	// <= 0 means unbounded.
	TimeBudgetMs int `json:"time_budget_ms"`
	// Pruning toggles alpha-beta cutoffs; off means plain minimax. Exists
	// for benchmarking pruning effectiveness.
	Pruning bool `json:"pruning"`
	// MoveOrdering toggles centre-first ordering; off means row-major.
	MoveOrdering bool `json:"move_ordering"`
	// EvalCache memoizes heuristic evaluations within the call.
	EvalCache     bool `json:"eval_cache"`
	EvalCacheSize int  `json:"eval_cache_size"`

	Weights HeuristicWeights `json:"weights"`
}

func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		MaxDepth:      0,
		TimeBudgetMs:  0,
		Pruning:       true,
		MoveOrdering:  true,
		EvalCache:     true,
		EvalCacheSize: 1 << 16,
		Weights:       DefaultHeuristicWeights(),
	}
}

// SearchResult is produced once per top-level search call and is immutable
// once returned.
type SearchResult struct {
	BestMove Move    `json:"best_move"`
	HasMove  bool    `json:"has_move"`
	Score    float64 `json:"score"`

	// Instrumentation for benchmarking; does not affect move choice.
	NodesVisited    int64         `json:"nodes_visited"`
	Cutoffs         int64         `json:"cutoffs"`
	EvalCacheProbes int64         `json:"eval_cache_probes"`
	EvalCacheHits   int64         `json:"eval_cache_hits"`
	Elapsed         time.Duration `json:"-"`
}

type searchContext struct {
	board       *Board
	player      Mark
	config      SearchConfig
	deadline    time.Time
	hasDeadline bool
	zobrist     *Zobrist
	hash        uint64
	cache       *evalCache
	nodes       int64
	cutoffs     int64
}

// ChooseMove runs alpha-beta minimax for player on board and returns the best
// move found. The board is mutated during the search and restored to its
// pre-call state on return; no concurrent search may share a board instance.
//
// Calling it on a board that is already terminal (won or full) fails with
// *SearchMisuseError. Otherwise it always returns a legal move: when the time
// budget expires before any line completes, the first ordered candidate is
// returned as a liveness fallback.
func ChooseMove(b *Board, player Mark, config SearchConfig) (SearchResult, error) {
	if player != MarkX && player != MarkO {
		return SearchResult{}, &SearchMisuseError{Reason: "player must be X or O"}
	}
	if winner := b.Winner(); winner != MarkEmpty {
		return SearchResult{}, &SearchMisuseError{Reason: "board already won by " + winner.String()}
	}
	if b.IsFull() {
		return SearchResult{}, &SearchMisuseError{Reason: "board is full"}
	}

	start := time.Now()
	ctx := &searchContext{
		board:   b,
		player:  player,
		config:  config,
		zobrist: ZobristFor(b.Size()),
	}
	if config.TimeBudgetMs > 0 {
		ctx.deadline = start.Add(time.Duration(config.TimeBudgetMs) * time.Millisecond)
		ctx.hasDeadline = true
	}
	if config.EvalCache {
		ctx.cache = newEvalCache(config.EvalCacheSize)
		ctx.hash = ctx.zobrist.Hash(b, player)
	}

	moves := b.LegalMoves()
	if config.MoveOrdering {
		moves = OrderedMoves(moves, b.Size())
	}

	// Opening fast-path: every first move is symmetric enough that the
	// centre-most candidate is as good as any search result, and on large
	// boards searching an empty board is the most expensive call of the
	// whole game.
	if b.CountEmpty() == b.Size()*b.Size() {
		opening := OrderedMoves(moves, b.Size())[0]
		return SearchResult{
			BestMove: opening,
			HasMove:  true,
			Score:    0,
			Elapsed:  time.Since(start),
		}, nil
	}

	alpha := math.Inf(-1)
	beta := math.Inf(1)
	best := math.Inf(-1)
	bestMove := Move{}
	scored := false
	for _, move := range moves {
		if ctx.timedOut() {
			break
		}
		prevLast, prevHas := ctx.place(move, player)
		value := ctx.minimax(Opponent(player), 1, alpha, beta)
		ctx.undo(move, player, prevLast, prevHas)
		// Strict improvement keeps the first-seen move on ties, making
		// the choice deterministic for a fixed ordering.
		if !scored || value > best {
			best = value
			bestMove = move
			scored = true
		}
		if ctx.config.Pruning && best > alpha {
			alpha = best
		}
	}
	if !scored {
		// Budget exhausted before any root child completed.
		return SearchResult{
			BestMove:        moves[0],
			HasMove:         true,
			Score:           ctx.evaluate(),
			NodesVisited:    ctx.nodes,
			Cutoffs:         ctx.cutoffs,
			EvalCacheProbes: ctx.cacheProbes(),
			EvalCacheHits:   ctx.cacheHits(),
			Elapsed:         time.Since(start),
		}, nil
	}
	return SearchResult{
		BestMove:        bestMove,
		HasMove:         true,
		Score:           best,
		NodesVisited:    ctx.nodes,
		Cutoffs:         ctx.cutoffs,
		EvalCacheProbes: ctx.cacheProbes(),
		EvalCacheHits:   ctx.cacheHits(),
		Elapsed:         time.Since(start),
	}, nil
}

// minimax scores the position with toMove to play. Terminal states are
// evaluated exactly; the heuristic is consulted only at the depth or time
// cutoff. depth counts plies from the root.
func (ctx *searchContext) minimax(toMove Mark, depth int, alpha, beta float64) float64 {
	ctx.nodes++

	// A win can only have been completed by the move just made.
	if last, ok := ctx.board.LastMove(); ok {
		if winner := ctx.board.CheckWin(last); winner != MarkEmpty {
			rem := float64(ctx.board.CountEmpty() + 1)
			if winner == ctx.player {
				return winScore + rem
			}
			return -(winScore + rem)
		}
	}
	if ctx.board.IsFull() {
		return 0
	}
	if ctx.config.MaxDepth > 0 && depth >= ctx.config.MaxDepth {
		return ctx.evaluate()
	}
	if ctx.timedOut() {
		return ctx.evaluate()
	}

	moves := ctx.board.LegalMoves()
	if ctx.config.MoveOrdering {
		moves = OrderedMoves(moves, ctx.board.Size())
	}

	maximizing := toMove == ctx.player
	best := math.Inf(-1)
	if !maximizing {
		best = math.Inf(1)
	}
	for _, move := range moves {
		prevLast, prevHas := ctx.place(move, toMove)
		value := ctx.minimax(Opponent(toMove), depth+1, alpha, beta)
		ctx.undo(move, toMove, prevLast, prevHas)
		if maximizing {
			if value > best {
				best = value
			}
			if ctx.config.Pruning && best > alpha {
				alpha = best
			}
		} else {
			if value < best {
				best = value
			}
			if ctx.config.Pruning && best < beta {
				beta = best
			}
		}
		if ctx.config.Pruning && alpha >= beta {
			ctx.cutoffs++
			break
		}
		if ctx.timedOut() {
			break
		}
	}
	return best
}

func (ctx *searchContext) place(move Move, mark Mark) (Move, bool) {
	prevLast := ctx.board.lastMove
	prevHas := ctx.board.hasLastMove
	ctx.board.place(move, mark)
	if ctx.cache != nil {
		ctx.hash ^= ctx.zobrist.Stone(move, mark)
	}
	return prevLast, prevHas
}

func (ctx *searchContext) undo(move Move, mark Mark, prevLast Move, prevHas bool) {
	ctx.board.Undo(move)
	ctx.board.lastMove = prevLast
	ctx.board.hasLastMove = prevHas
	if ctx.cache != nil {
		ctx.hash ^= ctx.zobrist.Stone(move, mark)
	}
}

func (ctx *searchContext) evaluate() float64 {
	if ctx.cache == nil {
		return Evaluate(ctx.board, ctx.player, ctx.config.Weights)
	}
	if value, ok := ctx.cache.get(ctx.hash); ok {
		return value
	}
	value := Evaluate(ctx.board, ctx.player, ctx.config.Weights)
	ctx.cache.put(ctx.hash, value)
	return value
}

// timedOut is the soft cap check. It runs only at node boundaries, so a
// single evaluation is never interrupted; a search that misses a check simply
// runs a bit long.
func (ctx *searchContext) timedOut() bool {
	return ctx.hasDeadline && !time.Now().Before(ctx.deadline)
}

func (ctx *searchContext) cacheProbes() int64 {
	if ctx.cache == nil {
		return 0
	}
	return ctx.cache.probes
}

func (ctx *searchContext) cacheHits() int64 {
	if ctx.cache == nil {
		return 0
	}
	return ctx.cache.hits
}
