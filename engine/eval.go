package engine

// HeuristicWeights are tuning parameters for the cutoff evaluator, exposed as
// configuration rather than hardcoded constants. Directional behavior (more
// marks on an uncontested line scores higher, an immediate threat carries a
// large penalty) is the contract; the exact values are not.
type HeuristicWeights struct {
	// LineBase is the value of a single mark on an uncontested line.
	LineBase float64 `json:"line_base"`
	// LineGrowth is the per-mark multiplier, making an (n-1)-filled open
	// line worth far more than a 1-filled one.
	LineGrowth float64 `json:"line_growth"`
	// ThreatPenalty is applied when a line is one opponent mark away from a
	// win. It must outweigh any normal positional reward.
	ThreatPenalty float64 `json:"threat_penalty"`
}

func DefaultHeuristicWeights() HeuristicWeights {
	return HeuristicWeights{
		LineBase:      1.0,
		LineGrowth:    4.0,
		ThreatPenalty: 50000.0,
	}
}

// heuristicCap bounds the evaluator so terminal scores always dominate it.
const heuristicCap = 100000000.0

// Evaluate scores a non-terminal position from the perspective of player:
// positive favors player, negative favors the opponent. Only invoked at
// search cutoff; terminal states are always scored exactly by the search.
func Evaluate(b *Board, player Mark, weights HeuristicWeights) float64 {
	size := b.Size()
	score := 0.0
	for _, line := range Lines(size) {
		tally := TallyLine(b, line, player)
		if tally.Theirs == 0 && tally.Mine > 0 {
			score += lineValue(tally.Mine, weights)
			if tally.Mine == size-1 {
				score += weights.ThreatPenalty
			}
		}
		if tally.Mine == 0 && tally.Theirs > 0 {
			score -= lineValue(tally.Theirs, weights)
			if tally.Theirs == size-1 {
				// One empty cell away from losing; dominates any
				// positional reward elsewhere on the board.
				score -= weights.ThreatPenalty
			}
		}
	}
	if score > heuristicCap {
		return heuristicCap
	}
	if score < -heuristicCap {
		return -heuristicCap
	}
	return score
}

func lineValue(marks int, weights HeuristicWeights) float64 {
	value := weights.LineBase
	for i := 1; i < marks; i++ {
		value *= weights.LineGrowth
	}
	return value
}
