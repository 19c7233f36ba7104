package engine

// evalCache memoizes heuristic evaluations within one search call, keyed by
// the incremental zobrist hash of the stones. The evaluator ignores the side
// to move, and the maximizing player is fixed per search, so the stone hash
// alone identifies an entry. Hits return identical values, so caching never
// changes the chosen move or the node count.
type evalCache struct {
	entries map[uint64]float64
	limit   int
	probes  int64
	hits    int64
}

func newEvalCache(limit int) *evalCache {
	if limit <= 0 {
		limit = 1 << 16
	}
	return &evalCache{
		entries: make(map[uint64]float64),
		limit:   limit,
	}
}

func (c *evalCache) get(key uint64) (float64, bool) {
	c.probes++
	value, ok := c.entries[key]
	if ok {
		c.hits++
	}
	return value, ok
}

func (c *evalCache) put(key uint64, value float64) {
	// Stop inserting once full rather than evicting; one search rarely
	// revisits enough distinct frontiers to make eviction worth the cost.
	if len(c.entries) >= c.limit {
		return
	}
	c.entries[key] = value
}
