package engine

import "sync"

// Zobrist holds per-cell random keys for incremental position hashing. Tables
// are deterministic per size so hashes are stable across processes.
type Zobrist struct {
	size  int
	cells []uint64
	side  uint64
}

type zobristStore struct {
	mu     sync.Mutex
	tables map[int]*Zobrist
}

var zobristTables = &zobristStore{tables: make(map[int]*Zobrist)}

func ZobristFor(size int) *Zobrist {
	zobristTables.mu.Lock()
	defer zobristTables.mu.Unlock()
	if table, ok := zobristTables.tables[size]; ok {
		return table
	}
	rng := splitmix64{state: uint64(0x9e3779b97f4a7c15) ^ uint64(size)}
	table := &Zobrist{size: size, cells: make([]uint64, size*size*2)}
	for i := range table.cells {
		table.cells[i] = rng.next()
	}
	table.side = rng.next()
	zobristTables.tables[size] = table
	return table
}

// Stone returns the key for mark placed at move. Mark must be X or O.
func (z *Zobrist) Stone(move Move, mark Mark) uint64 {
	idx := (move.Row*z.size + move.Col) * 2
	if mark == MarkO {
		idx++
	}
	return z.cells[idx]
}

// Hash computes the full position hash from scratch. Search keeps its hash
// incrementally and uses this only for seeding and verification.
func (z *Zobrist) Hash(b *Board, toMove Mark) uint64 {
	var hash uint64
	for row := 0; row < z.size; row++ {
		for col := 0; col < z.size; col++ {
			mark := b.At(row, col)
			if mark == MarkEmpty {
				continue
			}
			hash ^= z.Stone(Move{Row: row, Col: col}, mark)
		}
	}
	if toMove == MarkO {
		hash ^= z.side
	}
	return hash
}

type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
