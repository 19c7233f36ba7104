package game

import "github.com/Aaryan94/Tic-Tac-Toe-Unbeatable-AI/engine"

type HistoryEntry struct {
	Move      engine.Move `json:"move"`
	Mark      engine.Mark `json:"mark"`
	ElapsedMs float64     `json:"elapsed_ms"`
	IsAI      bool        `json:"is_ai"`
	Nodes     int64       `json:"nodes"`
	Cutoffs   int64       `json:"cutoffs"`
}

type History struct {
	entries []HistoryEntry
}

func (h *History) Clear() {
	h.entries = nil
}

func (h *History) Push(entry HistoryEntry) {
	h.entries = append(h.entries, entry)
}

func (h History) Size() int {
	return len(h.entries)
}

func (h History) All() []HistoryEntry {
	return append([]HistoryEntry(nil), h.entries...)
}
