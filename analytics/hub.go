// Package analytics streams live board snapshots and search statistics of a
// locally running exhibition game to websocket spectators. It is observation
// only: moves are never accepted from the network.
package analytics

import (
	"encoding/json"
	"sync"

	"github.com/Aaryan94/Tic-Tac-Toe-Unbeatable-AI/engine"
)

type wsMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// BoardPayload is the board snapshot broadcast after every move.
type BoardPayload struct {
	SessionID  string       `json:"session_id"`
	Board      [][]int      `json:"board"`
	LastMove   *engine.Move `json:"last_move,omitempty"`
	NextPlayer string       `json:"next_player"`
	MoveCount  int          `json:"move_count"`
	Status     string       `json:"status"`
	Winner     string       `json:"winner"`
}

// StatsPayload carries per-move search instrumentation.
type StatsPayload struct {
	SessionID  string  `json:"session_id"`
	MoveNumber int     `json:"move_number"`
	Player     string  `json:"player"`
	Nodes      int64   `json:"nodes"`
	Cutoffs    int64   `json:"cutoffs"`
	ElapsedMs  float64 `json:"elapsed_ms"`
}

type Hub struct {
	mu             sync.Mutex
	clients        map[*Client]struct{}
	broadcastBoard chan BoardPayload
	broadcastStats chan StatsPayload
}

type Client struct {
	hub  *Hub
	send chan []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:        make(map[*Client]struct{}),
		broadcastBoard: make(chan BoardPayload, 16),
		broadcastStats: make(chan StatsPayload, 32),
	}
}

func (h *Hub) Run(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case payload := <-h.broadcastBoard:
			h.broadcast(wsMessage{Type: "board", Payload: mustMarshal(payload)})
		case payload := <-h.broadcastStats:
			h.broadcast(wsMessage{Type: "stats", Payload: mustMarshal(payload)})
		}
	}
}

func (h *Hub) broadcast(msg wsMessage) {
	h.mu.Lock()
	for client := range h.clients {
		client.sendJSON(msg)
	}
	h.mu.Unlock()
}

// PublishBoard drops the payload when the broadcast buffer is full rather
// than stalling the game loop.
func (h *Hub) PublishBoard(payload BoardPayload) {
	select {
	case h.broadcastBoard <- payload:
	default:
	}
}

func (h *Hub) PublishStats(payload StatsPayload) {
	select {
	case h.broadcastStats <- payload:
	default:
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

func (h *Hub) HasClients() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients) > 0
}

func (c *Client) sendJSON(msg wsMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

func mustMarshal(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage("{}")
	}
	return data
}

// BoardToGrid flattens a board into the integer grid the payloads carry:
// 0 empty, 1 X, 2 O.
func BoardToGrid(board *engine.Board) [][]int {
	size := board.Size()
	grid := make([][]int, size)
	for row := 0; row < size; row++ {
		grid[row] = make([]int, size)
		for col := 0; col < size; col++ {
			grid[row][col] = int(board.At(row, col))
		}
	}
	return grid
}
