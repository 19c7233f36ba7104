package analytics

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Aaryan94/Tic-Tac-Toe-Unbeatable-AI/engine"
)

func TestHubBroadcastsBoardPayloads(t *testing.T) {
	hub := NewHub()
	done := make(chan struct{})
	defer close(done)
	go hub.Run(done)

	client := &Client{hub: hub, send: make(chan []byte, 4)}
	hub.Register(client)
	if !hub.HasClients() {
		t.Fatalf("client not registered")
	}

	hub.PublishBoard(BoardPayload{SessionID: "s1", Status: "running", NextPlayer: "O"})

	select {
	case raw := <-client.send:
		var msg wsMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if msg.Type != "board" {
			t.Fatalf("expected board message, got %q", msg.Type)
		}
		var payload BoardPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			t.Fatalf("unmarshal payload: %v", err)
		}
		if payload.SessionID != "s1" || payload.Status != "running" {
			t.Fatalf("payload did not round-trip: %+v", payload)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no broadcast received")
	}

	hub.Unregister(client)
	if hub.HasClients() {
		t.Fatalf("client still registered after unregister")
	}
}

func TestHubDropsWhenNobodyListens(t *testing.T) {
	hub := NewHub()
	// No Run goroutine and a full buffer must not block the publisher.
	for i := 0; i < 100; i++ {
		hub.PublishBoard(BoardPayload{SessionID: "s"})
		hub.PublishStats(StatsPayload{SessionID: "s"})
	}
}

func TestBoardToGrid(t *testing.T) {
	board, err := engine.NewBoard(3)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	if err := board.Place(engine.Move{Row: 0, Col: 0}, engine.MarkX); err != nil {
		t.Fatalf("Place: %v", err)
	}
	if err := board.Place(engine.Move{Row: 2, Col: 1}, engine.MarkO); err != nil {
		t.Fatalf("Place: %v", err)
	}
	grid := BoardToGrid(board)
	if len(grid) != 3 || len(grid[0]) != 3 {
		t.Fatalf("wrong grid shape: %v", grid)
	}
	if grid[0][0] != 1 || grid[2][1] != 2 || grid[1][1] != 0 {
		t.Fatalf("grid values wrong: %v", grid)
	}
}
