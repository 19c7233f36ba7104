package analytics

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/Aaryan94/Tic-Tac-Toe-Unbeatable-AI/engine"
	"github.com/Aaryan94/Tic-Tac-Toe-Unbeatable-AI/game"
)

const restartDelay = 2 * time.Second

// Server runs an endless AI-vs-AI exhibition and streams it to websocket
// spectators on /ws. A JSON snapshot of the latest position is available on
// /api/status.
type Server struct {
	addr     string
	settings game.Settings
	config   engine.SearchConfig
	hub      *Hub

	mu        sync.Mutex
	latest    BoardPayload
	hasLatest bool
}

func NewServer(addr string, settings game.Settings, config engine.SearchConfig) *Server {
	return &Server{
		addr:     addr,
		settings: settings,
		config:   config,
		hub:      NewHub(),
	}
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	go s.hub.Run(ctx.Done())
	go s.exhibitionLoop(ctx)

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Get("/api/status", s.handleStatus)
	router.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
		ServeWS(s.hub, s.snapshot, w, r)
	})

	httpServer := &http.Server{Addr: s.addr, Handler: router}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Printf("spectator server listening on %s", s.addr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) snapshot() (BoardPayload, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest, s.hasLatest
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	payload, ok := s.snapshot()
	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.Write([]byte(`{"status":"waiting"}`))
		return
	}
	w.Write(mustMarshal(payload))
}

// exhibitionLoop plays AI-vs-AI games back to back, publishing each move to
// the hub. Games restart after a short pause so late joiners always see a
// fresh position soon.
func (s *Server) exhibitionLoop(ctx context.Context) {
	for ctx.Err() == nil {
		sessionID := uuid.NewString()
		x := game.NewAIPlayer(engine.MarkX, s.config)
		o := game.NewAIPlayer(engine.MarkO, s.config)
		g, err := game.New(s.settings, x, o)
		if err != nil {
			log.Printf("exhibition setup failed: %v", err)
			return
		}
		g.SetObserver(func(ev game.MoveEvent) {
			s.publishMove(sessionID, ev)
		})
		result, err := g.Play()
		if err != nil {
			log.Printf("exhibition game %s failed: %v", sessionID, err)
			return
		}
		log.Printf("exhibition game %s finished: winner=%s draw=%v moves=%d",
			sessionID, result.Winner, result.Draw, result.Moves)

		select {
		case <-ctx.Done():
			return
		case <-time.After(restartDelay):
		}
	}
}

func (s *Server) publishMove(sessionID string, ev game.MoveEvent) {
	move := ev.Move
	next := engine.Opponent(ev.Mark)
	status := "running"
	winner := ""
	switch {
	case ev.Winner != engine.MarkEmpty:
		status = "won"
		winner = ev.Winner.String()
	case ev.Draw:
		status = "draw"
	}
	payload := BoardPayload{
		SessionID:  sessionID,
		Board:      BoardToGrid(ev.Board),
		LastMove:   &move,
		NextPlayer: next.String(),
		MoveCount:  ev.MoveNumber,
		Status:     status,
		Winner:     winner,
	}

	s.mu.Lock()
	s.latest = payload
	s.hasLatest = true
	s.mu.Unlock()

	s.hub.PublishBoard(payload)
	if ev.IsAI {
		s.hub.PublishStats(StatsPayload{
			SessionID:  sessionID,
			MoveNumber: ev.MoveNumber,
			Player:     ev.Mark.String(),
			Nodes:      ev.Nodes,
			Cutoffs:    ev.Cutoffs,
			ElapsedMs:  ev.ElapsedMs,
		})
	}
}
