// Package spectate serves a read-only view of a running game over HTTP.
package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"gosnake/internal/core"
	"gosnake/internal/game"
)

// Source provides consistent snapshots of a game.
type Source interface {
	Snapshot() game.Snapshot
}

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// Server exposes snapshots from a Source. It never mutates the game.
type Server struct {
	src      Source
	poll     time.Duration
	log      *log.Logger
	upgrader websocket.Upgrader
}

// New returns a Server that checks src for changes every poll interval when
// streaming.
func New(src Source, poll time.Duration, logger *log.Logger) *Server {
	if poll <= 0 {
		poll = 50 * time.Millisecond
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		src:  src,
		poll: poll,
		log:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// Router returns the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", s.Health)
	r.Get("/state", s.State)
	r.Get("/params", s.Params)
	r.Get("/ws", s.Stream)
	return r
}

// Health answers liveness checks with a plain "ok".
func (*Server) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// State writes the current snapshot as JSON.
func (s *Server) State(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.src.Snapshot()); err != nil {
		s.log.Printf("spectate: failed to write state: %v", err)
	}
}

// Params writes the settings the game was started with, when the source
// exposes them.
func (s *Server) Params(w http.ResponseWriter, r *http.Request) {
	provider, ok := s.src.(parameterProvider)
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(provider.Parameters()); err != nil {
		s.log.Printf("spectate: failed to write params: %v", err)
	}
}

// Stream upgrades to a websocket and pushes a snapshot whenever the game
// visibly changes.
func (s *Server) Stream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Printf("spectate: upgrade failed: %v", err)
		return
	}
	defer conn.Close()
	s.log.Printf("spectate: %s connected", r.RemoteAddr)
	defer s.log.Printf("spectate: %s disconnected", r.RemoteAddr)

	// Spectators send nothing; reading only notices the peer going away.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	last := s.src.Snapshot()
	if err := conn.WriteJSON(last); err != nil {
		s.log.Printf("spectate: write to %s: %v", r.RemoteAddr, err)
		return
	}

	ticker := time.NewTicker(s.poll)
	defer ticker.Stop()
	for {
		select {
		case <-r.Context().Done():
			return
		case <-gone:
			return
		case <-ticker.C:
			snap := s.src.Snapshot()
			if !snap.Changed(last) {
				continue
			}
			last = snap
			conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
			if err := conn.WriteJSON(snap); err != nil {
				s.log.Printf("spectate: write to %s: %v", r.RemoteAddr, err)
				return
			}
		}
	}
}

// ListenAndServe serves h on addr until ctx is cancelled.
func ListenAndServe(ctx context.Context, addr string, h http.Handler, logger *log.Logger) error {
	srv := &http.Server{Addr: addr, Handler: h, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()
	logger.Printf("spectate: listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
