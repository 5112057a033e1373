package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yourusername/urengine/pkg/session"
)

// ServerConfig holds the server configuration.
type ServerConfig struct {
	Host           string        // Host to bind to (default "localhost")
	Port           int           // Port to listen on (default 8080)
	ReadTimeout    time.Duration // Read timeout (default 30s)
	WriteTimeout   time.Duration // Write timeout (0 keeps event streams open)
	IdleTimeout    time.Duration // Idle timeout (default 60s)
	MaxSimulations int           // Max concurrent simulation runs (default 2)
}

// DefaultConfig returns a ServerConfig with sensible defaults.
func DefaultConfig() ServerConfig {
	return ServerConfig{
		Host:           "localhost",
		Port:           8080,
		ReadTimeout:    30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxSimulations: 2,
	}
}

// Server is the HTTP API server.
type Server struct {
	config   ServerConfig
	handlers *Handlers
	server   *http.Server
	pool     *WorkerPool
	version  string
}

// NewServer creates a server for sess. The server takes ownership of the
// session; callers must not use it afterwards.
func NewServer(sess *session.Session, config ServerConfig, version string) *Server {
	pool := NewWorkerPool(config.MaxSimulations)
	return &Server{
		config:   config,
		handlers: NewHandlers(sess, version, pool),
		pool:     pool,
		version:  version,
	}
}

// Pool returns the simulation pool for monitoring.
func (s *Server) Pool() *WorkerPool {
	return s.pool
}

// corsMiddleware adds CORS headers for browser access.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs all requests.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", s.handlers.Health)
	mux.HandleFunc("GET /api/state", s.handlers.HandleState)
	mux.HandleFunc("GET /api/legal", s.handlers.HandleLegal)
	mux.HandleFunc("GET /api/history", s.handlers.HandleHistory)
	mux.HandleFunc("GET /api/events", s.handlers.Events)
	mux.HandleFunc("POST /api/new", s.handlers.HandleNew)
	mux.HandleFunc("POST /api/roll", s.handlers.HandleRoll)
	mux.HandleFunc("POST /api/move", s.handlers.HandleMove)
	mux.HandleFunc("POST /api/pass", s.handlers.HandlePass)
	mux.HandleFunc("POST /api/simulate", s.handlers.HandleSimulate)
	mux.HandleFunc("/api/ws", s.handlers.WebSocket)

	return corsMiddleware(loggingMiddleware(mux))
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}
	// Shutdown waits for handlers; end event streams so it need not time out.
	s.server.RegisterOnShutdown(s.handlers.events.Close)

	log.Printf("Starting Ur server v%s on %s", s.version, addr)
	log.Printf("Endpoints:")
	log.Printf("  GET  /api/health    - Health check")
	log.Printf("  GET  /api/state     - Current board and turn")
	log.Printf("  GET  /api/legal     - Legal moves for the pending roll")
	log.Printf("  GET  /api/history   - Game record and transcript")
	log.Printf("  GET  /api/events    - Server-Sent Events of every action")
	log.Printf("  POST /api/new       - Start a new game")
	log.Printf("  POST /api/roll      - Roll the dice")
	log.Printf("  POST /api/move      - Move by {row,col} or {path}")
	log.Printf("  POST /api/pass      - Pass the turn")
	log.Printf("  POST /api/simulate  - Random self-play statistics")
	log.Printf("  WS   /api/ws        - WebSocket game commands")

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// ListenAndServeWithGracefulShutdown starts the server and handles shutdown signals.
func (s *Server) ListenAndServeWithGracefulShutdown() error {
	errChan := make(chan error, 1)

	go func() {
		if err := s.Start(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-quit:
		log.Printf("Received signal %v, shutting down...", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped gracefully")
	return nil
}
