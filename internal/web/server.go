// Package web serves the rendered sleep chart on localhost.
package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/emiliopalmerini/sleepdebt/internal/sleep"
)

// Server holds the augmented table for the duration of rendering. The
// table is read-only once the server starts.
type Server struct {
	nights []sleep.Night
	target float64
	port   int
	router *http.ServeMux
}

func NewServer(nights []sleep.Night, target float64, port int) *Server {
	s := &Server{
		nights: nights,
		target: target,
		port:   port,
		router: http.NewServeMux(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Chart page
	s.router.HandleFunc("GET /", s.handleChart)

	// JSON series backing the chart
	s.router.HandleFunc("GET /api/nights", s.handleAPINights)
}

// URL returns the address the chart page is served at.
func (s *Server) URL() string {
	return fmt.Sprintf("http://localhost:%d", s.port)
}

func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	fmt.Printf("Serving sleep chart at %s\n", s.URL())

	// Handle graceful shutdown
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			fmt.Printf("Server shutdown error: %v\n", err)
		}
	}()

	err := server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil // Graceful shutdown
	}
	return err
}
