package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/alexiusacademia/goframe/internal/config"
)

// NewRouter returns the API routes behind the rate limiter
func NewRouter(cfg *config.Config) *mux.Router {
	router := mux.NewRouter()

	limiter := NewIPRateLimiter(rate.Limit(cfg.Rate), cfg.Burst)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	h := &Handler{}
	api.HandleFunc("/health", h.Health).Methods("GET")
	api.HandleFunc("/solve", h.Solve).Methods("POST")
	api.HandleFunc("/report/pdf", h.ReportPDF).Methods("POST")
	api.HandleFunc("/report/xlsx", h.ReportXLSX).Methods("POST")

	return router
}

// Run serves the API on cfg.Addr until ctx is done, then shuts down
// gracefully
func Run(ctx context.Context, cfg *config.Config) error {
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           NewRouter(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		log.Printf("Starting server on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Println("Server stopped")
	return nil
}
