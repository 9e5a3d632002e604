// Package server implements the target computational service: an HTTP
// endpoint that sums the primes up to N and reports its own computation
// time alongside the result.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"
)

// defaultN is used when the n query parameter is omitted.
const defaultN = 10

// SumResponse is the body returned for a valid /sum request.
type SumResponse struct {
	N           int     `json:"n"`
	SumOfPrimes int64   `json:"sum_of_primes"`
	Time        float64 `json:"time"`
}

// ErrorResponse is the body returned for invalid input.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server wraps the prime-sum HTTP service.
type Server struct {
	httpServer *http.Server
}

// Config holds server tuning knobs.
type Config struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// New creates a server listening on cfg.Addr.
func New(cfg Config) *Server {
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 5 * time.Second
	}
	if cfg.WriteTimeout == 0 {
		// Large N values take a while to compute; the write timeout has
		// to cover the computation, not just the response write.
		cfg.WriteTimeout = 60 * time.Second
	}
	if cfg.IdleTimeout == 0 {
		cfg.IdleTimeout = 120 * time.Second
	}

	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.Addr,
			Handler:      Handler(),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}
}

// Handler returns the service handler. Tests use it directly with an
// httptest server instead of a listening socket.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/sum", handleSum)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "healthy")
	})
	return mux
}

// ListenAndServe runs the server until the context is cancelled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("prime-sum service listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

// handleSum computes the sum of primes up to n.
//
// Invalid input gets a 400 with a structured error body. The original
// service used a non-standard status code here; a conventional
// client-error status is correct and callers treat any non-2xx the same.
func handleSum(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("n")

	n := defaultN
	if raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid input"})
			return
		}
		n = parsed
	}

	start := time.Now()
	sum := sumOfPrimes(n)
	elapsed := time.Since(start)

	writeJSON(w, http.StatusOK, SumResponse{
		N:           n,
		SumOfPrimes: sum,
		Time:        elapsed.Seconds(),
	})
}

// sumOfPrimes returns the sum of all primes in [2, n] by trial division.
func sumOfPrimes(n int) int64 {
	var sum int64
	for num := 2; num <= n; num++ {
		if isPrime(num) {
			sum += int64(num)
		}
	}
	return sum
}

func isPrime(num int) bool {
	if num < 2 {
		return false
	}
	for i := 2; i*i <= num; i++ {
		if num%i == 0 {
			return false
		}
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("writing response: %v", err)
	}
}
