package cli

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/primebench/primebench/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the prime-sum target service",
	Long: `Run the HTTP service that computes the sum of primes up to n.

  GET /sum?n=100000  ->  {"n": 100000, "sum_of_primes": ..., "time": ...}
  GET /health        ->  healthy

Invalid input gets a 400 with {"error": "Invalid input"}.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	port, _ := cmd.Flags().GetInt("port")
	readTimeout, _ := cmd.Flags().GetDuration("read-timeout")
	writeTimeout, _ := cmd.Flags().GetDuration("write-timeout")

	srv := server.New(server.Config{
		Addr:         fmt.Sprintf(":%d", port),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.ListenAndServe(ctx)
}

func init() {
	serveCmd.Flags().IntP("port", "p", 5000, "Port to listen on")
	serveCmd.Flags().Duration("read-timeout", 5*time.Second, "HTTP read timeout")
	serveCmd.Flags().Duration("write-timeout", 60*time.Second, "HTTP write timeout")
}
