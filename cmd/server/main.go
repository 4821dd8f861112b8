/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the chrono conversion server. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Build the zone registry (presets plus optional zone file)
  3. Create API handler with dependencies
  4. Configure HTTP router
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port    HTTP server port (default: 8080)
  -zones   Optional YAML zone file merged over the presets

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - zonefile: zone data loading
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warp/chrono/api"
	"github.com/warp/chrono/clock"
	"github.com/warp/chrono/zonefile"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	zonePath := flag.String("zones", "", "YAML zone file merged over the presets")
	flag.Parse()

	// Build the zone registry
	zones := zonefile.Presets()
	if *zonePath != "" {
		extra, err := zonefile.Load(*zonePath)
		if err != nil {
			log.Fatalf("Failed to load zone file: %v", err)
		}
		zones.Merge(extra)
	}

	// Initialize handler and router
	handler := api.NewHandler(zones, clock.System{})
	router := api.NewRouter(handler)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on http://localhost:%d", *port)
		log.Printf("API available at http://localhost:%d/api", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
