/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the finance engine HTTP server. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load .env (if present), parse command-line flags
  2. Initialize SQLite store
  3. Optionally seed built-in layouts for a demo organization
  4. Configure HTTP router
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port    HTTP server port (default: 8080, env PORT)
  -db      SQLite database path (default: finance.db, env DATABASE_PATH)
           Use ":memory:" for an in-memory database
  -seed    Organization id to seed with the built-in layouts (optional)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close database connection
  4. Exit

EXAMPLES:
  # Run with file database
  ./server -db="./data/finance.db"

  # Run in-memory with a seeded demo org
  ./server -db=":memory:" -seed=org-demo

SEE ALSO:
  - api/server.go: Router configuration
  - store/sqlite/sqlite.go: Database implementation
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
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/warp/finance-engine/api"
	"github.com/warp/finance-engine/factory"
	"github.com/warp/finance-engine/fincore"
	"github.com/warp/finance-engine/intercompany"
	"github.com/warp/finance-engine/statement"
	"github.com/warp/finance-engine/store/sqlite"
)

func main() {
	// .env is optional; flags override it.
	_ = godotenv.Load()

	port := flag.Int("port", envInt("PORT", 8080), "HTTP server port")
	dbPath := flag.String("db", envStr("DATABASE_PATH", "finance.db"), "SQLite database path")
	seedOrg := flag.String("seed", "", "organization id to seed with built-in layouts")
	flag.Parse()

	store, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	if *seedOrg != "" {
		if err := seed(store, fincore.OrgID(*seedOrg)); err != nil {
			log.Fatalf("Failed to seed layouts: %v", err)
		}
		log.Printf("Seeded built-in layouts for org %s", *seedOrg)
	}

	handler := api.NewHandler(
		statement.NewService(store),
		intercompany.NewService(store),
	)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Finance engine listening on http://localhost:%d/api", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

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

func seed(store *sqlite.Store, org fincore.OrgID) error {
	layouts, err := factory.BuiltinLayouts(org)
	if err != nil {
		return err
	}
	ctx := context.Background()
	for layout, lines := range layouts {
		if err := store.SaveLayout(ctx, layout, lines); err != nil {
			return err
		}
	}
	return nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
