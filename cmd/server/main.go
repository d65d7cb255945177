package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brightpaws/petcrm/internal/api"
	"github.com/brightpaws/petcrm/internal/config"
	"github.com/brightpaws/petcrm/internal/messaging"
	"github.com/brightpaws/petcrm/internal/session"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/redis/go-redis/v9"
)

// checkPortAvailable verifies that the target port is not already in use.
// This prevents confusion from a stale process occupying the port.
func checkPortAvailable(host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("port %d is already in use (addr %s): %v\n"+
			"  Hint: Run 'lsof -i :%d' to find the blocking process", port, addr, err, port)
	}
	ln.Close()
	return nil
}

// openMessageLog builds the message log backend selected by the config.
func openMessageLog(cfg *config.Config, sessionID string) (messaging.Log, func(), error) {
	switch cfg.Messaging.LogBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Messaging.Redis.Addr,
			Password: cfg.Messaging.Redis.Password,
			DB:       cfg.Messaging.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("redis ping (%s): %w", cfg.Messaging.Redis.Addr, err)
		}
		log.Printf("Message log: redis (%s)", cfg.Messaging.Redis.Addr)
		return messaging.NewRedisLog(client, sessionID), func() { client.Close() }, nil

	case "postgres":
		if cfg.Messaging.Postgres.DatabaseURL == "" {
			return nil, nil, fmt.Errorf("postgres log backend selected but no database_url configured")
		}
		db, err := sql.Open("postgres", cfg.Messaging.Postgres.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(3)
		db.SetConnMaxLifetime(5 * time.Minute)

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("postgres ping: %w", err)
		}
		if err := messaging.EnsureSchema(db); err != nil {
			db.Close()
			return nil, nil, err
		}
		log.Println("Message log: postgres (message_log table)")
		return messaging.NewPostgresLog(db, sessionID), func() { db.Close() }, nil

	default:
		log.Println("Message log: in-memory")
		return messaging.NewMemoryLog(), func() {}, nil
	}
}

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.LoadFromEnv(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if os.Getenv("DATABASE_URL") != "" {
		log.Println("[config] DATABASE_URL env override active")
	}

	// Pre-flight check: verify the target port is available
	host := cfg.Server.GetHost()
	port := cfg.Server.Port
	if err := checkPortAvailable(host, port); err != nil {
		log.Fatalf("Pre-flight check FAILED: %v", err)
	}
	log.Printf("Pre-flight check passed: port %d is available", port)

	// One session per server run; an external log backend is keyed by the
	// session id, so mint it first.
	sessionID := session.NewID()
	msgLog, closeLog, err := openMessageLog(cfg, sessionID)
	if err != nil {
		log.Fatalf("Failed to initialize message log: %v", err)
	}
	defer closeLog()

	sess := session.New(session.Options{
		ID:          sessionID,
		Seed:        cfg.Dataset.Seed,
		FirstID:     cfg.Dataset.FirstID,
		Log:         msgLog,
		SendRNG:     rand.New(rand.NewSource(time.Now().UnixNano())),
		SuccessRate: cfg.Messaging.SuccessRate,
	})
	log.Printf("Session %s: generated %d customers (seed %d)", sess.ID, sess.Data.Count(), cfg.Dataset.Seed)

	server := api.NewServer(cfg.Server, cfg.CORS, sess)

	// Setup graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		addr := fmt.Sprintf("%s:%d", host, port)
		log.Printf("Starting server on %s", addr)
		if err := server.ListenAndServe(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-done
	log.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout())
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
