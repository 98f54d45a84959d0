package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/pointing/internal/common/clock"
	"github.com/KirkDiggler/pointing/internal/common/uuid"
	"github.com/KirkDiggler/pointing/internal/config"
	"github.com/KirkDiggler/pointing/internal/handlers/httpapi"
	"github.com/KirkDiggler/pointing/internal/handlers/ws"
	sessionRepo "github.com/KirkDiggler/pointing/internal/repositories/session"
	sessionService "github.com/KirkDiggler/pointing/internal/services/session"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// redisPinger adapts the go-redis client to the health check
type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

func main() {
	// Local development reads settings from a .env file
	_ = godotenv.Load()

	cfg := config.Load()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize session repository
	repo, err := sessionRepo.NewRedis(&sessionRepo.Config{
		RedisClient: redisClient,
		TTL:         cfg.SessionTTL,
	})
	if err != nil {
		log.Fatalf("Failed to create session repository: %v", err)
	}

	// Initialize session service
	service, err := sessionService.New(&sessionService.Config{
		SessionRepo: repo,
		Clock:       &clock.DefaultClock{},
		UUID:        uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create session service: %v", err)
	}

	// Initialize the synchronization gateway
	gateway, err := ws.New(&ws.Config{
		SessionService: service,
	})
	if err != nil {
		log.Fatalf("Failed to create gateway: %v", err)
	}

	// Initialize the REST handler; its mutations broadcast through the
	// gateway so WebSocket clients see REST-originated changes too
	apiHandler, err := httpapi.New(&httpapi.Config{
		SessionService: service,
		Broadcaster:    gateway,
		Pinger:         redisPinger{client: redisClient},
	})
	if err != nil {
		log.Fatalf("Failed to create HTTP handler: %v", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", gateway.HandleConnection)
	mux.Handle("/", apiHandler)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Server has been shut down")
}
