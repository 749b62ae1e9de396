package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ignite/certificate-service/internal/api"
	"github.com/ignite/certificate-service/internal/config"
	"github.com/ignite/certificate-service/internal/issuer"
	"github.com/ignite/certificate-service/internal/validation"
	"github.com/redis/go-redis/v9"
)

// checkPortAvailable verifies that the target port is not already in use.
// This prevents confusion from stale processes occupying the port.
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

func main() {
	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	cfg, err := config.LoadFromEnv(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Pre-flight check: verify the target port is available
	host := cfg.Server.GetHost()
	port := cfg.Server.Port
	if err := checkPortAvailable(host, port); err != nil {
		log.Fatalf("Pre-flight check FAILED: %v", err)
	}
	log.Printf("Pre-flight check passed: port %d is available", port)

	// Initialize the email format validator
	emailValidator, err := validation.NewEmailValidator(cfg.Validation.EmailPattern)
	if err != nil {
		log.Fatalf("Failed to initialize email validator: %v", err)
	}

	// Wrap with the Redis verdict cache when configured
	var formatValidator validation.FormatValidator = emailValidator
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Printf("Warning: Redis unreachable, validation cache disabled: %v", err)
			redisClient.Close()
			redisClient = nil
		} else {
			ttl := time.Duration(cfg.Validation.CacheTTLSeconds) * time.Second
			formatValidator = validation.NewCachedValidator(emailValidator, redisClient, ttl)
			log.Printf("Validation cache enabled (redis %s, ttl %s)", cfg.Redis.Addr, ttl)
		}
		cancel()
	} else {
		log.Println("Validation cache disabled (no redis addr configured)")
	}

	// Initialize the downstream issuance service
	issuerService := issuer.NewService(cfg.Issuer.RecentCapacity)

	// Wire handlers and routes
	handlers := api.NewHandlers(formatValidator, issuerService)
	handlers.SetConfig(cfg)
	healthChecker := api.NewHealthChecker(formatValidator, redisClient)
	router := api.SetupRoutes(handlers, healthChecker)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", host, port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	// Setup graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	log.Println("All services initialized — server is ready")

	<-done
	log.Println("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	if redisClient != nil {
		redisClient.Close()
	}

	log.Println("Server stopped")
}
