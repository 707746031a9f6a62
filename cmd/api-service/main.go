package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"corpdirectory/internal/api"
	"corpdirectory/internal/audit"
	"corpdirectory/internal/bus"
	"corpdirectory/internal/dispatch"
	"corpdirectory/internal/store"
	"corpdirectory/pkg/config"
	"corpdirectory/pkg/postgres"
	"corpdirectory/pkg/rabbitmq"
)

// @title           Corporate Directory API
// @version         1.0
// @description     A directory service that re-derives a user's employee/customer classification on email changes and publishes notifications to RabbitMQ.
// @host            localhost:8080
// @BasePath        /
// @schemes         http
func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[API] Starting api-service...")

	cfg := config.Load()

	// Connect to PostgreSQL
	db, err := postgres.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[API] Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := postgres.RunMigrations(db, "api", cfg.CompanyDomain); err != nil {
		log.Fatalf("[API] Failed to run migrations: %v", err)
	}

	// Connect to RabbitMQ
	rmqConn, err := rabbitmq.Connect(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("[API] Failed to connect to RabbitMQ: %v", err)
	}
	defer rmqConn.Close()

	publisher, err := rabbitmq.NewPublisher(rmqConn)
	if err != nil {
		log.Fatalf("[API] Failed to create publisher: %v", err)
	}
	defer publisher.Close()

	auditLog, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("[API] Failed to create audit logger: %v", err)
	}
	defer auditLog.Sync()

	// Wire collaborators: AMQP transport behind the message bus, zap behind
	// the audit logger, both behind the event dispatcher.
	transport := rabbitmq.NewTextTransport(publisher, rabbitmq.RoutingKeyEmailChanged)
	dispatcher := dispatch.New(bus.New(transport), audit.NewLogger(auditLog))

	database := store.New(db)
	controller := api.NewUserController(database, dispatcher)
	handler := api.NewUserHandler(database, controller)
	router := api.NewRouter(handler)

	// HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.APIPort,
		Handler: router,
	}

	go func() {
		log.Printf("[API] Listening on port %s", cfg.APIPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[API] Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[API] Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("[API] Server forced to shutdown: %v", err)
	}
	log.Println("[API] Server exited gracefully")
}
