package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"corpdirectory/internal/notifications"
	"corpdirectory/pkg/config"
	"corpdirectory/pkg/postgres"
	"corpdirectory/pkg/rabbitmq"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[Notifications] Starting notifications-consumer...")

	cfg := config.LoadForService("NOTIFICATIONS")

	// Connect to PostgreSQL
	db, err := postgres.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[Notifications] Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := postgres.RunMigrations(db, "notifications", cfg.CompanyDomain); err != nil {
		log.Fatalf("[Notifications] Failed to run migrations: %v", err)
	}

	// Connect to RabbitMQ
	rmqConn, err := rabbitmq.Connect(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("[Notifications] Failed to connect to RabbitMQ: %v", err)
	}
	defer rmqConn.Close()

	consumer := notifications.NewConsumer(db)

	consumerCfg := rabbitmq.ConsumerConfig{
		QueueName:    "notifications.user.email_changed",
		DLQName:      "dlq.notifications.user.email_changed",
		RoutingKeys:  []string{rabbitmq.RoutingKeyEmailChanged},
		ConsumerName: "notifications-consumer",
	}

	if err := rabbitmq.SetupConsumer(rmqConn, consumerCfg, consumer.HandleMessage); err != nil {
		log.Fatalf("[Notifications] Failed to setup consumer: %v", err)
	}

	log.Println("[Notifications] Consumer is running. Waiting for messages...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[Notifications] Shutting down...")
}
