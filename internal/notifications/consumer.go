// Package notifications records delivered directory notifications.
package notifications

import (
	"database/sql"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Consumer persists each delivered notification text.
type Consumer struct {
	DB *sql.DB
}

// NewConsumer creates a new notifications consumer.
func NewConsumer(db *sql.DB) *Consumer {
	return &Consumer{DB: db}
}

// HandleMessage records one notification. Redeliveries are skipped by message
// id so a nack/requeue cycle never duplicates log rows.
func (c *Consumer) HandleMessage(delivery amqp.Delivery) error {
	body := string(delivery.Body)

	log.Printf("[Notifications] Processing message: message_id=%s routing_key=%s",
		delivery.MessageId, delivery.RoutingKey)

	// Idempotency check
	var exists bool
	err := c.DB.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM idempotency_keys WHERE message_id = $1)", delivery.MessageId,
	).Scan(&exists)
	if err != nil {
		log.Printf("[Notifications] Error checking idempotency: %v message_id=%s", err, delivery.MessageId)
		return err
	}
	if exists {
		log.Printf("[Notifications] Duplicate message ignored: message_id=%s", delivery.MessageId)
		return nil // Already processed — ack it
	}

	_, err = c.DB.Exec(
		"INSERT INTO notification_log (message_id, body) VALUES ($1, $2)",
		delivery.MessageId, body,
	)
	if err != nil {
		log.Printf("[Notifications] Error writing notification log: %v message_id=%s", err, delivery.MessageId)
		return err
	}

	// Record idempotency key
	_, _ = c.DB.Exec("INSERT INTO idempotency_keys (message_id) VALUES ($1) ON CONFLICT DO NOTHING", delivery.MessageId)

	log.Printf("[Notifications] Recorded: message_id=%s body=%q", delivery.MessageId, body)
	return nil
}
