package rabbitmq

import "github.com/google/uuid"

// RoutingKeyEmailChanged routes email-changed notification texts.
const RoutingKeyEmailChanged = "user.email_changed"

// TextTransport adapts the Publisher to the message bus's Send(text)
// contract. Each text is published with a fresh message id so consumers can
// deduplicate redeliveries.
type TextTransport struct {
	publisher  *Publisher
	routingKey string
}

// NewTextTransport creates a transport publishing under the given routing key.
func NewTextTransport(p *Publisher, routingKey string) *TextTransport {
	return &TextTransport{publisher: p, routingKey: routingKey}
}

// Send publishes one notification text.
func (t *TextTransport) Send(text string) error {
	return t.publisher.Publish(t.routingKey, []byte(text), uuid.New().String())
}
