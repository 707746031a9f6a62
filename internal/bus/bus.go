package bus

import "fmt"

// Transport delivers one rendered notification text. Implementations carry
// the wire mechanics (AMQP in production, a capture buffer in tests).
type Transport interface {
	Send(text string) error
}

// MessageBus formats directory notifications and hands them to the transport.
type MessageBus struct {
	transport Transport
}

// New creates a MessageBus on top of the given transport.
func New(t Transport) *MessageBus {
	return &MessageBus{transport: t}
}

// SendEmailChangedMessage notifies downstream systems that a user's email
// changed. The message shape is part of the contract with consumers.
func (b *MessageBus) SendEmailChangedMessage(userID int, newEmail string) error {
	return b.transport.Send(fmt.Sprintf("Type: USER EMAIL CHANGED; Id: %d; NewEmail: %s", userID, newEmail))
}
