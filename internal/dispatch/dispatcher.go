// Package dispatch routes recorded domain events to their collaborators.
package dispatch

import (
	"log"

	"corpdirectory/internal/domain"
)

// MessageBus is the notification channel for email changes.
type MessageBus interface {
	SendEmailChangedMessage(userID int, newEmail string) error
}

// DomainLogger records classification transitions.
type DomainLogger interface {
	UserTypeHasChanged(userID int, oldType, newType domain.UserType)
}

// Dispatcher routes each event to exactly one handler selected by its kind.
type Dispatcher struct {
	handlers map[domain.EventKind]func(domain.Event)
}

// New builds the dispatch table. Events whose kind has no entry in the table
// are skipped without error; the variant set is closed, so an unknown kind
// only appears if a new event is added without a handler.
func New(b MessageBus, l DomainLogger) *Dispatcher {
	return &Dispatcher{
		handlers: map[domain.EventKind]func(domain.Event){
			domain.KindEmailChanged: func(e domain.Event) {
				evt := e.(domain.EmailChanged)
				if err := b.SendEmailChangedMessage(evt.UserID, evt.NewEmail); err != nil {
					log.Printf("[Dispatch] Failed to send email-changed message: user_id=%d err=%v", evt.UserID, err)
				}
			},
			domain.KindUserTypeChanged: func(e domain.Event) {
				evt := e.(domain.UserTypeChanged)
				l.UserTypeHasChanged(evt.UserID, evt.OldType, evt.NewType)
			},
		},
	}
}

// Dispatch invokes handlers synchronously and sequentially in emission order.
// Handler side effects are order-sensitive, so events are never fanned out in
// parallel.
func (d *Dispatcher) Dispatch(events []domain.Event) {
	for _, e := range events {
		if handler, ok := d.handlers[e.Kind()]; ok {
			handler(e)
		}
	}
}
