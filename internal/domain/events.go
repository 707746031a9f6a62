package domain

// EventKind tags a domain event variant. The set is closed: EmailChanged and
// UserTypeChanged are the only kinds the entities emit.
type EventKind string

const (
	KindEmailChanged    EventKind = "user.email_changed"
	KindUserTypeChanged EventKind = "user.type_changed"
)

// Event is a domain event recorded by an entity during mutation. Events are
// immutable value records compared by structural equality; emission order is
// significant and preserved by the entity's event list.
type Event interface {
	Kind() EventKind
}

// EmailChanged is recorded whenever a user's email actually changes.
type EmailChanged struct {
	UserID   int
	NewEmail string
}

func (EmailChanged) Kind() EventKind { return KindEmailChanged }

// UserTypeChanged is recorded when the user's classification flips as a side
// effect of an email change.
type UserTypeChanged struct {
	UserID  int
	OldType UserType
	NewType UserType
}

func (UserTypeChanged) Kind() EventKind { return KindUserTypeChanged }
