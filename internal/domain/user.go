package domain

import (
	"errors"
	"strings"
)

// UserType is the derived Employee/Customer classification of a user,
// recomputed on every email change.
type UserType int

const (
	TypeCustomer UserType = 1
	TypeEmployee UserType = 2
)

func (t UserType) String() string {
	switch t {
	case TypeCustomer:
		return "customer"
	case TypeEmployee:
		return "employee"
	default:
		return "unknown"
	}
}

// ErrEmailConfirmed is the business rejection returned by CanChangeEmail once
// the user has confirmed their address. Its message is the status string
// surfaced to callers.
var ErrEmailConfirmed = errors.New("cannot change email after confirmation")

// User is a directory entry. ID 0 means the user has not been persisted yet;
// SaveUser assigns the real identifier on insert. EmailConfirmed is immutable
// after creation.
type User struct {
	ID             int
	Email          string
	Type           UserType
	EmailConfirmed bool

	events []Event
}

// NewUser builds an unpersisted user classified against the given company.
// Corporate addresses count as employees from the first insert, so the
// company's employee counter is adjusted here as well.
func NewUser(email string, confirmed bool, company *Company) *User {
	u := &User{Email: email, Type: TypeCustomer, EmailConfirmed: confirmed}
	if company.IsEmailCorporate(email) {
		u.Type = TypeEmployee
		company.ChangeNumberOfEmployees(1)
	}
	return u
}

// CanChangeEmail reports whether the email may be changed. A nil result means
// allowed; otherwise the returned error carries the rejection reason. Callers
// must treat a rejection as terminal: no mutation, no persistence, no events.
func (u *User) CanChangeEmail() error {
	if u.EmailConfirmed {
		return ErrEmailConfirmed
	}
	return nil
}

// ChangeEmail re-derives the user's classification from the new address,
// keeps the company's employee count in step, and records the resulting
// events in emission order: UserTypeChanged (only when the classification
// flips) then EmailChanged.
//
// The caller must have checked CanChangeEmail first; invoking ChangeEmail on
// a confirmed user is a contract violation, not a recoverable rejection.
func (u *User) ChangeEmail(newEmail string, company *Company) {
	precondition(u.CanChangeEmail() == nil, "ChangeEmail called without CanChangeEmail check")

	if u.Email == newEmail {
		return
	}

	newType := TypeCustomer
	if company.IsEmailCorporate(newEmail) {
		newType = TypeEmployee
	}

	if u.Type != newType {
		delta := -1
		if newType == TypeEmployee {
			delta = 1
		}
		company.ChangeNumberOfEmployees(delta)
		u.events = append(u.events, UserTypeChanged{UserID: u.ID, OldType: u.Type, NewType: newType})
	}

	u.Email = newEmail
	u.Type = newType
	u.events = append(u.events, EmailChanged{UserID: u.ID, NewEmail: newEmail})
}

// PopEvents drains the events recorded since the user was loaded, preserving
// emission order. A second call returns nothing.
func (u *User) PopEvents() []Event {
	evts := u.events
	u.events = nil
	return evts
}

// emailDomain extracts the part after the single "@" separator. A malformed
// address is a contract violation; the HTTP boundary validates syntax before
// the domain layer ever sees it.
func emailDomain(email string) string {
	parts := strings.Split(email, "@")
	precondition(len(parts) == 2, "malformed email address: "+email)
	return parts[1]
}
