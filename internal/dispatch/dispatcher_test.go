package dispatch

import (
	"errors"
	"testing"

	"corpdirectory/internal/domain"
)

// spyBus records sent notifications in call order.
type spyBus struct {
	calls []busCall
	err   error
}

type busCall struct {
	UserID   int
	NewEmail string
}

func (s *spyBus) SendEmailChangedMessage(userID int, newEmail string) error {
	s.calls = append(s.calls, busCall{UserID: userID, NewEmail: newEmail})
	return s.err
}

// spyLogger records classification transitions in call order.
type spyLogger struct {
	calls []loggerCall
}

type loggerCall struct {
	UserID  int
	OldType domain.UserType
	NewType domain.UserType
}

func (s *spyLogger) UserTypeHasChanged(userID int, oldType, newType domain.UserType) {
	s.calls = append(s.calls, loggerCall{UserID: userID, OldType: oldType, NewType: newType})
}

// unknownEvent is an out-of-set kind the dispatch table has no entry for.
type unknownEvent struct{}

func (unknownEvent) Kind() domain.EventKind { return "user.renamed" }

func TestDispatch_RoutesByKind(t *testing.T) {
	b := &spyBus{}
	l := &spyLogger{}
	d := New(b, l)

	d.Dispatch([]domain.Event{
		domain.UserTypeChanged{UserID: 1, OldType: domain.TypeEmployee, NewType: domain.TypeCustomer},
		domain.EmailChanged{UserID: 1, NewEmail: "new@gmail.com"},
	})

	if len(b.calls) != 1 {
		t.Fatalf("expected 1 bus call, got %d", len(b.calls))
	}
	if b.calls[0] != (busCall{UserID: 1, NewEmail: "new@gmail.com"}) {
		t.Errorf("unexpected bus call: %+v", b.calls[0])
	}

	if len(l.calls) != 1 {
		t.Fatalf("expected 1 logger call, got %d", len(l.calls))
	}
	if l.calls[0] != (loggerCall{UserID: 1, OldType: domain.TypeEmployee, NewType: domain.TypeCustomer}) {
		t.Errorf("unexpected logger call: %+v", l.calls[0])
	}
}

func TestDispatch_PreservesEmissionOrder(t *testing.T) {
	b := &spyBus{}
	l := &spyLogger{}
	d := New(b, l)

	d.Dispatch([]domain.Event{
		domain.EmailChanged{UserID: 1, NewEmail: "first@x.com"},
		domain.EmailChanged{UserID: 2, NewEmail: "second@x.com"},
		domain.EmailChanged{UserID: 3, NewEmail: "third@x.com"},
	})

	if len(b.calls) != 3 {
		t.Fatalf("expected 3 bus calls, got %d", len(b.calls))
	}
	for i, want := range []string{"first@x.com", "second@x.com", "third@x.com"} {
		if b.calls[i].NewEmail != want {
			t.Errorf("call %d: expected %s, got %s", i, want, b.calls[i].NewEmail)
		}
	}
}

func TestDispatch_NoEvents(t *testing.T) {
	b := &spyBus{}
	l := &spyLogger{}
	d := New(b, l)

	d.Dispatch(nil)

	if len(b.calls) != 0 || len(l.calls) != 0 {
		t.Error("expected no collaborator calls for an empty event list")
	}
}

func TestDispatch_SkipsUnknownKind(t *testing.T) {
	b := &spyBus{}
	l := &spyLogger{}
	d := New(b, l)

	d.Dispatch([]domain.Event{
		unknownEvent{},
		domain.EmailChanged{UserID: 5, NewEmail: "still@delivered.com"},
	})

	if len(b.calls) != 1 {
		t.Fatalf("expected the known event to still dispatch, got %d bus calls", len(b.calls))
	}
	if len(l.calls) != 0 {
		t.Errorf("expected no logger calls, got %d", len(l.calls))
	}
}

func TestDispatch_BusErrorDoesNotStopDispatch(t *testing.T) {
	b := &spyBus{err: errors.New("broker down")}
	l := &spyLogger{}
	d := New(b, l)

	d.Dispatch([]domain.Event{
		domain.EmailChanged{UserID: 1, NewEmail: "a@x.com"},
		domain.UserTypeChanged{UserID: 1, OldType: domain.TypeCustomer, NewType: domain.TypeEmployee},
	})

	if len(b.calls) != 1 {
		t.Errorf("expected 1 bus call, got %d", len(b.calls))
	}
	if len(l.calls) != 1 {
		t.Errorf("expected dispatch to continue past the bus error, got %d logger calls", len(l.calls))
	}
}
