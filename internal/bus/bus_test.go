package bus

import (
	"errors"
	"testing"
)

// spyTransport records every sent text for later assertions.
type spyTransport struct {
	sent []string
	err  error
}

func (s *spyTransport) Send(text string) error {
	s.sent = append(s.sent, text)
	return s.err
}

func TestSendEmailChangedMessage(t *testing.T) {
	spy := &spyTransport{}
	b := New(spy)

	if err := b.SendEmailChangedMessage(1, "new@gmail.com"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(spy.sent) != 1 {
		t.Fatalf("expected 1 message, got %d", len(spy.sent))
	}
	want := "Type: USER EMAIL CHANGED; Id: 1; NewEmail: new@gmail.com"
	if spy.sent[0] != want {
		t.Errorf("expected %q, got %q", want, spy.sent[0])
	}
}

func TestSendEmailChangedMessage_TransportError(t *testing.T) {
	errBroken := errors.New("transport down")
	spy := &spyTransport{err: errBroken}
	b := New(spy)

	if err := b.SendEmailChangedMessage(2, "x@y.com"); err != errBroken {
		t.Errorf("expected transport error to propagate, got %v", err)
	}
}
