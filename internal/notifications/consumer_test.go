package notifications

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	amqp "github.com/rabbitmq/amqp091-go"
)

func makeDelivery(messageID, body string) amqp.Delivery {
	return amqp.Delivery{
		MessageId:  messageID,
		Body:       []byte(body),
		RoutingKey: "user.email_changed",
	}
}

func TestHandleMessage_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	consumer := NewConsumer(db)

	// Idempotency check — not a duplicate
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("msg-001").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	mock.ExpectExec("INSERT INTO notification_log").
		WithArgs("msg-001", "Type: USER EMAIL CHANGED; Id: 1; NewEmail: new@gmail.com").
		WillReturnResult(sqlmock.NewResult(1, 1))

	mock.ExpectExec("INSERT INTO idempotency_keys").
		WithArgs("msg-001").
		WillReturnResult(sqlmock.NewResult(1, 1))

	delivery := makeDelivery("msg-001", "Type: USER EMAIL CHANGED; Id: 1; NewEmail: new@gmail.com")
	if err := consumer.HandleMessage(delivery); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestHandleMessage_DuplicateMessage(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	consumer := NewConsumer(db)

	// Idempotency check — IS a duplicate
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("msg-dup").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	delivery := makeDelivery("msg-dup", "Type: USER EMAIL CHANGED; Id: 2; NewEmail: x@y.com")
	if err := consumer.HandleMessage(delivery); err != nil {
		t.Fatalf("expected no error for duplicate, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestHandleMessage_InsertFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	consumer := NewConsumer(db)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("msg-fail").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	mock.ExpectExec("INSERT INTO notification_log").
		WillReturnError(errors.New("disk full"))

	delivery := makeDelivery("msg-fail", "Type: USER EMAIL CHANGED; Id: 3; NewEmail: a@b.com")
	if err := consumer.HandleMessage(delivery); err == nil {
		t.Fatal("expected error when the insert fails, got nil")
	}
}
