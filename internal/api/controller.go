package api

import (
	"corpdirectory/internal/dispatch"
	"corpdirectory/internal/domain"
	"corpdirectory/internal/store"
)

// StatusOK is the status returned when a change-email request succeeds.
const StatusOK = "OK"

// UserController orchestrates directory workflows: load, decide, persist,
// dispatch. It owns no business rules itself; those live on the entities.
type UserController struct {
	db         *store.Database
	dispatcher *dispatch.Dispatcher
}

// NewUserController creates the application service.
func NewUserController(db *store.Database, d *dispatch.Dispatcher) *UserController {
	return &UserController{db: db, dispatcher: d}
}

// ChangeEmail runs the email-change workflow for one user. The returned
// status is StatusOK on success or the business rejection reason; the error
// covers infrastructure failures only (store.ErrNotFound included).
//
// Persistence is company first, then user, and is not transactional: two
// concurrent calls against the same company can race the employee count.
// That matches the reference behavior and is not papered over with locking.
func (ctl *UserController) ChangeEmail(userID int, newEmail string) (string, error) {
	user, err := ctl.db.GetUserByID(userID)
	if err != nil {
		return "", err
	}

	if err := user.CanChangeEmail(); err != nil {
		return err.Error(), nil
	}

	company, err := ctl.db.GetCompany()
	if err != nil {
		return "", err
	}

	user.ChangeEmail(newEmail, company)

	if err := ctl.db.SaveCompany(company); err != nil {
		return "", err
	}
	if err := ctl.db.SaveUser(user); err != nil {
		return "", err
	}

	ctl.dispatcher.Dispatch(user.PopEvents())

	return StatusOK, nil
}

// CreateUser registers a new directory entry, classifying it against the
// company domain and adjusting the employee count for corporate addresses.
func (ctl *UserController) CreateUser(email string, confirmed bool) (*domain.User, error) {
	company, err := ctl.db.GetCompany()
	if err != nil {
		return nil, err
	}

	user := domain.NewUser(email, confirmed, company)

	if err := ctl.db.SaveCompany(company); err != nil {
		return nil, err
	}
	if err := ctl.db.SaveUser(user); err != nil {
		return nil, err
	}

	return user, nil
}
