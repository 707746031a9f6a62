// Package store wraps the SQL access for users and the company record.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	"corpdirectory/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("record not found")

// Database is the persistence collaborator of the application service. Field
// mapping is fixed: users scan as [id, email, type, email_confirmed], the
// company as [domain_name, number_of_employees].
type Database struct {
	DB *sql.DB
}

// New creates a Database over an open connection pool.
func New(db *sql.DB) *Database {
	return &Database{DB: db}
}

// GetUserByID loads a user row and reconstructs the entity.
func (d *Database) GetUserByID(id int) (*domain.User, error) {
	var (
		user     domain.User
		typeCode int
	)
	err := d.DB.QueryRow(
		"SELECT id, email, type, email_confirmed FROM users WHERE id = $1", id,
	).Scan(&user.ID, &user.Email, &typeCode, &user.EmailConfirmed)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	user.Type = domain.UserType(typeCode)
	return &user, nil
}

// GetCompany loads the single company record.
func (d *Database) GetCompany() (*domain.Company, error) {
	var company domain.Company
	err := d.DB.QueryRow(
		"SELECT domain_name, number_of_employees FROM company LIMIT 1",
	).Scan(&company.DomainName, &company.NumberOfEmployees)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &company, nil
}

// SaveUser upserts the user: ID 0 inserts and assigns the new identifier,
// a nonzero ID updates the existing row.
func (d *Database) SaveUser(user *domain.User) error {
	if user.ID == 0 {
		err := d.DB.QueryRow(
			"INSERT INTO users (email, type, email_confirmed) VALUES ($1, $2, $3) RETURNING id",
			user.Email, int(user.Type), user.EmailConfirmed,
		).Scan(&user.ID)
		if err != nil {
			return fmt.Errorf("insert user: %w", err)
		}
		return nil
	}

	_, err := d.DB.Exec(
		"UPDATE users SET email = $1, type = $2, email_confirmed = $3 WHERE id = $4",
		user.Email, int(user.Type), user.EmailConfirmed, user.ID,
	)
	if err != nil {
		return fmt.Errorf("update user %d: %w", user.ID, err)
	}
	return nil
}

// SaveCompany updates the company row keyed by its domain name.
func (d *Database) SaveCompany(company *domain.Company) error {
	_, err := d.DB.Exec(
		"UPDATE company SET number_of_employees = $1 WHERE domain_name = $2",
		company.NumberOfEmployees, company.DomainName,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// ListUsers returns all users ordered by identifier.
func (d *Database) ListUsers() ([]*domain.User, error) {
	rows, err := d.DB.Query("SELECT id, email, type, email_confirmed FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []*domain.User{}
	for rows.Next() {
		var (
			user     domain.User
			typeCode int
		)
		if err := rows.Scan(&user.ID, &user.Email, &typeCode, &user.EmailConfirmed); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		user.Type = domain.UserType(typeCode)
		users = append(users, &user)
	}
	return users, rows.Err()
}
