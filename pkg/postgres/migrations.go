package postgres

import (
	"database/sql"
	"log"
)

// RunMigrations executes the schema statements for the given service. The
// company row is seeded with the configured domain so the directory is usable
// on first boot.
func RunMigrations(db *sql.DB, service, companyDomain string) error {
	for _, m := range serviceMigrations(service) {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	if service == "api" {
		_, err := db.Exec(
			"INSERT INTO company (domain_name, number_of_employees) VALUES ($1, 0) ON CONFLICT DO NOTHING",
			companyDomain,
		)
		if err != nil {
			return err
		}
	}

	log.Printf("Migrations completed for service: %s", service)
	return nil
}

func serviceMigrations(service string) []string {
	switch service {
	case "notifications":
		return []string{
			`CREATE TABLE IF NOT EXISTS idempotency_keys (
				message_id VARCHAR(36) PRIMARY KEY,
				processed_at TIMESTAMP NOT NULL DEFAULT NOW()
			)`,
			`CREATE TABLE IF NOT EXISTS notification_log (
				id SERIAL PRIMARY KEY,
				message_id VARCHAR(36) NOT NULL,
				body TEXT NOT NULL,
				received_at TIMESTAMP NOT NULL DEFAULT NOW()
			)`,
		}
	default: // "api"
		return []string{
			`CREATE TABLE IF NOT EXISTS users (
				id SERIAL PRIMARY KEY,
				email VARCHAR(255) NOT NULL UNIQUE,
				type INTEGER NOT NULL,
				email_confirmed BOOLEAN NOT NULL DEFAULT FALSE
			)`,
			`CREATE TABLE IF NOT EXISTS company (
				domain_name VARCHAR(255) PRIMARY KEY,
				number_of_employees INTEGER NOT NULL DEFAULT 0 CHECK (number_of_employees >= 0)
			)`,
		}
	}
}
