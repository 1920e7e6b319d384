package db

import (
	"database/sql"
	"fmt"
)

// SeedFixtures inserts demo accounts for the development auth server.
// Worker account ids match the seeded worker profiles so that logging in
// resolves to the full profile. Existing accounts are left untouched.
func SeedFixtures(database *sql.DB, passwordHash string) error {
	accounts := []struct {
		id               int64
		email, kind, name string
	}{
		{1, "ravi@workerhub.test", "worker", "Ravi Kumar"},
		{2, "imran@workerhub.test", "worker", "Imran Khan"},
		{3, "suresh@workerhub.test", "worker", "Suresh Babu"},
		{1001, "hiring@abc-industries.test", "employer", "ABC Industries HR"},
	}

	for _, a := range accounts {
		if _, err := database.Exec(
			"INSERT OR IGNORE INTO login (id, email, password, type, name) VALUES (?, ?, ?, ?, ?)",
			a.id, a.email, passwordHash, a.kind, a.name,
		); err != nil {
			return fmt.Errorf("seed accounts: %w", err)
		}
	}

	return nil
}
