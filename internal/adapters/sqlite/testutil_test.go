// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() so tests run against the
// authoritative schema.
//
// DO NOT hardcode CREATE TABLE statements in test files. Use setupTestDB()
// and the seed* helpers instead.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/workerhub/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedSnapshot inserts a snapshot row.
func seedSnapshot(t *testing.T, db *sql.DB, key, payload string) {
	t.Helper()
	_, err := db.Exec("INSERT INTO snapshots (key, payload) VALUES (?, ?)", key, payload)
	if err != nil {
		t.Fatalf("failed to seed snapshot: %v", err)
	}
}

// seedAccount inserts an account with password hash "hash" and returns its id.
func seedAccount(t *testing.T, db *sql.DB, email, userType, name string) int64 {
	t.Helper()
	result, err := db.Exec("INSERT INTO login (email, password, type, name) VALUES (?, 'hash', ?, ?)", email, userType, name)
	if err != nil {
		t.Fatalf("failed to seed account: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read account id: %v", err)
	}
	return id
}
