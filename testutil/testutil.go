package testutil

import (
	"testing"

	"github.com/jmoiron/sqlx"

	"gradebook/cliparse"
	"gradebook/db"
)

// TestConfig returns a standard test configuration.
func TestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           8080,
		DatabaseDriver: cliparse.DriverSQLite,
		DatabaseURL:    ":memory:",
	}
}

// SetupTestDB creates a fresh in-memory sqlite database with the schema
// applied. Each test gets its own database; closing is handled via Cleanup.
func SetupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := db.Open(db.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.DriverSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupSeededDB creates a test database with the full sample dataset.
func SetupSeededDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn := SetupTestDB(t)
	if err := db.Seed(conn); err != nil {
		t.Fatalf("Failed to seed test database: %v", err)
	}

	return conn
}

// AddTestStudent inserts a student and returns the assigned id.
func AddTestStudent(t *testing.T, conn *sqlx.DB, fullName string, birthYear int) int64 {
	t.Helper()

	res, err := conn.Exec("INSERT INTO students (full_name, birth_year) VALUES (?, ?)", fullName, birthYear)
	if err != nil {
		t.Fatalf("Failed to insert test student: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to get student id: %v", err)
	}

	return id
}

// AddTestGrade inserts a grade for an existing student.
func AddTestGrade(t *testing.T, conn *sqlx.DB, studentID int64, subject string, grade int) {
	t.Helper()

	_, err := conn.Exec("INSERT INTO grades (student_id, subject, grade) VALUES (?, ?, ?)", studentID, subject, grade)
	if err != nil {
		t.Fatalf("Failed to insert test grade: %v", err)
	}
}

// CountRows returns the row count of a table.
func CountRows(t *testing.T, conn *sqlx.DB, table string) int {
	t.Helper()

	var count int
	if err := conn.Get(&count, "SELECT COUNT(*) FROM "+table); err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}

	return count
}
