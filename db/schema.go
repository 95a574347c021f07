// Copyright (c) 2025 The gradebook authors.
// MIT licensed; see LICENSE.

package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CreateSchema creates both tables and the secondary index.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(conn *sqlx.DB, driver string) error {
	schema, ok := schemas[driver]
	if !ok {
		return fmt.Errorf("no schema for driver %q", driver)
	}

	if _, err := conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The two dialects differ only in how the auto-assigned identity column is
// spelled. student_id, subject and grade stay nullable: the exercise never
// inserts nulls, but the schema as taught permits them.
var schemas = map[string]string{
	DriverSQLite: `
-- Students
CREATE TABLE IF NOT EXISTS students (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    full_name TEXT NOT NULL CHECK (full_name <> ''),
    birth_year INTEGER NOT NULL
);

-- Grades
CREATE TABLE IF NOT EXISTS grades (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    student_id INTEGER REFERENCES students(id) ON DELETE CASCADE ON UPDATE CASCADE,
    subject TEXT,
    grade INTEGER
);

CREATE INDEX IF NOT EXISTS idx_grades_student_id ON grades(student_id);
`,
	DriverPostgres: `
-- Students
CREATE TABLE IF NOT EXISTS students (
    id SERIAL PRIMARY KEY,
    full_name TEXT NOT NULL CHECK (full_name <> ''),
    birth_year INTEGER NOT NULL
);

-- Grades
CREATE TABLE IF NOT EXISTS grades (
    id SERIAL PRIMARY KEY,
    student_id INTEGER REFERENCES students(id) ON DELETE CASCADE ON UPDATE CASCADE,
    subject TEXT,
    grade INTEGER
);

CREATE INDEX IF NOT EXISTS idx_grades_student_id ON grades(student_id);
`,
}
