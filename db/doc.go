// Copyright (c) 2025 The gradebook authors.
// MIT licensed; see LICENSE.

/*
Package db handles connections, schema creation and data seeding.

# Connections

Open dials the configured engine via sqlx:

	conn, err := db.Open(db.DriverSQLite, "file:gradebook.db")

SQLite connections run with a single pooled connection and PRAGMA foreign_keys
enabled so that referential integrity and cascades behave like PostgreSQL's.

# Schema

CreateSchema initializes both tables and the secondary index. Safe to call
multiple times - uses IF NOT EXISTS throughout.

  - students: id (auto-assigned), full_name (non-empty), birth_year
  - grades: id (auto-assigned), student_id, subject, grade
  - idx_grades_student_id: access path for the student → grades lookup

# Relationships

	students 1──* grades

grades.student_id references students(id) with ON DELETE CASCADE and
ON UPDATE CASCADE: a student owns their grades.

# Seeding

Seed inserts the fixed dataset of 9 students and 27 grades (one to four per
student). Grade rows reference student ids 1 through 9, so Seed must run after
CreateSchema against empty tables.
*/
package db
