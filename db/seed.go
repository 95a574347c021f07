// Copyright (c) 2025 The gradebook authors.
// MIT licensed; see LICENSE.

package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Row counts of the sample dataset.
const (
	StudentCount = 9
	GradeCount   = 27
)

// Seed inserts the fixed classroom dataset: 9 students and 27 grades, one to
// four grades per student. Students go first; the grades reference their ids,
// which the engine assigns sequentially from 1 on a fresh table.
//
// This is the only mutation the exercise performs. Seeding grades against an
// empty students table fails with a referential-integrity violation.
func Seed(conn *sqlx.DB) error {
	if _, err := conn.Exec(seedStudents); err != nil {
		return fmt.Errorf("failed to seed students: %w", err)
	}

	if _, err := conn.Exec(seedGrades); err != nil {
		return fmt.Errorf("failed to seed grades: %w", err)
	}

	return nil
}

const seedStudents = `
INSERT INTO students (full_name, birth_year) VALUES
    ('Alice Johnson', 2005),
    ('Brian Smith', 2004),
    ('Carla Diaz', 2005),
    ('Daniel Lee', 2003),
    ('Emma Wilson', 2006),
    ('Felix Brown', 2004),
    ('Grace Kim', 2005),
    ('Henry Adams', 2006),
    ('Isabel Moreno', 2003);
`

const seedGrades = `
INSERT INTO grades (student_id, subject, grade) VALUES
    (1, 'Math', 88),
    (1, 'English', 92),
    (1, 'Science', 85),
    (2, 'Math', 75),
    (2, 'Science', 81),
    (3, 'Math', 94),
    (3, 'English', 89),
    (3, 'Science', 91),
    (3, 'History', 87),
    (4, 'English', 72),
    (4, 'History', 78),
    (5, 'Math', 98),
    (5, 'Science', 95),
    (5, 'English', 93),
    (5, 'History', 90),
    (6, 'Math', 69),
    (7, 'English', 84),
    (7, 'Science', 88),
    (7, 'History', 91),
    (8, 'Math', 77),
    (8, 'English', 83),
    (8, 'Science', 79),
    (8, 'History', 85),
    (9, 'Math', 90),
    (9, 'Science', 86),
    (9, 'English', 88),
    (9, 'History', 92);
`
