// Copyright (c) 2025 The gradebook authors.
// MIT licensed; see LICENSE.

package queries

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"gradebook/models"
)

// Store runs the query catalog over a seeded database. Every method is a
// read-only query; the catalog never mutates.
//
// SQL is written with ? bindvars and passed through Rebind, so the same text
// runs on sqlite and postgres.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// ListStudents returns the full roster, ordered by id.
func (s *Store) ListStudents() ([]models.Student, error) {
	var students []models.Student
	err := s.db.Select(&students, `
		SELECT id, full_name, birth_year
		FROM students
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return students, nil
}

// ListGrades returns every grade row, ordered by id.
func (s *Store) ListGrades() ([]models.Grade, error) {
	var grades []models.Grade
	err := s.db.Select(&grades, `
		SELECT id, student_id, subject, grade
		FROM grades
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list grades: %w", err)
	}
	return grades, nil
}

// StudentByName looks up a student by exact full-name match.
// Returns sql.ErrNoRows (wrapped) when no such student exists.
func (s *Store) StudentByName(fullName string) (models.Student, error) {
	var student models.Student
	err := s.db.Get(&student, s.db.Rebind(`
		SELECT id, full_name, birth_year
		FROM students
		WHERE full_name = ?
	`), fullName)
	if err != nil {
		return models.Student{}, fmt.Errorf("failed to look up student %q: %w", fullName, err)
	}
	return student, nil
}

// GradesForStudent returns the transcript of a named student. The match is
// exact and case-sensitive; an unknown name yields an empty slice, not an
// error.
func (s *Store) GradesForStudent(fullName string) ([]models.SubjectGrade, error) {
	var grades []models.SubjectGrade
	err := s.db.Select(&grades, s.db.Rebind(`
		SELECT g.subject, g.grade
		FROM grades g
		JOIN students s ON s.id = g.student_id
		WHERE s.full_name = ?
		ORDER BY g.id
	`), fullName)
	if err != nil {
		return nil, fmt.Errorf("failed to get grades for %q: %w", fullName, err)
	}
	return grades, nil
}

// AverageByStudent returns each student's mean grade, keyed by student id.
// Students with no grades are excluded (inner join).
func (s *Store) AverageByStudent() ([]models.StudentAverage, error) {
	var averages []models.StudentAverage
	err := s.db.Select(&averages, `
		SELECT s.id, s.full_name, AVG(g.grade) AS avg_grade
		FROM students s
		JOIN grades g ON g.student_id = s.id
		GROUP BY s.id, s.full_name
		ORDER BY s.id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to average by student: %w", err)
	}
	return averages, nil
}

// StudentsBornAfter returns students born strictly after the given year.
func (s *Store) StudentsBornAfter(year int) ([]models.Student, error) {
	var students []models.Student
	err := s.db.Select(&students, s.db.Rebind(`
		SELECT id, full_name, birth_year
		FROM students
		WHERE birth_year > ?
		ORDER BY id
	`), year)
	if err != nil {
		return nil, fmt.Errorf("failed to filter students by birth year: %w", err)
	}
	return students, nil
}

// AverageBySubject returns the mean grade per subject. Subjects appear only
// if at least one grade exists for them.
func (s *Store) AverageBySubject() ([]models.SubjectAverage, error) {
	var averages []models.SubjectAverage
	err := s.db.Select(&averages, `
		SELECT g.subject, AVG(g.grade) AS avg_grade
		FROM grades g
		WHERE g.subject IS NOT NULL
		GROUP BY g.subject
		ORDER BY g.subject
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to average by subject: %w", err)
	}
	return averages, nil
}

// TopStudents returns the n students with the highest mean grade, best first.
// Ties resolve by student id ascending so the ranking is deterministic.
func (s *Store) TopStudents(n int) ([]models.StudentAverage, error) {
	var top []models.StudentAverage
	err := s.db.Select(&top, s.db.Rebind(`
		SELECT s.id, s.full_name, AVG(g.grade) AS avg_grade
		FROM students s
		JOIN grades g ON g.student_id = s.id
		GROUP BY s.id, s.full_name
		ORDER BY avg_grade DESC, s.id ASC
		LIMIT ?
	`), n)
	if err != nil {
		return nil, fmt.Errorf("failed to rank students: %w", err)
	}
	return top, nil
}

// StudentsWithGradeBelow returns each student holding at least one grade
// under the threshold. Grouping deduplicates students with several low
// grades to a single row.
func (s *Store) StudentsWithGradeBelow(threshold int) ([]models.StudentRef, error) {
	var students []models.StudentRef
	err := s.db.Select(&students, s.db.Rebind(`
		SELECT s.id, s.full_name
		FROM students s
		JOIN grades g ON g.student_id = s.id
		WHERE g.grade < ?
		GROUP BY s.id, s.full_name
		ORDER BY s.id
	`), threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to filter students by low grade: %w", err)
	}
	return students, nil
}
