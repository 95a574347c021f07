// Copyright (c) 2025 The gradebook authors.
// MIT licensed; see LICENSE.

package models

// Domain types

type Student struct {
	ID        int64  `db:"id" json:"id"`
	FullName  string `db:"full_name" json:"full_name"`
	BirthYear int    `db:"birth_year" json:"birth_year"`
}

// Grade is one subject score for one student. student_id, subject and grade
// are nullable in the schema, so the fields are pointers; the sample data
// always populates them.
type Grade struct {
	ID        int64   `db:"id" json:"id"`
	StudentID *int64  `db:"student_id" json:"student_id"`
	Subject   *string `db:"subject" json:"subject"`
	Grade     *int    `db:"grade" json:"grade"`
}

// Result row types

// SubjectGrade is one row of a per-student transcript.
type SubjectGrade struct {
	Subject string `db:"subject" json:"subject"`
	Grade   int    `db:"grade" json:"grade"`
}

// StudentAverage is a student paired with the arithmetic mean of their grades.
type StudentAverage struct {
	StudentID int64   `db:"id" json:"student_id"`
	FullName  string  `db:"full_name" json:"full_name"`
	Average   float64 `db:"avg_grade" json:"average"`
}

// SubjectAverage is a subject paired with the arithmetic mean of all its grades.
type SubjectAverage struct {
	Subject string  `db:"subject" json:"subject"`
	Average float64 `db:"avg_grade" json:"average"`
}

// StudentRef identifies a student in a filtered listing.
type StudentRef struct {
	StudentID int64  `db:"id" json:"student_id"`
	FullName  string `db:"full_name" json:"full_name"`
}

// Response types

type RankedStudent struct {
	Rank     int     `json:"rank"`
	FullName string  `json:"full_name"`
	Average  float64 `json:"average"`
}

type TranscriptResponse struct {
	Student Student        `json:"student"`
	Grades  []SubjectGrade `json:"grades"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
