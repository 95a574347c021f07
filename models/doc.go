// Copyright (c) 2025 The gradebook authors.
// MIT licensed; see LICENSE.

/*
Package models defines row, response, and error types.

# Domain Types

Rows scanned straight from the two tables:

  - Student: id, full_name, birth_year
  - Grade: id, student_id, subject, grade (nullable columns as pointers)

# Result Row Types

Shapes produced by the query catalog:

  - SubjectGrade: one transcript line (subject, grade)
  - StudentAverage: student plus mean grade
  - SubjectAverage: subject plus mean grade
  - StudentRef: id and name in a filtered listing

# Response Types

JSON shapes for the report API:

  - TranscriptResponse: student plus grades
  - RankedStudent: ranking entry with 1-indexed rank
  - HealthResponse: {"status":"ok"}
  - ErrorResponse: error, message
*/
package models
