// Copyright (c) 2025 The gradebook authors.
// MIT licensed; see LICENSE.

/*
Package queries implements the eight-query catalog of the exercise.

Each query is an independent, side-effect-free read over the seeded data:

 1. ListStudents: the full roster
 2. ListGrades: every grade row
 3. GradesForStudent: transcript by exact full-name match
 4. AverageByStudent: mean grade per student
 5. StudentsBornAfter: roster filtered by birth year
 6. AverageBySubject: mean grade per subject
 7. TopStudents: top-N ranking by mean grade, descending
 8. StudentsWithGradeBelow: students with at least one grade under a threshold

Averages are arithmetic means via SQL AVG; students or subjects with no grades
drop out through inner-join semantics. Only TopStudents guarantees a meaningful
order (average descending, ties by student id ascending); the list queries sort
by id or subject purely for stable output.
*/
package queries
