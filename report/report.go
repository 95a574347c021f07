// Copyright (c) 2025 The gradebook authors.
// MIT licensed; see LICENSE.

package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"gradebook/models"
	"gradebook/queries"
)

// Options parameterizes the report. The defaults match the classroom
// hand-out: Alice Johnson's transcript, students born after 2004, a top-3
// ranking and an 80-point support threshold.
type Options struct {
	SpotlightStudent string
	BornAfterYear    int
	TopN             int
	SupportThreshold int
}

func DefaultOptions() Options {
	return Options{
		SpotlightStudent: "Alice Johnson",
		BornAfterYear:    2004,
		TopN:             3,
		SupportThreshold: 80,
	}
}

// Write runs the whole query catalog in sequence and renders the student
// report. Queries are independent; the first failing one aborts the report.
func Write(w io.Writer, store *queries.Store, opts Options) error {
	fmt.Fprintln(w, "----- Student Report -----")

	students, err := store.ListStudents()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nRoster (%s students):\n", humanize.Comma(int64(len(students))))
	for _, s := range students {
		fmt.Fprintf(w, "  - %s (born %d)\n", s.FullName, s.BirthYear)
	}

	grades, err := store.ListGrades()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nGrades recorded: %s\n", humanize.Comma(int64(len(grades))))

	transcript, err := store.GradesForStudent(opts.SpotlightStudent)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nTranscript for %s:\n", opts.SpotlightStudent)
	if len(transcript) == 0 {
		fmt.Fprintln(w, "  no grades available")
	}
	for _, g := range transcript {
		fmt.Fprintf(w, "  - %s: %d\n", g.Subject, g.Grade)
	}

	averages, err := store.AverageByStudent()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "\nAverage grade per student:")
	for _, avg := range averages {
		fmt.Fprintf(w, "  - %s: %.1f\n", avg.FullName, avg.Average)
	}
	writeSummary(w, averages)

	born, err := store.StudentsBornAfter(opts.BornAfterYear)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nStudents born after %d:\n", opts.BornAfterYear)
	for _, s := range born {
		fmt.Fprintf(w, "  - %s (%d)\n", s.FullName, s.BirthYear)
	}

	subjects, err := store.AverageBySubject()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "\nAverage grade per subject:")
	for _, avg := range subjects {
		fmt.Fprintf(w, "  - %s: %.1f\n", avg.Subject, avg.Average)
	}

	top, err := store.TopStudents(opts.TopN)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "\nTop performers:")
	for i, avg := range top {
		fmt.Fprintf(w, "  %s: %s (%.1f)\n", humanize.Ordinal(i+1), avg.FullName, avg.Average)
	}

	struggling, err := store.StudentsWithGradeBelow(opts.SupportThreshold)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nStudents with a grade below %d:\n", opts.SupportThreshold)
	for _, s := range struggling {
		fmt.Fprintf(w, "  - %s\n", s.FullName)
	}

	fmt.Fprintln(w, "\n--------------------------")
	return nil
}

// writeSummary prints max, min and overall mean of the per-student averages.
func writeSummary(w io.Writer, averages []models.StudentAverage) {
	if len(averages) == 0 {
		fmt.Fprintln(w, "  no grades available for summary")
		return
	}

	maxAvg, minAvg, sum := averages[0].Average, averages[0].Average, 0.0
	for _, avg := range averages {
		if avg.Average > maxAvg {
			maxAvg = avg.Average
		}
		if avg.Average < minAvg {
			minAvg = avg.Average
		}
		sum += avg.Average
	}

	fmt.Fprintf(w, "Max average: %.1f\n", maxAvg)
	fmt.Fprintf(w, "Min average: %.1f\n", minAvg)
	fmt.Fprintf(w, "Overall average: %.1f\n", sum/float64(len(averages)))
}
