package report

import (
	"bytes"
	"strings"
	"testing"

	"gradebook/queries"
	"gradebook/testutil"
)

func TestWrite(t *testing.T) {
	store := queries.NewStore(testutil.SetupSeededDB(t))

	var buf bytes.Buffer
	if err := Write(&buf, store, DefaultOptions()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"----- Student Report -----",
		"Roster (9 students):",
		"Grades recorded: 27",
		"Transcript for Alice Johnson:",
		"  - Math: 88",
		"Max average: 94.0",
		"Min average: 69.0",
		"Students born after 2004:",
		"Average grade per subject:",
		"  1st: Emma Wilson (94.0)",
		"  2nd: Carla Diaz (90.2)",
		"  3rd: Isabel Moreno (89.0)",
		"Students with a grade below 80:",
		"  - Brian Smith",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\n%s", want, out)
		}
	}

	// Alice has no grade below 80 and must not appear in the support section
	support := out[strings.Index(out, "Students with a grade below 80:"):]
	if strings.Contains(support, "Alice Johnson") {
		t.Error("Alice Johnson should not appear below the support threshold")
	}
}

func TestWrite_UnknownSpotlight(t *testing.T) {
	store := queries.NewStore(testutil.SetupSeededDB(t))

	opts := DefaultOptions()
	opts.SpotlightStudent = "Nobody Here"

	var buf bytes.Buffer
	if err := Write(&buf, store, opts); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "no grades available") {
		t.Error("expected placeholder for a transcript with no rows")
	}
}

func TestWrite_EmptyDatabase(t *testing.T) {
	store := queries.NewStore(testutil.SetupTestDB(t))

	var buf bytes.Buffer
	if err := Write(&buf, store, DefaultOptions()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "no grades available for summary") {
		t.Error("expected empty-summary placeholder")
	}
}
