package queries

import (
	"database/sql"
	"errors"
	"math"
	"testing"

	"gradebook/models"
	"gradebook/testutil"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func TestListStudents(t *testing.T) {
	store := NewStore(testutil.SetupSeededDB(t))

	students, err := store.ListStudents()
	if err != nil {
		t.Fatal(err)
	}

	if len(students) != 9 {
		t.Fatalf("expected 9 students, got %d", len(students))
	}
	if students[0].FullName != "Alice Johnson" || students[0].BirthYear != 2005 {
		t.Errorf("unexpected first student: %+v", students[0])
	}
}

func TestListGrades(t *testing.T) {
	store := NewStore(testutil.SetupSeededDB(t))

	grades, err := store.ListGrades()
	if err != nil {
		t.Fatal(err)
	}

	if len(grades) != 27 {
		t.Fatalf("expected 27 grades, got %d", len(grades))
	}
	for _, g := range grades {
		if g.StudentID == nil || g.Subject == nil || g.Grade == nil {
			t.Errorf("sample data should populate every column: %+v", g)
		}
	}
}

func TestGradesForStudent(t *testing.T) {
	store := NewStore(testutil.SetupSeededDB(t))

	grades, err := store.GradesForStudent("Alice Johnson")
	if err != nil {
		t.Fatal(err)
	}

	if len(grades) != 3 {
		t.Fatalf("expected 3 grades for Alice Johnson, got %d", len(grades))
	}

	// Order-independent check
	want := map[string]int{"Math": 88, "English": 92, "Science": 85}
	for _, g := range grades {
		expected, ok := want[g.Subject]
		if !ok {
			t.Errorf("unexpected subject %q", g.Subject)
			continue
		}
		if g.Grade != expected {
			t.Errorf("expected %s=%d, got %d", g.Subject, expected, g.Grade)
		}
		delete(want, g.Subject)
	}
	if len(want) != 0 {
		t.Errorf("missing subjects: %v", want)
	}
}

func TestGradesForStudent_ExactMatch(t *testing.T) {
	store := NewStore(testutil.SetupSeededDB(t))

	tests := []struct {
		name     string
		fullName string
		rows     int
	}{
		{"exact name", "Brian Smith", 2},
		{"wrong case", "brian smith", 0},
		{"partial name", "Brian", 0},
		{"unknown name", "Nobody Here", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grades, err := store.GradesForStudent(tt.fullName)
			if err != nil {
				t.Fatal(err)
			}
			if len(grades) != tt.rows {
				t.Errorf("expected %d rows for %q, got %d", tt.rows, tt.fullName, len(grades))
			}
		})
	}
}

func TestStudentByName(t *testing.T) {
	store := NewStore(testutil.SetupSeededDB(t))

	student, err := store.StudentByName("Brian Smith")
	if err != nil {
		t.Fatal(err)
	}
	if student.ID != 2 || student.BirthYear != 2004 {
		t.Errorf("unexpected student: %+v", student)
	}

	_, err = store.StudentByName("Nobody Here")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected ErrNoRows for unknown student, got %v", err)
	}
}

func TestAverageByStudent(t *testing.T) {
	store := NewStore(testutil.SetupSeededDB(t))

	averages, err := store.AverageByStudent()
	if err != nil {
		t.Fatal(err)
	}

	if len(averages) != 9 {
		t.Fatalf("expected 9 averaged students, got %d", len(averages))
	}

	// Student 1: (88+92+85)/3
	var alice *models.StudentAverage
	for i := range averages {
		if averages[i].StudentID == 1 {
			alice = &averages[i]
		}
	}
	if alice == nil {
		t.Fatal("student 1 missing from averages")
	}
	if !almostEqual(alice.Average, 88.3333) {
		t.Errorf("expected average 88.33 for student 1, got %f", alice.Average)
	}
}

func TestStudentsBornAfter(t *testing.T) {
	store := NewStore(testutil.SetupSeededDB(t))

	students, err := store.StudentsBornAfter(2004)
	if err != nil {
		t.Fatal(err)
	}

	names := make(map[string]bool, len(students))
	for _, s := range students {
		if s.BirthYear <= 2004 {
			t.Errorf("%s born %d should be excluded", s.FullName, s.BirthYear)
		}
		names[s.FullName] = true
	}

	if !names["Alice Johnson"] {
		t.Error("Alice Johnson (2005) should be included")
	}
	if names["Brian Smith"] {
		t.Error("Brian Smith (2004) should be excluded")
	}
}

func TestAverageBySubject(t *testing.T) {
	store := NewStore(testutil.SetupSeededDB(t))

	averages, err := store.AverageBySubject()
	if err != nil {
		t.Fatal(err)
	}

	if len(averages) != 4 {
		t.Fatalf("expected 4 subjects, got %d", len(averages))
	}

	want := map[string]float64{
		"English": 601.0 / 7,
		"History": 523.0 / 6,
		"Math":    591.0 / 7,
		"Science": 605.0 / 7,
	}
	for _, avg := range averages {
		if !almostEqual(avg.Average, want[avg.Subject]) {
			t.Errorf("expected %s average %f, got %f", avg.Subject, want[avg.Subject], avg.Average)
		}
	}
}

func TestTopStudents(t *testing.T) {
	store := NewStore(testutil.SetupSeededDB(t))

	top, err := store.TopStudents(3)
	if err != nil {
		t.Fatal(err)
	}

	if len(top) != 3 {
		t.Fatalf("expected exactly 3 rows, got %d", len(top))
	}

	// Sorted by average descending
	for i := 1; i < len(top); i++ {
		if top[i].Average > top[i-1].Average {
			t.Errorf("ranking not descending: %f before %f", top[i-1].Average, top[i].Average)
		}
	}

	if top[0].FullName != "Emma Wilson" || !almostEqual(top[0].Average, 94.0) {
		t.Errorf("expected Emma Wilson (94.0) on top, got %s (%f)", top[0].FullName, top[0].Average)
	}

	// Top average must dominate every student's average
	all, err := store.AverageByStudent()
	if err != nil {
		t.Fatal(err)
	}
	for _, avg := range all {
		if avg.Average > top[0].Average {
			t.Errorf("%s (%f) beats the top row (%f)", avg.FullName, avg.Average, top[0].Average)
		}
	}
}

func TestTopStudents_TieBreakByID(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := NewStore(conn)

	// Two students with identical averages
	first := testutil.AddTestStudent(t, conn, "Tied One", 2005)
	second := testutil.AddTestStudent(t, conn, "Tied Two", 2005)
	testutil.AddTestGrade(t, conn, first, "Math", 90)
	testutil.AddTestGrade(t, conn, second, "Math", 90)

	top, err := store.TopStudents(2)
	if err != nil {
		t.Fatal(err)
	}

	if len(top) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(top))
	}
	if top[0].StudentID != first || top[1].StudentID != second {
		t.Errorf("ties should resolve by id ascending, got %d then %d", top[0].StudentID, top[1].StudentID)
	}
}

func TestStudentsWithGradeBelow(t *testing.T) {
	store := NewStore(testutil.SetupSeededDB(t))

	students, err := store.StudentsWithGradeBelow(80)
	if err != nil {
		t.Fatal(err)
	}

	names := make(map[string]int, len(students))
	for _, s := range students {
		names[s.FullName]++
	}

	if names["Brian Smith"] != 1 {
		t.Error("Brian Smith (has a 75) should be included exactly once")
	}
	if names["Alice Johnson"] != 0 {
		t.Error("Alice Johnson (all grades >= 80) should be excluded")
	}
	// Daniel Lee has two grades below 80 but must appear once
	if names["Daniel Lee"] != 1 {
		t.Errorf("Daniel Lee should be deduplicated to one row, got %d", names["Daniel Lee"])
	}
}
