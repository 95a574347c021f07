// Copyright (c) 2025 The gradebook authors.
// MIT licensed; see LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"gradebook/middleware"
	"gradebook/models"
	"gradebook/queries"
)

type StudentsHandler struct {
	store *queries.Store
}

func NewStudentsHandler(store *queries.Store) *StudentsHandler {
	return &StudentsHandler{store: store}
}

// List handles GET /students
// With ?born_after=YYYY the roster is filtered to students born strictly
// after that year.
func (h *StudentsHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		students []models.Student
		err      error
	)

	if bornAfter := r.URL.Query().Get("born_after"); bornAfter != "" {
		year, convErr := strconv.Atoi(bornAfter)
		if convErr != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "born_after must be a year")
			return
		}
		students, err = h.store.StudentsBornAfter(year)
	} else {
		students, err = h.store.ListStudents()
	}

	if err != nil {
		slog.Error("failed to list students", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, students)
}

// ListGrades handles GET /grades
func (h *StudentsHandler) ListGrades(w http.ResponseWriter, r *http.Request) {
	grades, err := h.store.ListGrades()
	if err != nil {
		slog.Error("failed to list grades", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, grades)
}

// GetTranscript handles GET /students/{name}/grades
// The name must match full_name exactly; unknown students get a 404.
func (h *StudentsHandler) GetTranscript(w http.ResponseWriter, r *http.Request) {
	fullName := r.PathValue("name")
	if fullName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	student, err := h.store.StudentByName(fullName)
	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Student not found")
		return
	}
	if err != nil {
		slog.Error("failed to look up student", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	grades, err := h.store.GradesForStudent(fullName)
	if err != nil {
		slog.Error("failed to get transcript", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TranscriptResponse{
		Student: student,
		Grades:  grades,
	})
}

// GetStruggling handles GET /students/struggling
// Returns students with at least one grade below the threshold (default 80),
// one row per student.
func (h *StudentsHandler) GetStruggling(w http.ResponseWriter, r *http.Request) {
	threshold := 80
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "threshold must be an integer")
			return
		}
		threshold = value
	}

	students, err := h.store.StudentsWithGradeBelow(threshold)
	if err != nil {
		slog.Error("failed to filter struggling students", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, students)
}
