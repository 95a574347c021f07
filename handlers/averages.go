// Copyright (c) 2025 The gradebook authors.
// MIT licensed; see LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"gradebook/middleware"
	"gradebook/models"
	"gradebook/queries"
)

type AveragesHandler struct {
	store *queries.Store
}

func NewAveragesHandler(store *queries.Store) *AveragesHandler {
	return &AveragesHandler{store: store}
}

// ByStudent handles GET /averages/students
func (h *AveragesHandler) ByStudent(w http.ResponseWriter, r *http.Request) {
	averages, err := h.store.AverageByStudent()
	if err != nil {
		slog.Error("failed to average by student", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, averages)
}

// BySubject handles GET /averages/subjects
func (h *AveragesHandler) BySubject(w http.ResponseWriter, r *http.Request) {
	averages, err := h.store.AverageBySubject()
	if err != nil {
		slog.Error("failed to average by subject", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, averages)
}

// Rankings handles GET /rankings
// Returns the top-N students by average grade, best first (default 3).
func (h *AveragesHandler) Rankings(w http.ResponseWriter, r *http.Request) {
	limit := 3
	if raw := r.URL.Query().Get("limit"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 1 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = value
	}

	top, err := h.store.TopStudents(limit)
	if err != nil {
		slog.Error("failed to rank students", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	ranked := make([]models.RankedStudent, len(top))
	for i, avg := range top {
		ranked[i] = models.RankedStudent{
			Rank:     i + 1,
			FullName: avg.FullName,
			Average:  avg.Average,
		}
	}

	middleware.JSONResponse(w, http.StatusOK, ranked)
}
