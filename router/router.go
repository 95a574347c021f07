// Copyright (c) 2025 The gradebook authors.
// MIT licensed; see LICENSE.

package router

import (
	"net/http"

	"gradebook/cliparse"
	"gradebook/handlers"
	"gradebook/middleware"
	"gradebook/models"
	"gradebook/queries"
)

func NewRouter(store *queries.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	studentsHandler := handlers.NewStudentsHandler(store)
	averagesHandler := handlers.NewAveragesHandler(store)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{Status: "ok"})
	})

	// Roster and grades
	mux.HandleFunc("GET /students", middleware.WithLogging(studentsHandler.List))
	mux.HandleFunc("GET /grades", middleware.WithLogging(studentsHandler.ListGrades))
	mux.HandleFunc("GET /students/struggling", middleware.WithLogging(studentsHandler.GetStruggling))
	mux.HandleFunc("GET /students/{name}/grades", middleware.WithLogging(studentsHandler.GetTranscript))

	// Aggregates
	mux.HandleFunc("GET /averages/students", middleware.WithLogging(averagesHandler.ByStudent))
	mux.HandleFunc("GET /averages/subjects", middleware.WithLogging(averagesHandler.BySubject))
	mux.HandleFunc("GET /rankings", middleware.WithLogging(averagesHandler.Rankings))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("gradebook report API v1"))
	})

	return mux
}
