// Copyright (c) 2025 The gradebook authors.
// MIT licensed; see LICENSE.

/*
Package handlers exposes the query catalog over HTTP.

Two handler groups, each a thin JSON wrapper around queries.Store:

  - StudentsHandler: roster (optionally filtered by birth year), grade
    listing, per-student transcripts, and the below-threshold filter
  - AveragesHandler: per-student and per-subject averages, top-N rankings

All endpoints are read-only GETs; the database is seeded once at startup and
never mutated by the API.
*/
package handlers
