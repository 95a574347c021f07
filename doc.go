// Copyright (c) 2025 The gradebook authors.
// MIT licensed; see LICENSE.

/*
Package main provides the entry point for the gradebook classroom exercise.

Gradebook is a teaching artifact: a two-table relational schema (students,
grades), a fixed seed dataset, and a catalog of eight queries demonstrating
foreign keys, joins, aggregation, grouping, ordering and limiting. Running the
binary creates the schema, seeds the data, executes the catalog and prints a
student report. With -serve it also exposes the catalog over HTTP.

# Running the Exercise

The default engine is embedded SQLite, so no external services are needed:

	go run .

Against PostgreSQL:

	go run . -t postgres -d "postgres://..."

# Configuration

Optional settings (flags override environment):

  - DATABASE_DRIVER (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): DSN (default: file:gradebook.db for sqlite)
  - PORT (-p): report API port (default: 8080)
  - SERVE (-serve): keep serving the report API after the report prints

# Architecture

The module mirrors the flow of the exercise:

  - db: schema creation and data seeding
  - queries: the eight-query catalog
  - report: text report running the catalog in sequence
  - handlers: HTTP handlers over the catalog
  - router: route definitions using Go 1.22+ routing
  - middleware: logging and JSON helpers
  - models: row and response types
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
