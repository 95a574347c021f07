// Copyright (c) 2025 The gradebook authors.
// MIT licensed; see LICENSE.

// Package router defines the report API routes using Go 1.22+ routing.
package router
