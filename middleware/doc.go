// Copyright (c) 2025 The gradebook authors.
// MIT licensed; see LICENSE.

// Package middleware provides request logging and JSON response helpers.
package middleware
