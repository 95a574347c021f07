// Copyright (c) 2025 The gradebook authors.
// MIT licensed; see LICENSE.

// Package report renders the classroom report by running the query catalog
// in sequence against an io.Writer.
package report
