// Copyright (c) 2025 The gradebook authors.
// MIT licensed; see LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment variables.

CLI flags take priority over environment variables. A .env file in the working
directory is loaded first (via godotenv), so local development needs no exports.

	go run . -t postgres -d "postgres://..." -serve

All settings have defaults except the postgres DSN, which must be provided when
the postgres driver is selected.
*/
package cliparse
