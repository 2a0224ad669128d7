// Package persistence stores the conversion history in Postgres.
package persistence

import "numconv/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
