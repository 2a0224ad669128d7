// Package connectors lazily opens connections to external stores.
package connectors

import "numconv/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
