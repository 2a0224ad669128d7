// Package middlewarex contains the chi middleware stack shared by the HTTP
// servers of the service.
package middlewarex

import "numconv/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func truncate(dump []byte, maxLen int) []byte {
	if maxLen > 0 && len(dump) > maxLen {
		return dump[:maxLen]
	}

	return dump
}
