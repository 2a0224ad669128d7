// Package contextx carries request-scoped values: the logger, the trace id
// and the client that issued a conversion.
package contextx

import "errors"

var ErrNoValue = errors.New("no value in context")
