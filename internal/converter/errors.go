// Package converter holds the conversion logic behind POST /api/convert.
// Failures are reported as sentinel errors so that the HTTP layer can map
// each kind to a status code without inspecting messages.
package converter

import "errors"

// ErrMissingField is returned when the request body is not a JSON object or
// lacks a non-null "text" or "target".  Handlers should translate this into
// an HTTP 400 response.
var ErrMissingField = errors.New("missing 'text' or 'target' in request")
