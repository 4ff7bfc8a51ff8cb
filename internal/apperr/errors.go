// Package apperr defines the sentinel errors shared across the service.
package apperr

import "errors"

var (
	// ErrNotFound is returned when an entity lookup by id finds nothing.
	// Update and delete operations deliberately do NOT return it; missing
	// ids there are silent no-ops.
	ErrNotFound = errors.New("not found")

	// ErrMissingAPIKey means no generation API credential is configured.
	// Raised before any network call is attempted.
	ErrMissingAPIKey = errors.New("generation API key is not configured: set GEMINI_API_KEY")

	// ErrGeneration means the generation API answered but its content was
	// empty, unparseable or did not match the requested shape.
	ErrGeneration = errors.New("generation produced no usable content")
)
