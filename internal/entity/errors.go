package entity

import "errors"

// Domain errors
var (
	// Validation errors: rejected before any external call is made
	ErrEmptyDescription = errors.New("description must not be empty")
	ErrInvalidPageCount = errors.New("page count must be between 1 and 5")
	ErrMissingField     = errors.New("required field is missing")
	ErrBundleMismatch   = errors.New("pages and html must have the same length")

	// Upstream generation errors
	ErrGenerationFailed = errors.New("text generation failed")
	ErrEmptyGeneration  = errors.New("text generation returned empty content")

	// Structured content errors: always fatal, never repaired by guessing
	ErrInvalidContentFormat = errors.New("generated content does not match the page content schema")

	// Image resolution errors: non-fatal, the placeholder is left in place
	ErrImageLookupFailed = errors.New("image lookup failed")
)
