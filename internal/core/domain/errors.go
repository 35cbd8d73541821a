package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates a file extension no reader handles.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrDecodeFailure indicates the file bytes could not be decoded
	// with any supported encoding.
	ErrDecodeFailure = errors.New("decode failure")

	// ErrMalformedCard indicates a card failed validation: a required
	// field was empty or the facts bound was exceeded.
	ErrMalformedCard = errors.New("malformed card")
)
