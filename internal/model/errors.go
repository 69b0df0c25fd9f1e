package model

import "errors"

var (
	// ErrInvalidFormat means the input does not match the expected
	// structure (hex color length, token segment count)
	ErrInvalidFormat = errors.New("invalid format")

	// ErrDecodeFailure means the input structure was right but a
	// base64, UTF-8 or JSON decoding step failed
	ErrDecodeFailure = errors.New("decode failure")

	// ErrUnrecognizedReference means a URL matched no known hosting provider
	ErrUnrecognizedReference = errors.New("unrecognized repository reference")
)
