package format

import "errors"

var (
	// ErrSignatureMismatch indicates a record's magic bytes did not match.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrUnknownClass indicates an entity record's class-id has no registered schema.
	ErrUnknownClass = errors.New("format: unknown class-id")
	// ErrSanityLimit indicates a parsed count or size exceeded a sanity limit.
	ErrSanityLimit = errors.New("format: value exceeds sanity limit")
)
