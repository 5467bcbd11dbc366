package tbf

import "errors"

var (
	// ErrEmptyTagName indicates a tag was constructed from an empty name.
	ErrEmptyTagName = errors.New("tbf: tag name is empty")

	// ErrTagNameTooLong indicates a tag name longer than the 255 bytes the
	// wire format can encode.
	ErrTagNameTooLong = errors.New("tbf: tag name exceeds 255 bytes")

	// ErrInvalidTagName indicates a tag name with characters outside [A-Za-z0-9_].
	ErrInvalidTagName = errors.New("tbf: tag name contains invalid characters")

	// ErrZeroTagID indicates the reserved tag id 0, either given explicitly
	// or produced by the name hash.
	ErrZeroTagID = errors.New("tbf: tag id 0 is reserved")
)
