package catalog

import "errors"

var (
	// ErrUnrecognizedPayload is returned when a payload is neither a bare
	// line-item array nor an envelope object with a products array.
	ErrUnrecognizedPayload = errors.New("unrecognized payload format")

	// ErrDecryptionFailed is returned when an encrypted payload cannot be
	// recovered, typically because the key is wrong or the blob is damaged.
	ErrDecryptionFailed = errors.New("payload decryption failed")

	// ErrEmptyKey is returned when an empty encryption key is supplied.
	ErrEmptyKey = errors.New("empty encryption key")

	// ErrSourceRequired is returned when a nil source is supplied.
	ErrSourceRequired = errors.New("source required")
)
