package crypto

import "errors"

var (
	// ErrDecryption is returned when a blob cannot be decrypted: it is
	// malformed, truncated, tampered with, or sealed with another key.
	ErrDecryption = errors.New("decryption failed")

	// ErrEmptySecret is returned when a codec or blinder is constructed
	// without a server secret.
	ErrEmptySecret = errors.New("encryption secret is empty")
)
