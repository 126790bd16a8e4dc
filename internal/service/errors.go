package service

import "errors"

// Service level error taxonomy. Transports map these to status codes with
// [errors.Is].
var (
	// ErrValidation wraps a validators sentinel describing malformed input.
	ErrValidation = errors.New("invalid data provided")

	// ErrNotFound is returned when the referenced note or session does not
	// exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden is returned when the access policy denies the action. It
	// never carries note details.
	ErrForbidden = errors.New("not authorized")

	// ErrShareNotAllowed is returned when a share or unshare targets a note
	// that does not allow sharing.
	ErrShareNotAllowed = errors.New("sharing is not allowed for this note, enable sharing first")

	// ErrDecryption wraps crypto.ErrDecryption when a stored body cannot be
	// decrypted.
	ErrDecryption = errors.New("note content could not be decrypted")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
