package keyderive

import "errors"

// Sentinel errors returned by key derivation.
//
// Use [errors.Is] for comparisons:
//
//	opts, err := keyderive.ParseParams(s)
//	if errors.Is(err, keyderive.ErrInvalidParams) {
//	    // parameter string is malformed
//	}
var (
	// ErrInvalidOption is returned when an [Options] value falls outside the
	// allowed range (e.g., zero iterations or a salt shorter than 8 bytes).
	ErrInvalidOption = errors.New("keyderive: invalid option value")

	// ErrInvalidParams is returned by [ParseParams] for a parameter string
	// with an unrecognised format, missing fields, or invalid encoding.
	ErrInvalidParams = errors.New("keyderive: invalid or unrecognised parameter string")

	// ErrEmptyPassphrase is returned by [Derive] for an empty passphrase.
	ErrEmptyPassphrase = errors.New("keyderive: passphrase must not be empty")
)
