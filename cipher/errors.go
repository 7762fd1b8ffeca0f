package cipher

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by cipher construction and streaming.
//
// Callers should use errors.Is for comparisons:
//
//	_, err := cipher.Decrypt(playfair, ciphertext)
//	if errors.Is(err, cipher.ErrIncompleteBlock) {
//	    // ciphertext was truncated
//	}
var (
	// ErrStream matches every error raised while streaming bytes through an
	// instance.  Once a cipher reports a stream error the session is over.
	ErrStream = errors.New("cipher: stream error")

	// ErrInvalidSymbol is returned when an input byte is outside the
	// cipher's alphabet, for example a digit fed to a letter cipher.
	ErrInvalidSymbol = fmt.Errorf("%w: invalid input symbol", ErrStream)

	// ErrIncompleteBlock is returned by a finish method when buffered input
	// does not form a whole block and the cipher does not pad.
	ErrIncompleteBlock = fmt.Errorf("%w: incomplete block at end of input", ErrStream)

	// ErrEmptyKey is returned when a key is empty or, for letter ciphers,
	// holds no letters.
	ErrEmptyKey = errors.New("cipher: key must not be empty")

	// ErrInvalidKey is returned when key material is present but unusable.
	// The wrapped message names the defect; arithmetic failures also wrap
	// the underlying modular error.
	ErrInvalidKey = errors.New("cipher: invalid key")

	// ErrWriterClosed is returned by a [StreamWriter] used after Close.
	ErrWriterClosed = errors.New("cipher: stream writer is closed")
)
