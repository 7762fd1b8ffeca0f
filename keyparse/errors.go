package keyparse

import "errors"

// Sentinel errors returned by the parsers.
//
// Use [errors.Is] for comparisons:
//
//	_, err := keyparse.ParseMatrix(text)
//	if errors.Is(err, keyparse.ErrNotSquare) {
//	    // wrong number of entries
//	}
var (
	// ErrEmpty is returned when the input holds nothing but whitespace.
	ErrEmpty = errors.New("keyparse: empty input")

	// ErrInvalidNumber is returned for a token that is not a decimal number
	// with optional '_' digit separators.
	ErrInvalidNumber = errors.New("keyparse: invalid number")

	// ErrOutOfRange is returned when a number does not fit the accepted range.
	ErrOutOfRange = errors.New("keyparse: number out of range")

	// ErrNotSquare is returned by [ParseMatrix] when the number of entries is
	// not a perfect square.
	ErrNotSquare = errors.New("keyparse: matrix is not square")
)
