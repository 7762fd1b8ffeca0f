package modular

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by this package.
//
// Use [errors.Is] for comparisons:
//
//	_, err := key.Inverse()
//	if errors.Is(err, modular.ErrNotCoprime) {
//	    // determinant shares a factor with the modulus
//	}
var (
	// ErrInvalidModulus is returned by [NewModulus] for moduli below 2.
	ErrInvalidModulus = errors.New("modular: modulus must be at least 2")

	// ErrNotCoprime matches every [*CoprimeError].
	ErrNotCoprime = errors.New("modular: value is not coprime to modulus")

	// ErrDegenerateMatrix is returned by [Matrix.Inverse] when a column has
	// no nonzero pivot at or below the diagonal.
	ErrDegenerateMatrix = errors.New("modular: degenerate matrix")

	// ErrDimensionMismatch is returned when a value list does not fill a
	// size×size matrix, or when two matrices cannot be multiplied.
	ErrDimensionMismatch = errors.New("modular: dimension mismatch")
)

// CoprimeError reports a value that has no multiplicative inverse because
// it shares the factor GCD with the modulus.
type CoprimeError struct {
	Value   uint8
	Modulus uint8
	GCD     uint8
}

func (e *CoprimeError) Error() string {
	return fmt.Sprintf("%d is not coprime to %d (GCD: %d)", e.Value, e.Modulus, e.GCD)
}

// Is reports whether target is [ErrNotCoprime].
func (e *CoprimeError) Is(target error) bool {
	return target == ErrNotCoprime
}
