// Package keyparse turns key text typed by a user into key material for the
// ciphers: bytes, square matrices and affine pairs.
//
// Numbers are unsigned decimal and may use '_' as a digit separator after
// any digit ("1_000" style, though key values never exceed 255).
// Surrounding whitespace is ignored everywhere.
package keyparse

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseUint8 parses a single number in [0, 255].
func ParseUint8(s string) (uint8, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmpty
	}
	digits, ok := stripSeparators(s)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	v, err := strconv.ParseUint(digits, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q does not fit in 0–255", ErrOutOfRange, s)
	}
	return uint8(v), nil
}

// stripSeparators validates a digit run with '_' separators and returns the
// digits alone.  The first character must be a digit.
func stripSeparators(s string) (string, bool) {
	var b strings.Builder
	for i := range len(s) {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			b.WriteByte(c)
		case c == '_' && i > 0:
		default:
			return "", false
		}
	}
	return b.String(), true
}

// ParseMatrix parses whitespace-separated numbers into the row-major entries
// of an N×N matrix, returning the entries and N.  A 3×3 key is written as
// nine numbers, for example "6 24 1 13 16 10 20 17 15".
func ParseMatrix(s string) ([]uint8, int, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, 0, ErrEmpty
	}

	size := 1
	for size*size < len(fields) {
		size++
	}
	if size*size != len(fields) {
		return nil, 0, fmt.Errorf("%w: %d entries", ErrNotSquare, len(fields))
	}

	values := make([]uint8, len(fields))
	for i, f := range fields {
		v, err := ParseUint8(f)
		if err != nil {
			return nil, 0, fmt.Errorf("entry %d: %w", i+1, err)
		}
		values[i] = v
	}
	return values, size, nil
}

// Affine key ranges accepted by [ParseAffineKey].
const (
	MinAffineMultiplier = 1
	MaxAffineMultiplier = 25
	MaxAffineShift      = 25
)

// ParseAffineKey parses "m n" or "m,n" into the multiplier and shift of an
// affine key, with m in [1, 25] and n in [0, 25].  Whether m is coprime to
// 26 is left to the cipher.
func ParseAffineKey(s string) (m, n uint8, err error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	switch len(fields) {
	case 0:
		return 0, 0, ErrEmpty
	case 2:
	default:
		return 0, 0, fmt.Errorf("%w: want two numbers \"m n\", got %d", ErrInvalidNumber, len(fields))
	}

	if m, err = ParseUint8(fields[0]); err != nil {
		return 0, 0, fmt.Errorf("multiplier: %w", err)
	}
	if n, err = ParseUint8(fields[1]); err != nil {
		return 0, 0, fmt.Errorf("shift: %w", err)
	}
	if m < MinAffineMultiplier || m > MaxAffineMultiplier {
		return 0, 0, fmt.Errorf("%w: multiplier %d not in %d–%d", ErrOutOfRange, m, MinAffineMultiplier, MaxAffineMultiplier)
	}
	if n > MaxAffineShift {
		return 0, 0, fmt.Errorf("%w: shift %d not in 0–%d", ErrOutOfRange, n, MaxAffineShift)
	}
	return m, n, nil
}
