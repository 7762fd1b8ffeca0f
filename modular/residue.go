package modular

import "fmt"

// Modulus is a validated modulus in [2, 255].  Create one with [NewModulus].
type Modulus uint8

// NewModulus validates m and returns it as a [Modulus].
func NewModulus(m uint8) (Modulus, error) {
	if m < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidModulus, m)
	}
	return Modulus(m), nil
}

// Residue returns v reduced modulo m.
func (m Modulus) Residue(v uint8) Residue {
	return Residue{v: v % uint8(m), m: m}
}

// Residue is an integer modulo a [Modulus], always held in [0, M).
//
// Residue is a small value type; copy it freely.  The zero value has no
// modulus and must not be used in arithmetic.
type Residue struct {
	v uint8
	m Modulus
}

// Value returns the representative in [0, M).
func (r Residue) Value() uint8 { return r.v }

// Modulus returns the modulus r was reduced by.
func (r Residue) Modulus() Modulus { return r.m }

// IsZero reports whether r ≡ 0.
func (r Residue) IsZero() bool { return r.v == 0 }

// Equal reports whether r and o hold the same value under the same modulus.
func (r Residue) Equal(o Residue) bool { return r.v == o.v && r.m == o.m }

// Add returns r + o (mod M).
func (r Residue) Add(o Residue) Residue {
	r.check(o)
	return r.m.reduce(int(r.v) + int(o.v))
}

// Sub returns r − o (mod M).
func (r Residue) Sub(o Residue) Residue {
	r.check(o)
	return r.m.reduce(int(r.v) - int(o.v))
}

// Mul returns r · o (mod M).
func (r Residue) Mul(o Residue) Residue {
	r.check(o)
	return r.m.reduce(int(r.v) * int(o.v))
}

// Neg returns −r (mod M).
func (r Residue) Neg() Residue {
	return r.m.reduce(-int(r.v))
}

// Inverse returns the unique x with r·x ≡ 1 (mod M), computed with the
// extended Euclidean algorithm.  It returns a [*CoprimeError] when
// gcd(r, M) ≠ 1, which includes r ≡ 0.
func (r Residue) Inverse() (Residue, error) {
	g, x, _ := ExtendedGCD(int(r.v), int(r.m))
	if g != 1 {
		return Residue{}, &CoprimeError{Value: r.v, Modulus: uint8(r.m), GCD: uint8(g)}
	}
	return r.m.reduce(x), nil
}

func (r Residue) String() string {
	return fmt.Sprintf("%d (mod %d)", r.v, r.m)
}

func (r Residue) check(o Residue) {
	if r.m != o.m {
		panic(fmt.Sprintf("modular: modulus mismatch: %d and %d", r.m, o.m))
	}
}

func (m Modulus) reduce(v int) Residue {
	return Residue{v: uint8(m.reduceInt(v)), m: m}
}

func (m Modulus) reduceInt(v int) int {
	v %= int(m)
	if v < 0 {
		v += int(m)
	}
	return v
}

// ExtendedGCD returns g = gcd(a, b) together with Bézout coefficients x and
// y such that a·x + b·y = g.  For non-negative inputs g is non-negative.
func ExtendedGCD(a, b int) (g, x, y int) {
	oldR, r := a, b
	oldS, s := 1, 0
	oldT, t := 0, 1
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
		oldT, t = t, oldT-q*t
	}
	if oldR < 0 {
		return -oldR, -oldS, -oldT
	}
	return oldR, oldS, oldT
}
