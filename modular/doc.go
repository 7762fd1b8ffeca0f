// Package modular implements residue arithmetic and square residue matrices
// over a small modulus (2 to 255).  It is the arithmetic layer behind the
// letter ciphers in package cipher: Affine needs multiplicative inverses
// modulo 26 and Hill needs whole-matrix inverses modulo 26.
//
// # Quick start
//
//	m26, _ := modular.NewModulus(26)
//
//	r := m26.Residue(7)
//	inv, err := r.Inverse()        // 15, since 7·15 = 105 ≡ 1 (mod 26)
//
//	key, _ := modular.NewMatrix(m26, 2, []uint8{3, 3, 2, 5})
//	keyInv, err := key.Inverse()
//
// # Moduli
//
// The modulus is a runtime value carried by every [Residue] and [Matrix].
// It is validated once by [NewModulus]; afterwards arithmetic never fails.
// Combining values of different moduli is a programming error and panics,
// the same way mixing slice lengths does in [Matrix.SliceMult].
//
// # Failure modes
//
// Only inversion can fail:
//
//   - [Residue.Inverse] returns a [*CoprimeError] (matching [ErrNotCoprime])
//     when gcd(value, modulus) ≠ 1.
//   - [Matrix.Inverse] returns [ErrDegenerateMatrix] when a column has no
//     nonzero pivot candidate, or a [*CoprimeError] when the best pivot
//     it can build has no inverse.
package modular
