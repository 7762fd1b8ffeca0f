package cipher

import (
	"fmt"

	"github.com/hasbyte1/go-classical-ciphers/modular"
)

// Affine maps each letter p to m·p + n (mod 26).  Decryption applies
// (c − n)·m⁻¹.  Encryption groups its output.
type Affine struct {
	m, n, mInv modular.Residue
	group      grouper
}

// NewAffine builds an affine cipher.  The multiplier m must not reduce to
// zero and must be coprime to 26 (1, 3, 5, 7, 9, 11, 15, 17, 19, 21, 23 or 25 after
// reduction); the returned error wraps [ErrInvalidKey] and, for a shared
// factor, the [*modular.CoprimeError] naming it.  The shift n is reduced
// modulo 26.
func NewAffine(m, n uint8) (*Affine, error) {
	mr := letterMod.Residue(m)
	if mr.IsZero() {
		return nil, fmt.Errorf("%w: multiplier %d must not be zero mod 26", ErrInvalidKey, m)
	}
	mInv, err := mr.Inverse()
	if err != nil {
		return nil, fmt.Errorf("%w: multiplier %d shares a factor with 26: %w", ErrInvalidKey, m, err)
	}
	return &Affine{m: mr, n: letterMod.Residue(n), mInv: mInv}, nil
}

// EncryptByte implements [Encryptor].
func (a *Affine) EncryptByte(dst []byte, b byte) ([]byte, error) {
	p, ok := letterResidue(b)
	if !ok {
		return dst, ErrInvalidSymbol
	}
	c := p.Mul(a.m).Add(a.n)
	return a.group.appendLetter(dst, residueLetter(c)), nil
}

// EncryptFinish implements [Encryptor].
func (a *Affine) EncryptFinish(dst []byte) ([]byte, error) { return dst, nil }

// DecryptByte implements [Decryptor].
func (a *Affine) DecryptByte(dst []byte, b byte) ([]byte, error) {
	c, ok := letterResidue(b)
	if !ok {
		return dst, ErrInvalidSymbol
	}
	return append(dst, residueLetter(c.Sub(a.n).Mul(a.mInv))), nil
}

// DecryptFinish implements [Decryptor].
func (a *Affine) DecryptFinish(dst []byte) ([]byte, error) { return dst, nil }
