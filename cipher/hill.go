package cipher

import (
	"fmt"

	"github.com/hasbyte1/go-classical-ciphers/modular"
)

// Hill enciphers blocks of N letters by multiplying them, as a column
// vector, with an invertible N×N key matrix modulo 26.
//
// Input is buffered until a block is full; the whole block is then emitted
// at once.  [Hill.EncryptFinish] pads the last block with 'A'.
// [Hill.DecryptFinish] does not pad and reports [ErrIncompleteBlock] when
// the ciphertext length is not a multiple of N.
type Hill struct {
	key, inv *modular.Matrix

	block []modular.Residue
	out   []modular.Residue
	n     int
	group grouper
}

// NewHill builds a Hill cipher from a row-major square matrix, for example
// the nine values of a 3×3 key.  Entries are reduced modulo 26.
//
// It returns [ErrEmptyKey] for no values and an error wrapping
// [ErrInvalidKey] when the values do not form a square or the matrix has
// no inverse modulo 26 (the cause, [modular.ErrDegenerateMatrix] or a
// [*modular.CoprimeError], is wrapped too).
func NewHill(values []uint8) (*Hill, error) {
	if len(values) == 0 {
		return nil, ErrEmptyKey
	}
	size := 1
	for size*size < len(values) {
		size++
	}
	if size*size != len(values) {
		return nil, fmt.Errorf("%w: matrix is not square: %d values", ErrInvalidKey, len(values))
	}

	key, err := modular.NewMatrix(letterMod, size, values)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	inv, err := key.Inverse()
	if err != nil {
		return nil, fmt.Errorf("%w: matrix is not invertible: %w", ErrInvalidKey, err)
	}
	return &Hill{
		key:   key,
		inv:   inv,
		block: make([]modular.Residue, size),
		out:   make([]modular.Residue, size),
	}, nil
}

// BlockSize returns N, the number of letters per block.
func (h *Hill) BlockSize() int { return h.key.Size() }

// Key returns the key matrix.
func (h *Hill) Key() *modular.Matrix { return h.key }

// InverseKey returns the decryption matrix.
func (h *Hill) InverseKey() *modular.Matrix { return h.inv }

// EncryptByte implements [Encryptor].
func (h *Hill) EncryptByte(dst []byte, b byte) ([]byte, error) {
	if !h.push(b) {
		return dst, ErrInvalidSymbol
	}
	if h.n < len(h.block) {
		return dst, nil
	}
	h.n = 0
	h.key.SliceMult(h.block, h.out)
	for _, r := range h.out {
		dst = h.group.appendLetter(dst, residueLetter(r))
	}
	return dst, nil
}

// EncryptFinish implements [Encryptor], completing a partial block with 'A'.
func (h *Hill) EncryptFinish(dst []byte) ([]byte, error) {
	for h.n != 0 {
		var err error
		if dst, err = h.EncryptByte(dst, 'A'); err != nil {
			return dst, err
		}
	}
	return dst, nil
}

// DecryptByte implements [Decryptor].
func (h *Hill) DecryptByte(dst []byte, b byte) ([]byte, error) {
	if !h.push(b) {
		return dst, ErrInvalidSymbol
	}
	if h.n < len(h.block) {
		return dst, nil
	}
	h.n = 0
	h.inv.SliceMult(h.block, h.out)
	for _, r := range h.out {
		dst = append(dst, residueLetter(r))
	}
	return dst, nil
}

// DecryptFinish implements [Decryptor].
func (h *Hill) DecryptFinish(dst []byte) ([]byte, error) {
	if h.n != 0 {
		return dst, ErrIncompleteBlock
	}
	return dst, nil
}

func (h *Hill) push(b byte) bool {
	r, ok := letterResidue(b)
	if !ok {
		return false
	}
	h.block[h.n] = r
	h.n++
	return true
}
