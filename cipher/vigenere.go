package cipher

import (
	"fmt"

	"github.com/hasbyte1/go-classical-ciphers/modular"
)

// Vigenere is the classical Vigenère cipher over the letters A–Z.
//
// Each letter is shifted by the key letter at the same position, the key
// repeating as needed.  Input letters of either case are accepted; output is
// upper case, and encryption groups its output (see the package
// documentation).  Any other input byte is rejected with [ErrInvalidSymbol].
type Vigenere struct {
	key   []modular.Residue
	count int
	group grouper
}

// NewVigenere builds a Vigenère cipher from the letters of key; other bytes
// in key are ignored and case does not matter.  It returns [ErrEmptyKey]
// when key holds no letters.
func NewVigenere(key []byte) (*Vigenere, error) {
	k := letterKey(key)
	if len(k) == 0 {
		return nil, fmt.Errorf("%w: key contains no letters", ErrEmptyKey)
	}
	return &Vigenere{key: k}, nil
}

// EncryptByte implements [Encryptor].
func (v *Vigenere) EncryptByte(dst []byte, b byte) ([]byte, error) {
	p, ok := letterResidue(b)
	if !ok {
		return dst, ErrInvalidSymbol
	}
	c := p.Add(v.next())
	return v.group.appendLetter(dst, residueLetter(c)), nil
}

// EncryptFinish implements [Encryptor]; Vigenère buffers nothing.
func (v *Vigenere) EncryptFinish(dst []byte) ([]byte, error) { return dst, nil }

// DecryptByte implements [Decryptor].
func (v *Vigenere) DecryptByte(dst []byte, b byte) ([]byte, error) {
	c, ok := letterResidue(b)
	if !ok {
		return dst, ErrInvalidSymbol
	}
	return append(dst, residueLetter(c.Sub(v.next()))), nil
}

// DecryptFinish implements [Decryptor]; Vigenère buffers nothing.
func (v *Vigenere) DecryptFinish(dst []byte) ([]byte, error) { return dst, nil }

func (v *Vigenere) next() modular.Residue {
	k := v.key[v.count%len(v.key)]
	v.count++
	return k
}

// VigenereAutokey is the autokey variant of [Vigenere]: once a key slot has
// been used it is overwritten with the plaintext letter it enciphered, so
// after the first len(key) letters the message keys itself.
//
// The key buffer changes with every byte, which makes an instance strictly
// sequential: it cannot resume from the middle of a message.
type VigenereAutokey struct {
	key   []modular.Residue
	count int
	group grouper
}

// NewVigenereAutokey builds an autokey cipher from the letters of key.  It
// returns [ErrEmptyKey] when key holds no letters.
func NewVigenereAutokey(key []byte) (*VigenereAutokey, error) {
	k := letterKey(key)
	if len(k) == 0 {
		return nil, fmt.Errorf("%w: key contains no letters", ErrEmptyKey)
	}
	return &VigenereAutokey{key: k}, nil
}

// EncryptByte implements [Encryptor].
func (v *VigenereAutokey) EncryptByte(dst []byte, b byte) ([]byte, error) {
	p, ok := letterResidue(b)
	if !ok {
		return dst, ErrInvalidSymbol
	}
	c := p.Add(v.swap(p))
	return v.group.appendLetter(dst, residueLetter(c)), nil
}

// EncryptFinish implements [Encryptor].
func (v *VigenereAutokey) EncryptFinish(dst []byte) ([]byte, error) { return dst, nil }

// DecryptByte implements [Decryptor].  The recovered plaintext letter is fed
// back into the key exactly as encryption did.
func (v *VigenereAutokey) DecryptByte(dst []byte, b byte) ([]byte, error) {
	c, ok := letterResidue(b)
	if !ok {
		return dst, ErrInvalidSymbol
	}
	ix := v.count % len(v.key)
	p := c.Sub(v.key[ix])
	v.key[ix] = p
	v.count++
	return append(dst, residueLetter(p)), nil
}

// DecryptFinish implements [Decryptor].
func (v *VigenereAutokey) DecryptFinish(dst []byte) ([]byte, error) { return dst, nil }

// swap returns the current key slot and replaces it with p.
func (v *VigenereAutokey) swap(p modular.Residue) modular.Residue {
	ix := v.count % len(v.key)
	k := v.key[ix]
	v.key[ix] = p
	v.count++
	return k
}

// Vigenere256 is Vigenère over the full byte range: every byte is shifted by
// the raw key byte with wrapping addition.  No byte is rejected and the
// output is not grouped, so it suits binary data.
type Vigenere256 struct {
	key    []byte
	offset int
}

// NewVigenere256 builds a byte-wise Vigenère cipher.  The key is used as is
// (not case-folded or filtered) and copied, so later changes to key do not
// affect the cipher.  It returns [ErrEmptyKey] for an empty key.
func NewVigenere256(key []byte) (*Vigenere256, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	return &Vigenere256{key: append([]byte(nil), key...)}, nil
}

// EncryptByte implements [Encryptor].
func (v *Vigenere256) EncryptByte(dst []byte, b byte) ([]byte, error) {
	return append(dst, b+v.next()), nil
}

// EncryptFinish implements [Encryptor].
func (v *Vigenere256) EncryptFinish(dst []byte) ([]byte, error) { return dst, nil }

// DecryptByte implements [Decryptor].
func (v *Vigenere256) DecryptByte(dst []byte, b byte) ([]byte, error) {
	return append(dst, b-v.next()), nil
}

// DecryptFinish implements [Decryptor].
func (v *Vigenere256) DecryptFinish(dst []byte) ([]byte, error) { return dst, nil }

func (v *Vigenere256) next() byte {
	k := v.key[v.offset%len(v.key)]
	v.offset++
	return k
}
