package registry

import (
	"fmt"

	"github.com/hasbyte1/go-classical-ciphers/cipher"
	"github.com/hasbyte1/go-classical-ciphers/keyderive"
	"github.com/hasbyte1/go-classical-ciphers/keyparse"
)

// DriverName identifies a registered cipher.
type DriverName string

// Built-in drivers registered by [NewDefaultManager].
const (
	DriverVigenere        DriverName = "vigenere"
	DriverVigenereAutokey DriverName = "vigenere-autokey"
	DriverVigenere256     DriverName = "vigenere-256"
	DriverVigenere256KDF  DriverName = "vigenere-256-kdf"
	DriverPlayfair        DriverName = "playfair"
	DriverAffine          DriverName = "affine"
	DriverHill            DriverName = "hill"
)

// Factory builds a fresh cipher instance from key text.
type Factory func(key string) (cipher.Cipher, error)

// The letter ciphers are wrapped in [cipher.Letters] so that free text and
// grouped ciphertext can be fed to them directly.

func newVigenere(key string) (cipher.Cipher, error) {
	c, err := cipher.NewVigenere([]byte(key))
	if err != nil {
		return nil, err
	}
	return cipher.Letters(c), nil
}

func newVigenereAutokey(key string) (cipher.Cipher, error) {
	c, err := cipher.NewVigenereAutokey([]byte(key))
	if err != nil {
		return nil, err
	}
	return cipher.Letters(c), nil
}

// newVigenere256 uses the key text's bytes verbatim.
func newVigenere256(key string) (cipher.Cipher, error) {
	return cipher.NewVigenere256([]byte(key))
}

func newPlayfair(key string) (cipher.Cipher, error) {
	c, err := cipher.NewPlayfair([]byte(key))
	if err != nil {
		return nil, err
	}
	return cipher.Letters(c), nil
}

// newAffine takes "m n" or "m,n".
func newAffine(key string) (cipher.Cipher, error) {
	m, n, err := keyparse.ParseAffineKey(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cipher.ErrInvalidKey, err)
	}
	c, err := cipher.NewAffine(m, n)
	if err != nil {
		return nil, err
	}
	return cipher.Letters(c), nil
}

// newHill takes the row-major entries of a square matrix.
func newHill(key string) (cipher.Cipher, error) {
	values, _, err := keyparse.ParseMatrix(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cipher.ErrInvalidKey, err)
	}
	c, err := cipher.NewHill(values)
	if err != nil {
		return nil, err
	}
	return cipher.Letters(c), nil
}

// kdfFactory stretches the key text with opts before keying Vigenère-256.
func kdfFactory(opts keyderive.Options) Factory {
	return func(key string) (cipher.Cipher, error) {
		if key == "" {
			return nil, cipher.ErrEmptyKey
		}
		derived, err := keyderive.Derive([]byte(key), opts)
		if err != nil {
			return nil, err
		}
		return cipher.NewVigenere256(derived)
	}
}
