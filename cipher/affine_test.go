package cipher_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-classical-ciphers/cipher"
	"github.com/hasbyte1/go-classical-ciphers/modular"
)

func TestNewAffine_Validation(t *testing.T) {
	tests := []struct {
		name    string
		m       uint8
		wantGCD uint8
	}{
		{"zero multiplier", 0, 0},
		{"even multiplier", 2, 2},
		{"multiple of thirteen", 13, 13},
		{"reduces to zero", 26, 26},
		{"even after reduction", 28, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cipher.NewAffine(tt.m, 3)
			require.Error(t, err)
			assert.ErrorIs(t, err, cipher.ErrInvalidKey)
			if tt.m%26 == 0 {
				assert.Contains(t, err.Error(), "must not be zero")
				return
			}
			assert.ErrorIs(t, err, modular.ErrNotCoprime)
			var ce *modular.CoprimeError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tt.wantGCD, ce.GCD)
		})
	}
}

func TestNewAffine_AcceptsEveryUnit(t *testing.T) {
	for _, m := range []uint8{1, 3, 5, 7, 9, 11, 15, 17, 19, 21, 23, 25, 27} {
		_, err := cipher.NewAffine(m, 0)
		assert.NoError(t, err, "m=%d", m)
	}
}

func TestAffine_KnownAnswer(t *testing.T) {
	a, err := cipher.NewAffine(5, 8)
	require.NoError(t, err)
	assert.Equal(t, "IHHWV CSWFR CP", encryptString(t, a, "AFFINECIPHER"))

	a, _ = cipher.NewAffine(5, 8)
	assert.Equal(t, "AFFINECIPHER", decryptString(t, a, "IHHWVCSWFRCP"))
}

func TestAffine_IdentityKey(t *testing.T) {
	a, _ := cipher.NewAffine(1, 0)
	assert.Equal(t, "HELLO WORLD", encryptString(t, cipher.Letters(a), "hello, world"))
}

func TestAffine_RoundTripAllLetters(t *testing.T) {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	for _, m := range []uint8{3, 7, 25} {
		enc, _ := cipher.NewAffine(m, 17)
		dec, _ := cipher.NewAffine(m, 17)
		ct := encryptString(t, enc, alphabet)
		assert.Equal(t, alphabet, decryptString(t, cipher.Letters(dec), ct), "m=%d", m)
	}
}

func TestAffine_RejectsNonLetters(t *testing.T) {
	a, _ := cipher.NewAffine(5, 8)
	_, err := a.EncryptByte(nil, '@')
	assert.ErrorIs(t, err, cipher.ErrInvalidSymbol)
	_, err = a.DecryptByte(nil, ' ')
	assert.ErrorIs(t, err, cipher.ErrInvalidSymbol)
}
