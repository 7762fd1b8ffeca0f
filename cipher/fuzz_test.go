package cipher_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-classical-ciphers/cipher"
)

// FuzzLetterCiphersRoundTrip checks that the stateless-restart letter
// ciphers recover the canonical letters of any input.
//
// Run with: go test -fuzz=FuzzLetterCiphersRoundTrip ./cipher/
func FuzzLetterCiphersRoundTrip(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("Attack at dawn!"))
	f.Add([]byte{0x00, 'a', 0xff, 'Z'})
	f.Add(bytes.Repeat([]byte("LETTERS "), 40))

	builders := map[string]func() cipher.Cipher{
		"vigenere": func() cipher.Cipher { c, _ := cipher.NewVigenere([]byte("LEMON")); return c },
		"autokey":  func() cipher.Cipher { c, _ := cipher.NewVigenereAutokey([]byte("QUEENLY")); return c },
		"affine":   func() cipher.Cipher { c, _ := cipher.NewAffine(7, 3); return c },
	}

	f.Fuzz(func(t *testing.T, plaintext []byte) {
		want := canonicalLetters(plaintext)
		for name, build := range builders {
			ct, err := cipher.Encrypt(cipher.Letters(build()), plaintext)
			require.NoError(t, err, name)

			pt, err := cipher.Decrypt(cipher.Letters(build()), ct)
			require.NoError(t, err, name)
			assert.Equal(t, want, pt, name)
		}
	})
}

func FuzzVigenere256RoundTrip(f *testing.F) {
	f.Add([]byte("key"), []byte("hello"))
	f.Add([]byte{0xff}, []byte{0x00, 0x01, 0xfe})

	f.Fuzz(func(t *testing.T, key, plaintext []byte) {
		if len(key) == 0 {
			t.Skip()
		}
		enc, err := cipher.NewVigenere256(key)
		require.NoError(t, err)
		ct, err := cipher.Encrypt(enc, plaintext)
		require.NoError(t, err)
		require.Len(t, ct, len(plaintext))

		dec, _ := cipher.NewVigenere256(key)
		pt, err := cipher.Decrypt(dec, ct)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(plaintext, pt))
	})
}

// FuzzHillRoundTrip checks that decryption recovers the letters followed by
// at most N−1 padding letters.
func FuzzHillRoundTrip(f *testing.F) {
	f.Add([]byte("ACT"))
	f.Add([]byte("seven!!"))

	f.Fuzz(func(t *testing.T, plaintext []byte) {
		want := canonicalLetters(plaintext)
		ct, err := cipher.Encrypt(cipher.Letters(newHill(t, hillKey3)), plaintext)
		require.NoError(t, err)

		pt, err := cipher.Decrypt(cipher.Letters(newHill(t, hillKey3)), ct)
		require.NoError(t, err)
		require.Zero(t, len(pt)%3)
		require.True(t, bytes.HasPrefix(pt, want))
		assert.Equal(t, bytes.Repeat([]byte{'A'}, len(pt)-len(want)), pt[len(want):])
	})
}

// FuzzPlayfair checks that encryption always yields whole digraphs that
// decrypt, and that decryption never panics on arbitrary input.
func FuzzPlayfair(f *testing.F) {
	f.Add([]byte("BALLOON"))
	f.Add([]byte("xxjjii"))
	f.Add([]byte{0x80, 'q'})

	f.Fuzz(func(t *testing.T, data []byte) {
		p, _ := cipher.NewPlayfair([]byte(playfairKey))
		ct, err := cipher.Encrypt(cipher.Letters(p), data)
		require.NoError(t, err)
		letters := stripGrouping(ct)
		require.Zero(t, len(letters)%2)
		require.GreaterOrEqual(t, len(letters), len(canonicalLetters(data)))

		p, _ = cipher.NewPlayfair([]byte(playfairKey))
		_, err = cipher.Decrypt(p, letters)
		require.NoError(t, err)

		p, _ = cipher.NewPlayfair([]byte(playfairKey))
		_, _ = cipher.Decrypt(p, data)
	})
}
