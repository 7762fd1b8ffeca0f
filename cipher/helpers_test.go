package cipher_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-classical-ciphers/cipher"
)

func encryptString(t testing.TB, e cipher.Encryptor, s string) string {
	t.Helper()
	out, err := cipher.Encrypt(e, []byte(s))
	require.NoError(t, err)
	return string(out)
}

func decryptString(t testing.TB, d cipher.Decryptor, s string) string {
	t.Helper()
	out, err := cipher.Decrypt(d, []byte(s))
	require.NoError(t, err)
	return string(out)
}

// canonicalLetters upper-cases the ASCII letters of s and drops the rest.
func canonicalLetters(s []byte) []byte {
	out := make([]byte, 0, len(s))
	for _, b := range s {
		if cipher.IsASCIILetter(b) {
			out = append(out, cipher.ToUpperASCII(b))
		}
	}
	return out
}

// stripGrouping removes the separators inserted by letter-cipher encryption.
func stripGrouping(s []byte) []byte {
	out := make([]byte, 0, len(s))
	for _, b := range s {
		if b != ' ' && b != '\n' {
			out = append(out, b)
		}
	}
	return out
}

// splitter emits every input byte followed by a '1', which no letter cipher
// accepts.  It is used to provoke failures half-way through a relay.
type splitter struct{}

func (splitter) EncryptByte(dst []byte, b byte) ([]byte, error) { return append(dst, b, '1'), nil }
func (splitter) EncryptFinish(dst []byte) ([]byte, error)       { return append(dst, 'Z', '1'), nil }
func (splitter) DecryptByte(dst []byte, b byte) ([]byte, error) { return append(dst, b, '1'), nil }
func (splitter) DecryptFinish(dst []byte) ([]byte, error)       { return dst, nil }
