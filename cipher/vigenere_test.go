package cipher_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-classical-ciphers/cipher"
)

// ──────────────────────────────────────────────────────────────────────────────
// Vigenère
// ──────────────────────────────────────────────────────────────────────────────

func TestNewVigenere_RejectsKeysWithoutLetters(t *testing.T) {
	for _, key := range []string{"", "123", " -!"} {
		_, err := cipher.NewVigenere([]byte(key))
		assert.ErrorIs(t, err, cipher.ErrEmptyKey, "key %q", key)
	}
}

func TestVigenere_KnownAnswer(t *testing.T) {
	v, err := cipher.NewVigenere([]byte("LEMON"))
	require.NoError(t, err)
	assert.Equal(t, "LXFOP VEFRN HR", encryptString(t, v, "ATTACKATDAWN"))

	v, _ = cipher.NewVigenere([]byte("LEMON"))
	assert.Equal(t, "ATTACKATDAWN", decryptString(t, v, "LXFOPVEFRNHR"))
}

func TestVigenere_KeyIgnoresCaseAndNonLetters(t *testing.T) {
	a, _ := cipher.NewVigenere([]byte("LEMON"))
	b, _ := cipher.NewVigenere([]byte("le-mon!"))
	assert.Equal(t, encryptString(t, a, "attackatdawn"), encryptString(t, b, "ATTACKATDAWN"))
}

func TestVigenere_IdentityKeyGrouping(t *testing.T) {
	v, _ := cipher.NewVigenere([]byte("A"))
	assert.Equal(t, "AAAAA AAAAA AA", encryptString(t, v, "AAAAAAAAAAAA"))
}

func TestVigenere_NewlineEverySixtyLetters(t *testing.T) {
	v, _ := cipher.NewVigenere([]byte("A"))
	got := encryptString(t, v, strings.Repeat("A", 65))

	want := strings.Repeat("AAAAA ", 11) + "AAAAA\nAAAAA"
	assert.Equal(t, want, got)
}

func TestVigenere_RejectsNonLetters(t *testing.T) {
	v, _ := cipher.NewVigenere([]byte("KEY"))

	dst := []byte("prefix")
	out, err := v.EncryptByte(dst, '7')
	assert.ErrorIs(t, err, cipher.ErrInvalidSymbol)
	assert.ErrorIs(t, err, cipher.ErrStream)
	assert.Equal(t, "prefix", string(out))

	_, err = cipher.Decrypt(v, []byte("LXFOP VEFRN"))
	assert.ErrorIs(t, err, cipher.ErrInvalidSymbol)
}

func TestVigenere_RoundTripThroughLetters(t *testing.T) {
	enc, _ := cipher.NewVigenere([]byte("Secret Key"))
	dec, _ := cipher.NewVigenere([]byte("Secret Key"))

	plain := "Meet me at the old mill, 9pm!"
	ct := encryptString(t, cipher.Letters(enc), plain)
	assert.Equal(t, "MEETMEATTHEOLDMILLPM", decryptString(t, cipher.Letters(dec), ct))
}

func TestVigenere_Deterministic(t *testing.T) {
	a, _ := cipher.NewVigenere([]byte("DETERMINISTIC"))
	b, _ := cipher.NewVigenere([]byte("DETERMINISTIC"))
	in := strings.Repeat("THEQUICKBROWNFOX", 9)
	assert.Equal(t, encryptString(t, a, in), encryptString(t, b, in))
}

// ──────────────────────────────────────────────────────────────────────────────
// Vigenère autokey
// ──────────────────────────────────────────────────────────────────────────────

func TestNewVigenereAutokey_RejectsKeysWithoutLetters(t *testing.T) {
	_, err := cipher.NewVigenereAutokey([]byte("42"))
	assert.ErrorIs(t, err, cipher.ErrEmptyKey)
}

func TestVigenereAutokey_KnownAnswer(t *testing.T) {
	v, err := cipher.NewVigenereAutokey([]byte("QUEENLY"))
	require.NoError(t, err)
	assert.Equal(t, "QNXEP VYTWT WP", encryptString(t, v, "ATTACKATDAWN"))

	v, _ = cipher.NewVigenereAutokey([]byte("QUEENLY"))
	assert.Equal(t, "ATTACKATDAWN", decryptString(t, v, "QNXEPVYTWTWP"))
}

func TestVigenereAutokey_DiffersFromRepeatingKey(t *testing.T) {
	a, _ := cipher.NewVigenereAutokey([]byte("KEY"))
	v, _ := cipher.NewVigenere([]byte("KEY"))
	// Identical for the first len(key) letters only.
	ac := encryptString(t, a, "HELLOWORLD")
	vc := encryptString(t, v, "HELLOWORLD")
	assert.Equal(t, vc[:3], ac[:3])
	assert.NotEqual(t, vc, ac)
}

func TestVigenereAutokey_NotRestartable(t *testing.T) {
	enc, _ := cipher.NewVigenereAutokey([]byte("KEY"))
	ct := stripGrouping([]byte(encryptString(t, enc, "ABCDEFGHIJ")))

	// Decrypting the tail with a fresh instance loses the key feedback.
	dec, _ := cipher.NewVigenereAutokey([]byte("KEY"))
	assert.NotEqual(t, "DEFGHIJ", decryptString(t, dec, string(ct[3:])))
}

// ──────────────────────────────────────────────────────────────────────────────
// Vigenère-256
// ──────────────────────────────────────────────────────────────────────────────

func TestNewVigenere256_RejectsEmptyKey(t *testing.T) {
	_, err := cipher.NewVigenere256(nil)
	assert.ErrorIs(t, err, cipher.ErrEmptyKey)
}

func TestVigenere256_WrapsAndRoundTrips(t *testing.T) {
	v, _ := cipher.NewVigenere256([]byte{0x02, 0x80})
	ct, err := cipher.Encrypt(v, []byte{0xFF, 0xFF, 0x00})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x7F, 0x02}, ct)

	v, _ = cipher.NewVigenere256([]byte{0x02, 0x80})
	pt, err := cipher.Decrypt(v, ct)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xFF, 0x00}, pt)
}

func TestVigenere256_KeyIsCopied(t *testing.T) {
	key := []byte("key")
	v, _ := cipher.NewVigenere256(key)
	key[0] = 0
	out, err := cipher.Encrypt(v, []byte{0})
	require.NoError(t, err)
	assert.Equal(t, []byte{'k'}, out)
}

func TestVigenere256_NoGrouping(t *testing.T) {
	v, _ := cipher.NewVigenere256([]byte{0})
	in := strings.Repeat("x", 70)
	assert.Equal(t, in, encryptString(t, v, in))
}
