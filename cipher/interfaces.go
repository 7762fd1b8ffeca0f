package cipher

// Encryptor turns plaintext into ciphertext one byte at a time.
//
// EncryptByte appends the output produced by b (possibly nothing) to dst and
// returns the extended slice.  EncryptFinish is called once after the last
// byte to flush buffered state.  On error both return dst unchanged.
type Encryptor interface {
	EncryptByte(dst []byte, b byte) ([]byte, error)
	EncryptFinish(dst []byte) ([]byte, error)
}

// Decryptor turns ciphertext into plaintext one byte at a time.  It mirrors
// [Encryptor].
type Decryptor interface {
	DecryptByte(dst []byte, b byte) ([]byte, error)
	DecryptFinish(dst []byte) ([]byte, error)
}

// Cipher is an algorithm usable in both directions.  Every cipher in this
// package, and every combinator over them, is a Cipher.
type Cipher interface {
	Encryptor
	Decryptor
}
