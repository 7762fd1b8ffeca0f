// Package keyderive stretches a passphrase into key bytes with Argon2, for
// ciphers such as Vigenère-256 whose strength grows with key length.
//
// Derivation is deterministic: the same passphrase and [Options] always
// give the same key, so both ends of a conversation only need to agree on
// the passphrase and the parameter string.
//
// # Quick start
//
//	opts := keyderive.DefaultOptions()
//	opts.Salt, _ = keyderive.NewSalt(keyderive.DefaultSaltLen)
//	params := opts.String() // share this alongside the ciphertext
//
//	key, err := keyderive.Derive([]byte("correct horse"), opts)
//
// # Parameter strings
//
// Options are exchanged in a PHC-like format without the hash segment:
//
//	$argon2id$v=19$m=19456,t=2,p=1,l=32$<base64-salt>
package keyderive
