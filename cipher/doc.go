// Package cipher implements classical substitution ciphers behind a
// byte-at-a-time streaming contract: Vigenère, Vigenère-Autokey,
// Vigenère-256, Affine, Playfair and Hill.
//
// These are reversible teaching ciphers.  They offer no protection against a
// modern adversary; use an authenticated cipher such as AES-GCM for anything
// that must stay secret.
//
// # Streaming contract
//
// Every cipher satisfies [Cipher], which is the union of [Encryptor] and
// [Decryptor].  Callers feed one input byte at a time and receive the
// output it produced appended to a destination slice, then call the finish
// method exactly once to flush a partially filled block:
//
//	v, err := cipher.NewVigenere([]byte("LEMON"))
//
//	var out []byte
//	for _, b := range []byte("ATTACKATDAWN") {
//	    if out, err = v.EncryptByte(out, b); err != nil {
//	        return err
//	    }
//	}
//	out, err = v.EncryptFinish(out)
//	// out: "LXFOP VEFRN HR"
//
// Block ciphers (Playfair, Hill) emit nothing until a block is complete and
// then emit the whole block at once.  A failing call returns the
// destination unchanged.
//
// [Encrypt] and [Decrypt] run a whole buffer through an instance;
// [NewEncryptWriter] and [NewDecryptWriter] adapt an instance to
// [io.WriteCloser].
//
// # Output grouping
//
// Letter ciphers group their ciphertext like a telegram: a space after
// every 5 letters and a newline instead after every 60.  Decryption never
// groups its output and rejects the separators, so wrap decryptors with
// [Letters] (or [Filter]) to accept grouped ciphertext.
//
// # Combinators
//
// [Chain], [Invert], [Map], [Filter] and [FilterMap] wrap ciphers and
// return ciphers, so pipelines compose.  The second stage of a chain sees
// the grouped output of the first, so it is usually wrapped in [Letters]:
//
//	c := cipher.Chain(cipher.Letters(vigenere), cipher.Letters(hill))
//	ct, err := cipher.Encrypt(c, []byte("Attack at dawn!"))
//
// A chain runs its stages in the same order in both directions.  To undo a
// chain, build one with the stages reversed and join the two with
// [Combine].
//
// # Instances
//
// A cipher instance holds the streaming state of one message (counters,
// partial blocks, the autokey buffer).  Build a fresh instance per message;
// instances are not safe for concurrent use.
package cipher
