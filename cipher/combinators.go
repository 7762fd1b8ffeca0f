package cipher

// Chain feeds every byte first produces into second, in both directions.
// On finish, the bytes flushed by first are relayed through second before
// second is finished.  A call that fails in either stage contributes no
// output.
func Chain(first, second Cipher) Cipher {
	return &chain{first: first, second: second}
}

type chain struct {
	first, second Cipher
	relay         []byte
}

func (c *chain) EncryptByte(dst []byte, b byte) ([]byte, error) {
	var err error
	if c.relay, err = c.first.EncryptByte(c.relay[:0], b); err != nil {
		return dst, err
	}
	return relay(dst, c.relay, c.second.EncryptByte)
}

func (c *chain) EncryptFinish(dst []byte) ([]byte, error) {
	var err error
	if c.relay, err = c.first.EncryptFinish(c.relay[:0]); err != nil {
		return dst, err
	}
	out, err := relay(dst, c.relay, c.second.EncryptByte)
	if err != nil {
		return dst, err
	}
	if out, err = c.second.EncryptFinish(out); err != nil {
		return dst, err
	}
	return out, nil
}

func (c *chain) DecryptByte(dst []byte, b byte) ([]byte, error) {
	var err error
	if c.relay, err = c.first.DecryptByte(c.relay[:0], b); err != nil {
		return dst, err
	}
	return relay(dst, c.relay, c.second.DecryptByte)
}

func (c *chain) DecryptFinish(dst []byte) ([]byte, error) {
	var err error
	if c.relay, err = c.first.DecryptFinish(c.relay[:0]); err != nil {
		return dst, err
	}
	out, err := relay(dst, c.relay, c.second.DecryptByte)
	if err != nil {
		return dst, err
	}
	if out, err = c.second.DecryptFinish(out); err != nil {
		return dst, err
	}
	return out, nil
}

// relay pushes every byte of src through step, truncating back to the
// original length of dst on failure.
func relay(dst, src []byte, step func([]byte, byte) ([]byte, error)) ([]byte, error) {
	start := len(dst)
	for _, b := range src {
		var err error
		if dst, err = step(dst, b); err != nil {
			return dst[:start], err
		}
	}
	return dst, nil
}

// Invert swaps the two directions of c: encrypting with the result decrypts
// with c and vice versa.  Invert(Invert(c)) returns c.
func Invert(c Cipher) Cipher {
	if inv, ok := c.(inverted); ok {
		return inv.c
	}
	return inverted{c: c}
}

type inverted struct {
	c Cipher
}

func (i inverted) EncryptByte(dst []byte, b byte) ([]byte, error) { return i.c.DecryptByte(dst, b) }
func (i inverted) EncryptFinish(dst []byte) ([]byte, error)       { return i.c.DecryptFinish(dst) }
func (i inverted) DecryptByte(dst []byte, b byte) ([]byte, error) { return i.c.EncryptByte(dst, b) }
func (i inverted) DecryptFinish(dst []byte) ([]byte, error)       { return i.c.EncryptFinish(dst) }

// Map rewrites every input byte with f before c sees it.  Finish is
// forwarded unchanged.
func Map(c Cipher, f func(byte) byte) Cipher {
	return mapped{c: c, f: f}
}

type mapped struct {
	c Cipher
	f func(byte) byte
}

func (m mapped) EncryptByte(dst []byte, b byte) ([]byte, error) { return m.c.EncryptByte(dst, m.f(b)) }
func (m mapped) EncryptFinish(dst []byte) ([]byte, error)       { return m.c.EncryptFinish(dst) }
func (m mapped) DecryptByte(dst []byte, b byte) ([]byte, error) { return m.c.DecryptByte(dst, m.f(b)) }
func (m mapped) DecryptFinish(dst []byte) ([]byte, error)       { return m.c.DecryptFinish(dst) }

// Filter forwards only the bytes keep accepts; the rest are dropped without
// output and without touching c's state.
func Filter(c Cipher, keep func(byte) bool) Cipher {
	return FilterMap(c, func(b byte) (byte, bool) { return b, keep(b) })
}

// FilterMap rewrites each input byte with f, dropping it when f reports
// false.
func FilterMap(c Cipher, f func(byte) (byte, bool)) Cipher {
	return filterMapped{c: c, f: f}
}

type filterMapped struct {
	c Cipher
	f func(byte) (byte, bool)
}

func (fm filterMapped) EncryptByte(dst []byte, b byte) ([]byte, error) {
	if b, ok := fm.f(b); ok {
		return fm.c.EncryptByte(dst, b)
	}
	return dst, nil
}

func (fm filterMapped) EncryptFinish(dst []byte) ([]byte, error) { return fm.c.EncryptFinish(dst) }

func (fm filterMapped) DecryptByte(dst []byte, b byte) ([]byte, error) {
	if b, ok := fm.f(b); ok {
		return fm.c.DecryptByte(dst, b)
	}
	return dst, nil
}

func (fm filterMapped) DecryptFinish(dst []byte) ([]byte, error) { return fm.c.DecryptFinish(dst) }

// Letters restricts c to ASCII letters, silently dropping spaces,
// punctuation, digits and the separators of grouped ciphertext.
func Letters(c Cipher) Cipher {
	return Filter(c, IsASCIILetter)
}

// Combine joins an independent encryptor and decryptor into one [Cipher].
// It is how a multi-stage pipeline decrypts its stages in reverse order.
func Combine(e Encryptor, d Decryptor) Cipher {
	return combined{e: e, d: d}
}

type combined struct {
	e Encryptor
	d Decryptor
}

func (c combined) EncryptByte(dst []byte, b byte) ([]byte, error) { return c.e.EncryptByte(dst, b) }
func (c combined) EncryptFinish(dst []byte) ([]byte, error)       { return c.e.EncryptFinish(dst) }
func (c combined) DecryptByte(dst []byte, b byte) ([]byte, error) { return c.d.DecryptByte(dst, b) }
func (c combined) DecryptFinish(dst []byte) ([]byte, error)       { return c.d.DecryptFinish(dst) }
