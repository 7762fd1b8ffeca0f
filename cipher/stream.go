package cipher

import (
	"fmt"
	"io"
)

// Encrypt feeds every byte of src through e and then finishes it, returning
// the complete ciphertext.  e should be a fresh instance.  Processing stops
// at the first failing byte; the error names its offset and wraps the
// cipher's sentinel.
func Encrypt(e Encryptor, src []byte) ([]byte, error) {
	return run(src, e.EncryptByte, e.EncryptFinish)
}

// Decrypt feeds every byte of src through d and then finishes it, returning
// the complete plaintext.  See [Encrypt].
func Decrypt(d Decryptor, src []byte) ([]byte, error) {
	return run(src, d.DecryptByte, d.DecryptFinish)
}

type (
	stepFunc   func(dst []byte, b byte) ([]byte, error)
	finishFunc func(dst []byte) ([]byte, error)
)

func run(src []byte, step stepFunc, finish finishFunc) ([]byte, error) {
	dst := make([]byte, 0, len(src)+len(src)/groupSize+1)
	var err error
	for i, b := range src {
		if dst, err = step(dst, b); err != nil {
			return nil, fmt.Errorf("byte %d (%q): %w", i, b, err)
		}
	}
	if dst, err = finish(dst); err != nil {
		return nil, fmt.Errorf("finish: %w", err)
	}
	return dst, nil
}

// StreamWriter runs everything written to it through one direction of a
// cipher and writes the result to an underlying [io.Writer].  Close runs the
// finish step; it does not close the underlying writer.
//
// After a stream error every further call returns that error.
type StreamWriter struct {
	w      io.Writer
	step   stepFunc
	finish finishFunc

	buf    []byte
	out    int64
	err    error
	closed bool
}

// NewEncryptWriter returns a [StreamWriter] that encrypts with e.
func NewEncryptWriter(w io.Writer, e Encryptor) *StreamWriter {
	return &StreamWriter{w: w, step: e.EncryptByte, finish: e.EncryptFinish}
}

// NewDecryptWriter returns a [StreamWriter] that decrypts with d.
func NewDecryptWriter(w io.Writer, d Decryptor) *StreamWriter {
	return &StreamWriter{w: w, step: d.DecryptByte, finish: d.DecryptFinish}
}

// Write transforms p and writes the output produced so far.  On a stream
// error it writes the output of the bytes before the failing one and
// reports how many input bytes were consumed.  A failed write to the
// underlying writer still reports all of p as consumed.
func (s *StreamWriter) Write(p []byte) (int, error) {
	if s.closed {
		return 0, ErrWriterClosed
	}
	if s.err != nil {
		return 0, s.err
	}

	s.buf = s.buf[:0]
	for i, b := range p {
		var err error
		if s.buf, err = s.step(s.buf, b); err != nil {
			s.err = err
			if werr := s.flush(); werr != nil {
				return i, werr
			}
			return i, err
		}
	}
	if err := s.flush(); err != nil {
		return len(p), err
	}
	return len(p), nil
}

// Close finishes the cipher and writes its final bytes.
func (s *StreamWriter) Close() error {
	if s.closed {
		return ErrWriterClosed
	}
	s.closed = true
	if s.err != nil {
		return s.err
	}

	var err error
	if s.buf, err = s.finish(s.buf[:0]); err != nil {
		s.err = err
		return err
	}
	return s.flush()
}

// BytesOut returns the number of bytes written to the underlying writer.
func (s *StreamWriter) BytesOut() int64 { return s.out }

func (s *StreamWriter) flush() error {
	if len(s.buf) == 0 {
		return nil
	}
	n, err := s.w.Write(s.buf)
	s.out += int64(n)
	if err != nil {
		s.err = err
		return err
	}
	return nil
}
