package keyderive

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Variant selects the Argon2 flavour.
type Variant string

const (
	Argon2i  Variant = "argon2i"
	Argon2id Variant = "argon2id"
)

// ──────────────────────────────────────────────────────────────────────────────
// Options
// ──────────────────────────────────────────────────────────────────────────────

const (
	// DefaultMemory is the default memory cost in KiB (19 MiB, the OWASP
	// minimum for Argon2id).
	DefaultMemory uint32 = 19 * 1024

	// DefaultTime is the default number of iterations.
	DefaultTime uint32 = 2

	// DefaultThreads is the default degree of parallelism.
	DefaultThreads uint8 = 1

	// DefaultKeyLen is the default derived key length in bytes.
	DefaultKeyLen uint32 = 32

	// DefaultSaltLen is the salt length used by callers of [NewSalt].
	DefaultSaltLen = 16

	argon2Version = argon2.Version
)

// DefaultSalt is the salt of [DefaultOptions].  It makes derivation work
// out of the box; pass a random salt from [NewSalt] to stop two users of the
// same passphrase from sharing a key.
var DefaultSalt = []byte("go-classical-ciphers")

// Options configures [Derive].
type Options struct {
	// Variant is [Argon2id] (default) or [Argon2i].
	Variant Variant

	// Salt is mixed into the derivation.  Minimum: 8 bytes.
	Salt []byte

	// Memory is the memory cost in KiB.  Minimum: 8 * Threads.
	Memory uint32

	// Time is the number of passes over memory.  Minimum: 1.
	Time uint32

	// Threads is the degree of parallelism.  Minimum: 1.
	Threads uint8

	// KeyLen is the length of the derived key in bytes.  Minimum: 1.
	KeyLen uint32
}

// DefaultOptions returns Options with the recommended defaults and
// [DefaultSalt].
func DefaultOptions() Options {
	return Options{
		Variant: Argon2id,
		Salt:    DefaultSalt,
		Memory:  DefaultMemory,
		Time:    DefaultTime,
		Threads: DefaultThreads,
		KeyLen:  DefaultKeyLen,
	}
}

// Validate reports whether opts can be used for derivation.
func (opts Options) Validate() error {
	switch opts.Variant {
	case Argon2i, Argon2id:
	default:
		return fmt.Errorf("%w: unknown argon2 variant %q", ErrInvalidOption, opts.Variant)
	}
	if opts.Time < 1 {
		return fmt.Errorf("%w: argon2 time must be ≥ 1, got %d", ErrInvalidOption, opts.Time)
	}
	if opts.Threads < 1 {
		return fmt.Errorf("%w: argon2 threads must be ≥ 1, got %d", ErrInvalidOption, opts.Threads)
	}
	if opts.Memory < 8*uint32(opts.Threads) {
		return fmt.Errorf("%w: argon2 memory (%d KiB) must be ≥ 8×threads (%d KiB)",
			ErrInvalidOption, opts.Memory, 8*uint32(opts.Threads))
	}
	if opts.KeyLen < 1 {
		return fmt.Errorf("%w: argon2 key_len must be ≥ 1, got %d", ErrInvalidOption, opts.KeyLen)
	}
	if len(opts.Salt) < 8 {
		return fmt.Errorf("%w: argon2 salt must be ≥ 8 bytes, got %d", ErrInvalidOption, len(opts.Salt))
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Derivation
// ──────────────────────────────────────────────────────────────────────────────

// Derive stretches passphrase into opts.KeyLen key bytes.
func Derive(passphrase []byte, opts Options) ([]byte, error) {
	if len(passphrase) == 0 {
		return nil, ErrEmptyPassphrase
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Variant == Argon2i {
		return argon2.Key(passphrase, opts.Salt, opts.Time, opts.Memory, opts.Threads, opts.KeyLen), nil
	}
	return argon2.IDKey(passphrase, opts.Salt, opts.Time, opts.Memory, opts.Threads, opts.KeyLen), nil
}

// NewSalt returns n cryptographically random bytes.
func NewSalt(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("keyderive: failed to generate salt: %w", err)
	}
	return b, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Parameter strings
// ──────────────────────────────────────────────────────────────────────────────

// String encodes opts as a parameter string:
//
//	$argon2id$v=19$m=19456,t=2,p=1,l=32$<salt_base64>
//
// The salt uses the standard base64 alphabet without padding, as PHC
// strings do.
func (opts Options) String() string {
	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d,l=%d$%s",
		string(opts.Variant),
		argon2Version,
		opts.Memory,
		opts.Time,
		opts.Threads,
		opts.KeyLen,
		base64.RawStdEncoding.EncodeToString(opts.Salt),
	)
}

// ParseParams decodes a parameter string produced by [Options.String] and
// validates the result.
func ParseParams(encoded string) (Options, error) {
	parts := strings.Split(strings.TrimSpace(encoded), "$")
	if len(parts) != 5 || parts[0] != "" {
		return Options{}, fmt.Errorf("%w: expected 4-segment parameter string, got %d segments",
			ErrInvalidParams, len(parts)-1)
	}

	var opts Options
	switch parts[1] {
	case string(Argon2i), string(Argon2id):
		opts.Variant = Variant(parts[1])
	default:
		return Options{}, fmt.Errorf("%w: unknown argon2 variant %q", ErrInvalidParams, parts[1])
	}

	version, err := parseKV(parts[2], "v")
	if err != nil {
		return Options{}, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	if version != argon2Version {
		return Options{}, fmt.Errorf("%w: unsupported argon2 version %d", ErrInvalidParams, version)
	}

	kvs, err := parseParams(parts[3])
	if err != nil {
		return Options{}, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	memory, ok1 := kvs["m"]
	time, ok2 := kvs["t"]
	threads, ok3 := kvs["p"]
	keyLen, ok4 := kvs["l"]
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return Options{}, fmt.Errorf("%w: missing m/t/p/l in parameter segment %q", ErrInvalidParams, parts[3])
	}
	if memory > 1<<32-1 || time > 1<<32-1 || threads > 255 || keyLen > 1<<32-1 {
		return Options{}, fmt.Errorf("%w: parameter out of range in %q", ErrInvalidParams, parts[3])
	}
	opts.Memory = uint32(memory)
	opts.Time = uint32(time)
	opts.Threads = uint8(threads)
	opts.KeyLen = uint32(keyLen)

	if opts.Salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return Options{}, fmt.Errorf("%w: invalid salt base64: %v", ErrInvalidParams, err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// parseKV parses a "key=value" string and returns the uint64 value.
func parseKV(s, key string) (uint64, error) {
	prefix := key + "="
	if !strings.HasPrefix(s, prefix) {
		return 0, fmt.Errorf("expected %q prefix in %q", prefix, s)
	}
	return strconv.ParseUint(s[len(prefix):], 10, 64)
}

// parseParams splits "m=19456,t=2,p=1,l=32" into a map.
func parseParams(s string) (map[string]uint64, error) {
	out := make(map[string]uint64)
	for _, kv := range strings.Split(s, ",") {
		eq := strings.IndexByte(kv, '=')
		if eq <= 0 {
			return nil, fmt.Errorf("malformed param %q", kv)
		}
		v, err := strconv.ParseUint(kv[eq+1:], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("non-numeric value in %q: %v", kv, err)
		}
		out[kv[:eq]] = v
	}
	return out, nil
}
