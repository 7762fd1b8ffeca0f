package cipher

import "github.com/hasbyte1/go-classical-ciphers/modular"

// letterMod is the modulus of the 26-letter Latin alphabet.
const letterMod modular.Modulus = 26

// IsASCIILetter reports whether b is in A–Z or a–z.
func IsASCIILetter(b byte) bool {
	return ('A' <= b && b <= 'Z') || ('a' <= b && b <= 'z')
}

// ToUpperASCII folds a–z to A–Z and leaves every other byte alone.
func ToUpperASCII(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

// letterIndex maps a letter of either case to 0–25.
func letterIndex(b byte) (uint8, bool) {
	switch {
	case 'A' <= b && b <= 'Z':
		return b - 'A', true
	case 'a' <= b && b <= 'z':
		return b - 'a', true
	}
	return 0, false
}

func letterResidue(b byte) (modular.Residue, bool) {
	i, ok := letterIndex(b)
	return letterMod.Residue(i), ok
}

func residueLetter(r modular.Residue) byte {
	return 'A' + r.Value()
}

// letterKey keeps the letters of key as residues, dropping everything else.
func letterKey(key []byte) []modular.Residue {
	out := make([]modular.Residue, 0, len(key))
	for _, b := range key {
		if r, ok := letterResidue(b); ok {
			out = append(out, r)
		}
	}
	return out
}

const (
	groupSize = 5
	lineSize  = groupSize * 12
)

// grouper inserts separators between output letters: a space before every
// 5th-letter boundary and a newline instead at every 60th.
type grouper struct {
	n int
}

func (g *grouper) appendLetter(dst []byte, c byte) []byte {
	if g.n > 0 && g.n%groupSize == 0 {
		if g.n%lineSize == 0 {
			dst = append(dst, '\n')
		} else {
			dst = append(dst, ' ')
		}
	}
	g.n++
	return append(dst, c)
}
