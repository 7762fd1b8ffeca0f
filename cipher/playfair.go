package cipher

import "fmt"

const (
	squareSide = 5
	squareSize = squareSide * squareSide

	// fillerX is 'X' in the 25-letter Playfair alphabet.
	fillerX uint8 = 22
)

// Playfair is the digraph substitution cipher on a 5×5 key square, with I
// and J sharing a cell.
//
// Letters are enciphered in pairs.  When a pair would hold the same letter
// twice, encryption inserts an 'X' between them and the repeated letter
// opens the next pair; a dangling last letter is padded with 'X' by
// [Playfair.EncryptFinish].  Decryption performs no repair and reports
// [ErrIncompleteBlock] for an odd number of letters.
type Playfair struct {
	square [squareSize]uint8 // cell → letter
	cell   [squareSize]uint8 // letter → cell

	pending    uint8
	hasPending bool
	group      grouper
}

// NewPlayfair builds the key square from the letters of key in order of
// first appearance (J counts as I), followed by the unused letters in
// alphabetical order.  It returns [ErrEmptyKey] when key holds no letters.
func NewPlayfair(key []byte) (*Playfair, error) {
	p := &Playfair{}
	var used uint32
	n := 0
	place := func(l uint8) {
		if used&(1<<l) != 0 {
			return
		}
		used |= 1 << l
		p.square[n] = l
		p.cell[l] = uint8(n)
		n++
	}

	for _, b := range key {
		if l, ok := playfairIndex(b); ok {
			place(l)
		}
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: key contains no letters", ErrEmptyKey)
	}
	for l := range uint8(squareSize) {
		place(l)
	}
	return p, nil
}

// Square returns the key square row by row as upper-case letters.
func (p *Playfair) Square() [squareSide]string {
	var rows [squareSide]string
	for r := range squareSide {
		row := make([]byte, squareSide)
		for c := range squareSide {
			row[c] = playfairLetter(p.square[r*squareSide+c])
		}
		rows[r] = string(row)
	}
	return rows
}

// EncryptByte implements [Encryptor].
func (p *Playfair) EncryptByte(dst []byte, b byte) ([]byte, error) {
	l, ok := playfairIndex(b)
	if !ok {
		return dst, ErrInvalidSymbol
	}
	if !p.hasPending {
		p.pending, p.hasPending = l, true
		return dst, nil
	}

	first := p.pending
	if first == l && l != fillerX {
		// The repeated letter stays pending and starts the next pair.
		x, y := p.encryptPair(first, fillerX)
		return p.appendGrouped(dst, x, y), nil
	}
	p.hasPending = false
	x, y := p.encryptPair(first, l)
	return p.appendGrouped(dst, x, y), nil
}

// EncryptFinish implements [Encryptor], padding a dangling letter with 'X'.
func (p *Playfair) EncryptFinish(dst []byte) ([]byte, error) {
	if !p.hasPending {
		return dst, nil
	}
	p.hasPending = false
	x, y := p.encryptPair(p.pending, fillerX)
	return p.appendGrouped(dst, x, y), nil
}

// DecryptByte implements [Decryptor].
func (p *Playfair) DecryptByte(dst []byte, b byte) ([]byte, error) {
	l, ok := playfairIndex(b)
	if !ok {
		return dst, ErrInvalidSymbol
	}
	if !p.hasPending {
		p.pending, p.hasPending = l, true
		return dst, nil
	}
	p.hasPending = false
	x, y := p.decryptPair(p.pending, l)
	return append(dst, playfairLetter(x), playfairLetter(y)), nil
}

// DecryptFinish implements [Decryptor].
func (p *Playfair) DecryptFinish(dst []byte) ([]byte, error) {
	if p.hasPending {
		return dst, ErrIncompleteBlock
	}
	return dst, nil
}

func (p *Playfair) appendGrouped(dst []byte, x, y uint8) []byte {
	dst = p.group.appendLetter(dst, playfairLetter(x))
	return p.group.appendLetter(dst, playfairLetter(y))
}

func (p *Playfair) encryptPair(a, b uint8) (uint8, uint8) {
	return p.shiftPair(a, b, 1)
}

func (p *Playfair) decryptPair(a, b uint8) (uint8, uint8) {
	return p.shiftPair(a, b, squareSide-1)
}

// shiftPair applies the Playfair rules with the given step (1 to encrypt,
// 4 ≡ −1 to decrypt): same row moves along the row, same column moves down
// the column, otherwise the letters trade columns.
func (p *Playfair) shiftPair(a, b, step uint8) (uint8, uint8) {
	ca, cb := p.cell[a], p.cell[b]
	ra, ka := ca/squareSide, ca%squareSide
	rb, kb := cb/squareSide, cb%squareSide

	switch {
	case ra == rb:
		ka = (ka + step) % squareSide
		kb = (kb + step) % squareSide
	case ka == kb:
		ra = (ra + step) % squareSide
		rb = (rb + step) % squareSide
	default:
		ka, kb = kb, ka
	}
	return p.square[ra*squareSide+ka], p.square[rb*squareSide+kb]
}

// playfairIndex maps a letter of either case to 0–24, folding J into I.
func playfairIndex(b byte) (uint8, bool) {
	l, ok := letterIndex(b)
	if !ok {
		return 0, false
	}
	switch j := uint8('J' - 'A'); {
	case l == j:
		return j - 1, true
	case l > j:
		return l - 1, true
	}
	return l, true
}

func playfairLetter(l uint8) byte {
	if l >= 'J'-'A' {
		return 'A' + l + 1
	}
	return 'A' + l
}
