package modular

import (
	"fmt"
	"strings"
)

// Matrix is a dense size×size matrix of residues stored row-major.
//
// A Matrix is immutable once built: [Matrix.Inverse] and [Matrix.Mul]
// return new matrices and never touch the receiver.
type Matrix struct {
	mod  Modulus
	size int
	data []Residue
}

// NewMatrix builds a size×size matrix from row-major values, reducing each
// one modulo mod.  It returns [ErrDimensionMismatch] when size < 1 or
// len(values) ≠ size².
func NewMatrix(mod Modulus, size int, values []uint8) (*Matrix, error) {
	if size < 1 || len(values) != size*size {
		return nil, fmt.Errorf("%w: %d values cannot fill a %d×%d matrix",
			ErrDimensionMismatch, len(values), size, size)
	}
	data := make([]Residue, len(values))
	for i, v := range values {
		data[i] = mod.Residue(v)
	}
	return &Matrix{mod: mod, size: size, data: data}, nil
}

// Identity returns the size×size identity matrix.  size must be positive.
func Identity(mod Modulus, size int) *Matrix {
	data := make([]Residue, size*size)
	for i := range data {
		data[i] = mod.Residue(0)
	}
	for i := range size {
		data[i*size+i] = mod.Residue(1)
	}
	return &Matrix{mod: mod, size: size, data: data}
}

// Size returns the number of rows (and columns).
func (mat *Matrix) Size() int { return mat.size }

// Modulus returns the modulus shared by every entry.
func (mat *Matrix) Modulus() Modulus { return mat.mod }

// At returns the entry at row, col.
func (mat *Matrix) At(row, col int) Residue { return mat.data[row*mat.size+col] }

// Values returns a row-major copy of the entries.
func (mat *Matrix) Values() []uint8 {
	out := make([]uint8, len(mat.data))
	for i, r := range mat.data {
		out[i] = r.v
	}
	return out
}

// Equal reports whether both matrices have the same modulus, size and
// entries.
func (mat *Matrix) Equal(o *Matrix) bool {
	if mat.mod != o.mod || mat.size != o.size {
		return false
	}
	for i := range mat.data {
		if mat.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// Mul returns mat × o.
func (mat *Matrix) Mul(o *Matrix) (*Matrix, error) {
	if mat.size != o.size || mat.mod != o.mod {
		return nil, fmt.Errorf("%w: cannot multiply %d×%d (mod %d) by %d×%d (mod %d)",
			ErrDimensionMismatch, mat.size, mat.size, mat.mod, o.size, o.size, o.mod)
	}
	n := mat.size
	data := make([]Residue, n*n)
	for i := range n {
		for j := range n {
			acc := 0
			for k := range n {
				acc += int(mat.data[i*n+k].v) * int(o.data[k*n+j].v)
			}
			data[i*n+j] = mat.mod.reduce(acc)
		}
	}
	return &Matrix{mod: mat.mod, size: n, data: data}, nil
}

// SliceMult computes out = mat × in, treating in as a column vector.
// Both slices must have length [Matrix.Size]; out is overwritten.
func (mat *Matrix) SliceMult(in, out []Residue) {
	n := mat.size
	if len(in) != n || len(out) != n {
		panic(fmt.Sprintf("modular: SliceMult on %d×%d matrix with vectors of length %d and %d",
			n, n, len(in), len(out)))
	}
	for i := range n {
		acc := 0
		row := mat.data[i*n : (i+1)*n]
		for j, r := range row {
			acc += int(r.v) * int(in[j].v)
		}
		out[i] = mat.mod.reduce(acc)
	}
}

// Inverse returns the matrix X with mat × X = I.
//
// It runs Gauss–Jordan elimination on a scratch copy.  Each column picks
// the row at or below the diagonal holding the largest residue; a column
// of zeros yields [ErrDegenerateMatrix].  When that pivot has no inverse
// (it shares a factor with the modulus) the candidate rows are combined
// with integer Euclidean steps until the pivot is the gcd of the column,
// so a composite modulus such as 26 never rejects an invertible matrix.
// If the gcd itself is not a unit the matrix is singular and the
// pivot's [*CoprimeError] is returned.
func (mat *Matrix) Inverse() (*Matrix, error) {
	n, m := mat.size, int(mat.mod)

	a := make([]int, n*n)
	for i, r := range mat.data {
		a[i] = int(r.v)
	}
	inv := make([]int, n*n)
	for i := range n {
		inv[i*n+i] = 1
	}

	swap := func(r1, r2 int) {
		if r1 == r2 {
			return
		}
		for j := range n {
			a[r1*n+j], a[r2*n+j] = a[r2*n+j], a[r1*n+j]
			inv[r1*n+j], inv[r2*n+j] = inv[r2*n+j], inv[r1*n+j]
		}
	}
	// subRow sets row dst -= q·row src in both halves.
	subRow := func(dst, src, q int) {
		for j := range n {
			a[dst*n+j] = mat.mod.reduceInt(a[dst*n+j] - q*a[src*n+j])
			inv[dst*n+j] = mat.mod.reduceInt(inv[dst*n+j] - q*inv[src*n+j])
		}
	}

	for col := range n {
		pivot := col
		for r := col + 1; r < n; r++ {
			if a[r*n+col] > a[pivot*n+col] {
				pivot = r
			}
		}
		if a[pivot*n+col] == 0 {
			return nil, ErrDegenerateMatrix
		}
		swap(col, pivot)

		if g, _, _ := ExtendedGCD(a[col*n+col], m); g != 1 {
			for r := col + 1; r < n; r++ {
				for a[r*n+col] != 0 {
					subRow(col, r, a[col*n+col]/a[r*n+col])
					swap(col, r)
				}
			}
		}

		p, err := mat.mod.Residue(uint8(a[col*n+col])).Inverse()
		if err != nil {
			return nil, err
		}
		pv := int(p.v)
		for j := range n {
			a[col*n+j] = a[col*n+j] * pv % m
			inv[col*n+j] = inv[col*n+j] * pv % m
		}

		for r := range n {
			if r == col || a[r*n+col] == 0 {
				continue
			}
			subRow(r, col, a[r*n+col])
		}
	}

	data := make([]Residue, n*n)
	for i, v := range inv {
		data[i] = mat.mod.reduce(v)
	}
	return &Matrix{mod: mat.mod, size: n, data: data}, nil
}

// String renders the matrix one row per line.
func (mat *Matrix) String() string {
	var b strings.Builder
	for i := range mat.size {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j := range mat.size {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", mat.data[i*mat.size+j].v)
		}
	}
	return b.String()
}
