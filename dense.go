package sparsevec

import (
	"slices"
)

// Dense is the baseline representation: one stored value per position,
// zeros included.
type Dense struct {
	values []int64
}

// NewDense creates a dense vector holding a copy of values.
func NewDense(values []int64) *Dense {
	return &Dense{values: slices.Clone(values)}
}

// Len returns the number of positions in the vector.
func (d *Dense) Len() int {
	return len(d.values)
}

// At returns the value at position i. It panics if i is out of range.
func (d *Dense) At(i int) int64 {
	return d.values[i]
}

// Values returns a copy of the stored values in their original order.
func (d *Dense) Values() []int64 {
	return slices.Clone(d.values)
}

// NonZero returns the ascending positions holding a non-zero value.
func (d *Dense) NonZero() []int {
	var idxs []int
	for i, v := range d.values {
		if v != 0 {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

// Sparse converts d to the sparse representation.
func (d *Dense) Sparse() *Sparse {
	return NewSparse(d.values)
}

// Dot returns the dot product of d and other.
// Every position is visited, so the cost is O(Len()).
//
// other must be non-nil; use the package-level Dot to have nil operands
// reported as *ErrInvalidArgumentType.
func (d *Dense) Dot(other *Dense) (int64, error) {
	if len(d.values) != len(other.values) {
		return 0, lengthMismatch(len(d.values), len(other.values))
	}

	var sum int64
	for i, v := range d.values {
		sum += v * other.values[i]
	}
	return sum, nil
}
