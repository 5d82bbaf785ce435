package sparsevec

import (
	"maps"
	"math"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
)

// Sparse stores only the non-zero positions of a vector.
//
// The index set is the key set of entries, so it can never drift from the
// stored values. No entry holds zero.
type Sparse struct {
	length  int
	entries map[int]int64
}

// NewSparse creates a sparse vector from a dense sequence in a single pass.
func NewSparse(values []int64) *Sparse {
	s := &Sparse{
		length:  len(values),
		entries: make(map[int]int64),
	}
	for i, v := range values {
		if v != 0 {
			s.entries[i] = v
		}
	}
	return s
}

// NewSparseFromMap creates a sparse vector of the given length from
// index/value pairs. Zero values are dropped. The map is copied.
// A negative length fails with *ErrInvalidLength and an index outside
// [0, length) with *ErrIndexOutOfRange.
func NewSparseFromMap(length int, entries map[int]int64) (*Sparse, error) {
	if length < 0 {
		return nil, &ErrInvalidLength{Length: length}
	}

	s := &Sparse{
		length:  length,
		entries: make(map[int]int64, len(entries)),
	}
	for idx, v := range entries {
		if idx < 0 || idx >= length {
			return nil, &ErrIndexOutOfRange{Index: idx, Length: length}
		}
		if v != 0 {
			s.entries[idx] = v
		}
	}
	return s, nil
}

// Len returns the number of positions in the vector, zeros included.
func (s *Sparse) Len() int {
	return s.length
}

// At returns the value stored at idx, or 0 if none is stored.
// idx is not checked against Len.
func (s *Sparse) At(idx int) int64 {
	return s.entries[idx]
}

// NNZ returns the number of non-zero positions.
func (s *Sparse) NNZ() int {
	return len(s.entries)
}

// NonZero returns the positions holding a non-zero value in ascending order.
func (s *Sparse) NonZero() []int {
	return slices.Sorted(maps.Keys(s.entries))
}

// NonZeroBitmap returns the non-zero positions as a Roaring bitmap.
// It fails if a position does not fit in uint32.
func (s *Sparse) NonZeroBitmap() (*roaring.Bitmap, error) {
	rb := roaring.New()
	for idx := range s.entries {
		if uint64(idx) > math.MaxUint32 {
			return nil, &ErrIndexOutOfRange{Index: idx, Length: s.length}
		}
		rb.Add(uint32(idx))
	}
	return rb, nil
}

// Values materializes the dense form of the vector.
func (s *Sparse) Values() []int64 {
	values := make([]int64, s.length)
	for idx, v := range s.entries {
		values[idx] = v
	}
	return values
}

// Dense converts s to the dense representation.
func (s *Sparse) Dense() *Dense {
	return &Dense{values: s.Values()}
}

// Dot returns the dot product of s and other.
//
// Only positions that are non-zero in both operands contribute, so the
// smaller entry set is walked and each index is probed in the larger one.
// The cost is O(min(s.NNZ(), other.NNZ())).
//
// other must be non-nil; use the package-level Dot to have nil operands
// reported as *ErrInvalidArgumentType.
func (s *Sparse) Dot(other *Sparse) (int64, error) {
	if s.length != other.length {
		return 0, lengthMismatch(s.length, other.length)
	}

	small, large := s, other
	if len(large.entries) < len(small.entries) {
		small, large = large, small
	}

	var sum int64
	for idx, v := range small.entries {
		if w, ok := large.entries[idx]; ok {
			sum += v * w
		}
	}
	return sum, nil
}
