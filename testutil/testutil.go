package testutil

import (
	"math/rand"
	"sync"
)

// RNG is a seeded generator of sparse test sequences.
// Safe for concurrent use; each call holds the lock for its whole sequence.
type RNG struct {
	mu   sync.Mutex
	seed int64
	src  *rand.Rand
}

// NewRNG returns an RNG whose output is fully determined by seed.
func NewRNG(seed int64) *RNG {
	return &RNG{seed: seed, src: newSource(seed)}
}

func newSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Reset rewinds r so it replays the sequences produced since NewRNG.
func (r *RNG) Reset() {
	r.mu.Lock()
	r.src = newSource(r.seed)
	r.mu.Unlock()
}

// Seed reports the seed r was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// SparseValues generates an integer sequence of the given length in which
// each position is non-zero with probability density. Non-zero values are
// drawn from [-maxAbs, maxAbs] \ {0}.
func (r *RNG) SparseValues(length int, density float64, maxAbs int64) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sparseValuesLocked(length, density, maxAbs)
}

func (r *RNG) sparseValuesLocked(length int, density float64, maxAbs int64) []int64 {
	values := make([]int64, length)
	if maxAbs <= 0 {
		return values
	}
	for i := range values {
		if r.src.Float64() >= density {
			continue
		}
		v := r.src.Int63n(maxAbs) + 1
		if r.src.Intn(2) == 0 {
			v = -v
		}
		values[i] = v
	}
	return values
}

// SparseBatch generates num sequences of the same length.
// Locks only once per call.
func (r *RNG) SparseBatch(num, length int, density float64, maxAbs int64) [][]int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	batch := make([][]int64, num)
	for i := range batch {
		batch[i] = r.sparseValuesLocked(length, density, maxAbs)
	}
	return batch
}

// BruteForceDot is the reference dot product over plain slices.
// It panics if the slices differ in length.
func BruteForceDot(a, b []int64) int64 {
	if len(a) != len(b) {
		panic("testutil: length mismatch")
	}
	var sum int64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// NonZeroIndices returns the ascending positions of a holding non-zero values.
func NonZeroIndices(a []int64) []int {
	var idxs []int
	for i, v := range a {
		if v != 0 {
			idxs = append(idxs, i)
		}
	}
	return idxs
}
