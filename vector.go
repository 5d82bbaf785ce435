package sparsevec

// Vector is the read-only contract shared by Dense and Sparse.
type Vector interface {
	// Len returns the number of positions, zeros included.
	Len() int
	// At returns the value at position i.
	At(i int) int64
	// NonZero returns the ascending positions holding a non-zero value.
	NonZero() []int
	// Values materializes the vector as a dense slice.
	Values() []int64
}

// Dotter is implemented by vector types that can compute a dot product
// against another value of the same type.
type Dotter[V any] interface {
	Dot(other V) (int64, error)
}

var (
	_ Vector          = (*Dense)(nil)
	_ Vector          = (*Sparse)(nil)
	_ Dotter[*Dense]  = (*Dense)(nil)
	_ Dotter[*Sparse] = (*Sparse)(nil)
)

// Dot computes the dot product of two dynamically typed operands.
//
// Both operands must be *Dense or both must be *Sparse; anything else fails
// with *ErrInvalidArgumentType. Statically typed callers should use the
// Dot methods directly.
func Dot(a, b any) (int64, error) {
	switch x := a.(type) {
	case *Dense:
		y, ok := b.(*Dense)
		if !ok || y == nil {
			return 0, invalidArgumentType(b)
		}
		if x == nil {
			return 0, invalidArgumentType(a)
		}
		return x.Dot(y)
	case *Sparse:
		y, ok := b.(*Sparse)
		if !ok || y == nil {
			return 0, invalidArgumentType(b)
		}
		if x == nil {
			return 0, invalidArgumentType(a)
		}
		return x.Dot(y)
	default:
		return 0, invalidArgumentType(a)
	}
}
