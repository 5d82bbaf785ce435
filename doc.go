// Package sparsevec provides fixed-length integer vectors with dot product
// in two interchangeable representations.
//
// # Representations
//
//   - Dense: one stored value per position. Dot visits every position.
//   - Sparse: only non-zero positions are stored. Dot visits only the
//     non-zero positions of the operand with fewer of them, so the cost
//     is O(min(k1, k2)) instead of O(length).
//
// Both produce identical results for identical logical vectors. Vectors are
// immutable after construction and safe for concurrent reads.
//
// # Usage
//
//	a := sparsevec.NewSparse([]int64{1, 0, 2, 0, 3})
//	b := sparsevec.NewSparse([]int64{0, 2, 0, 4, 3})
//	dot, err := a.Dot(b) // 9
//
// Operands of different lengths fail with *ErrLengthMismatch. The
// dynamically typed Dot function additionally rejects mixed or foreign
// operands with *ErrInvalidArgumentType.
//
// # Batch Scoring
//
// BatchDot scores one query against many candidates concurrently:
//
//	scores, err := sparsevec.BatchDot(ctx, query, candidates,
//	    sparsevec.WithConcurrency(8),
//	)
package sparsevec
