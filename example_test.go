package sparsevec_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/sparsevec"
)

// Example_dense demonstrates the baseline representation.
func Example_dense() {
	a := sparsevec.NewDense([]int64{1, 2, 3})
	b := sparsevec.NewDense([]int64{1, 2, 5})

	dot, err := a.Dot(b)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(dot)
	// Output: 20
}

// Example_sparse demonstrates the sparse representation, which only
// visits positions that are non-zero in both operands.
func Example_sparse() {
	a := sparsevec.NewSparse([]int64{1, 0, 2, 0, 3, 1, 0, 2, 0, 3})
	b := sparsevec.NewSparse([]int64{0, 2, 0, 4, 0, 1, 0, 2, 0, 3})

	dot, err := a.Dot(b)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(a.NonZero())
	fmt.Println(dot)
	// Output:
	// [0 2 4 5 7 9]
	// 14
}

// Example_lengthMismatch shows how to inspect a length mismatch.
func Example_lengthMismatch() {
	_, err := sparsevec.NewSparse([]int64{1, 2, 3}).Dot(sparsevec.NewSparse([]int64{1, 2}))

	var lm *sparsevec.ErrLengthMismatch
	if errors.As(err, &lm) {
		fmt.Println(lm.Left, lm.Right)
	}
	// Output: 3 2
}

// Example_batchDot scores a query against several candidates.
func Example_batchDot() {
	query := sparsevec.NewSparse([]int64{0, 1, 0, 2})
	candidates := []*sparsevec.Sparse{
		sparsevec.NewSparse([]int64{0, 3, 0, 0}),
		sparsevec.NewSparse([]int64{5, 0, 0, 1}),
		sparsevec.NewSparse([]int64{0, 0, 7, 0}),
	}

	scores, err := sparsevec.BatchDot(context.Background(), query, candidates, sparsevec.WithConcurrency(2))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(scores)
	// Output: [3 2 0]
}
