// Package testutil provides testing utilities for sparsevec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded generator for sparse integer sequences and a
// brute-force reference dot product.
//
// # Random Sequence Generation
//
//	rng := testutil.NewRNG(seed)
//	values := rng.SparseValues(1000, 0.05, 100) // ~5% non-zero, |v| <= 100
//
// # Reference Results
//
//	want := testutil.BruteForceDot(a, b)
package testutil
