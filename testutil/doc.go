// Package testutil provides testing utilities for alfpy.
//
// This package is intended for use in tests and benchmarks only.
// It provides deterministic random sequences and vectors and the small
// reference dataset used across package tests.
//
// # Random Data
//
//	rng := testutil.NewRNG(seed)
//	seqs := rng.Sequences(10, 50, 200, testutil.DNA)
//	vecs := rng.SparseVectors(10, 64, 0.2)
//
// # Reference Dataset
//
//	ref := testutil.Reference()
//	ref.IDs, ref.Seqs
package testutil
