// Package pairwise assembles the distance matrix of a vector set.
//
// Only the upper triangle is evaluated; the result is mirrored and the
// diagonal is zero. Rows are distributed over a bounded pool of workers, each
// writing a disjoint set of cells, so the matrix is identical for any worker
// count.
//
//	fn, _ := distance.Lookup(distance.EuclidNorm)
//	m, err := pairwise.Build(ctx, ids, vectors, fn, pairwise.WithWorkers(8))
//
// # Sparse Evaluation
//
// Word vectors are usually sparse. When the source exposes per-row presence
// bitmaps, each pair is evaluated on the union of the two bitmaps only.
// SparseAuto enables this below a density threshold.
package pairwise
