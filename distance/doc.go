// Package distance provides the dissimilarity measures used to compare word
// vectors.
//
// Metrics are looked up by name:
//
//	fn, err := distance.Lookup("euclid_norm")
//	d := fn(distance.Pair{A: a, B: b, LenA: 25, LenB: 18})
//
// # Supported Metrics
//
//   - euclid_squared, euclid_norm, euclid_seqlen1, euclid_seqlen2
//   - minkowski (parameter p, default 2), manhattan, chebyshev
//   - canberra, braycurtis, google
//   - angle_cos_diss, angle_cos_evol
//   - diff_abs_add, diff_abs_mult, diff_abs_mult1, diff_abs_mult2
//   - kld, jsd, lcc
//
// All metrics are symmetric and return exactly 0 for identical vectors.
//
// # Sparse Evaluation
//
// A Pair may carry a Support: the ascending list of columns where either
// vector is non-zero. Metrics then visit only those columns and use the full
// dimension where a formula depends on it, so results are bit-identical to
// the dense evaluation.
package distance
