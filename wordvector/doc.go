// Package wordvector turns a word pattern into one numeric vector per
// sequence.
//
// Two vectorizations are provided:
//
//   - Counts: the raw occurrence count of every column.
//   - Freqs: counts divided by the number of windows of the sequence,
//     max(L-k+1, 0). A sequence without windows yields an all-zero row.
//
// Vectors are computed eagerly and are read-only afterwards.
package wordvector
