// Package distmatrix holds a labelled symmetric distance matrix and its
// textual forms.
//
// The phylip layout is:
//
//	   3
//	seq1       0.0000000 57.0000000 30.0000000
//	seq2       57.0000000 0.0000000 19.0000000
//	seq3       30.0000000 19.0000000 0.0000000
//
// The first line is the sequence count right-aligned in 4 columns. Each row
// is the identifier left-aligned in 10 columns (longer identifiers are not
// truncated), a space, and the row values with 7 decimals separated by
// single spaces. Every line, including the last, ends with a newline.
package distmatrix
