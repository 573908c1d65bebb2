// Package wordpattern extracts overlapping words (k-mers) from a list of
// sequences and assigns every distinct word a column in first-seen order.
//
// A sequence of length L contributes max(L-k+1, 0) windows. Symbols are
// compared case-insensitively; words are reported upper-cased.
//
//	p, err := wordpattern.Create([]string{"ACGTAC", "gtac"}, 2)
//	p.Words()   // [AC CG GT TA]
//	p.Counts(1) // map[GT:1 TA:1 AC:1]
package wordpattern
