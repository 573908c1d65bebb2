package distmatrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Parse reads a matrix in the phylip layout written by Format. Values are
// read from the upper triangle; the lower triangle is ignored.
func Parse(r io.Reader) (*Matrix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	line := 0
	next := func() (string, bool) {
		for sc.Scan() {
			line++
			if s := strings.TrimSpace(sc.Text()); s != "" {
				return s, true
			}
		}
		return "", false
	}

	head, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, ErrEmpty
	}
	n, err := strconv.Atoi(head)
	if err != nil || n < 1 {
		return nil, fmt.Errorf("%w: line %d: bad sequence count %q", ErrMalformed, line, head)
	}

	ids := make([]string, n)
	m := mat.NewSymDense(n, nil)
	for i := range n {
		row, ok := next()
		if !ok {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrMalformed, n, i)
		}
		fields := strings.Fields(row)
		if len(fields) != n+1 {
			return nil, fmt.Errorf("%w: line %d: expected %d values, got %d", ErrMalformed, line, n, len(fields)-1)
		}
		ids[i] = fields[0]
		for j := i + 1; j < n; j++ {
			v, err := strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, line, err)
			}
			m.SetSym(i, j, v)
		}
	}

	return New(ids, m)
}
