package distance

import "math"

// diffAbsAdd is the mean absolute difference over the full column space.
func diffAbsAdd(p Pair) float64 {
	d := p.Dim()
	if d == 0 {
		return 0
	}
	return manhattan(p) / float64(d)
}

// diffAbsMult is one minus the Bhattacharyya coefficient of the two
// vectors taken as unnormalised distributions.
func diffAbsMult(p Pair) float64 {
	var bc, sa, sb float64
	p.each(func(a, b float64) {
		sa += a
		sb += b
		if a > 0 && b > 0 {
			bc += math.Sqrt(a * b)
		}
	})
	switch {
	case sa == 0 && sb == 0:
		return 0
	case sa <= 0 || sb <= 0:
		return 1
	}
	return math.Max(0, 1-bc/math.Sqrt(sa*sb))
}

// logAbsDiffs returns the sum of ln|a-b| over the columns where the
// vectors differ, and the number of those columns.
func logAbsDiffs(p Pair) (float64, int) {
	var sum float64
	var n int
	p.each(func(a, b float64) {
		if d := math.Abs(a - b); d > 0 {
			sum += math.Log(d)
			n++
		}
	})
	return sum, n
}

// diffAbsMult1 is the product of the non-zero absolute differences taken to
// the power 1/D, D being the full column space. Equal columns count towards
// D but not towards the product.
func diffAbsMult1(p Pair) float64 {
	sum, n := logAbsDiffs(p)
	if n == 0 {
		return 0
	}
	return math.Exp(sum / float64(p.Dim()))
}

// diffAbsMult2 is the geometric mean of the non-zero absolute differences.
func diffAbsMult2(p Pair) float64 {
	sum, n := logAbsDiffs(p)
	if n == 0 {
		return 0
	}
	return math.Exp(sum / float64(n))
}
