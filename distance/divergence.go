package distance

import "math"

// constantTol bounds the rounding residue of a variance computed from sums.
const constantTol = 1e-12

// kld is the symmetrised Kullback-Leibler divergence (Jeffreys divergence)
// over the columns where both vectors are positive.
func kld(p Pair) float64 {
	var sum float64
	p.each(func(a, b float64) {
		if a > 0 && b > 0 {
			sum += (a - b) * math.Log(a/b)
		}
	})
	return sum
}

// jsd is the Jensen-Shannon divergence in bits.
func jsd(p Pair) float64 {
	var sum float64
	p.each(func(a, b float64) {
		m := (a + b) / 2
		if a > 0 {
			sum += a * math.Log2(a/m)
		}
		if b > 0 {
			sum += b * math.Log2(b/m)
		}
	})
	return math.Max(0, sum/2)
}

// lcc is one minus the Pearson correlation coefficient. Constant vectors
// have no defined correlation: they are at distance 0 from an equal vector
// and 1 from anything else.
func lcc(p Pair) float64 {
	d := p.Dim()
	if d == 0 {
		return 0
	}

	var sa, sb, sab, saa, sbb float64
	equal := true
	p.each(func(a, b float64) {
		sa += a
		sb += b
		sab += a * b
		saa += a * a
		sbb += b * b
		if a != b {
			equal = false
		}
	})

	n := float64(d)
	cov := sab - sa*sb/n
	va := saa - sa*sa/n
	vb := sbb - sb*sb/n
	if va <= constantTol*saa || vb <= constantTol*sbb {
		if equal {
			return 0
		}
		return 1
	}

	r := cov / math.Sqrt(va*vb)
	return math.Max(0, 1-math.Min(1, r))
}
