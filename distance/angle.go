package distance

import "math"

// cosine returns the cosine of the angle between A and B, clamped to [-1, 1].
// Two zero vectors are parallel; a zero vector is orthogonal to any other.
func cosine(p Pair) float64 {
	var dot, na, nb float64
	p.each(func(a, b float64) {
		dot += a * b
		na += a * a
		nb += b * b
	})
	switch {
	case na == 0 && nb == 0:
		return 1
	case na == 0 || nb == 0:
		return 0
	}
	// sqrt(na*nb) rather than sqrt(na)*sqrt(nb): equal vectors give exactly 1.
	c := dot / math.Sqrt(na*nb)
	return math.Max(-1, math.Min(1, c))
}

func angleCosDiss(p Pair) float64 {
	return (1 - cosine(p)) / 2
}

func angleCosEvol(p Pair) float64 {
	c := cosine(p)
	if c <= -1 {
		return math.Inf(1)
	}
	return math.Log(2 / (1 + c))
}
