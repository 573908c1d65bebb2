package distance

import "math"

func euclidSquared(p Pair) float64 {
	var sum float64
	p.each(func(a, b float64) {
		d := a - b
		sum += d * d
	})
	return sum
}

func euclidNorm(p Pair) float64 {
	return math.Sqrt(euclidSquared(p))
}

// euclidSeqLen1 scales the squared distance by the mean sequence length.
func euclidSeqLen1(p Pair) float64 {
	return scaleByLength(euclidSquared(p), float64(p.LenA+p.LenB)/2)
}

// euclidSeqLen2 is the squared distance between the vectors after each is
// divided by the square root of its own sequence length.
func euclidSeqLen2(p Pair) float64 {
	la := math.Sqrt(float64(p.LenA))
	lb := math.Sqrt(float64(p.LenB))
	var sum float64
	p.each(func(a, b float64) {
		d := scaleByLength(a, la) - scaleByLength(b, lb)
		sum += d * d
	})
	return sum
}

func scaleByLength(v, l float64) float64 {
	if l <= 0 {
		return v
	}
	return v / l
}

func manhattan(p Pair) float64 {
	var sum float64
	p.each(func(a, b float64) {
		sum += math.Abs(a - b)
	})
	return sum
}

func chebyshev(p Pair) float64 {
	var m float64
	p.each(func(a, b float64) {
		if d := math.Abs(a - b); d > m {
			m = d
		}
	})
	return m
}

func canberra(p Pair) float64 {
	var sum float64
	p.each(func(a, b float64) {
		den := math.Abs(a) + math.Abs(b)
		if den == 0 {
			return
		}
		sum += math.Abs(a-b) / den
	})
	return sum
}

// brayCurtis is also registered as "google".
func brayCurtis(p Pair) float64 {
	var num, den float64
	p.each(func(a, b float64) {
		num += math.Abs(a - b)
		den += math.Abs(a + b)
	})
	if den == 0 {
		return 0
	}
	return num / den
}
