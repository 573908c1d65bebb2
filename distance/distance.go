package distance

import (
	"math"
	"slices"
	"sort"
)

// Metric names accepted by Lookup.
const (
	EuclidSquared = "euclid_squared"
	EuclidNorm    = "euclid_norm"
	EuclidSeqLen1 = "euclid_seqlen1"
	EuclidSeqLen2 = "euclid_seqlen2"
	Minkowski     = "minkowski"
	Manhattan     = "manhattan"
	Chebyshev     = "chebyshev"
	Canberra      = "canberra"
	BrayCurtis    = "braycurtis"
	Google        = "google"
	AngleCosDiss  = "angle_cos_diss"
	AngleCosEvol  = "angle_cos_evol"
	DiffAbsAdd    = "diff_abs_add"
	DiffAbsMult   = "diff_abs_mult"
	DiffAbsMult1  = "diff_abs_mult1"
	DiffAbsMult2  = "diff_abs_mult2"
	KLD           = "kld"
	JSD           = "jsd"
	LCC           = "lcc"
)

// DefaultMinkowskiP is the exponent used by minkowski when WithP is not given.
const DefaultMinkowskiP = 2.0

// Pair is the input of a distance function: two aligned vectors plus the
// lengths of the sequences they were derived from.
type Pair struct {
	A, B []float64

	// LenA and LenB are the source sequence lengths (used by the seqlen metrics).
	LenA, LenB int

	// Support optionally lists, in ascending order, the columns where A or B
	// is non-zero. nil means every column is visited.
	Support []uint32
}

// Dim returns the full vector dimension.
func (p Pair) Dim() int {
	return len(p.A)
}

// each calls fn for every visited column.
func (p Pair) each(fn func(a, b float64)) {
	if p.Support == nil {
		for i := range p.A {
			fn(p.A[i], p.B[i])
		}
		return
	}
	for _, c := range p.Support {
		fn(p.A[c], p.B[c])
	}
}

// Check reports whether the pair is well formed.
func Check(p Pair) error {
	if len(p.A) != len(p.B) {
		return &ErrDimensionMismatch{Expected: len(p.A), Actual: len(p.B)}
	}
	return nil
}

// Func computes the dissimilarity of a pair. It assumes Check(p) == nil.
type Func func(p Pair) float64

type params struct {
	p float64
}

// Option configures metric parameters.
type Option func(*params)

// WithP sets the minkowski exponent. math.Inf(1) selects the chebyshev limit.
func WithP(p float64) Option {
	return func(o *params) {
		o.p = p
	}
}

type factory func(params) (Func, error)

func fixed(fn Func) factory {
	return func(params) (Func, error) { return fn, nil }
}

var registry = map[string]factory{
	EuclidSquared: fixed(euclidSquared),
	EuclidNorm:    fixed(euclidNorm),
	EuclidSeqLen1: fixed(euclidSeqLen1),
	EuclidSeqLen2: fixed(euclidSeqLen2),
	Minkowski:     minkowski,
	Manhattan:     fixed(manhattan),
	Chebyshev:     fixed(chebyshev),
	Canberra:      fixed(canberra),
	BrayCurtis:    fixed(brayCurtis),
	Google:        fixed(brayCurtis),
	AngleCosDiss:  fixed(angleCosDiss),
	AngleCosEvol:  fixed(angleCosEvol),
	DiffAbsAdd:    fixed(diffAbsAdd),
	DiffAbsMult:   fixed(diffAbsMult),
	DiffAbsMult1:  fixed(diffAbsMult1),
	DiffAbsMult2:  fixed(diffAbsMult2),
	KLD:           fixed(kld),
	JSD:           fixed(jsd),
	LCC:           fixed(lcc),
}

var names = func() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}()

// Names returns the registered metric names in sorted order.
func Names() []string {
	return slices.Clone(names)
}

// Lookup returns the distance function registered under name.
//
// Parameters are validated here, before any pair is evaluated.
func Lookup(name string, optFns ...Option) (Func, error) {
	f, ok := registry[name]
	if !ok {
		return nil, &ErrUnknownMetric{Name: name, Known: Names()}
	}

	o := params{p: DefaultMinkowskiP}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	return f(o)
}

func minkowski(o params) (Func, error) {
	p := o.p
	if math.IsNaN(p) || p < 1 {
		return nil, &ErrInvalidParameter{
			Metric: Minkowski,
			Param:  "p",
			Value:  p,
			Reason: "p must be at least 1",
		}
	}

	switch {
	case math.IsInf(p, 1):
		return chebyshev, nil
	case p == 1:
		return manhattan, nil
	case p == 2:
		return euclidNorm, nil
	}

	return func(pr Pair) float64 {
		var sum float64
		pr.each(func(a, b float64) {
			sum += math.Pow(math.Abs(a-b), p)
		})
		return math.Pow(sum, 1/p)
	}, nil
}
