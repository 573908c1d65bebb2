package pairwise

import (
	"log/slog"
	"runtime"

	"github.com/anorak94/alfpy/resource"
)

// SparseMode controls whether pairs are evaluated on their joint support.
type SparseMode int

const (
	// SparseAuto uses the joint support when the source density is below
	// the threshold.
	SparseAuto SparseMode = iota
	// SparseOn always uses the joint support when the source provides it.
	SparseOn
	// SparseOff always visits every column.
	SparseOff
)

func (m SparseMode) String() string {
	switch m {
	case SparseAuto:
		return "auto"
	case SparseOn:
		return "on"
	case SparseOff:
		return "off"
	default:
		return "unknown"
	}
}

// DefaultDensityThreshold is the density below which SparseAuto switches to
// joint-support evaluation.
const DefaultDensityThreshold = 0.25

type options struct {
	workers    int
	sparse     SparseMode
	threshold  float64
	controller *resource.Controller
	logger     *slog.Logger
}

// Option configures Build.
type Option func(*options)

// WithWorkers sets the number of rows evaluated concurrently.
// Values below 1 select runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithSparse selects the sparse evaluation mode.
func WithSparse(mode SparseMode) Option {
	return func(o *options) {
		o.sparse = mode
	}
}

// WithDensityThreshold sets the SparseAuto threshold.
func WithDensityThreshold(d float64) Option {
	return func(o *options) {
		o.threshold = d
	}
}

// WithResourceController bounds the workers by the controller's worker
// slots, which may be shared with other builds.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

// WithLogger sets the logger used for progress reports.
// Pass nil to disable logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		sparse:    SparseAuto,
		threshold: DefaultDensityThreshold,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}
