package alfpy

import (
	"log/slog"

	"github.com/anorak94/alfpy/pairwise"
	"github.com/anorak94/alfpy/resource"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	workers          int
	sparse           pairwise.SparseMode
	controller       *resource.Controller
}

// Option configures a Calculator.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring requests.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &alfpy.BasicMetricsCollector{}
//	calc := alfpy.New(alfpy.WithMetricsCollector(metrics))
//	// ... use calc ...
//	stats := metrics.GetStats()
//	fmt.Printf("Matrices: %d, Avg latency: %dns\n", stats.MatrixCount, stats.MatrixAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for requests.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := alfpy.NewJSONLogger(slog.LevelInfo)
//	calc := alfpy.New(alfpy.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithWorkers sets the number of goroutines building the matrix.
// Values below 1 select GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithSparse selects dense or sparse pair evaluation. The result is the same
// in every mode; SparseAuto picks sparse evaluation for low-density tables.
func WithSparse(mode pairwise.SparseMode) Option {
	return func(o *options) {
		o.sparse = mode
	}
}

// WithResourceController bounds memory, workers and input IO across all
// requests sharing rc.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		sparse:           pairwise.SparseAuto,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
