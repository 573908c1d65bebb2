package distance

import (
	"fmt"
	"strings"
)

// ErrUnknownMetric is returned by Lookup for a name that is not registered.
type ErrUnknownMetric struct {
	Name  string
	Known []string
}

func (e *ErrUnknownMetric) Error() string {
	return fmt.Sprintf("distance: unknown metric %q (valid: %s)", e.Name, strings.Join(e.Known, ", "))
}

// ErrInvalidParameter is returned by Lookup when a metric parameter is out of range.
type ErrInvalidParameter struct {
	Metric string
	Param  string
	Value  float64
	Reason string
}

func (e *ErrInvalidParameter) Error() string {
	return fmt.Sprintf("distance: %s: invalid %s=%g: %s", e.Metric, e.Param, e.Value, e.Reason)
}

// ErrDimensionMismatch indicates two vectors of different length.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("distance: dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}
