package validity

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// checksTotal is a Prometheus counter that tracks the total number of
	// instrumented CheckValid invocations.
	//
	// Labels:
	//   - valid: "true" if the check produced a valid Result, "false" otherwise.
	//
	// This allows tracking validation volume and failure rates across the
	// application, e.g. rate(validity_checks_total{valid="false"}[5m]).
	//
	// The nolint:gochecknoglobals directive is used because Prometheus metrics
	// are intentionally global by design - they need to be registered once and
	// accessed throughout the application lifecycle.
	checksTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "validity_checks_total",
		Help: "The total number of instrumented CheckValid calls",
	}, []string{"valid"})

	// checkTime is a Prometheus histogram that tracks the duration of
	// instrumented CheckValid invocations in milliseconds.
	//
	// Labels:
	//   - type: The Go type of the candidate being validated.
	//   - valid: "true" if the check produced a valid Result, "false" otherwise.
	//
	// Validation is synchronous and structure-bound, so durations are expected
	// in the sub-10ms buckets; the larger buckets exist to surface pathological
	// trees (very deep nesting, very large collections).
	checkTime = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name: "validity_check_time_millis",
		Help: "The time it takes to run an instrumented CheckValid call, in milliseconds",
		Buckets: []float64{
			0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50, 100, 500, 1000,
		},
	}, []string{"type", "valid"})
)

// init pre-initializes checksTotal with zero values for both label values.
// This prevents missing-data gaps in time series: rate() and increase() need
// the series to exist from application start, and alerting rules cannot
// distinguish a zero counter from a nonexistent one.
func init() {
	checksTotal.WithLabelValues("true").Add(0)
	checksTotal.WithLabelValues("false").Add(0)
}

// Instrumented wraps a validator so that every CheckValid call is counted and
// timed in Prometheus. The wrapper changes nothing about the validator's
// results; instrument the root of a tree rather than individual leaves to
// avoid double counting.
//
//nolint:ireturn
func Instrumented[T any](validator Validator[T]) Validator[T] {
	return Func[T](func(candidate T) Result {
		start := time.Now()
		result := validator.CheckValid(candidate)
		elapsed := time.Since(start)

		valid := fmt.Sprintf("%t", result.IsValid())

		checksTotal.WithLabelValues(valid).Inc()
		checkTime.WithLabelValues(fmt.Sprintf("%T", candidate), valid).
			Observe(float64(elapsed.Nanoseconds()) / float64(time.Millisecond.Nanoseconds()))

		return result
	})
}
