// Package metrics provides a Backend decorator that records Prometheus
// metrics for every native EGL call.
//
// The decorator only forwards: it never issues a native call of its own, so
// wrapping a backend does not disturb the error register that Instance
// reads after a failed call.
//
//	reg := prometheus.NewRegistry()
//	mb, err := metrics.Wrap(b, reg)
//	if err != nil {
//		return err
//	}
//	inst := egl.NewInstance(mb)
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gogpu/egl"
)

// Metric names.
const (
	CallsTotal    = "egl_native_calls_total"
	FailuresTotal = "egl_native_failures_total"
	CallDuration  = "egl_native_call_duration_seconds"
)

// Backend wraps another Backend and records per entry point call counts,
// failure counts and call latency. Failure is judged from the raw return
// value alone: EGL_FALSE, a null handle or string, or a zero
// eglClientWaitSync status. Entry points without a failure sentinel
// (eglGetError, eglQueryAPI, eglGetCurrent*) never count as failures.
type Backend struct {
	next     egl.Backend
	calls    *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// Wrap returns a Backend forwarding to next and registers its collectors
// with reg. Collectors already registered by an earlier Wrap on the same
// registry are shared. A nil reg uses prometheus.DefaultRegisterer.
func Wrap(next egl.Backend, reg prometheus.Registerer) (*Backend, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	b := &Backend{
		next: next,
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: CallsTotal,
			Help: "Number of native EGL calls.",
		}, []string{"func"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: FailuresTotal,
			Help: "Number of native EGL calls that returned their failure sentinel.",
		}, []string{"func"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    CallDuration,
			Help:    "Latency of native EGL calls.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"func"}),
	}
	var err error
	if b.calls, err = register(reg, b.calls); err != nil {
		return nil, err
	}
	if b.failures, err = register(reg, b.failures); err != nil {
		return nil, err
	}
	if b.duration, err = register(reg, b.duration); err != nil {
		return nil, err
	}
	return b, nil
}

// register registers c, or returns the collector already registered under
// the same descriptor so several wrapped backends can share a registry.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(T); ok {
			return existing, nil
		}
	}
	return c, err
}

// Unwrap returns the decorated backend.
func (b *Backend) Unwrap() egl.Backend { return b.next }

// Version reports the decorated backend's version.
func (b *Backend) Version() egl.Version { return b.next.Version() }

func (b *Backend) observe(fn string, start time.Time, failed bool) {
	b.duration.WithLabelValues(fn).Observe(time.Since(start).Seconds())
	b.calls.WithLabelValues(fn).Inc()
	if failed {
		b.failures.WithLabelValues(fn).Inc()
	}
}

var _ egl.Backend = (*Backend)(nil)
