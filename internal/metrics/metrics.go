package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const Namespace = "creator"

// register adds c to reg, reusing an identical collector that is already
// registered.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("register metric: %w", err)
	}
	return c, nil
}

// UploadObserver exports object storage metrics.
type UploadObserver struct {
	duration *prometheus.HistogramVec
	errors   *prometheus.CounterVec
	bytes    prometheus.Counter
}

func NewUploadObserver(reg prometheus.Registerer) (*UploadObserver, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	o := &UploadObserver{}
	var err error

	o.duration, err = register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Subsystem: "storage",
		Name:      "operation_duration_seconds",
		Help:      "Latency of object storage operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"}))
	if err != nil {
		return nil, err
	}
	o.errors, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "storage",
		Name:      "operation_errors_total",
		Help:      "Count of failed object storage operations.",
	}, []string{"operation"}))
	if err != nil {
		return nil, err
	}
	o.bytes, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "storage",
		Name:      "uploaded_bytes_total",
		Help:      "Bytes successfully uploaded to object storage.",
	}))
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (o *UploadObserver) RecordUpload(d time.Duration, size int64, err error) {
	if o == nil {
		return
	}
	o.record("upload", d, err)
	if err == nil {
		o.bytes.Add(float64(size))
	}
}

func (o *UploadObserver) RecordDelete(d time.Duration, err error) {
	if o == nil {
		return
	}
	o.record("delete", d, err)
}

func (o *UploadObserver) record(op string, d time.Duration, err error) {
	o.duration.WithLabelValues(op).Observe(d.Seconds())
	if err != nil {
		o.errors.WithLabelValues(op).Inc()
	}
}

// HTTP counts and times requests per route.
type HTTP struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewHTTP(reg prometheus.Registerer) (*HTTP, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	h := &HTTP{}
	var err error

	h.requests, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"}))
	if err != nil {
		return nil, err
	}
	h.duration, err = register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"}))
	if err != nil {
		return nil, err
	}
	return h, nil
}

// Wrap instruments next under the given route label.
func (h *HTTP) Wrap(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		h.duration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
		h.requests.WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).Inc()
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
