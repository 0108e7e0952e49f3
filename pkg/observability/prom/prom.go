// Package prom implements observability.Metrics on a Prometheus registry.
//
// Metric names are converted to Prometheus form: dots become underscores and
// counters get a _total suffix. Label names are fixed by the fields of the
// first observation of each metric; later observations fill missing labels
// with "" and drop unknown ones.
package prom

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/JailtonJunior94/mediaevents/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Option configures Metrics.
type Option func(*Metrics)

// WithNamespace prefixes every metric name.
func WithNamespace(ns string) Option {
	return func(m *Metrics) { m.namespace = ns }
}

// WithRegistry registers metrics on r instead of a fresh registry.
func WithRegistry(r *prometheus.Registry) Option {
	return func(m *Metrics) { m.registry = r }
}

// WithBuckets sets the histogram buckets. The default is prometheus.DefBuckets.
func WithBuckets(buckets []float64) Option {
	return func(m *Metrics) { m.buckets = buckets }
}

// Metrics creates Prometheus collectors on demand.
type Metrics struct {
	namespace string
	registry  *prometheus.Registry
	buckets   []float64

	mu          sync.Mutex
	instruments map[string]*instrument
}

// New returns Metrics backed by its own registry unless WithRegistry is given.
func New(opts ...Option) *Metrics {
	m := &Metrics{
		buckets:     prometheus.DefBuckets,
		instruments: make(map[string]*instrument),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}
	return m
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Counter(name, description, _ string) observability.Counter {
	return counter{m.instrument(kindCounter, name, description)}
}

func (m *Metrics) Histogram(name, description, unit string) observability.Histogram {
	return histogram{m.instrument(kindHistogram, name+unitSuffix(unit), description)}
}

func (m *Metrics) UpDownCounter(name, description, _ string) observability.UpDownCounter {
	return upDownCounter{m.instrument(kindGauge, name, description)}
}

// Gauge registers a collector that calls callback on every scrape.
func (m *Metrics) Gauge(name, description, unit string, callback observability.GaugeCallback) error {
	g := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      metricName(name + unitSuffix(unit)),
		Help:      helpText(description, name),
	}, func() float64 { return callback(context.Background()) })
	if err := m.registry.Register(g); err != nil {
		return fmt.Errorf("prom: register gauge %s: %w", name, err)
	}
	return nil
}

func (m *Metrics) instrument(kind instrumentKind, name, description string) *instrument {
	if kind == kindCounter && !strings.HasSuffix(name, ".total") && !strings.HasSuffix(name, "_total") {
		name += "_total"
	}
	full := metricName(name)

	m.mu.Lock()
	defer m.mu.Unlock()
	if in, ok := m.instruments[full]; ok {
		return in
	}
	in := &instrument{
		kind:      kind,
		namespace: m.namespace,
		name:      full,
		help:      helpText(description, name),
		buckets:   m.buckets,
		registry:  m.registry,
	}
	m.instruments[full] = in
	return in
}

type instrumentKind int

const (
	kindCounter instrumentKind = iota
	kindGauge
	kindHistogram
)

// instrument creates its collector vector on first observation, once the
// label names are known.
type instrument struct {
	kind      instrumentKind
	namespace string
	name      string
	help      string
	buckets   []float64
	registry  *prometheus.Registry

	once    sync.Once
	labels  []string
	counter *prometheus.CounterVec
	gauge   *prometheus.GaugeVec
	hist    *prometheus.HistogramVec
	err     error
}

func (in *instrument) init(fields []observability.Field) {
	in.once.Do(func() {
		in.labels = make([]string, len(fields))
		for i, f := range fields {
			in.labels[i] = labelName(f.Key)
		}

		var c prometheus.Collector
		switch in.kind {
		case kindCounter:
			in.counter = prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: in.namespace, Name: in.name, Help: in.help,
			}, in.labels)
			c = in.counter
		case kindGauge:
			in.gauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
				Namespace: in.namespace, Name: in.name, Help: in.help,
			}, in.labels)
			c = in.gauge
		case kindHistogram:
			in.hist = prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: in.namespace, Name: in.name, Help: in.help, Buckets: in.buckets,
			}, in.labels)
			c = in.hist
		}
		in.err = in.registry.Register(c)
	})
}

// values orders the field values by the instrument's label names.
func (in *instrument) values(fields []observability.Field) []string {
	out := make([]string, len(in.labels))
	for _, f := range fields {
		key := labelName(f.Key)
		for i, l := range in.labels {
			if l == key {
				out[i] = fmt.Sprint(f.Value)
				break
			}
		}
	}
	return out
}

type counter struct{ in *instrument }

func (c counter) Add(_ context.Context, value int64, fields ...observability.Field) {
	if value < 0 {
		return
	}
	c.in.init(fields)
	if c.in.err != nil {
		return
	}
	c.in.counter.WithLabelValues(c.in.values(fields)...).Add(float64(value))
}

func (c counter) Increment(ctx context.Context, fields ...observability.Field) {
	c.Add(ctx, 1, fields...)
}

type upDownCounter struct{ in *instrument }

func (u upDownCounter) Add(_ context.Context, value int64, fields ...observability.Field) {
	u.in.init(fields)
	if u.in.err != nil {
		return
	}
	u.in.gauge.WithLabelValues(u.in.values(fields)...).Add(float64(value))
}

type histogram struct{ in *instrument }

func (h histogram) Record(_ context.Context, value float64, fields ...observability.Field) {
	h.in.init(fields)
	if h.in.err != nil {
		return
	}
	h.in.hist.WithLabelValues(h.in.values(fields)...).Observe(value)
}

func metricName(name string) string {
	return labelName(name)
}

// labelName maps anything outside [a-zA-Z0-9_] to an underscore.
func labelName(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}

func unitSuffix(unit string) string {
	switch unit {
	case "ms":
		return "_milliseconds"
	case "s":
		return "_seconds"
	case "By":
		return "_bytes"
	default:
		return ""
	}
}

func helpText(description, name string) string {
	if description != "" {
		return description
	}
	return name
}
