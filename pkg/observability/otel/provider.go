package otel

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/JailtonJunior94/mediaevents/pkg/observability"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

// Option customizes how a Provider is assembled.
type Option func(*options)

type options struct {
	spanExporter sdktrace.SpanExporter
	metricReader sdkmetric.Reader
	logExporter  sdklog.Exporter
	logOutput    io.Writer
}

// WithSpanExporter exports spans synchronously to exp instead of OTLP.
func WithSpanExporter(exp sdktrace.SpanExporter) Option {
	return func(o *options) { o.spanExporter = exp }
}

// WithMetricReader collects metrics through r instead of a periodic OTLP push.
func WithMetricReader(r sdkmetric.Reader) Option {
	return func(o *options) { o.metricReader = r }
}

// WithLogExporter exports log records synchronously to exp instead of OTLP.
func WithLogExporter(exp sdklog.Exporter) Option {
	return func(o *options) { o.logExporter = exp }
}

// WithLogOutput sets where console logs are written. The default is stdout.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) { o.logOutput = w }
}

// Provider implements observability.Observability on top of the
// OpenTelemetry SDK.
type Provider struct {
	config         *Config
	tracerProvider *sdktrace.TracerProvider
	meterProvider  *sdkmetric.MeterProvider
	loggerProvider *sdklog.LoggerProvider

	tracer  *tracer
	logger  *logger
	metrics *meter

	shutdown []func(context.Context) error
}

// NewProvider validates config and starts the three SDK pipelines. Call
// Shutdown to flush them.
func NewProvider(ctx context.Context, config *Config, opts ...Option) (*Provider, error) {
	if config == nil {
		return nil, errors.New("otel: config cannot be nil")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	config.Protocol = normalizeProtocol(config.Protocol)

	o := &options{logOutput: os.Stdout}
	for _, opt := range opts {
		opt(o)
	}

	res, err := newResource(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("otel: create resource: %w", err)
	}

	p := &Provider{config: config}
	if err := p.initTraces(ctx, res, o); err != nil {
		return nil, p.abort(ctx, fmt.Errorf("otel: init traces: %w", err))
	}
	if err := p.initMetrics(ctx, res, o); err != nil {
		return nil, p.abort(ctx, fmt.Errorf("otel: init metrics: %w", err))
	}
	if err := p.initLogs(ctx, res, o); err != nil {
		return nil, p.abort(ctx, fmt.Errorf("otel: init logs: %w", err))
	}

	if config.RegisterGlobal {
		otel.SetTracerProvider(p.tracerProvider)
		otel.SetMeterProvider(p.meterProvider)
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		))
	}

	scope := config.ServiceName
	p.tracer = &tracer{tracer: p.tracerProvider.Tracer(scope)}
	p.metrics = &meter{meter: p.meterProvider.Meter(scope)}
	p.logger = newLogger(config, o.logOutput, p.loggerProvider.Logger(scope))
	return p, nil
}

func newResource(ctx context.Context, c *Config) (*resource.Resource, error) {
	attrs := []attribute.KeyValue{
		semconv.ServiceName(c.ServiceName),
		semconv.ServiceVersion(c.ServiceVersion),
		semconv.DeploymentEnvironment(c.Environment),
	}
	for k, v := range c.ResourceAttributes {
		attrs = append(attrs, attribute.String(k, v))
	}
	return resource.New(ctx, resource.WithAttributes(attrs...))
}

func (p *Provider) initTraces(ctx context.Context, res *resource.Resource, o *options) error {
	tpOpts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(newSampler(p.config.TraceSampleRate)),
	}
	if o.spanExporter != nil {
		tpOpts = append(tpOpts, sdktrace.WithSyncer(o.spanExporter))
	} else {
		exp, err := newSpanExporter(ctx, p.config)
		if err != nil {
			return err
		}
		tpOpts = append(tpOpts, sdktrace.WithBatcher(exp))
	}

	p.tracerProvider = sdktrace.NewTracerProvider(tpOpts...)
	p.shutdown = append(p.shutdown, p.tracerProvider.Shutdown)
	return nil
}

func (p *Provider) initMetrics(ctx context.Context, res *resource.Resource, o *options) error {
	reader := o.metricReader
	if reader == nil {
		exp, err := newMetricExporter(ctx, p.config)
		if err != nil {
			return err
		}
		var readerOpts []sdkmetric.PeriodicReaderOption
		if p.config.MetricInterval > 0 {
			readerOpts = append(readerOpts, sdkmetric.WithInterval(p.config.MetricInterval))
		}
		reader = sdkmetric.NewPeriodicReader(exp, readerOpts...)
	}

	p.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(reader),
	)
	p.shutdown = append(p.shutdown, p.meterProvider.Shutdown)
	return nil
}

func (p *Provider) initLogs(ctx context.Context, res *resource.Resource, o *options) error {
	var processor sdklog.Processor
	if o.logExporter != nil {
		processor = sdklog.NewSimpleProcessor(o.logExporter)
	} else {
		exp, err := newLogExporter(ctx, p.config)
		if err != nil {
			return err
		}
		processor = sdklog.NewBatchProcessor(exp)
	}

	p.loggerProvider = sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(processor),
	)
	p.shutdown = append(p.shutdown, p.loggerProvider.Shutdown)
	return nil
}

// abort shuts down the pipelines started before err and returns err.
func (p *Provider) abort(ctx context.Context, err error) error {
	if shutdownErr := p.Shutdown(ctx); shutdownErr != nil {
		return errors.Join(err, shutdownErr)
	}
	return err
}

func (p *Provider) Tracer() observability.Tracer   { return p.tracer }
func (p *Provider) Logger() observability.Logger   { return p.logger }
func (p *Provider) Metrics() observability.Metrics { return p.metrics }

// Shutdown flushes and stops every pipeline, in reverse start order.
func (p *Provider) Shutdown(ctx context.Context) error {
	var errs []error
	for i := len(p.shutdown) - 1; i >= 0; i-- {
		if err := p.shutdown[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	p.shutdown = nil
	return errors.Join(errs...)
}
