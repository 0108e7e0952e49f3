package otel

import (
	"context"

	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc/credentials"
)

func newSpanExporter(ctx context.Context, c *Config) (sdktrace.SpanExporter, error) {
	if c.Protocol == ProtocolHTTP {
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(c.Endpoint)}
		switch {
		case c.Insecure:
			opts = append(opts, otlptracehttp.WithInsecure())
		case c.TLSConfig != nil:
			opts = append(opts, otlptracehttp.WithTLSClientConfig(c.TLSConfig))
		}
		return otlptracehttp.New(ctx, opts...)
	}

	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(c.Endpoint)}
	switch {
	case c.Insecure:
		opts = append(opts, otlptracegrpc.WithInsecure())
	case c.TLSConfig != nil:
		opts = append(opts, otlptracegrpc.WithTLSCredentials(credentials.NewTLS(c.TLSConfig)))
	}
	return otlptracegrpc.New(ctx, opts...)
}

func newMetricExporter(ctx context.Context, c *Config) (sdkmetric.Exporter, error) {
	if c.Protocol == ProtocolHTTP {
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(c.Endpoint)}
		switch {
		case c.Insecure:
			opts = append(opts, otlpmetrichttp.WithInsecure())
		case c.TLSConfig != nil:
			opts = append(opts, otlpmetrichttp.WithTLSClientConfig(c.TLSConfig))
		}
		return otlpmetrichttp.New(ctx, opts...)
	}

	opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(c.Endpoint)}
	switch {
	case c.Insecure:
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	case c.TLSConfig != nil:
		opts = append(opts, otlpmetricgrpc.WithTLSCredentials(credentials.NewTLS(c.TLSConfig)))
	}
	return otlpmetricgrpc.New(ctx, opts...)
}

func newLogExporter(ctx context.Context, c *Config) (sdklog.Exporter, error) {
	if c.Protocol == ProtocolHTTP {
		opts := []otlploghttp.Option{otlploghttp.WithEndpoint(c.Endpoint)}
		switch {
		case c.Insecure:
			opts = append(opts, otlploghttp.WithInsecure())
		case c.TLSConfig != nil:
			opts = append(opts, otlploghttp.WithTLSClientConfig(c.TLSConfig))
		}
		return otlploghttp.New(ctx, opts...)
	}

	opts := []otlploggrpc.Option{otlploggrpc.WithEndpoint(c.Endpoint)}
	switch {
	case c.Insecure:
		opts = append(opts, otlploggrpc.WithInsecure())
	case c.TLSConfig != nil:
		opts = append(opts, otlploggrpc.WithTLSCredentials(credentials.NewTLS(c.TLSConfig)))
	}
	return otlploggrpc.New(ctx, opts...)
}

func newSampler(rate float64) sdktrace.Sampler {
	switch {
	case rate >= 1:
		return sdktrace.AlwaysSample()
	case rate <= 0:
		return sdktrace.NeverSample()
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(rate))
	}
}
