// Package otel is the OpenTelemetry backend of the observability facade. It
// exports traces, metrics and logs over OTLP (gRPC or HTTP) and mirrors logs
// to the console through slog.
package otel

import (
	"crypto/tls"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/JailtonJunior94/mediaevents/pkg/observability"
)

// Protocol selects the OTLP transport.
type Protocol string

const (
	// ProtocolGRPC exports over gRPC, usually on port 4317.
	ProtocolGRPC Protocol = "grpc"
	// ProtocolHTTP exports over HTTP/protobuf, usually on port 4318.
	ProtocolHTTP Protocol = "http"
)

var (
	ErrServiceNameRequired = errors.New("otel: service name is required")
	ErrEndpointRequired    = errors.New("otel: OTLP endpoint is required")
	ErrInsecureProduction  = errors.New("otel: insecure OTLP connections are not allowed in production")
	ErrWeakTLS             = errors.New("otel: minimum TLS version must be 1.2 or higher")
	ErrSampleRate          = errors.New("otel: trace sample rate must be within [0, 1]")
)

// Config holds the settings of a Provider.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string

	Endpoint string
	Protocol Protocol
	Insecure bool
	// TLSConfig is used for secure connections. Nil means system defaults.
	TLSConfig *tls.Config

	// TraceSampleRate is the fraction of traces kept, from 0 to 1.
	TraceSampleRate float64
	// MetricInterval is how often metrics are pushed.
	MetricInterval time.Duration

	LogLevel  observability.LogLevel
	LogFormat observability.LogFormat

	// RegisterGlobal installs the tracer and meter providers and the W3C
	// propagators as the process-wide OpenTelemetry defaults.
	RegisterGlobal bool

	ResourceAttributes map[string]string
}

// DefaultConfig returns a configuration exporting to a local collector.
func DefaultConfig(serviceName string) *Config {
	return &Config{
		ServiceName:     serviceName,
		ServiceVersion:  "unknown",
		Environment:     "development",
		Endpoint:        "localhost:4317",
		Protocol:        ProtocolGRPC,
		TraceSampleRate: 1.0,
		MetricInterval:  time.Minute,
		LogLevel:        observability.LogLevelInfo,
		LogFormat:       observability.LogFormatJSON,
		RegisterGlobal:  true,
	}
}

// Validate reports every problem with c.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.ServiceName) == "" {
		errs = append(errs, ErrServiceNameRequired)
	}
	if c.Endpoint == "" {
		errs = append(errs, ErrEndpointRequired)
	}
	if c.Insecure && isProduction(c.Environment) {
		errs = append(errs, ErrInsecureProduction)
	}
	if c.TLSConfig != nil && c.TLSConfig.MinVersion > 0 && c.TLSConfig.MinVersion < tls.VersionTLS12 {
		errs = append(errs, ErrWeakTLS)
	}
	if c.TraceSampleRate < 0 || c.TraceSampleRate > 1 {
		errs = append(errs, fmt.Errorf("%w: got %v", ErrSampleRate, c.TraceSampleRate))
	}
	return errors.Join(errs...)
}

func isProduction(env string) bool {
	switch strings.ToLower(env) {
	case "production", "prod":
		return true
	default:
		return false
	}
}

func normalizeProtocol(p Protocol) Protocol {
	switch strings.ToLower(string(p)) {
	case "http", "http/protobuf":
		return ProtocolHTTP
	default:
		return ProtocolGRPC
	}
}
