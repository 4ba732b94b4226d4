// Package logger configure the application's logging,
// monitoring, and observability.
//
// It uses *ZeroLog* for logging and optionally integrates with
// *New Relic* to forward logs and traces. Without a licence key
// the New Relic side is simply absent and every helper here
// degrades to plain zerolog.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/deppfellow/qrgen/internal/config"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

func init() {
	// Lets logger.Error().Stack() print the stack carried by pkg/errors values.
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
}

// LoggerService owns the optional New Relic application.
type LoggerService struct {
	nrApp *newrelic.Application
}

// NewLoggerService starts a New Relic application when a licence key is
// configured. With no key it returns a service whose GetApplication is nil.
func NewLoggerService(cfg *config.ObservabilityConfig) (*LoggerService, error) {
	service := &LoggerService{}

	if !cfg.NewRelicEnabled() {
		return service, nil
	}

	opts := []newrelic.ConfigOption{
		newrelic.ConfigAppName(cfg.ServiceName),
		newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
		newrelic.ConfigAppLogForwardingEnabled(cfg.NewRelic.AppLogForwardingEnabled),
		newrelic.ConfigDistributedTracerEnabled(cfg.NewRelic.DistributedTracingEnabled),
		func(c *newrelic.Config) {
			c.Labels = map[string]string{"environment": cfg.Environment}
		},
	}

	if cfg.NewRelic.DebugLogging {
		opts = append(opts, newrelic.ConfigDebugLogger(os.Stdout))
	}

	app, err := newrelic.NewApplication(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize New Relic: %w", err)
	}

	service.nrApp = app
	return service, nil
}

// GetApplication returns the New Relic application, or nil when disabled.
func (s *LoggerService) GetApplication() *newrelic.Application {
	if s == nil {
		return nil
	}
	return s.nrApp
}

// Shutdown flushes pending New Relic data.
func (s *LoggerService) Shutdown() {
	if app := s.GetApplication(); app != nil {
		app.Shutdown(10 * time.Second)
	}
}

// NewLoggerWithService builds the root logger writing to stdout.
func NewLoggerWithService(cfg *config.ObservabilityConfig, service *LoggerService) zerolog.Logger {
	return NewLoggerWithWriter(os.Stdout, cfg, service)
}

// NewLoggerWithWriter builds the root logger writing to out.
//
//   - "console" format uses zerolog.ConsoleWriter (human friendly, dev only).
//   - "json" format writes JSON lines; with New Relic enabled they go through
//     the zerologWriter so they are forwarded with trace context.
func NewLoggerWithWriter(out io.Writer, cfg *config.ObservabilityConfig, service *LoggerService) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	var writer io.Writer = out
	switch {
	case cfg.Logging.Format == "console":
		writer = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	case service.GetApplication() != nil:
		writer = zerologWriter.New(out, service.GetApplication())
	}

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Logger()
}

// WithTraceContext adds trace.id and span.id of txn to the logger.
func WithTraceContext(logger zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	metadata := txn.GetTraceMetadata()

	return logger.With().
		Str("trace.id", metadata.TraceID).
		Str("span.id", metadata.SpanID).
		Logger()
}
