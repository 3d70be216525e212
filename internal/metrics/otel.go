package metrics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const meterName = "semifinal-compare"

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter bound to a
// private registry, plus an OTLP exporter when an endpoint is set.
// It returns a Recorder, the registry to export from, and a shutdown function.
// The gatherer is nil when metrics are disabled.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, prometheus.Gatherer, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = meterName
	}

	promReader, gatherer, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, gatherer, shutdown, nil
}

// WriteTextfile dumps the gathered metrics in the Prometheus text format,
// ready for a node_exporter textfile collector.
func WriteTextfile(path string, gatherer prometheus.Gatherer) error {
	if gatherer == nil {
		return errors.New("metrics: no gatherer configured")
	}
	if err := prometheus.WriteToTextfile(path, gatherer); err != nil {
		return fmt.Errorf("metrics: write textfile: %w", err)
	}
	return nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

type otelInstruments struct {
	ctx             context.Context
	teams           metric.Int64Counter
	teamErrors      metric.Int64Counter
	playersCompared metric.Int64Counter
	teamLatencyMs   metric.Float64Histogram
}

func prometheusComponents() (sdkmetric.Reader, prometheus.Gatherer, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, reg, nil
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter(meterName)

	teams, err := meter.Int64Counter("teams_compared_total")
	if err != nil {
		return nil, err
	}
	teamErrors, err := meter.Int64Counter("team_errors_total")
	if err != nil {
		return nil, err
	}
	players, err := meter.Int64Counter("players_compared_total")
	if err != nil {
		return nil, err
	}
	latency, err := meter.Float64Histogram("team_compare_duration_ms")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:             context.Background(),
		teams:           teams,
		teamErrors:      teamErrors,
		playersCompared: players,
		teamLatencyMs:   latency,
	}, nil
}

func (o *otelInstruments) recordTeam(team string, players int, duration time.Duration, err error) {
	if o == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	attrs := []attribute.KeyValue{
		attribute.String(AttrTeam, team),
		attribute.String(AttrOutcome, outcome),
	}
	o.teams.Add(o.ctx, 1, metric.WithAttributes(attrs...))
	o.teamLatencyMs.Record(o.ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
	if players > 0 {
		o.playersCompared.Add(o.ctx, int64(players), metric.WithAttributes(attribute.String(AttrTeam, team)))
	}
	if err != nil {
		o.teamErrors.Add(o.ctx, 1, metric.WithAttributes(attribute.String(AttrTeam, team)))
	}
}
