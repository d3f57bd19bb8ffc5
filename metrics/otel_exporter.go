package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/dispatch"
)

/* OTelExporter provides OpenTelemetry metrics export in Prometheus format
 * Gauges are read from the Collector on every scrape; delivery counters and
 * latencies are pushed by the dispatcher through the dispatch.Recorder methods.
 * Each exporter owns its registry so several can coexist in one process (tests).
 */
type OTelExporter struct {
	meterProvider *sdkmetric.MeterProvider
	registry      *promclient.Registry
	collector     Collector

	// OTel meters and instruments
	meter             metric.Meter
	statusCountGauge  metric.Int64ObservableGauge
	dispatchersGauge  metric.Int64ObservableGauge
	deliveriesCounter metric.Int64Counter
	deliveryLatency   metric.Float64Histogram
	passesCounter     metric.Int64Counter
	passEventsCounter metric.Int64Counter
}

var _ dispatch.Recorder = (*OTelExporter)(nil)

// NewOTelExporter creates a new OpenTelemetry metrics exporter with Prometheus format
func NewOTelExporter(collector Collector) (*OTelExporter, error) {
	registry := promclient.NewRegistry()

	exporter, err := prometheus.New(prometheus.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)

	meter := meterProvider.Meter(
		"workflow-webhooks",
		metric.WithInstrumentationVersion("1.0.0"),
	)

	oe := &OTelExporter{
		meterProvider: meterProvider,
		registry:      registry,
		collector:     collector,
		meter:         meter,
	}

	if err := oe.registerInstruments(); err != nil {
		return nil, fmt.Errorf("registering instruments: %w", err)
	}

	return oe, nil
}

// registerInstruments creates and registers all OpenTelemetry metric instruments
func (oe *OTelExporter) registerInstruments() error {
	var err error

	// Status count gauge (per status)
	oe.statusCountGauge, err = oe.meter.Int64ObservableGauge(
		"outbound_events.status.count",
		metric.WithDescription("Number of outbound events by status"),
		metric.WithUnit("{events}"),
		metric.WithInt64Callback(oe.observeStatusCounts),
	)
	if err != nil {
		return fmt.Errorf("creating status count gauge: %w", err)
	}

	oe.dispatchersGauge, err = oe.meter.Int64ObservableGauge(
		"dispatchers.active",
		metric.WithDescription("Number of dispatcher instances with a live heartbeat"),
		metric.WithUnit("{instances}"),
		metric.WithInt64Callback(oe.observeDispatchers),
	)
	if err != nil {
		return fmt.Errorf("creating active dispatchers gauge: %w", err)
	}

	oe.deliveriesCounter, err = oe.meter.Int64Counter(
		"webhook.deliveries",
		metric.WithDescription("Webhook delivery attempts by outcome"),
		metric.WithUnit("{attempts}"),
	)
	if err != nil {
		return fmt.Errorf("creating deliveries counter: %w", err)
	}

	oe.deliveryLatency, err = oe.meter.Float64Histogram(
		"webhook.delivery.latency",
		metric.WithDescription("Webhook delivery latency"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(10, 50, 100, 250, 500, 1000, 2500, 5000),
	)
	if err != nil {
		return fmt.Errorf("creating delivery latency histogram: %w", err)
	}

	oe.passesCounter, err = oe.meter.Int64Counter(
		"dispatch.passes",
		metric.WithDescription("Completed dispatch passes"),
		metric.WithUnit("{passes}"),
	)
	if err != nil {
		return fmt.Errorf("creating passes counter: %w", err)
	}

	oe.passEventsCounter, err = oe.meter.Int64Counter(
		"dispatch.events",
		metric.WithDescription("Events settled by dispatch passes by resulting status"),
		metric.WithUnit("{events}"),
	)
	if err != nil {
		return fmt.Errorf("creating pass events counter: %w", err)
	}

	return nil
}

// observeStatusCounts is a callback that reports event counts by status
func (oe *OTelExporter) observeStatusCounts(ctx context.Context, observer metric.Int64Observer) error {
	statusCounts, err := oe.collector.GetStatusCounts(ctx)
	if err != nil {
		return err
	}

	for status, count := range statusCounts {
		observer.Observe(count, metric.WithAttributes(
			attribute.String("event.status", status),
		))
	}

	return nil
}

func (oe *OTelExporter) observeDispatchers(ctx context.Context, observer metric.Int64Observer) error {
	dispatchers, err := oe.collector.GetActiveDispatchers(ctx)
	if err != nil {
		return err
	}

	observer.Observe(int64(len(dispatchers)))
	return nil
}

// ObserveDelivery implements dispatch.Recorder
func (oe *OTelExporter) ObserveDelivery(ctx context.Context, eventType string, success bool, elapsed time.Duration) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	attrs := metric.WithAttributes(
		attribute.String("event.type", eventType),
		attribute.String("outcome", outcome),
	)

	oe.deliveriesCounter.Add(ctx, 1, attrs)
	oe.deliveryLatency.Record(ctx, float64(elapsed.Microseconds())/1000, attrs)
}

// ObservePass implements dispatch.Recorder
func (oe *OTelExporter) ObservePass(ctx context.Context, stats dispatch.Stats, elapsed time.Duration) {
	oe.passesCounter.Add(ctx, 1)

	for status, n := range map[string]int{
		"delivered": stats.Delivered,
		"retried":   stats.Retried,
		"failed":    stats.Failed,
	} {
		if n == 0 {
			continue
		}
		oe.passEventsCounter.Add(ctx, int64(n), metric.WithAttributes(
			attribute.String("result", status),
		))
	}
}

// ServeHTTP serves Prometheus-formatted metrics from the exporter's registry
func (oe *OTelExporter) ServeHTTP() http.Handler {
	return promhttp.HandlerFor(oe.registry, promhttp.HandlerOpts{})
}

// Shutdown gracefully shuts down the meter provider
func (oe *OTelExporter) Shutdown(ctx context.Context) error {
	if oe.meterProvider != nil {
		return oe.meterProvider.Shutdown(ctx)
	}
	return nil
}
