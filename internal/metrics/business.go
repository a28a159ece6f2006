package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// BusinessMetrics records the outcomes of handler operations, gate decisions,
// and email sends.
type BusinessMetrics interface {
	// RecordOperation records a handler operation with its resulting status code.
	// Operation examples: "user_login", "get_league_data", "email_taxi".
	RecordOperation(ctx context.Context, operation string, status int)

	// RecordDuration records how long a handler operation took, in seconds.
	RecordDuration(ctx context.Context, operation string, duration time.Duration, status int)

	// RecordDecision records an access gate decision. Effect is "Allow" or "Deny".
	RecordDecision(ctx context.Context, effect string)

	// RecordEmails records the outcome counts of an email batch.
	RecordEmails(ctx context.Context, operation string, sent, failed int)
}

type businessMetrics struct {
	operationCounter metric.Int64Counter
	durationHisto    metric.Float64Histogram
	decisionCounter  metric.Int64Counter
	emailCounter     metric.Int64Counter
}

// NewBusinessMetrics creates a BusinessMetrics implementation on the provided
// meter provider. The namespace prefixes every metric name.
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operationCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_operations_total", namespace),
		metric.WithDescription("Total number of handler operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_operation_duration_seconds", namespace),
		metric.WithDescription("Duration of handler operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	decisionCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_gate_decisions_total", namespace),
		metric.WithDescription("Total number of access gate decisions"),
		metric.WithUnit("{decision}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create decision counter: %w", err)
	}

	emailCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_emails_total", namespace),
		metric.WithDescription("Total number of notification emails by outcome"),
		metric.WithUnit("{email}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create email counter: %w", err)
	}

	return &businessMetrics{
		operationCounter: operationCounter,
		durationHisto:    durationHisto,
		decisionCounter:  decisionCounter,
		emailCounter:     emailCounter,
	}, nil
}

func (b *businessMetrics) RecordOperation(ctx context.Context, operation string, status int) {
	b.operationCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.Int("status", status),
		),
	)
}

func (b *businessMetrics) RecordDuration(
	ctx context.Context,
	operation string,
	duration time.Duration,
	status int,
) {
	b.durationHisto.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.Int("status", status),
		),
	)
}

func (b *businessMetrics) RecordDecision(ctx context.Context, effect string) {
	b.decisionCounter.Add(ctx, 1,
		metric.WithAttributes(attribute.String("effect", effect)),
	)
}

func (b *businessMetrics) RecordEmails(ctx context.Context, operation string, sent, failed int) {
	attrs := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", "sent"),
	)
	b.emailCounter.Add(ctx, int64(sent), attrs)

	attrs = metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", "failed"),
	)
	b.emailCounter.Add(ctx, int64(failed), attrs)
}

// NoOpBusinessMetrics is a no-op implementation for when metrics are disabled.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics creates a no-op BusinessMetrics implementation.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return &NoOpBusinessMetrics{}
}

// RecordOperation does nothing when metrics are disabled.
func (n *NoOpBusinessMetrics) RecordOperation(ctx context.Context, operation string, status int) {
}

// RecordDuration does nothing when metrics are disabled.
func (n *NoOpBusinessMetrics) RecordDuration(
	ctx context.Context,
	operation string,
	duration time.Duration,
	status int,
) {
}

// RecordDecision does nothing when metrics are disabled.
func (n *NoOpBusinessMetrics) RecordDecision(ctx context.Context, effect string) {
}

// RecordEmails does nothing when metrics are disabled.
func (n *NoOpBusinessMetrics) RecordEmails(ctx context.Context, operation string, sent, failed int) {
}
