package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/telhawk-systems/telhawk-audit/core/pkg/audit"
)

// Label value used for records whose type id has no registered name.
const unknownEventLabel = "UNKNOWN"

var (
	// Record decoding metrics
	RecordsDecoded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telhawk_audit_records_decoded_total",
			Help: "Total number of audit records decoded, by event type",
		},
		[]string{"event_type"},
	)

	DecodeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "telhawk_audit_decode_duration_seconds",
			Help:    "Duration of audit record decoding in seconds",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		},
	)

	// Field metrics
	FieldFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telhawk_audit_field_failures_total",
			Help: "Total number of field values that failed to decode, by declared field type",
		},
		[]string{"field_type"},
	)

	UnknownFields = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "telhawk_audit_unknown_fields_total",
			Help: "Total number of fields with no declared type",
		},
	)

	// Envelope metrics
	EnvelopeErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telhawk_audit_envelope_errors_total",
			Help: "Total number of envelopes rejected before decoding",
		},
		[]string{"source"},
	)

	// Relay metrics
	RelayPublished = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "telhawk_audit_relay_published_total",
			Help: "Total number of decoded records published by the relay",
		},
	)

	RelayPublishErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "telhawk_audit_relay_publish_errors_total",
			Help: "Total number of relay publish failures",
		},
	)

	DLQWrites = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "telhawk_audit_dlq_writes_total",
			Help: "Total number of envelopes written to the dead-letter queue",
		},
	)
)

// ObserveRecord records the counters derived from a decoded record.
func ObserveRecord(rec *audit.DecodedRecord, seconds float64) {
	label := rec.Name
	if !rec.KnownType {
		label = unknownEventLabel
	}
	RecordsDecoded.WithLabelValues(label).Inc()
	DecodeDuration.Observe(seconds)

	for _, i := range rec.Failures {
		FieldFailures.WithLabelValues(rec.Fields[i].Type.String()).Inc()
	}
	if n := len(rec.Unknown); n > 0 {
		UnknownFields.Add(float64(n))
	}
}
