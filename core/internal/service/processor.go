package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/telhawk-systems/telhawk-audit/common/dlq"
	"github.com/telhawk-systems/telhawk-audit/common/messaging"
	"github.com/telhawk-systems/telhawk-audit/core/internal/metrics"
	"github.com/telhawk-systems/telhawk-audit/core/internal/pipeline"
	"github.com/telhawk-systems/telhawk-audit/core/pkg/audit/wire"
)

// Envelope sources, used as metric labels.
const (
	SourceHTTP = "http"
	SourceNATS = "nats"
)

// Processor wraps the pipeline and captures basic telemetry.
type Processor struct {
	pipeline  *pipeline.Pipeline
	broker    messaging.Client
	dlq       *dlq.Queue
	startedAt time.Time
	processed atomic.Uint64
	rejected  atomic.Uint64
	degraded  atomic.Uint64
}

// NewProcessor creates a new Processor instance. broker and queue may be nil.
func NewProcessor(p *pipeline.Pipeline, broker messaging.Client, queue *dlq.Queue) *Processor {
	return &Processor{
		pipeline:  p,
		broker:    broker,
		dlq:       queue,
		startedAt: time.Now().UTC(),
	}
}

// Process runs the pipeline against an already parsed envelope.
func (p *Processor) Process(ctx context.Context, source string, envelope *wire.Envelope) (*pipeline.Result, error) {
	res, err := p.pipeline.Process(ctx, envelope)
	if err != nil {
		p.reject(source)
		return nil, err
	}
	p.processed.Add(1)
	if !res.Record.Clean() {
		p.degraded.Add(1)
	}
	return res, nil
}

// Decode parses a JSON envelope and processes it.
func (p *Processor) Decode(ctx context.Context, source string, data []byte) (*pipeline.Result, error) {
	envelope, err := wire.Unmarshal(data)
	if err != nil {
		p.reject(source)
		return nil, err
	}
	return p.Process(ctx, source, envelope)
}

// DeadLetter hands a rejected payload to the dead-letter queue, if one is configured.
func (p *Processor) DeadLetter(ctx context.Context, source, subject string, payload []byte, cause error) {
	if p.dlq == nil {
		return
	}
	if _, err := p.dlq.Write(ctx, source, subject, payload, cause); err == nil {
		metrics.DLQWrites.Inc()
	}
}

func (p *Processor) reject(source string) {
	p.rejected.Add(1)
	metrics.EnvelopeErrors.WithLabelValues(source).Inc()
}

// Stats returns a snapshot of processor metrics.
type Stats struct {
	Status        string                 `json:"status"`
	UptimeSeconds int64                  `json:"uptime_seconds"`
	Processed     uint64                 `json:"processed"`
	Rejected      uint64                 `json:"rejected"`
	WithFailures  uint64                 `json:"with_failures"`
	Messaging     messaging.HealthStatus `json:"messaging"`
	DLQ           dlq.Stats              `json:"dlq"`
}

// Health returns live status for health checks.
func (p *Processor) Health() Stats {
	stats := Stats{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(p.startedAt).Seconds()),
		Processed:     p.processed.Load(),
		Rejected:      p.rejected.Load(),
		WithFailures:  p.degraded.Load(),
		Messaging:     messaging.CheckClientHealth(p.broker),
		DLQ:           p.dlq.Stats(),
	}
	if !stats.Messaging.Healthy() {
		stats.Status = "degraded"
	}
	return stats
}
