package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/telhawk-systems/telhawk-audit/common/logging"
	"github.com/telhawk-systems/telhawk-audit/core/internal/metrics"
	"github.com/telhawk-systems/telhawk-audit/core/pkg/audit"
	"github.com/telhawk-systems/telhawk-audit/core/pkg/audit/wire"
)

// Pipeline turns wire envelopes into decoded audit records.
type Pipeline struct {
	decoder *audit.Decoder
	logger  *logging.Logger
}

// New creates a pipeline instance.
func New(decoder *audit.Decoder, logger *logging.Logger) *Pipeline {
	if logger == nil {
		logger = logging.Default()
	}
	return &Pipeline{
		decoder: decoder,
		logger:  logger,
	}
}

// Result is a decoded record tagged with the id of the envelope it came from.
type Result struct {
	ID     string
	Record audit.DecodedRecord
}

type resultView struct {
	ID string `json:"id,omitempty"`
	audit.RecordView
}

// MarshalJSON implements json.Marshaler.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultView{ID: r.ID, RecordView: r.Record.View()})
}

// Process resolves the envelope and decodes every field. Field-level
// failures are reported in the record, not as an error; only envelopes
// that cannot be turned into a record fail.
func (p *Pipeline) Process(ctx context.Context, envelope *wire.Envelope) (*Result, error) {
	if p == nil {
		return nil, fmt.Errorf("pipeline not configured")
	}

	raw, err := envelope.Record(p.decoder.Resolver())
	if err != nil {
		return nil, fmt.Errorf("envelope: %w", err)
	}

	start := time.Now()
	rec := p.decoder.Decode(raw)
	metrics.ObserveRecord(&rec, time.Since(start).Seconds())

	log := p.logger.WithContext(ctx)
	if !rec.Clean() {
		log.Warn("Audit record has undecodable fields",
			logging.EventType(rec.Name),
			logging.FailureCount(rec.FailureCount()),
			"fields", rec.FailedNames(),
		)
	}
	log.Debug("Audit record decoded",
		logging.EventType(rec.Name),
		logging.EventTypeID(rec.Type),
		logging.FieldCount(len(rec.Fields)),
	)

	return &Result{ID: envelope.ID, Record: rec}, nil
}

// MarshalResult serializes a decoded record into JSON for transport.
func MarshalResult(res *Result) ([]byte, error) {
	if res == nil {
		return nil, fmt.Errorf("nil result")
	}
	return json.Marshal(res)
}
