// Package relay consumes raw audit envelopes from the message bus, decodes
// them and republishes the decoded records.
package relay

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/telhawk-systems/telhawk-audit/common/logging"
	"github.com/telhawk-systems/telhawk-audit/common/messaging"
	"github.com/telhawk-systems/telhawk-audit/common/signing"
	"github.com/telhawk-systems/telhawk-audit/core/internal/metrics"
	"github.com/telhawk-systems/telhawk-audit/core/internal/pipeline"
	"github.com/telhawk-systems/telhawk-audit/core/internal/service"
)

// Config names the subjects and queue group the relay uses.
type Config struct {
	RawSubject     string
	DecodedSubject string
	QueueGroup     string
	// Signer signs published records when set.
	Signer *signing.Signer
}

// DefaultConfig returns the standard subjects.
func DefaultConfig() Config {
	return Config{
		RawSubject:     messaging.SubjectAuditRaw,
		DecodedSubject: messaging.SubjectAuditDecoded,
		QueueGroup:     messaging.QueueAuditDecoders,
	}
}

// Relay bridges the raw and decoded subjects.
type Relay struct {
	cfg       Config
	client    messaging.Client
	processor *service.Processor
	logger    *logging.Logger
	sub       messaging.Subscription
}

// New creates a relay. Call Start to begin consuming.
func New(cfg Config, client messaging.Client, processor *service.Processor, logger *logging.Logger) *Relay {
	if logger == nil {
		logger = logging.Default()
	}
	return &Relay{
		cfg:       cfg,
		client:    client,
		processor: processor,
		logger:    logger.With(logging.Service("relay")),
	}
}

// Start subscribes to the raw subject in the configured queue group.
func (r *Relay) Start() error {
	if r.sub != nil {
		return errors.New("relay already started")
	}
	sub, err := r.client.QueueSubscribe(r.cfg.RawSubject, r.cfg.QueueGroup, r.handle)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", r.cfg.RawSubject, err)
	}
	r.sub = sub
	r.logger.Info("Relay subscribed",
		logging.Subject(r.cfg.RawSubject),
		"queue", r.cfg.QueueGroup,
	)
	return nil
}

// Stop unsubscribes from the raw subject.
func (r *Relay) Stop() error {
	if r.sub == nil {
		return nil
	}
	err := r.sub.Unsubscribe()
	r.sub = nil
	return err
}

// handle decodes one raw message. Envelopes that cannot be decoded go to
// the dead-letter queue and are not retried.
func (r *Relay) handle(ctx context.Context, msg *messaging.Message) error {
	recordID := msg.Header(messaging.HeaderRecordID)
	if recordID == "" {
		recordID = uuid.NewString()
	}
	ctx = logging.ContextWithRecordID(ctx, recordID)

	res, err := r.processor.Decode(ctx, service.SourceNATS, msg.Data)
	if err != nil {
		r.logger.WarnContext(ctx, "Rejected raw envelope", logging.Subject(msg.Subject), logging.Error(err))
		r.processor.DeadLetter(ctx, service.SourceNATS, msg.Subject, msg.Data, err)
		return nil
	}
	if res.ID == "" {
		res.ID = recordID
	}

	data, err := pipeline.MarshalResult(res)
	if err != nil {
		return fmt.Errorf("marshal decoded record: %w", err)
	}

	out := &messaging.Message{
		Subject: messaging.DecodedSubject(r.cfg.DecodedSubject, res.Record.Name),
		Data:    data,
		Metadata: map[string]string{
			messaging.HeaderRecordID:     recordID,
			messaging.HeaderEventType:    res.Record.Name,
			messaging.HeaderFailureCount: strconv.Itoa(res.Record.FailureCount()),
		},
	}
	if r.cfg.Signer.Enabled() {
		out.Metadata[messaging.HeaderSignature] = r.cfg.Signer.Sign(recordID, data)
	}
	if err := r.client.PublishMsg(ctx, out); err != nil {
		metrics.RelayPublishErrors.Inc()
		return fmt.Errorf("publish %s: %w", out.Subject, err)
	}
	metrics.RelayPublished.Inc()

	if msg.Reply != "" {
		reply := &messaging.Message{Subject: msg.Reply, Data: data, Metadata: out.Metadata}
		if err := r.client.PublishMsg(ctx, reply); err != nil {
			return fmt.Errorf("reply %s: %w", msg.Reply, err)
		}
	}

	r.logger.DebugContext(ctx, "Decoded record published",
		logging.Subject(out.Subject),
		logging.EventType(res.Record.Name),
	)
	return nil
}
