package messaging

// Default subjects for the audit decoding pipeline.
const (
	SubjectAuditRaw     = "audit.raw"     // Raw records awaiting decoding
	SubjectAuditDecoded = "audit.decoded" // Decoded records, suffixed with the event name
)

// QueueAuditDecoders is the queue group shared by decoder relay instances.
const QueueAuditDecoders = "audit-decoder"

// Header keys set on decoded record messages.
const (
	HeaderRecordID     = "Audit-Record-Id"
	HeaderEventType    = "Audit-Event-Type"
	HeaderFailureCount = "Audit-Failure-Count"
	HeaderSignature    = "Audit-Signature"
)

// DecodedSubject returns the per-event-type subject for a decoded record.
// Example: audit.decoded.SYSCALL
func DecodedSubject(base, eventName string) string {
	return base + "." + eventName
}
