package logging

import "log/slog"

// Common field names for consistent logging across the decoder components.
const (
	FieldService      = "service"
	FieldRecordID     = "record_id"
	FieldEventType    = "event_type"
	FieldEventTypeID  = "event_type_id"
	FieldFieldName    = "field"
	FieldFieldCount   = "field_count"
	FieldFailureCount = "failure_count"
	FieldSubject      = "subject"
	FieldPath         = "path"
	FieldDuration     = "duration_ms"
	FieldError        = "error"
)

// Service returns a slog attribute for the service name.
func Service(name string) slog.Attr {
	return slog.String(FieldService, name)
}

// EventType returns a slog attribute for the resolved event type name.
func EventType(name string) slog.Attr {
	return slog.String(FieldEventType, name)
}

// EventTypeID returns a slog attribute for the numeric event type.
func EventTypeID(id uint32) slog.Attr {
	return slog.Uint64(FieldEventTypeID, uint64(id))
}

// FieldName returns a slog attribute for an audit field name.
func FieldName(name string) slog.Attr {
	return slog.String(FieldFieldName, name)
}

// FieldCount returns a slog attribute for the number of fields in a record.
func FieldCount(n int) slog.Attr {
	return slog.Int(FieldFieldCount, n)
}

// FailureCount returns a slog attribute for the number of failed fields.
func FailureCount(n int) slog.Attr {
	return slog.Int(FieldFailureCount, n)
}

// Subject returns a slog attribute for a messaging subject.
func Subject(s string) slog.Attr {
	return slog.String(FieldSubject, s)
}

// Path returns a slog attribute for an HTTP path or file path.
func Path(path string) slog.Attr {
	return slog.String(FieldPath, path)
}

// Duration returns a slog attribute for duration in milliseconds.
func Duration(ms int64) slog.Attr {
	return slog.Int64(FieldDuration, ms)
}

// Error returns a slog attribute for an error.
func Error(err error) slog.Attr {
	return slog.String(FieldError, err.Error())
}
