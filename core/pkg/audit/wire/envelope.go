// Package wire defines the JSON envelope raw audit records travel in
// between the collectors, the decoder service and the CLI.
package wire

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/telhawk-systems/telhawk-audit/core/pkg/audit"
)

var (
	// ErrMissingType is returned when an envelope has neither type nor type_name.
	ErrMissingType = errors.New("record type is required")
	// ErrEmptyFieldName is returned when a field has no name.
	ErrEmptyFieldName = errors.New("field name is required")
)

// Envelope is the JSON form of an audit.RawRecord.
type Envelope struct {
	ID       string  `json:"id,omitempty"`
	Type     *uint32 `json:"type,omitempty"`
	TypeName string  `json:"type_name,omitempty"`
	Fields   []Field `json:"fields"`
}

// Field carries a value either as text or, for arbitrary bytes, base64.
// ValueB64 takes precedence when both are set.
type Field struct {
	Name     string `json:"name"`
	Value    string `json:"value,omitempty"`
	ValueB64 []byte `json:"value_b64,omitempty"`
}

// Bytes returns the raw field value.
func (f Field) Bytes() []byte {
	if f.ValueB64 != nil {
		return f.ValueB64
	}
	return []byte(f.Value)
}

// TypeID returns a pointer to id for use as Envelope.Type.
func TypeID(id uint32) *uint32 {
	return &id
}

// Unmarshal parses a single JSON envelope.
func Unmarshal(data []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	return &env, nil
}

// Record converts the envelope into a RawRecord. TypeName is only
// consulted when Type is absent and accepts canonical names as well as the
// UNKNOWN[n] form.
func (e *Envelope) Record(r *audit.Resolver) (audit.RawRecord, error) {
	var typ uint32
	switch {
	case e.Type != nil:
		typ = *e.Type
	case e.TypeName != "":
		id, err := r.Parse(e.TypeName)
		if err != nil {
			return audit.RawRecord{}, fmt.Errorf("resolve type_name: %w", err)
		}
		typ = id
	default:
		return audit.RawRecord{}, ErrMissingType
	}

	rec := audit.RawRecord{
		Type:   typ,
		Fields: make([]audit.Field, 0, len(e.Fields)),
	}
	for i, f := range e.Fields {
		if f.Name == "" {
			return audit.RawRecord{}, fmt.Errorf("field %d: %w", i, ErrEmptyFieldName)
		}
		rec.Fields = append(rec.Fields, audit.Field{Name: []byte(f.Name), Value: f.Bytes()})
	}
	return rec, nil
}

// FromRecord builds an envelope for rec. Values that are not valid UTF-8
// are carried as base64.
func FromRecord(id string, rec audit.RawRecord) Envelope {
	env := Envelope{
		ID:     id,
		Type:   TypeID(rec.Type),
		Fields: make([]Field, len(rec.Fields)),
	}
	for i, f := range rec.Fields {
		field := Field{Name: string(f.Name)}
		if utf8.Valid(f.Value) {
			field.Value = string(f.Value)
		} else {
			field.ValueB64 = f.Value
		}
		env.Fields[i] = field
	}
	return env
}
