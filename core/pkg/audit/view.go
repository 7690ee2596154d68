package audit

import (
	"encoding/base64"
	"encoding/json"
	"unicode/utf8"
)

// RecordView is the serializable shape of a DecodedRecord, shared by the
// JSON and YAML encoders.
type RecordView struct {
	Type          string      `json:"type" yaml:"type"`
	TypeID        uint32      `json:"type_id" yaml:"type_id"`
	Fields        []FieldView `json:"fields" yaml:"fields"`
	Failures      []string    `json:"failures,omitempty" yaml:"failures,omitempty"`
	FailureCount  int         `json:"failure_count" yaml:"failure_count"`
	UnknownFields []string    `json:"unknown_fields,omitempty" yaml:"unknown_fields,omitempty"`
}

// FieldView is the serializable shape of a DecodedField. Byte values that
// are not valid UTF-8 are carried base64 encoded in ValueB64 and Value is
// left nil.
type FieldView struct {
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type" yaml:"type"`
	Kind     string `json:"kind" yaml:"kind"`
	Value    any    `json:"value,omitempty" yaml:"value,omitempty"`
	ValueB64 string `json:"value_b64,omitempty" yaml:"value_b64,omitempty"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

// View converts v into a plain value: int64 for decimals, string otherwise.
func (v Value) View() any {
	switch v.Kind {
	case KindDec:
		return v.Int
	case KindFailed:
		return string(v.Raw)
	default:
		return v.String()
	}
}

// Bytes returns the byte payload of text, failed and unknown values and
// nil for numbers.
func (v Value) Bytes() []byte {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindFailed, KindUnknown:
		return v.Raw
	default:
		return nil
	}
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.View())
}

// View converts f into its serializable shape.
func (f DecodedField) View() FieldView {
	fv := FieldView{
		Name: string(f.Name),
		Type: f.Type.String(),
		Kind: f.Value.Kind.String(),
	}
	if b := f.Value.Bytes(); b != nil && !utf8.Valid(b) {
		fv.ValueB64 = base64.StdEncoding.EncodeToString(b)
	} else {
		fv.Value = f.Value.View()
	}
	if f.Value.Err != nil {
		fv.Error = f.Value.Err.Error()
	}
	return fv
}

// View converts r into its serializable shape.
func (r *DecodedRecord) View() RecordView {
	rv := RecordView{
		Type:         r.Name,
		TypeID:       r.Type,
		Fields:       make([]FieldView, len(r.Fields)),
		FailureCount: r.FailureCount(),
	}
	for i, f := range r.Fields {
		rv.Fields[i] = f.View()
	}
	if len(r.Failures) > 0 {
		rv.Failures = r.FailedNames()
	}
	for _, i := range r.Unknown {
		rv.UnknownFields = append(rv.UnknownFields, string(r.Fields[i].Name))
	}
	return rv
}

// MarshalJSON implements json.Marshaler.
func (r DecodedRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.View())
}
