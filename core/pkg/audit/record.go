package audit

import "bytes"

// Field is a single name/value pair as delivered by the ingestion side.
type Field struct {
	Name  []byte
	Value []byte
}

// RawRecord is an undecoded audit record. Field order is significant.
type RawRecord struct {
	Type   uint32
	Fields []Field
}

// DecodedField is a decoded name/value pair.
type DecodedField struct {
	Name []byte
	// Type is the declared type, or the fallback type when Known is false.
	Type  FieldType
	Known bool
	Value Value
}

// DecodedRecord is the result of decoding a RawRecord. Fields keeps the
// input order.
type DecodedRecord struct {
	Type      uint32
	Name      string
	KnownType bool
	Fields    []DecodedField
	// Failures lists indexes into Fields whose value failed to decode.
	Failures []int
	// Unknown lists indexes into Fields whose name has no declared type.
	Unknown []int
}

// FailureCount returns the number of fields that failed to decode.
func (r *DecodedRecord) FailureCount() int {
	return len(r.Failures)
}

// Clean reports whether every field decoded successfully.
func (r *DecodedRecord) Clean() bool {
	return len(r.Failures) == 0
}

// FailedNames returns the names of the fields that failed to decode.
func (r *DecodedRecord) FailedNames() []string {
	names := make([]string, 0, len(r.Failures))
	for _, i := range r.Failures {
		names = append(names, string(r.Fields[i].Name))
	}
	return names
}

// Get returns the first field named name.
func (r *DecodedRecord) Get(name string) (DecodedField, bool) {
	for _, f := range r.Fields {
		if string(f.Name) == name {
			return f, true
		}
	}
	return DecodedField{}, false
}

// Decoder turns raw records into decoded records. It carries no mutable
// state and is safe for concurrent use.
type Decoder struct {
	resolver   *Resolver
	classifier *Classifier
}

// NewDecoder returns a decoder over t with the given fallback policy for
// undeclared field names. A nil t uses DefaultTables.
func NewDecoder(t *Tables, policy FallbackPolicy) *Decoder {
	if t == nil {
		t = DefaultTables()
	}
	return &Decoder{
		resolver:   NewResolver(t),
		classifier: NewClassifier(t, policy),
	}
}

// Resolver returns the event resolver used by d.
func (d *Decoder) Resolver() *Resolver {
	return d.resolver
}

// Classifier returns the field classifier used by d.
func (d *Decoder) Classifier() *Classifier {
	return d.classifier
}

// Decode resolves the record type and decodes every field in order.
// Decoding never fails as a whole; per-field problems are reported in
// Failures and Unknown.
func (d *Decoder) Decode(rec RawRecord) DecodedRecord {
	out := DecodedRecord{
		Type:      rec.Type,
		Name:      d.resolver.Name(rec.Type),
		KnownType: d.resolver.Known(rec.Type),
		Fields:    make([]DecodedField, len(rec.Fields)),
	}

	for i, f := range rec.Fields {
		ft, known := d.classifier.ClassifyIn(rec.Type, f.Name)
		df := DecodedField{
			Name:  bytes.Clone(nonNil(f.Name)),
			Type:  ft,
			Known: known,
		}
		if !known {
			out.Unknown = append(out.Unknown, i)
		}
		if !known && d.classifier.Policy() == FallbackUnknown {
			df.Value = UnknownValue(f.Value)
		} else {
			df.Value = DecodeField(ft, f.Value)
		}
		if df.Value.Failed() {
			out.Failures = append(out.Failures, i)
		}
		out.Fields[i] = df
	}
	return out
}
