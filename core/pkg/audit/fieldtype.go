// Package audit resolves Linux audit message types and decodes audit
// record field values according to the audit field dictionary.
package audit

import (
	"errors"
	"fmt"
	"strings"
)

// FieldType is the decoding discipline declared for an audit field name.
type FieldType uint8

const (
	// Encoded values are text that may be quoted, hex-encoded or escaped.
	Encoded FieldType = iota + 1
	// Numeric values are base 10 without an explicit base marker.
	Numeric
	// NumericDec values are explicitly base 10.
	NumericDec
	// NumericHex values are base 16.
	NumericHex
	// NumericOct values are base 8.
	NumericOct
)

// ErrUnknownFieldType is returned by ParseFieldType for vocabulary it does not know.
var ErrUnknownFieldType = errors.New("unknown field type")

// String returns the field dictionary spelling of the type.
func (t FieldType) String() string {
	switch t {
	case Encoded:
		return "encoded"
	case Numeric:
		return "numeric"
	case NumericDec:
		return "numeric decimal"
	case NumericHex:
		return "numeric hexadecimal"
	case NumericOct:
		return "numeric octal"
	default:
		return fmt.Sprintf("FieldType(%d)", uint8(t))
	}
}

// Valid reports whether t is one of the declared variants.
func (t FieldType) Valid() bool {
	return t >= Encoded && t <= NumericOct
}

// Radix returns the numeric base used for t, or 0 for Encoded.
func (t FieldType) Radix() int {
	switch t {
	case Numeric, NumericDec:
		return 10
	case NumericHex:
		return 16
	case NumericOct:
		return 8
	default:
		return 0
	}
}

// ParseFieldType converts the field dictionary vocabulary ("encoded",
// "numeric", "numeric decimal", "numeric hexadecimal", "numeric octal")
// into a FieldType.
func ParseFieldType(s string) (FieldType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "encoded":
		return Encoded, nil
	case "numeric":
		return Numeric, nil
	case "numeric decimal":
		return NumericDec, nil
	case "numeric hexadecimal":
		return NumericHex, nil
	case "numeric octal":
		return NumericOct, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFieldType, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t FieldType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFieldType, uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *FieldType) UnmarshalText(b []byte) error {
	parsed, err := ParseFieldType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
