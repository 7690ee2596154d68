package audit

import (
	"bytes"
	"errors"
	"strconv"
)

// Kind discriminates the representations a decoded Value can take.
type Kind uint8

const (
	// KindText is decoded text, possibly containing non-UTF-8 bytes.
	KindText Kind = iota + 1
	// KindDec is a signed base 10 integer.
	KindDec
	// KindHex is an unsigned integer parsed from base 16.
	KindHex
	// KindOct is an unsigned integer parsed from base 8.
	KindOct
	// KindFailed marks a value that could not be decoded for its type.
	KindFailed
	// KindUnknown marks a value whose field name has no declared type.
	KindUnknown
)

// Decode failure causes carried in Value.Err.
var (
	ErrSyntax      = errors.New("invalid syntax")
	ErrRange       = errors.New("value out of range")
	ErrEscape      = errors.New("malformed escape sequence")
	ErrInvalidType = errors.New("invalid field type")
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindDec:
		return "dec"
	case KindHex:
		return "hex"
	case KindOct:
		return "oct"
	case KindFailed:
		return "failed"
	case KindUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// Value is the decoded form of a single field value. Only the members
// matching Kind are meaningful.
type Value struct {
	Kind Kind
	// Text holds KindText content.
	Text []byte
	// Int holds KindDec content.
	Int int64
	// Uint holds KindHex and KindOct content.
	Uint uint64
	// Raw holds the original bytes for KindFailed and KindUnknown.
	Raw []byte
	// Err is the failure cause for KindFailed.
	Err error
}

// TextValue returns a KindText value.
func TextValue(b []byte) Value {
	if b == nil {
		b = []byte{}
	}
	return Value{Kind: KindText, Text: b}
}

// DecValue returns a KindDec value.
func DecValue(n int64) Value {
	return Value{Kind: KindDec, Int: n}
}

// HexValue returns a KindHex value.
func HexValue(n uint64) Value {
	return Value{Kind: KindHex, Uint: n}
}

// OctValue returns a KindOct value.
func OctValue(n uint64) Value {
	return Value{Kind: KindOct, Uint: n}
}

// FailedValue returns a KindFailed value preserving raw.
func FailedValue(raw []byte, cause error) Value {
	return Value{Kind: KindFailed, Raw: bytes.Clone(nonNil(raw)), Err: cause}
}

// UnknownValue returns a KindUnknown value preserving raw.
func UnknownValue(raw []byte) Value {
	return Value{Kind: KindUnknown, Raw: bytes.Clone(nonNil(raw))}
}

// Failed reports whether v is a decode failure marker.
func (v Value) Failed() bool {
	return v.Kind == KindFailed
}

// String renders v the way it would appear in a normalized log line.
// Hex and octal integers carry 0x and 0o prefixes; failed values are
// shown as a quoted literal of the original bytes.
func (v Value) String() string {
	switch v.Kind {
	case KindText:
		return string(v.Text)
	case KindDec:
		return strconv.FormatInt(v.Int, 10)
	case KindHex:
		return "0x" + strconv.FormatUint(v.Uint, 16)
	case KindOct:
		return "0o" + strconv.FormatUint(v.Uint, 8)
	case KindFailed:
		return strconv.Quote(string(v.Raw))
	case KindUnknown:
		return string(v.Raw)
	default:
		return ""
	}
}

func nonNil(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return b
}
