package audit

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// FallbackPolicy selects what happens to fields whose name has no
// declared type.
type FallbackPolicy uint8

const (
	// FallbackEncoded decodes unknown fields as Encoded text.
	FallbackEncoded FallbackPolicy = iota
	// FallbackUnknown keeps unknown fields as KindUnknown with their raw bytes.
	FallbackUnknown
)

// ErrUnknownPolicy is returned by ParseFallbackPolicy.
var ErrUnknownPolicy = errors.New("unknown fallback policy")

func (p FallbackPolicy) String() string {
	switch p {
	case FallbackEncoded:
		return "encoded"
	case FallbackUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("FallbackPolicy(%d)", uint8(p))
	}
}

// ParseFallbackPolicy parses "encoded" or "unknown". An empty string
// selects FallbackEncoded.
func ParseFallbackPolicy(s string) (FallbackPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "encoded":
		return FallbackEncoded, nil
	case "unknown":
		return FallbackUnknown, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Classifier maps field names to field types.
type Classifier struct {
	tables *Tables
	policy FallbackPolicy
}

// NewClassifier returns a classifier over t. A nil t uses DefaultTables.
func NewClassifier(t *Tables, policy FallbackPolicy) *Classifier {
	if t == nil {
		t = DefaultTables()
	}
	return &Classifier{tables: t, policy: policy}
}

// Classify returns the declared type of name. Undeclared names ending in
// uid or gid are decimal ids. Other undeclared names come back as Encoded
// with known set to false.
func (c *Classifier) Classify(name []byte) (ft FieldType, known bool) {
	if ft, ok := c.tables.FieldType(name); ok {
		return ft, true
	}
	if bytes.HasSuffix(name, []byte("uid")) || bytes.HasSuffix(name, []byte("gid")) {
		return NumericDec, true
	}
	return Encoded, false
}

// ClassifyIn is Classify for a field of a record of type recType. Syscall
// arguments aN are hex; execve arguments aN and aN[Y] are encoded and
// their aN_len companions decimal.
func (c *Classifier) ClassifyIn(recType uint32, name []byte) (ft FieldType, known bool) {
	switch recType {
	case EventSyscall:
		if argKey(name) == argPlain {
			return NumericHex, true
		}
	case EventExecve:
		switch argKey(name) {
		case argPlain, argPart:
			return Encoded, true
		case argLen:
			return NumericDec, true
		}
	}
	return c.Classify(name)
}

type argForm uint8

const (
	argNone  argForm = iota
	argPlain         // a1
	argPart          // a1[3]
	argLen           // a1_len
)

// argKey reports which argument key form name has, if any.
func argKey(name []byte) argForm {
	if len(name) < 2 || name[0] != 'a' {
		return argNone
	}
	n := leadingDigits(name[1:])
	if n == 0 {
		return argNone
	}
	rest := name[1+n:]
	switch {
	case len(rest) == 0:
		return argPlain
	case string(rest) == "_len":
		return argLen
	case rest[0] == '[' && rest[len(rest)-1] == ']':
		inner := rest[1 : len(rest)-1]
		if len(inner) > 0 && leadingDigits(inner) == len(inner) {
			return argPart
		}
	}
	return argNone
}

func leadingDigits(b []byte) int {
	n := 0
	for n < len(b) && b[n] >= '0' && b[n] <= '9' {
		n++
	}
	return n
}

// Policy returns the configured fallback policy.
func (c *Classifier) Policy() FallbackPolicy {
	return c.policy
}
