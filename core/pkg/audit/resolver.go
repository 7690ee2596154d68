package audit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Message type ids referenced directly by the decoder.
const (
	EventLogin   uint32 = 1006
	EventSyscall uint32 = 1300
	EventExecve  uint32 = 1309
	EventEOE     uint32 = 1320
)

const unknownPrefix = "UNKNOWN["

var (
	// ErrUnknownEventName is returned for names that are neither registered
	// nor in UNKNOWN[n] form.
	ErrUnknownEventName = errors.New("unknown event type")
	// ErrMalformedUnknown is returned for an UNKNOWN[ prefix without a closing bracket.
	ErrMalformedUnknown = errors.New("malformed UNKNOWN[...] event type")
)

// Resolver turns message type ids into display names and back.
type Resolver struct {
	tables *Tables
}

// NewResolver returns a resolver over t. A nil t uses DefaultTables.
func NewResolver(t *Tables) *Resolver {
	if t == nil {
		t = DefaultTables()
	}
	return &Resolver{tables: t}
}

// Name returns the canonical name for id, or UNKNOWN[id] when the id is
// not registered.
func (r *Resolver) Name(id uint32) string {
	if name, ok := r.tables.EventName(id); ok {
		return name
	}
	return unknownPrefix + strconv.FormatUint(uint64(id), 10) + "]"
}

// Known reports whether id is registered.
func (r *Resolver) Known(id uint32) bool {
	_, ok := r.tables.EventName(id)
	return ok
}

// Parse is the inverse of Name: it accepts a canonical name or the
// UNKNOWN[n] form.
func (r *Resolver) Parse(s string) (uint32, error) {
	if id, ok := r.tables.EventID(s); ok {
		return id, nil
	}
	rest, ok := strings.CutPrefix(s, unknownPrefix)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownEventName, s)
	}
	number, ok := strings.CutSuffix(rest, "]")
	if !ok {
		return 0, ErrMalformedUnknown
	}
	id, err := strconv.ParseUint(number, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("cannot parse number %q: %w", number, err)
	}
	return uint32(id), nil
}

// IsMultipart reports whether records of type id belong to multi-part
// kernel events, following auparse: 1300 <= id < 2100, plus LOGIN.
func IsMultipart(id uint32) bool {
	return (id >= 1300 && id < 2100) || id == EventLogin
}
