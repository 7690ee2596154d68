package audit

import (
	"cmp"
	"slices"
	"sync"
)

// EventConst pairs an audit message type name with its numeric id.
type EventConst struct {
	Name string
	ID   uint32
}

// FieldDef pairs an audit field name with its declared FieldType.
type FieldDef struct {
	Name string
	Type FieldType
}

// Tables holds the immutable lookup maps used for resolution and
// classification. A Tables value is never modified after construction
// and is safe for concurrent use.
type Tables struct {
	names  map[uint32]string
	ids    map[string]uint32
	fields map[string]FieldType
}

var (
	defaultTables *Tables
	defaultOnce   sync.Once
)

// DefaultTables returns the process-wide tables built from the compiled-in
// audit dictionaries. They are constructed on first call.
func DefaultTables() *Tables {
	defaultOnce.Do(func() {
		defaultTables = NewTables(eventConsts, fieldDefs)
	})
	return defaultTables
}

// NewTables builds an isolated set of tables from the given lists. The
// lists are trusted: when a name or id repeats, the last entry wins.
func NewTables(events []EventConst, fields []FieldDef) *Tables {
	t := &Tables{
		names:  make(map[uint32]string, len(events)),
		ids:    make(map[string]uint32, len(events)),
		fields: make(map[string]FieldType, len(fields)),
	}
	for _, e := range events {
		t.names[e.ID] = e.Name
		t.ids[e.Name] = e.ID
	}
	for _, f := range fields {
		t.fields[f.Name] = f.Type
	}
	return t
}

// EventName returns the canonical name registered for id.
func (t *Tables) EventName(id uint32) (string, bool) {
	name, ok := t.names[id]
	return name, ok
}

// EventID returns the numeric id registered for a canonical name.
func (t *Tables) EventID(name string) (uint32, bool) {
	id, ok := t.ids[name]
	return id, ok
}

// FieldType returns the declared type for a field name.
func (t *Tables) FieldType(name []byte) (FieldType, bool) {
	ft, ok := t.fields[string(name)]
	return ft, ok
}

// EventCount returns the number of registered message types.
func (t *Tables) EventCount() int {
	return len(t.names)
}

// FieldCount returns the number of fields with a declared type.
func (t *Tables) FieldCount() int {
	return len(t.fields)
}

// Events returns the registered message types ordered by id.
func (t *Tables) Events() []EventConst {
	out := make([]EventConst, 0, len(t.names))
	for id, name := range t.names {
		out = append(out, EventConst{Name: name, ID: id})
	}
	slices.SortFunc(out, func(a, b EventConst) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Fields returns the typed field names ordered by name.
func (t *Tables) Fields() []FieldDef {
	out := make([]FieldDef, 0, len(t.fields))
	for name, ft := range t.fields {
		out = append(out, FieldDef{Name: name, Type: ft})
	}
	slices.SortFunc(out, func(a, b FieldDef) int { return cmp.Compare(a.Name, b.Name) })
	return out
}
