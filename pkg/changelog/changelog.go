// Package changelog tracks structural changes to nested values: mappings,
// sequences, tuples and record objects. A Log collects ordered change
// entries, produced either by diffing two values directly, by capturing a
// value around a block of in-place mutation, or by manual recording.
package changelog

import (
	"encoding/json"
	"fmt"
)

// Log is an ordered, append-only collection of change entries. Entries
// are never reordered or deleted individually; only a bulk Reset is
// supported.
//
// A Log does not synchronize access internally. Share an instance across
// goroutines only behind a caller-owned lock, or preferably give each
// concurrent unit of work its own Log and Capture.
type Log struct {
	entries []Entry
}

// New returns an empty Log.
func New() *Log {
	return &Log{}
}

// Append adds entry to the tail of the log.
func (l *Log) Append(entry Entry) {
	l.entries = append(l.entries, entry)
}

// Record validates and appends a manual entry, bypassing snapshot and
// diff entirely. It fails with ErrInvalidEntry when the action/value
// invariant is violated: added entries must not carry an old value,
// removed entries must not carry a new value, and edited entries require
// differing old and new values.
func (l *Log) Record(action Action, keyPath string, oldValue, newValue interface{}) error {
	if !action.Valid() {
		return fmt.Errorf("%w: unknown action %q", ErrInvalidEntry, string(action))
	}
	path, err := ParsePath(keyPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEntry, err)
	}
	switch action {
	case ActionAdded:
		if oldValue != nil {
			return fmt.Errorf("%w: %s entries must not carry an old value", ErrInvalidEntry, action)
		}
	case ActionRemoved:
		if newValue != nil {
			return fmt.Errorf("%w: %s entries must not carry a new value", ErrInvalidEntry, action)
		}
	case ActionEdited:
		if equal(oldValue, newValue) {
			return fmt.Errorf("%w: %s entries require differing old and new values", ErrInvalidEntry, action)
		}
	}
	l.Append(Entry{Action: action, Path: path, OldValue: oldValue, NewValue: newValue})
	return nil
}

// Entries returns a copy of the recorded entries in append order. The
// caller cannot corrupt the log through the returned slice.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of recorded entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Records returns the entries as flat serializable records, paths
// rendered, in append order.
func (l *Log) Records() []Record {
	out := make([]Record, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Record()
	}
	return out
}

// Reset discards all entries. Irreversible.
func (l *Log) Reset() {
	l.entries = nil
}

// ToJSON serializes the entries as a JSON array of flat records. Absent
// values serialize as explicit nulls.
func (l *Log) ToJSON() ([]byte, error) {
	return json.Marshal(l.Records())
}

// ToJSONIndent is ToJSON with each nesting level indented by indent.
func (l *Log) ToJSONIndent(indent string) ([]byte, error) {
	return json.MarshalIndent(l.Records(), "", indent)
}
