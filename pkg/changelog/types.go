package changelog

import "errors"

// Action identifies the kind of change an entry records.
type Action string

const (
	ActionAdded   Action = "added"
	ActionEdited  Action = "edited"
	ActionRemoved Action = "removed"
)

// Valid reports whether a is one of the three known actions.
func (a Action) Valid() bool {
	switch a {
	case ActionAdded, ActionEdited, ActionRemoved:
		return true
	}
	return false
}

var (
	// ErrInvalidState is returned when a Capture is operated outside its
	// permitted state, e.g. closed twice.
	ErrInvalidState = errors.New("invalid capture state")

	// ErrInvalidEntry is returned when a manually recorded entry violates
	// the action/value-presence invariant.
	ErrInvalidEntry = errors.New("invalid changelog entry")
)

// Entry is a single recorded change. Entries are created by the differ or
// by Log.Record and never mutated afterwards. Added entries carry only a
// new value, removed entries only an old value, edited entries both.
type Entry struct {
	Action   Action
	Path     Path
	OldValue interface{}
	NewValue interface{}
}

// Record is the flat, serializable form of an Entry. Absent values are
// explicit nulls, never omitted fields.
type Record struct {
	Action   string      `json:"action"`
	KeyPath  string      `json:"key_path"`
	OldValue interface{} `json:"old_value"`
	NewValue interface{} `json:"new_value"`
}

// Record returns the flat form of the entry with its path rendered.
func (e Entry) Record() Record {
	return Record{
		Action:   string(e.Action),
		KeyPath:  e.Path.String(),
		OldValue: e.OldValue,
		NewValue: e.NewValue,
	}
}
