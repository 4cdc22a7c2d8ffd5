package changelog

// TrackChanges creates a fresh Log, tracks the mutations fn applies to
// value, and returns the log together with fn's error. Every call owns
// its own log; nothing is shared between calls.
func TrackChanges(value interface{}, fn func(v interface{}) error) (*Log, error) {
	log := New()
	err := log.Track(value, fn)
	return log, err
}

// TrackChangesAt is TrackChanges with every recorded path prefixed,
// e.g. a prefix of "user" turns "name" into "user.name".
func TrackChangesAt(value interface{}, prefix string, fn func(v interface{}) error) (*Log, error) {
	log := New()
	err := log.TrackAt(value, prefix, fn)
	return log, err
}

// Tracker is a small stateful wrapper around a single Log for callers
// that track several values over time. It is an explicit, caller-owned
// instance; there is no process-wide shared tracker.
type Tracker struct {
	log *Log
}

// NewTracker returns a tracker with an empty log.
func NewTracker() *Tracker {
	return &Tracker{log: New()}
}

// Track captures value around fn, appending detected changes to the
// tracker's log.
func (t *Tracker) Track(value interface{}, fn func(v interface{}) error) error {
	return t.log.Track(value, fn)
}

// TrackAt is Track with every recorded path prefixed.
func (t *Tracker) TrackAt(value interface{}, prefix string, fn func(v interface{}) error) error {
	return t.log.TrackAt(value, prefix, fn)
}

// Record appends a manual entry to the tracker's log.
func (t *Tracker) Record(action Action, keyPath string, oldValue, newValue interface{}) error {
	return t.log.Record(action, keyPath, oldValue, newValue)
}

// Log exposes the underlying log.
func (t *Tracker) Log() *Log {
	return t.log
}

// Entries returns a copy of the accumulated entries.
func (t *Tracker) Entries() []Entry {
	return t.log.Entries()
}

// Records returns the accumulated entries as flat records.
func (t *Tracker) Records() []Record {
	return t.log.Records()
}

// Reset clears the accumulated entries.
func (t *Tracker) Reset() {
	t.log.Reset()
}

// ToJSON serializes the accumulated entries.
func (t *Tracker) ToJSON() ([]byte, error) {
	return t.log.ToJSON()
}

// ToJSONIndent serializes the accumulated entries with indentation.
func (t *Tracker) ToJSONIndent(indent string) ([]byte, error) {
	return t.log.ToJSONIndent(indent)
}
