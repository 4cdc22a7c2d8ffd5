package changelog

import (
	"fmt"
	"strings"
)

type captureState int

const (
	captureArmed captureState = iota
	captureClosed
)

// Capture observes in-place mutation of a value between Capture and
// Close. It snapshots the value when created and diffs the snapshot
// against the live value when closed, appending the resulting entries to
// the owning log. Mutations are not observed incrementally; they only
// become visible at Close.
type Capture struct {
	log      *Log
	prefix   Path
	baseline interface{}
	live     interface{}
	state    captureState
}

// Capture snapshots value and returns an armed capture. Mutate the value
// returned by Value in place, then call Close.
func (l *Log) Capture(value interface{}) *Capture {
	return &Capture{log: l, baseline: Snapshot(value), live: value}
}

// CaptureAt is Capture with every recorded path prefixed, e.g. a prefix
// of "user" turns "name" into "user.name". A trailing dot is accepted.
func (l *Log) CaptureAt(value interface{}, prefix string) (*Capture, error) {
	p, err := ParsePath(strings.TrimSuffix(prefix, "."))
	if err != nil {
		return nil, err
	}
	c := l.Capture(value)
	c.prefix = p
	return c, nil
}

// Value returns the live value handed to Capture, not a copy.
func (c *Capture) Value() interface{} {
	return c.live
}

// Close diffs the snapshot taken at capture time against the live value
// and appends every resulting entry to the owning log. A capture closes
// exactly once; further calls fail with ErrInvalidState.
func (c *Capture) Close() error {
	if c.state == captureClosed {
		return fmt.Errorf("%w: capture already closed", ErrInvalidState)
	}
	c.state = captureClosed
	for _, entry := range Diff(c.baseline, c.live, c.prefix) {
		c.log.Append(entry)
	}
	return nil
}

// Track runs fn against a captured view of value and always closes the
// capture afterwards: when fn returns an error or panics, the mutations
// applied up to that point are still diffed and recorded before the
// failure propagates.
func (l *Log) Track(value interface{}, fn func(v interface{}) error) (err error) {
	c := l.Capture(value)
	defer func() {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(c.Value())
}

// TrackAt is Track with every recorded path prefixed, routed through
// CaptureAt. A bad prefix fails before fn runs.
func (l *Log) TrackAt(value interface{}, prefix string, fn func(v interface{}) error) (err error) {
	c, err := l.CaptureAt(value, prefix)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(c.Value())
}
