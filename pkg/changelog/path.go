package changelog

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is one step of a Path: either a string key (a map key or a
// struct field name) or an integer index into a sequence.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

// String renders the segment: keys verbatim, indexes as "[i]".
func (s Segment) String() string {
	if s.IsIndex {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	return s.Key
}

// Path locates a change within a nested structure, ordered from the
// capture root to the changed key, index or attribute.
type Path []Segment

// String renders the path with segments joined by dots, e.g.
// "user.name" or "items.[1]". Keys are rendered verbatim: a key that
// contains a dot or matches the bracketed index form cannot be
// round-tripped through ParsePath.
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, seg := range p {
		parts[i] = seg.String()
	}
	return strings.Join(parts, ".")
}

// Child returns a new path extending p with seg. The result shares no
// backing storage with p, so sibling branches cannot clobber each other
// during recursive descent.
func (p Path) Child(seg Segment) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = seg
	return out
}

// ParsePath is the inverse of Path.String. An empty string parses to an
// empty path.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return nil, nil
	}
	var path Path
	for _, part := range strings.Split(s, ".") {
		if part == "" {
			return nil, fmt.Errorf("path %q contains an empty segment", s)
		}
		if strings.HasPrefix(part, "[") && strings.HasSuffix(part, "]") {
			idx, err := strconv.Atoi(part[1 : len(part)-1])
			if err != nil {
				return nil, fmt.Errorf("path %q has malformed index segment %q", s, part)
			}
			path = append(path, Segment{Index: idx, IsIndex: true})
			continue
		}
		path = append(path, Segment{Key: part})
	}
	return path, nil
}
