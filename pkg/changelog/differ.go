package changelog

import (
	"fmt"
	"reflect"
	"sort"
)

// Diff recursively compares before and after, returning one entry per
// structural change with paths resolved relative to prefix. For a fixed
// pair of inputs the entry sequence is deterministic: map keys present
// in before are visited in sorted order (removed keys interleaved with
// common ones), then keys only present in after in sorted order; struct
// attributes follow field declaration order; sequence elements are
// visited by index.
//
// Sequences are compared positionally, not by alignment: inserting an
// element at the front of a list reports every shifted element as edited
// plus one addition at the tail. Added or removed subtrees are reported
// once at the subtree root. Inputs must be acyclic.
func Diff(before, after interface{}, prefix Path) []Entry {
	var entries []Entry
	diffValue(before, after, prefix, &entries)
	return entries
}

func diffValue(before, after interface{}, path Path, out *[]Entry) {
	bs, as := Classify(before), Classify(after)
	switch {
	case mappingLike(bs) && mappingLike(as):
		diffMapping(before, after, path, out)
	case sequenceLike(bs) && sequenceLike(as):
		diffSequence(before, after, path, out)
	default:
		// Mismatched shapes, or two scalars. A type change is a single
		// edit, never decomposed.
		if !equal(before, after) {
			*out = append(*out, Entry{
				Action:   ActionEdited,
				Path:     path,
				OldValue: before,
				NewValue: after,
			})
		}
	}
}

func mappingLike(s Shape) bool  { return s == ShapeMapping || s == ShapeObject }
func sequenceLike(s Shape) bool { return s == ShapeSequence || s == ShapeTuple }

func diffMapping(before, after interface{}, path Path, out *[]Entry) {
	bv := newMappingView(before)
	av := newMappingView(after)

	for _, key := range bv.keys {
		oldVal := bv.vals[key]
		newVal, ok := av.get(key)
		if !ok {
			// The whole subtree is reported removed at its root.
			*out = append(*out, Entry{
				Action:   ActionRemoved,
				Path:     path.Child(Segment{Key: key}),
				OldValue: oldVal,
			})
			continue
		}
		diffValue(oldVal, newVal, path.Child(Segment{Key: key}), out)
	}

	for _, key := range av.keys {
		if _, ok := bv.get(key); !ok {
			*out = append(*out, Entry{
				Action:   ActionAdded,
				Path:     path.Child(Segment{Key: key}),
				NewValue: av.vals[key],
			})
		}
	}
}

func diffSequence(before, after interface{}, path Path, out *[]Entry) {
	bv := indirect(reflect.ValueOf(before))
	av := indirect(reflect.ValueOf(after))
	blen, alen := bv.Len(), av.Len()

	n := blen
	if alen > n {
		n = alen
	}
	for i := 0; i < n; i++ {
		seg := path.Child(Segment{Index: i, IsIndex: true})
		switch {
		case i >= blen:
			*out = append(*out, Entry{
				Action:   ActionAdded,
				Path:     seg,
				NewValue: av.Index(i).Interface(),
			})
		case i >= alen:
			*out = append(*out, Entry{
				Action:   ActionRemoved,
				Path:     seg,
				OldValue: bv.Index(i).Interface(),
			})
		default:
			diffValue(bv.Index(i).Interface(), av.Index(i).Interface(), seg, out)
		}
	}
}

// mappingView presents map entries and struct attributes uniformly as an
// ordered key/value bag. Map keys are sorted; struct fields keep their
// declaration order.
type mappingView struct {
	keys []string
	vals map[string]interface{}
}

func newMappingView(v interface{}) *mappingView {
	mv := &mappingView{vals: make(map[string]interface{})}
	rv := indirect(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			key := keyString(iter.Key())
			val := iter.Value().Interface()
			if prev, dup := mv.vals[key]; dup {
				// Distinct keys can stringify to the same path segment
				// (1 and "1" in an interface-keyed map). Keep a single
				// entry and pick the survivor by rendered value so the
				// view never depends on map iteration order.
				if fmt.Sprint(val) < fmt.Sprint(prev) {
					mv.vals[key] = val
				}
				continue
			}
			mv.keys = append(mv.keys, key)
			mv.vals[key] = val
		}
		sort.Strings(mv.keys)
	case reflect.Struct:
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).PkgPath != "" {
				continue
			}
			name := t.Field(i).Name
			mv.keys = append(mv.keys, name)
			mv.vals[name] = rv.Field(i).Interface()
		}
	}
	return mv
}

func (m *mappingView) get(key string) (interface{}, bool) {
	v, ok := m.vals[key]
	return v, ok
}

func keyString(k reflect.Value) string {
	k = indirect(k)
	if k.Kind() == reflect.String {
		return k.String()
	}
	return fmt.Sprint(k.Interface())
}
