package changelog

import "reflect"

// Snapshot returns a deep copy of v to serve as an immutable comparison
// baseline: later in-place mutation of v is not observable through the
// copy. Func and chan leaves cannot be copied and are retained by
// reference, so changes behind them are not reliably detected.
// Unexported struct fields are not copied; the differ does not visit
// them either. The input must be acyclic.
func Snapshot(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	return snapshotValue(reflect.ValueOf(v)).Interface()
}

func snapshotValue(rv reflect.Value) reflect.Value {
	switch rv.Kind() {
	case reflect.Interface:
		if rv.IsNil() {
			return rv
		}
		out := reflect.New(rv.Type()).Elem()
		out.Set(snapshotValue(rv.Elem()))
		return out
	case reflect.Ptr:
		if rv.IsNil() {
			return rv
		}
		out := reflect.New(rv.Type().Elem())
		out.Elem().Set(snapshotValue(rv.Elem()))
		return out
	case reflect.Map:
		if rv.IsNil() {
			return rv
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), snapshotValue(iter.Value()))
		}
		return out
	case reflect.Slice:
		if rv.IsNil() {
			return rv
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(snapshotValue(rv.Index(i)))
		}
		return out
	case reflect.Array:
		out := reflect.New(rv.Type()).Elem()
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(snapshotValue(rv.Index(i)))
		}
		return out
	case reflect.Struct:
		out := reflect.New(rv.Type()).Elem()
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).PkgPath != "" {
				continue
			}
			out.Field(i).Set(snapshotValue(rv.Field(i)))
		}
		return out
	}
	// Scalars are copied by value; funcs and chans stay shared.
	return rv
}
