package changelog

import "reflect"

// Shape classifies a value for comparison purposes.
type Shape int

const (
	ShapeScalar Shape = iota
	ShapeMapping
	ShapeSequence
	ShapeTuple
	ShapeObject
)

func (s Shape) String() string {
	switch s {
	case ShapeMapping:
		return "mapping"
	case ShapeSequence:
		return "sequence"
	case ShapeTuple:
		return "tuple"
	case ShapeObject:
		return "object"
	}
	return "scalar"
}

// Classify maps any value to exactly one Shape: maps are mappings, slices
// are sequences, arrays are tuples, structs (and pointers to structs) are
// objects. Classification is total; anything else, including nil and
// structs without exported fields, is an opaque scalar.
func Classify(v interface{}) Shape {
	rv := indirect(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Map:
		return ShapeMapping
	case reflect.Slice:
		return ShapeSequence
	case reflect.Array:
		return ShapeTuple
	case reflect.Struct:
		if exportedFieldCount(rv.Type()) == 0 {
			// No enumerable attribute bag. time.Time and friends are
			// compared as opaque scalars instead of empty objects.
			return ShapeScalar
		}
		return ShapeObject
	}
	return ShapeScalar
}

// indirect unwraps pointers and interfaces down to the underlying value.
func indirect(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return rv
		}
		rv = rv.Elem()
	}
	return rv
}

func exportedFieldCount(t reflect.Type) int {
	n := 0
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).PkgPath == "" {
			n++
		}
	}
	return n
}

// equal reports value equality. Func, chan and unsafe-pointer values are
// opaque and fall back to identity comparison.
func equal(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	switch av.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return bv.Kind() == av.Kind() && av.Pointer() == bv.Pointer()
	}
	return reflect.DeepEqual(a, b)
}
