package fb

import "reflect"

// Equal reports whether a and b are structurally equal.
//
// A value with an Equal(T) bool method decides for itself. Otherwise slices
// compare element-wise (nil and empty are equal), maps compare by key
// regardless of order, pointers compare what they point to, structs compare
// field by field, and anything else falls back to reflect.DeepEqual.
func Equal[T any](a, b T) bool {
	if isNilRef(a) || isNilRef(b) {
		return isNilRef(a) && isNilRef(b)
	}

	if eq, ok := any(a).(interface{ Equal(T) bool }); ok {
		return eq.Equal(b)
	}

	return equalValues(reflect.ValueOf(a), reflect.ValueOf(b))
}

func equalValues(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}

	if a.Kind() == reflect.Interface {
		a = a.Elem()
	}

	if b.Kind() == reflect.Interface {
		b = b.Elem()
	}

	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}

	if a.Type() != b.Type() {
		return false
	}

	if a.Kind() == reflect.Pointer && (a.IsNil() || b.IsNil()) {
		return a.IsNil() && b.IsNil()
	}

	if eq, ok := equalMethod(a, b); ok {
		return eq
	}

	switch a.Kind() {
	case reflect.Slice, reflect.Array:
		if a.Len() != b.Len() {
			return false
		}

		for i := range a.Len() {
			if !equalValues(a.Index(i), b.Index(i)) {
				return false
			}
		}

		return true

	case reflect.Map:
		if a.Len() != b.Len() {
			return false
		}

		iter := a.MapRange()
		for iter.Next() {
			bv := b.MapIndex(iter.Key())
			if !bv.IsValid() || !equalValues(iter.Value(), bv) {
				return false
			}
		}

		return true

	case reflect.Pointer:
		return a.Pointer() == b.Pointer() || equalValues(a.Elem(), b.Elem())

	case reflect.Struct:
		for i := range a.NumField() {
			if !equalValues(a.Field(i), b.Field(i)) {
				return false
			}
		}

		return true

	default:
		if a.CanInterface() && b.CanInterface() {
			return reflect.DeepEqual(a.Interface(), b.Interface())
		}

		return equalUnexported(a, b)
	}
}

// equalUnexported compares values read from unexported struct fields, which
// cannot be turned back into interfaces.
func equalUnexported(a, b reflect.Value) bool {
	switch a.Kind() {
	case reflect.Bool:
		return a.Bool() == b.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() == b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() == b.Uint()
	case reflect.Float32, reflect.Float64:
		return a.Float() == b.Float()
	case reflect.Complex64, reflect.Complex128:
		return a.Complex() == b.Complex()
	case reflect.String:
		return a.String() == b.String()
	case reflect.Func:
		return a.IsNil() && b.IsNil()
	case reflect.Chan, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()
	default:
		return false
	}
}

// equalMethod calls a's Equal method when it accepts b and returns bool.
func equalMethod(a, b reflect.Value) (result, ok bool) {
	if !a.CanInterface() {
		return false, false
	}

	m := a.MethodByName("Equal")
	if !m.IsValid() {
		return false, false
	}

	mt := m.Type()
	if mt.NumIn() != 1 || mt.NumOut() != 1 || mt.Out(0).Kind() != reflect.Bool || !b.Type().AssignableTo(mt.In(0)) {
		return false, false
	}

	return m.Call([]reflect.Value{b})[0].Bool(), true
}

// isNilRef is IsNil except that nil slices and maps count as empty values.
func isNilRef(v any) bool {
	if v == nil {
		return true
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Map:
		return false
	default:
		return IsNil(v)
	}
}
