package fb

import (
	"fmt"
	"iter"
	"reflect"
	"sort"
	"strings"
)

// Format renders v for a generated String method. Slices and sets render as
// [a, b], maps as {k=v}, nil as "nil". Go maps, which have no order, are
// rendered sorted by their formatted keys.
func Format(v any) string {
	return formatValue(reflect.ValueOf(v))
}

func formatValue(rv reflect.Value) string {
	if !rv.IsValid() {
		return "nil"
	}

	switch rv.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return "nil"
		}
	}

	if rv.CanInterface() {
		switch x := rv.Interface().(type) {
		case fmt.Stringer:
			return x.String()
		case error:
			return x.Error()
		}
	}

	switch rv.Kind() {
	case reflect.Interface, reflect.Pointer:
		return formatValue(rv.Elem())

	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range rv.Len() {
			parts[i] = formatValue(rv.Index(i))
		}

		return "[" + strings.Join(parts, ", ") + "]"

	case reflect.Map:
		return formatMap(rv)

	default:
		if !rv.CanInterface() {
			return rv.String()
		}

		return fmt.Sprint(rv.Interface())
	}
}

func formatMap(rv reflect.Value) string {
	isSet := rv.Type().Elem().Kind() == reflect.Struct && rv.Type().Elem().NumField() == 0

	type entry struct{ key, value string }

	entries := make([]entry, 0, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, entry{key: formatValue(iter.Key()), value: formatValue(iter.Value())})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	parts := make([]string, len(entries))
	for i, e := range entries {
		if isSet {
			parts[i] = e.key
		} else {
			parts[i] = e.key + "=" + e.value
		}
	}

	if isSet {
		return "[" + strings.Join(parts, ", ") + "]"
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

func formatSeq[T any](seq iter.Seq[T]) string {
	var parts []string
	for v := range seq {
		parts = append(parts, Format(v))
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
