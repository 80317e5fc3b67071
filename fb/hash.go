package fb

import (
	"encoding/binary"
	"iter"
	"math"
	"reflect"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Hasher accumulates property hashes for a generated Hash method. Values
// that are Equal always hash the same.
type Hasher struct {
	d *xxhash.Digest
}

// NewHasher starts a hash seeded with the type name.
func NewHasher(typeName string) *Hasher {
	d := xxhash.New()
	_, _ = d.WriteString(typeName)

	return &Hasher{d: d}
}

// Add mixes the hash of v in. Order of calls matters.
func (h *Hasher) Add(v any) {
	writeUint64(h.d, HashOf(v))
}

func (h *Hasher) Sum64() uint64 {
	return h.d.Sum64()
}

// HashOf returns a hash of v that is consistent with Equal.
func HashOf(v any) uint64 {
	return hashValue(reflect.ValueOf(v))
}

var timeType = reflect.TypeFor[time.Time]()

func hashValue(rv reflect.Value) uint64 {
	if !rv.IsValid() {
		return 0
	}

	switch rv.Kind() {
	case reflect.Interface:
		if rv.IsNil() {
			return 0
		}

		return hashValue(rv.Elem())
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return 0
		}
	}

	if rv.CanInterface() {
		if h, ok := rv.Interface().(interface{ Hash() uint64 }); ok {
			return h.Hash()
		}

		if rv.Type() == timeType {
			t, _ := rv.Interface().(time.Time)
			return uint64(t.UnixNano())
		}
	}

	switch rv.Kind() {
	case reflect.Pointer:
		return hashValue(rv.Elem())

	case reflect.Slice, reflect.Array:
		d := xxhash.New()
		for i := range rv.Len() {
			writeUint64(d, hashValue(rv.Index(i)))
		}

		return d.Sum64()

	case reflect.Map:
		var sum uint64

		iter := rv.MapRange()
		for iter.Next() {
			sum += mix(hashValue(iter.Key()), hashValue(iter.Value()))
		}

		return sum

	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f == 0 {
			return 0
		}

		return xxhashUint64(math.Float64bits(f))

	case reflect.Struct:
		// Fields go through hashValue so pointers and zero floats inside a
		// struct hash the way Equal compares them.
		d := xxhash.New()
		for i := range rv.NumField() {
			writeUint64(d, hashValue(rv.Field(i)))
		}

		return d.Sum64()

	case reflect.Bool:
		if rv.Bool() {
			return xxhashUint64(1)
		}

		return xxhashUint64(0)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return xxhashUint64(uint64(rv.Int()))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return xxhashUint64(rv.Uint())

	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()

		return mix(hashValue(reflect.ValueOf(real(c))), hashValue(reflect.ValueOf(imag(c))))

	case reflect.String:
		return xxhash.Sum64String(rv.String())

	case reflect.UnsafePointer:
		return xxhashUint64(uint64(rv.Pointer()))

	default:
		// Func and Chan values are Equal only when both are nil.
		return 1
	}
}

func hashUnordered[T any](seq iter.Seq[T]) uint64 {
	var sum uint64
	for v := range seq {
		sum += HashOf(v)
	}

	return sum
}

func hashEntries[K comparable, V any](seq iter.Seq2[K, V]) uint64 {
	var sum uint64
	for k, v := range seq {
		sum += mix(HashOf(k), HashOf(v))
	}

	return sum
}

func mix(a, b uint64) uint64 {
	var buf [16]byte

	binary.LittleEndian.PutUint64(buf[:8], a)
	binary.LittleEndian.PutUint64(buf[8:], b)

	return xxhash.Sum64(buf[:])
}

func xxhashUint64(v uint64) uint64 {
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], v)

	return xxhash.Sum64(buf[:])
}

func writeUint64(d *xxhash.Digest, v uint64) {
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], v)
	_, _ = d.Write(buf[:])
}
