package fb

// Optional holds a value that may be absent. The zero value is absent.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns a present Optional holding v, or an absent one when v is nil.
func Some[T any](v T) Optional[T] {
	if IsNil(v) {
		return Optional[T]{}
	}

	return Optional[T]{value: v, present: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// OptionalOf copies the value p points to. A nil p is absent.
func OptionalOf[T any](p *T) Optional[T] {
	if p == nil {
		return Optional[T]{}
	}

	return Some(*p)
}

// Get returns the held value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsPresent reports whether a value is held.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// OrElse returns the held value, or fallback when absent.
func (o Optional[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}

	return fallback
}

// Ptr returns a pointer to a fresh copy of the held value, or nil when absent.
func (o Optional[T]) Ptr() *T {
	if !o.present {
		return nil
	}

	v := o.value

	return &v
}

// Equal reports whether both are absent, or both hold equal values.
func (o Optional[T]) Equal(other Optional[T]) bool {
	if o.present != other.present {
		return false
	}

	return !o.present || Equal(o.value, other.value)
}

// Hash is consistent with Equal.
func (o Optional[T]) Hash() uint64 {
	if !o.present {
		return 0
	}

	return HashOf(o.value)
}

func (o Optional[T]) String() string {
	if !o.present {
		return "None"
	}

	return Format(o.value)
}
