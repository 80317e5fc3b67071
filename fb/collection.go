package fb

import "iter"

// Collection is the read surface shared by the immutable containers and the
// builder views. Every structural mutation fails with
// ErrUnsupportedOperation.
type Collection[T any] interface {
	Len() int
	Values() iter.Seq[T]
	Add(v T) error
	Clear() error
}

var (
	_ Collection[int] = List[int]{}
	_ Collection[int] = Set[int]{}
	_ Collection[int] = ListView[int]{}
	_ Collection[int] = SetView[int]{}
)
