// Package broken declares interfaces the analyzer rejects.
package broken

//builder:generate
type Lookup interface {
	Name() string
	Find(id int) string
	Pair() (string, error)
}

//builder:generate
type Defaulted interface {
	//builder:default )(
	Count() int
}

//builder:generate
type Box[T any] interface {
	Value() T
}

//builder:generate
type Valid interface {
	Name() string
}
