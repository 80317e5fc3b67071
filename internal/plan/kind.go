package plan

//go:generate go tool stringer -type=PropertyKind -trimprefix=Kind -output=kind_string.go

// PropertyKind is the closed set of property shapes a builder knows how to
// store, mutate, merge and build.
type PropertyKind int

const (
	KindScalar          PropertyKind = iota // single value, set and read
	KindOptional                            // present-or-absent single value
	KindList                                // ordered, duplicates kept
	KindSet                                 // insertion ordered, duplicates ignored
	KindMap                                 // insertion ordered keys
	KindNestedBuildable                     // value of another buildable type
)

// IsCollection reports whether the kind holds many elements.
func (k PropertyKind) IsCollection() bool {
	switch k {
	case KindList, KindSet, KindMap:
		return true
	default:
		return false
	}
}
