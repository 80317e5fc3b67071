package plan

import (
	"builder-generator/internal/common"
)

// Builder-level methods emitted for every type.
const (
	MethodBuild            = "Build"
	MethodMustBuild        = "MustBuild"
	MethodMergeFrom        = "MergeFrom"
	MethodMergeFromBuilder = "MergeFromBuilder"
	MethodClear            = "Clear"
	MethodErr              = "Err"
	methodInit             = "init"
	methodFail             = "fail"
)

// reservedNames are property names that would collide with builder-level
// methods or with the methods of the generated value type.
var reservedNames = map[string]struct{}{
	MethodBuild:            {},
	MethodMustBuild:        {},
	MethodMergeFrom:        {},
	MethodMergeFromBuilder: {},
	MethodClear:            {},
	MethodErr:              {},
	"Equal":                {},
	"Hash":                 {},
	"String":               {},
	"ToBuilder":            {},
}

// builderMethods lists the builder-level methods, in emission order.
var builderMethods = []string{
	MethodBuild, MethodMustBuild, MethodMergeFrom, MethodMergeFromBuilder,
	MethodClear, MethodErr, methodInit, methodFail,
}

// Per-property method names.
func setter(p string) string         { return "Set" + p }
func nullableSetter(p string) string { return "SetNullable" + p }
func clearer(p string) string        { return "Clear" + p }
func adder(p string) string          { return "Add" + p }
func valuesAdder(p string) string    { return "Add" + p + "Values" }
func allAdder(p string) string       { return "AddAll" + p }
func remover(p string) string        { return "Remove" + p }
func putter(p string) string         { return "Put" + p }
func allPutter(p string) string      { return "PutAll" + p }
func builderSetter(p string) string  { return "Set" + p + "Builder" }
func builderGetter(p string) string  { return p + "Builder" }

// overriddenName is the name a generated method is emitted under when the
// user declared a method of the same name on the builder.
func overriddenName(name string) string {
	return common.LowerFirst(name)
}

// valueName is the unexported type implementing the interface.
func valueName(typeName string) string {
	return common.LowerFirst(typeName) + "Value"
}

// qualified is the method name used in error messages.
func qualified(builder, method string) string {
	return builder + "." + method
}
