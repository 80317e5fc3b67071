package fb

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors reported by generated builders and by the containers of
// this package. Match them with errors.Is.
var (
	ErrNullArgument         = errors.New("null argument")
	ErrUnsetProperties      = errors.New("required properties not set")
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// NullArgumentError reports a nil argument passed to a mutator that does not
// accept one. Storage is never modified when this error is recorded.
type NullArgumentError struct {
	// Method is the qualified mutator name, e.g. "OrderBuilder.AddItems".
	Method string
	// Param is the rejected parameter.
	Param string
	// Index is the position of the rejected element for variadic
	// parameters, or -1.
	Index int
}

// NullArgument returns a NullArgumentError for a single parameter.
func NullArgument(method, param string) error {
	return &NullArgumentError{Method: method, Param: param, Index: -1}
}

// NullElement returns a NullArgumentError for one element of a variadic
// parameter.
func NullElement(method, param string, index int) error {
	return &NullArgumentError{Method: method, Param: param, Index: index}
}

func (e *NullArgumentError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s: %s[%d] must not be nil", e.Method, e.Param, e.Index)
	}

	return fmt.Sprintf("%s: %s must not be nil", e.Method, e.Param)
}

// Is reports whether target is ErrNullArgument.
func (e *NullArgumentError) Is(target error) bool {
	return target == ErrNullArgument
}

// UnsetPropertiesError is returned by Build when required properties were
// never set. Properties lists every one of them in declaration order.
type UnsetPropertiesError struct {
	Type       string
	Properties []string
}

func (e *UnsetPropertiesError) Error() string {
	return fmt.Sprintf("%s: required properties not set: %s", e.Type, strings.Join(e.Properties, ", "))
}

// Is reports whether target is ErrUnsetProperties.
func (e *UnsetPropertiesError) Is(target error) bool {
	return target == ErrUnsetProperties
}

// PropertyError attributes a failure to a single property, typically the
// failed Build of a nested builder.
type PropertyError struct {
	Type     string
	Property string
	Err      error
}

// WrapProperty wraps err with the owning type and property. It returns nil
// when err is nil.
func WrapProperty(typeName, property string, err error) error {
	if err == nil {
		return nil
	}

	return &PropertyError{Type: typeName, Property: property, Err: err}
}

func (e *PropertyError) Error() string {
	return e.Type + "." + e.Property + ": " + e.Err.Error()
}

func (e *PropertyError) Unwrap() error {
	return e.Err
}

func unsupported(op string) error {
	return fmt.Errorf("%s: %w", op, ErrUnsupportedOperation)
}
