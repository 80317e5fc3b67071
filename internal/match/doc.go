// Package match ranks known type and property names against a name that
// did not resolve, for the "did you mean" hints attached to config
// diagnostics.
package match
