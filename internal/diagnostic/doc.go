// Package diagnostic provides structured warnings and errors for the
// builder generator.
//
// Key capabilities:
//   - Per-property classification failures
//   - Method-name conflicts between generated and declared methods
//   - Unknown types and properties in builder.yaml, with suggestions
//   - Tolerated type-check errors from not-yet-generated builders
package diagnostic
