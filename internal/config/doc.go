// Package config provides the builder.yaml schema, parsing, validation
// against the analyzed declarations, and merging of configured defaults.
//
// The file has the following structure:
//
//	version: "1"
//	output:
//	  suffix: _builder.go      # generated file name suffix
//	  dir: ""                  # write next to the package when empty
//	types:
//	  - name: Order            # selects the interface even without directive
//	    builder: OrderBuilder  # optional builder name override
//	    defaults:
//	      Customer: '"anonymous"'
//	      Clock: time.Now
//
// Default values are Go expressions, written as they would appear in the
// file declaring the interface; packages they refer to must be imported
// there. A //builder:default directive on the accessor wins over a
// configured default.
package config
