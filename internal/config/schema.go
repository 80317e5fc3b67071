package config

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// Version is the only supported configuration version.
const Version = "1"

// DefaultSuffix is appended to the snake_case type name to form the name of
// a generated file.
const DefaultSuffix = "_builder.go"

// File is the root of builder.yaml.
type File struct {
	Version string       `yaml:"version"`
	Output  Output       `yaml:"output,omitempty"`
	Types   []TypeConfig `yaml:"types,omitempty"`
}

// Output controls where generated files go.
type Output struct {
	Suffix string `yaml:"suffix,omitempty"`
	// Dir overrides the output directory; empty means the package directory.
	Dir string `yaml:"dir,omitempty"`
}

// TypeConfig selects one interface and tunes its builder.
type TypeConfig struct {
	// Name is "Order" or "pkg.Order".
	Name     string   `yaml:"name"`
	Builder  string   `yaml:"builder,omitempty"`
	Defaults Defaults `yaml:"defaults,omitempty"`
}

// Defaults maps property names to Go expressions. Scalars of any YAML type
// are accepted and kept in their literal spelling, so `Count: 3` yields the
// expression "3".
type Defaults map[string]string

// UnmarshalYAML implements custom YAML unmarshaling for Defaults.
func (d *Defaults) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: defaults must be a mapping, got %v", node.Line, kindName(node.Kind))
	}

	out := make(Defaults, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		if value.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: default for %s must be a scalar, got %v", value.Line, key.Value, kindName(value.Kind))
		}

		if _, dup := out[key.Value]; dup {
			return fmt.Errorf("line %d: duplicate default for %s", key.Line, key.Value)
		}

		out[key.Value] = value.Value
	}

	*d = out

	return nil
}

// Names returns the configured property names, sorted.
func (d Defaults) Names() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}

// Type returns the configuration of the named type, matching either the
// bare or the package-qualified name.
func (f *File) Type(pkgName, name string) (*TypeConfig, bool) {
	for i := range f.Types {
		if n := f.Types[i].Name; n == name || n == pkgName+"."+name {
			return &f.Types[i], true
		}
	}

	return nil, false
}

// TypeNames returns the names of the configured types.
func (f *File) TypeNames() []string {
	names := make([]string, 0, len(f.Types))
	for _, t := range f.Types {
		names = append(names, t.Name)
	}

	return names
}

// BuilderNames returns the builder name overrides keyed by type name.
func (f *File) BuilderNames() map[string]string {
	out := make(map[string]string)

	for _, t := range f.Types {
		if t.Builder != "" {
			out[t.Name] = t.Builder
		}
	}

	return out
}
