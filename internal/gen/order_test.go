package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"builder-generator/internal/analyze"
)

func nestedDecl(name string, nested ...string) *analyze.TypeDecl {
	d := &analyze.TypeDecl{ID: analyze.TypeID{PkgPath: "example.com/shop", Name: name}}

	for _, n := range nested {
		d.Properties = append(d.Properties, analyze.PropertyInput{
			Name: n,
			Type: &analyze.TypeInfo{
				ID:      analyze.TypeID{PkgPath: "example.com/shop", Name: n},
				Kind:    analyze.TypeKindInterface,
				Builder: &analyze.BuilderInfo{Expr: n + "Builder"},
			},
		})
	}

	return d
}

func declNames(decls []*analyze.TypeDecl) []string {
	var out []string
	for _, d := range decls {
		out = append(out, d.ID.Name)
	}

	return out
}

func TestDependencyOrder(t *testing.T) {
	tests := []struct {
		name  string
		decls []*analyze.TypeDecl
		want  []string
	}{
		{
			name:  "empty",
			decls: nil,
			want:  nil,
		},
		{
			name: "nested types first",
			decls: []*analyze.TypeDecl{
				nestedDecl("Order", "Address", "Money"),
				nestedDecl("Address"),
				nestedDecl("Money"),
			},
			want: []string{"Address", "Money", "Order"},
		},
		{
			name: "unrelated types keep input order",
			decls: []*analyze.TypeDecl{
				nestedDecl("Muted"),
				nestedDecl("Order", "Address"),
				nestedDecl("Address"),
			},
			want: []string{"Muted", "Address", "Order"},
		},
		{
			name: "builders from other packages are ignored",
			decls: []*analyze.TypeDecl{
				nestedDecl("Order", "Total"),
				nestedDecl("Address"),
			},
			want: []string{"Order", "Address"},
		},
		{
			name: "cycles are cut where they close",
			decls: []*analyze.TypeDecl{
				nestedDecl("Order", "Address"),
				nestedDecl("Node", "Edge"),
				nestedDecl("Edge", "Node"),
				nestedDecl("Tree", "Tree"),
				nestedDecl("Address"),
			},
			want: []string{"Address", "Order", "Edge", "Node", "Tree"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, declNames(dependencyOrder(tt.decls)))
		})
	}
}
