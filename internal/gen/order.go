package gen

import (
	"builder-generator/internal/analyze"
)

// dependencyOrder returns decls with every declaration placed after the
// declarations its nested properties build, keeping input order otherwise.
// Nested types that refer to each other are cut at the reference that
// closes the cycle.
func dependencyOrder(decls []*analyze.TypeDecl) []*analyze.TypeDecl {
	index := make(map[analyze.TypeID]int, len(decls))
	for i, d := range decls {
		index[d.ID] = i
	}

	const (
		unvisited = iota
		visiting
		done
	)

	state := make([]int, len(decls))
	out := make([]*analyze.TypeDecl, 0, len(decls))

	var visit func(i int)
	visit = func(i int) {
		state[i] = visiting

		for _, p := range decls[i].Properties {
			if p.Type == nil || p.Type.Builder == nil {
				continue
			}

			if j, ok := index[p.Type.ID]; ok && state[j] == unvisited {
				visit(j)
			}
		}

		state[i] = done
		out = append(out, decls[i])
	}

	for i := range decls {
		if state[i] == unvisited {
			visit(i)
		}
	}

	return out
}
