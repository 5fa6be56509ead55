package grounder

import (
	"sort"

	"github.com/Koukyosyumei/MyPlan/internal/ast"
)

// typeMap maps a type name to every object that is a member of it or of
// one of its descendant types. Building it requires walking each
// object's declared type up to the universal root and registering the
// object under every ancestor — so a parameter typed `vehicle` matches
// both `truck` and `airplane` objects.
type typeMap map[string][]string

func buildTypeMap(objects map[string]*ast.Type) typeMap {
	tm := make(typeMap)
	for name, t := range objects {
		for _, ancestor := range t.Ancestors() {
			tm[ancestor.Name] = append(tm[ancestor.Name], name)
		}
	}
	for name := range tm {
		sort.Strings(tm[name])
	}
	return tm
}

// candidates returns every object admissible for a parameter with the
// given set of types, sorted for reproducible Cartesian-product
// enumeration (section 5, "Ordering").
func (tm typeMap) candidates(types []*ast.Type) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, t := range types {
		for _, obj := range tm[t.Name] {
			if _, ok := seen[obj]; !ok {
				seen[obj] = struct{}{}
				out = append(out, obj)
			}
		}
	}
	sort.Strings(out)
	return out
}
