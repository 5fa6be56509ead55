package grounder

import "github.com/Koukyosyumei/MyPlan/internal/ast"

// Operator is a grounded action before integer encoding: a canonical
// name plus precondition/add/delete fact sets. NewOperator applies the
// two STRIPS normalisations spec.md section 3 requires on construction:
// a fact in both add and delete is add-only (delete-then-add), and a
// fact already true in the precondition is dropped from add (it would
// be a no-op).
type Operator struct {
	Name          string
	Preconditions map[string]struct{}
	AddEffects    map[string]struct{}
	DelEffects    map[string]struct{}
}

func NewOperator(name string, pre, add, del []string) *Operator {
	preSet := toSet(pre)
	addSet := toSet(add)
	delSet := toSet(del)

	for fact := range addSet {
		delete(delSet, fact)
	}
	for fact := range preSet {
		delete(addSet, fact)
	}

	return &Operator{
		Name:          name,
		Preconditions: preSet,
		AddEffects:    addSet,
		DelEffects:    delSet,
	}
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		set[it] = struct{}{}
	}
	return set
}

// Irrelevant reports whether relevance analysis (section 4.1.2) has
// pruned every effect this operator had, meaning it can no longer
// change anything that matters and should be dropped.
func (o *Operator) Irrelevant() bool {
	return len(o.AddEffects) == 0 && len(o.DelEffects) == 0
}

// groundAtom substitutes parameter variables in atom.Args with the
// object names assignment maps them to, leaving any token not present
// in assignment (an already-ground constant reference) untouched.
func groundAtom(atom ast.PredicateAtom, assignment map[string]string) string {
	args := make([]string, len(atom.Args))
	for i, a := range atom.Args {
		if obj, ok := assignment[a]; ok {
			args[i] = obj
		} else {
			args[i] = a
		}
	}
	return ast.Fact(atom.Name, args...)
}
