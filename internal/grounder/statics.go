package grounder

import "github.com/Koukyosyumei/MyPlan/internal/ast"

// staticPredicates returns the set of predicate names that never appear
// in any action schema's add or delete effect — a predicate whose truth
// value can never change once grounding fixes the initial state.
func staticPredicates(domain *ast.Domain) map[string]struct{} {
	changed := make(map[string]struct{})
	for _, action := range domain.Actions {
		for _, atom := range action.Effect.Add {
			changed[atom.Name] = struct{}{}
		}
		for _, atom := range action.Effect.Del {
			changed[atom.Name] = struct{}{}
		}
	}

	statics := make(map[string]struct{})
	for _, pred := range domain.Predicates {
		if _, ok := changed[pred.Name]; !ok {
			statics[pred.Name] = struct{}{}
		}
	}
	return statics
}

// staticIndex is a structural (non-regex) lookup from a static
// predicate's name and argument position to the set of objects that
// appear there in some initial-state fact. Building it once up front
// lets static-precondition pruning (section 4.1 step 5b) answer each
// "is (pred ... o ...) true in init?" query in O(1) instead of scanning
// init with a regular expression per candidate object, per the design
// notes' call to avoid regex in the hot path.
type staticIndex map[string][]map[string]struct{} // predicate -> position -> object set

func buildStaticIndex(init map[string]struct{}, statics map[string]struct{}) staticIndex {
	idx := make(staticIndex)
	for fact := range init {
		name, args := ast.ParseFact(fact)
		if _, ok := statics[name]; !ok {
			continue
		}
		slots, ok := idx[name]
		if !ok {
			slots = make([]map[string]struct{}, len(args))
			for i := range slots {
				slots[i] = make(map[string]struct{})
			}
			idx[name] = slots
		}
		for i, a := range args {
			if i >= len(slots) {
				break
			}
			slots[i][a] = struct{}{}
		}
	}
	return idx
}

// holds reports whether some fact (pred ... obj ...) with obj at
// position pos is present in the initial state that seeded idx.
func (idx staticIndex) holds(pred string, pos int, obj string) bool {
	slots, ok := idx[pred]
	if !ok || pos >= len(slots) {
		return false
	}
	_, ok = slots[pos][obj]
	return ok
}
