package grounder

// relevanceAnalysis implements the backward-from-goal fixpoint of
// section 4.1.2. R starts at the goal facts; any operator touching a
// currently-relevant fact (through its add or delete list) pulls its
// whole precondition into R, since achieving that operator is what keeps
// the rest of the plan alive. Once R stops growing, every operator's
// add/delete lists are intersected with R and operators left with no
// effect at all are dropped. Preconditions are never intersected — they
// are what keeps other operators relevant in the first place.
func relevanceAnalysis(operators []*Operator, goal map[string]struct{}) []*Operator {
	relevant := make(map[string]struct{}, len(goal))
	for f := range goal {
		relevant[f] = struct{}{}
	}

	for {
		grew := false
		for _, op := range operators {
			touches := false
			for f := range op.AddEffects {
				if _, ok := relevant[f]; ok {
					touches = true
					break
				}
			}
			if !touches {
				for f := range op.DelEffects {
					if _, ok := relevant[f]; ok {
						touches = true
						break
					}
				}
			}
			if !touches {
				continue
			}
			for f := range op.Preconditions {
				if _, ok := relevant[f]; !ok {
					relevant[f] = struct{}{}
					grew = true
				}
			}
		}
		if !grew {
			break
		}
	}

	kept := make([]*Operator, 0, len(operators))
	for _, op := range operators {
		op.AddEffects = intersect(op.AddEffects, relevant)
		op.DelEffects = intersect(op.DelEffects, relevant)
		if !op.Irrelevant() {
			kept = append(kept, op)
		}
	}
	return kept
}

func intersect(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for f := range a {
		if _, ok := b[f]; ok {
			out[f] = struct{}{}
		}
	}
	return out
}
