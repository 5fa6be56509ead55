package task

import (
	"sort"

	"github.com/pkg/errors"
)

// Encode assigns a dense integer id to every fact in facts (sorted, so
// the assignment is reproducible — spec.md section 4.2) and builds the
// runnable Task: encoded operators, the initial state, and the goal, all
// expressed over those ids. A fact referenced by an operator or the goal
// but absent from facts is an internal-inconsistency bug in the
// grounder, wrapped with a stack trace per spec.md section 7 rather than
// silently tolerated.
func Encode(name string, facts map[string]struct{}, init map[string]struct{}, goal map[string]struct{}, operators []RawOperator) (*Task, error) {
	sorted := make([]string, 0, len(facts))
	for f := range facts {
		sorted = append(sorted, f)
	}
	sort.Strings(sorted)

	index := make(map[string]int, len(sorted))
	for id, f := range sorted {
		index[f] = id
	}

	lookup := func(fact string) (int, error) {
		id, ok := index[fact]
		if !ok {
			return 0, errors.Errorf("fact %q referenced by an operator is missing from the fact universe", fact)
		}
		return id, nil
	}

	toIDs := func(fs []string) ([]int, error) {
		ids := make([]int, len(fs))
		for i, f := range fs {
			id, err := lookup(f)
			if err != nil {
				return nil, err
			}
			ids[i] = id
		}
		sort.Ints(ids)
		return ids, nil
	}

	tags := newZobristTags(len(sorted))

	encoded := make([]*EncodedOperator, len(operators))
	for i, raw := range operators {
		pre, err := toIDs(raw.Pre)
		if err != nil {
			return nil, err
		}
		add, err := toIDs(raw.Add)
		if err != nil {
			return nil, err
		}
		del, err := toIDs(raw.Del)
		if err != nil {
			return nil, err
		}
		encoded[i] = &EncodedOperator{
			Name:    raw.Name,
			Pre:     pre,
			Add:     add,
			Del:     del,
			preMask: factSetFromIDs(len(sorted), pre),
			addMask: factSetFromIDs(len(sorted), add),
			delMask: factSetFromIDs(len(sorted), del),
		}
	}

	var initIDs []int
	for f := range init {
		// A fact in init but outside the fact universe cannot be
		// referenced by any operator or the goal (the universe is the
		// union of both), so it can never affect search; this only
		// happens when RemoveStaticsFromInitialState is false and is
		// silently dropped rather than treated as an inconsistency.
		if id, ok := index[f]; ok {
			initIDs = append(initIDs, id)
		}
	}
	goalIDs, err := toIDs(setKeys(goal))
	if err != nil {
		return nil, err
	}

	initial := factSetFromIDs(len(sorted), initIDs)

	return &Task{
		Name:        name,
		Facts:       sorted,
		FactIndex:   index,
		Operators:   encoded,
		Initial:     initial,
		InitialHash: computeHash(tags, initial),
		Goal:        factSetFromIDs(len(sorted), goalIDs),
		tags:        tags,
	}, nil
}

func setKeys(s map[string]struct{}) []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	return out
}
