// Package task holds the integer-encoded, runnable form of a grounded
// planning problem: facts mapped to dense ids, operators as sorted id
// arrays plus bitmasks, and the state/hash pair every search algorithm
// threads through its node vector. A Task is built once by
// internal/grounder and never mutated afterwards (spec.md section 5).
package task

// Task is the artefact the search package consumes: the operator list,
// the fact table (for naming/debugging), the initial state, and the
// goal, all over the same dense id space.
type Task struct {
	Name      string
	Facts     []string
	FactIndex map[string]int
	Operators []*EncodedOperator

	Initial     *FactSet
	InitialHash uint64
	Goal        *FactSet

	tags []uint64
}

// Successor is one outcome of applying an applicable operator to a
// state: the operator's name (for plan reconstruction) and the
// resulting state/hash pair.
type Successor struct {
	OpName string
	State  *FactSet
	Hash   uint64
}

// Applicable reports (state & op.pre) == op.pre.
func (t *Task) Applicable(op *EncodedOperator, state *FactSet) bool {
	return state.ContainsAll(op.preMask)
}

// Apply returns (state ∪ add(op)) \ del(op) and the incrementally
// updated hash: rather than recomputing the XOR over the whole new
// state, it flips the tag of exactly the facts whose membership
// actually changes, preserving the hash law of spec.md section 4.2.
func (t *Task) Apply(op *EncodedOperator, state *FactSet, hash uint64) (*FactSet, uint64) {
	newState := state.Union(op.addMask, op.delMask)
	newHash := hash
	for _, id := range op.Add {
		if !state.Has(id) {
			newHash ^= t.tags[id]
		}
	}
	for _, id := range op.Del {
		if state.Has(id) {
			newHash ^= t.tags[id]
		}
	}
	return newState, newHash
}

// GoalReached reports (state & goal) == goal.
func (t *Task) GoalReached(state *FactSet) bool {
	return state.ContainsAll(t.Goal)
}

// Successors returns one entry per applicable operator, in operator
// order, so that two runs over the same state produce successors in the
// same order (spec.md section 5, "Ordering").
func (t *Task) Successors(state *FactSet, hash uint64) []Successor {
	var out []Successor
	for _, op := range t.Operators {
		if !t.Applicable(op, state) {
			continue
		}
		newState, newHash := t.Apply(op, state, hash)
		out = append(out, Successor{OpName: op.Name, State: newState, Hash: newHash})
	}
	return out
}

// Hash recomputes a state's hash from scratch; used where no
// incrementally-maintained hash is available (e.g. when building a
// synthetic state outside of Apply).
func (t *Task) Hash(state *FactSet) uint64 {
	return computeHash(t.tags, state)
}

// NumFacts is the size of the dense fact-id space.
func (t *Task) NumFacts() int { return len(t.Facts) }

// Relax returns a clone of t with every operator's delete effects
// cleared — the delete-relaxed task T⁺ the landmark heuristic's
// precomputation runs on (spec.md section 4.5).
func (t *Task) Relax() *Task {
	relaxedOps := make([]*EncodedOperator, len(t.Operators))
	for i, op := range t.Operators {
		relaxedOps[i] = &EncodedOperator{
			Name:    op.Name,
			Pre:     op.Pre,
			Add:     op.Add,
			Del:     nil,
			preMask: op.preMask,
			addMask: op.addMask,
			delMask: newFactSet(len(t.Facts)),
		}
	}
	return &Task{
		Name:        t.Name,
		Facts:       t.Facts,
		FactIndex:   t.FactIndex,
		Operators:   relaxedOps,
		Initial:     t.Initial,
		InitialHash: t.InitialHash,
		Goal:        t.Goal,
		tags:        t.tags,
	}
}
