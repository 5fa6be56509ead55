package task

// RawOperator is the string-keyed form the grounder hands to Encode: a
// ground operator's name plus its precondition/add/delete fact sets,
// each already normalised to the STRIPS invariants of spec.md section 3
// (grounder.Operator enforces those before conversion).
type RawOperator struct {
	Name string
	Pre  []string
	Add  []string
	Del  []string
}

// EncodedOperator is a RawOperator after facts have been mapped to
// stable integer ids. Pre/Add/Del stay as sorted slices for iteration
// (successor hashing, plan naming) alongside a bitset form of each for
// O(words) applicability and apply operations.
type EncodedOperator struct {
	Name string
	Pre  []int
	Add  []int
	Del  []int

	preMask *FactSet
	addMask *FactSet
	delMask *FactSet
}
