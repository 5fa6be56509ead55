package ast

import "strings"

// Fact formats a predicate name and its arguments into the canonical
// string form "(name arg1 arg2 …)": lower case, single-space separated,
// no trailing space for zero-arity predicates. Every subsystem — the
// grounder's sets, the task's fact table, the static-precondition index —
// keys off this one formatter so the round-trip in spec section 6 holds.
func Fact(name string, args ...string) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(strings.ToLower(name))
	for _, a := range args {
		b.WriteByte(' ')
		b.WriteString(strings.ToLower(a))
	}
	b.WriteByte(')')
	return b.String()
}

// FactOf formats a PredicateAtom as a canonical fact string.
func FactOf(atom PredicateAtom) string {
	return Fact(atom.Name, atom.Args...)
}

// ParseFact splits a canonical fact string back into its predicate name
// and arguments. It is the inverse of Fact and is used by the grounder's
// static-precondition index, which needs to inspect argument positions
// without resorting to regular expressions in the hot path.
func ParseFact(fact string) (name string, args []string) {
	trimmed := strings.TrimSuffix(strings.TrimPrefix(fact, "("), ")")
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}
