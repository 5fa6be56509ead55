package pddl

import "fmt"

// SyntaxError reports a malformed PDDL file: a lexer/grammar failure, or
// a well-formed s-expression that doesn't match any recognised PDDL
// section shape (mirrors the teacher lineage's own dsl.SyntaxError).
type SyntaxError struct {
	Kind    string
	Message string
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("pddl syntax error (%v): %v", e.Kind, e.Message)
}

// ErrUnsupportedNegation is returned by ParseProblem for a negative goal
// literal `(not (p ...))`. spec.md's Non-goals exclude negative
// preconditions "beyond what pre-processing can compile away"; the
// parser passes negative preconditions on in
// ast.ActionSchema.NegativePrecondition, and the grounder compiles away
// exactly one narrow case (a negative precondition on a static
// predicate) and returns its own error for the rest rather than
// silently mishandling them.
var ErrUnsupportedNegation = SyntaxError{
	Kind:    "UnsupportedNegation",
	Message: "negative literal is not a precondition over a static predicate; cannot compile away",
}
