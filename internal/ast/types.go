package ast

import "strings"

// UniversalTypeName is the implicit root of every domain's type tree. A
// parameter or object that declares no explicit type belongs to it.
const UniversalTypeName = "object"

// Type is a named category with an optional parent, forming a tree rooted
// at UniversalTypeName. Equality is by name; names are normalised to
// lower case on construction so that PDDL's case-insensitive identifiers
// compare correctly everywhere else in the core.
type Type struct {
	Name   string
	Parent *Type
}

// NewType normalises name to lower case and links it to parent. A nil
// parent means the type is the universal root itself.
func NewType(name string, parent *Type) *Type {
	return &Type{Name: strings.ToLower(name), Parent: parent}
}

func (t *Type) Equal(other *Type) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.Name == other.Name
}

// Ancestors returns t and every type above it in the tree, root last.
func (t *Type) Ancestors() []*Type {
	var chain []*Type
	for cur := t; cur != nil; cur = cur.Parent {
		chain = append(chain, cur)
	}
	return chain
}

// Parameter is a single entry in a predicate or action signature: a
// variable name plus its non-empty set of admissible types.
type Parameter struct {
	Name  string
	Types []*Type
}

// Signature is the ordered parameter list shared by predicate schemas and
// action schemas.
type Signature []Parameter

// PredicateSchema is a predicate name plus its ordered parameter list.
// Two schemas are equal when their (name, arity, parameter-name sequence)
// triples match, which is exactly what Key reports.
type PredicateSchema struct {
	Name       string
	Parameters Signature
}

func (p PredicateSchema) Arity() int { return len(p.Parameters) }

func (p PredicateSchema) Key() string {
	var b strings.Builder
	b.WriteString(p.Name)
	for _, param := range p.Parameters {
		b.WriteByte('/')
		b.WriteString(param.Name)
	}
	return b.String()
}

// PredicateAtom is a predicate applied to arguments. In a schema body the
// arguments are parameter variable names; once ground, they are object
// names. Either way the atom formats to the same shape via Fact().
type PredicateAtom struct {
	Name string
	Args []string
}

// Effect is the positive/negative split of an action's consequences.
type Effect struct {
	Add []PredicateAtom
	Del []PredicateAtom
}

// ActionSchema is a lifted action: name, parameter signature, conjunctive
// precondition, and add/delete effect lists. NegativePrecondition holds
// preconditions compiled from PDDL `(not (p ...))` clauses; the grounder
// only accepts these when p is a static predicate (see internal/pddl's
// negation-lowering note) — everything else in this package assumes the
// caller already normalised preconditions to a positive conjunction.
type ActionSchema struct {
	Name                 string
	Parameters           Signature
	Precondition         []PredicateAtom
	NegativePrecondition []PredicateAtom
	Effect               Effect
}

// Domain is a named collection of types, predicate schemas, action
// schemas, and constants (objects usable by every problem over this
// domain).
type Domain struct {
	Name       string
	Types      map[string]*Type
	Predicates []PredicateSchema
	Actions    []ActionSchema
	Constants  map[string]*Type
}

// Problem borrows a domain and supplies objects, an initial state, and a
// goal, both already flattened to conjunctions of ground positive atoms.
type Problem struct {
	Name    string
	Domain  *Domain
	Objects map[string]*Type
	Init    []PredicateAtom
	Goal    []PredicateAtom
}
