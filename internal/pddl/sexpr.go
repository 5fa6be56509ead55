// Package pddl lexes and parses PDDL domain and problem files and lowers
// them into the internal/ast types the grounder consumes. The grammar is
// built on github.com/alecthomas/participle/v2, the same lexer/parser
// combinator the rest of this module's lineage uses for its own
// s-expression-flavoured DSL: PDDL is itself Lisp-shaped, so a small
// recursive SExpr grammar plus a semantic conversion pass (mirroring that
// sibling package's grammar.go/convert.go split) covers the whole surface
// without a bespoke hand-rolled tokenizer.
package pddl

import (
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var pddlLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `;[^\n]*`},
	{Name: "Var", Pattern: `\?[a-zA-Z_][a-zA-Z0-9_-]*`},
	{Name: "Keyword", Pattern: `:[a-zA-Z_][a-zA-Z0-9_-]*`},
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9_-]*`},
	{Name: "Minus", Pattern: `-`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// SExpr is either an atom (an Ident, Var, Keyword, or the bare type
// ascription dash) or a parenthesised list of SExprs. PDDL's
// `(define (domain ...) ...)` syntax is just nested lists of atoms, so a
// single recursive rule is enough to parse any well-formed file; the
// semantic meaning of a given list (is this a :predicates block? an
// :action? a typed list?) is assigned afterwards in convert.go, the way a
// hand-written recursive-descent PDDL parser would.
type SExpr struct {
	Atom *string  `parser:"  @(Ident|Var|Keyword|Minus)"`
	List []*SExpr `parser:"| \"(\" @@* \")\""`
}

// IsAtom reports whether this node is a leaf token rather than a list.
func (s *SExpr) IsAtom() bool { return s != nil && s.Atom != nil }

// Text returns the atom's token text, or "" for a list node.
func (s *SExpr) Text() string {
	if s == nil || s.Atom == nil {
		return ""
	}
	return *s.Atom
}

var sexprParser = participle.MustBuild[SExpr](
	participle.Lexer(pddlLexer),
	participle.Elide("Whitespace", "Comment"),
)

// parseSExpr parses one top-level parenthesised form, such as an entire
// `(define ...)` file.
func parseSExpr(r io.Reader) (*SExpr, error) {
	expr, err := sexprParser.Parse("", r)
	if err != nil {
		return nil, SyntaxError{Kind: "InvalidSyntax", Message: err.Error()}
	}
	return expr, nil
}
