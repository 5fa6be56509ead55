package pddl

import (
	"io"
	"strings"

	"github.com/Koukyosyumei/MyPlan/internal/ast"
)

// typedName is one (name, admissible-types) entry of a PDDL typed list —
// the `?x ?y - block` / `a b - block c - truck` shape shared by
// :types, :constants, :objects, :parameters, and predicate signatures.
type typedName struct {
	Name  string
	Types []string
}

// parseTypedList walks a flat list of atoms looking for the `- type` (or
// `- (either t1 t2 ...)`) separator PDDL uses to batch-assign a type to
// every name seen since the previous separator. Names left over at the
// end (no trailing dash) default to the universal type. This is
// structural, not regex-based, matching the design notes' call to avoid
// regular expressions in favour of parsing the token stream directly.
func parseTypedList(items []*SExpr) ([]typedName, error) {
	var pending []string
	var out []typedName
	i := 0
	for i < len(items) {
		tok := items[i]
		if !tok.IsAtom() {
			return nil, SyntaxError{Kind: "InvalidTypedList", Message: "expected an identifier"}
		}
		text := tok.Text()
		if text == "-" {
			if i+1 >= len(items) {
				return nil, SyntaxError{Kind: "InvalidTypedList", Message: "dash with no following type"}
			}
			next := items[i+1]
			var types []string
			if next.IsAtom() {
				types = []string{next.Text()}
			} else {
				if len(next.List) < 2 || next.List[0].Text() != "either" {
					return nil, SyntaxError{Kind: "InvalidTypedList", Message: "expected a type name or (either ...)"}
				}
				for _, t := range next.List[1:] {
					types = append(types, t.Text())
				}
			}
			for _, n := range pending {
				out = append(out, typedName{Name: n, Types: types})
			}
			pending = nil
			i += 2
			continue
		}
		pending = append(pending, text)
		i++
	}
	for _, n := range pending {
		out = append(out, typedName{Name: n, Types: []string{ast.UniversalTypeName}})
	}
	return out, nil
}

func convertPredicateAtom(e *SExpr) (ast.PredicateAtom, error) {
	if e.IsAtom() || len(e.List) == 0 {
		return ast.PredicateAtom{}, SyntaxError{Kind: "InvalidAtom", Message: "expected a predicate application"}
	}
	name := e.List[0].Text()
	args := make([]string, 0, len(e.List)-1)
	for _, a := range e.List[1:] {
		args = append(args, a.Text())
	}
	return ast.PredicateAtom{Name: strings.ToLower(name), Args: args}, nil
}

// convertFormula flattens a precondition/goal formula into its positive
// and negative literal lists. Only a top-level (and ...) of literals and
// bare (not (...)) negations are recognised — quantifiers and nested
// connectives are out of scope per spec.md's Non-goals.
func convertFormula(e *SExpr) (pos, neg []ast.PredicateAtom, err error) {
	if e.IsAtom() || len(e.List) == 0 {
		return nil, nil, SyntaxError{Kind: "InvalidFormula", Message: "expected a formula"}
	}
	head := e.List[0].Text()
	switch head {
	case "and":
		for _, sub := range e.List[1:] {
			p, n, err := convertFormula(sub)
			if err != nil {
				return nil, nil, err
			}
			pos = append(pos, p...)
			neg = append(neg, n...)
		}
		return pos, neg, nil
	case "not":
		if len(e.List) != 2 {
			return nil, nil, SyntaxError{Kind: "InvalidFormula", Message: "(not ...) takes exactly one literal"}
		}
		atom, err := convertPredicateAtom(e.List[1])
		if err != nil {
			return nil, nil, err
		}
		return nil, []ast.PredicateAtom{atom}, nil
	default:
		atom, err := convertPredicateAtom(e)
		if err != nil {
			return nil, nil, err
		}
		return []ast.PredicateAtom{atom}, nil, nil
	}
}

func convertEffect(e *SExpr) (add, del []ast.PredicateAtom, err error) {
	pos, neg, err := convertFormula(e)
	return pos, neg, err
}

type typeResolver func(name string) *ast.Type

func convertPredicateSchema(e *SExpr, resolve typeResolver) (ast.PredicateSchema, error) {
	if e.IsAtom() || len(e.List) == 0 {
		return ast.PredicateSchema{}, SyntaxError{Kind: "InvalidPredicate", Message: "expected a predicate schema"}
	}
	name := e.List[0].Text()
	typed, err := parseTypedList(e.List[1:])
	if err != nil {
		return ast.PredicateSchema{}, err
	}
	params := make(ast.Signature, len(typed))
	for i, tn := range typed {
		params[i] = ast.Parameter{Name: tn.Name, Types: resolveAll(tn.Types, resolve)}
	}
	return ast.PredicateSchema{Name: strings.ToLower(name), Parameters: params}, nil
}

func resolveAll(names []string, resolve typeResolver) []*ast.Type {
	types := make([]*ast.Type, len(names))
	for i, n := range names {
		types[i] = resolve(n)
	}
	return types
}

func convertAction(e *SExpr, resolve typeResolver) (ast.ActionSchema, error) {
	items := e.List[1:] // drop ":action"
	if len(items) == 0 {
		return ast.ActionSchema{}, SyntaxError{Kind: "InvalidAction", Message: "missing action name"}
	}
	name := items[0].Text()
	rest := items[1:]

	var paramsExpr, preExpr, effExpr *SExpr
	for i := 0; i+1 < len(rest); i += 2 {
		switch rest[i].Text() {
		case ":parameters":
			paramsExpr = rest[i+1]
		case ":precondition":
			preExpr = rest[i+1]
		case ":effect":
			effExpr = rest[i+1]
		default:
			// :duration, :derived, etc. — not in scope (non-goals).
		}
	}

	schema := ast.ActionSchema{Name: strings.ToLower(name)}

	if paramsExpr != nil {
		typed, err := parseTypedList(paramsExpr.List)
		if err != nil {
			return ast.ActionSchema{}, err
		}
		for _, tn := range typed {
			schema.Parameters = append(schema.Parameters, ast.Parameter{
				Name:  tn.Name,
				Types: resolveAll(tn.Types, resolve),
			})
		}
	}

	if preExpr != nil {
		pos, neg, err := convertFormula(preExpr)
		if err != nil {
			return ast.ActionSchema{}, err
		}
		schema.Precondition = pos
		schema.NegativePrecondition = neg
	}

	if effExpr != nil {
		add, del, err := convertEffect(effExpr)
		if err != nil {
			return ast.ActionSchema{}, err
		}
		schema.Effect = ast.Effect{Add: add, Del: del}
	}

	return schema, nil
}

func sectionHead(e *SExpr) (string, []*SExpr, bool) {
	if e.IsAtom() || len(e.List) == 0 {
		return "", nil, false
	}
	return e.List[0].Text(), e.List, true
}

// ParseDomain reads a complete `(define (domain NAME) ...)` file and
// lowers it into an *ast.Domain.
func ParseDomain(r io.Reader) (*ast.Domain, error) {
	root, err := parseSExpr(r)
	if err != nil {
		return nil, err
	}
	if root.IsAtom() || len(root.List) < 2 || root.List[0].Text() != "define" {
		return nil, SyntaxError{Kind: "InvalidDomain", Message: "expected (define (domain ...) ...)"}
	}
	header := root.List[1]
	if header.IsAtom() || len(header.List) != 2 || header.List[0].Text() != "domain" {
		return nil, SyntaxError{Kind: "InvalidDomain", Message: "expected (domain NAME) header"}
	}

	domain := &ast.Domain{
		Name:      strings.ToLower(header.List[1].Text()),
		Types:     map[string]*ast.Type{},
		Constants: map[string]*ast.Type{},
	}
	universal := ast.NewType(ast.UniversalTypeName, nil)
	domain.Types[universal.Name] = universal

	resolve := func(name string) *ast.Type {
		name = strings.ToLower(name)
		if t, ok := domain.Types[name]; ok {
			return t
		}
		t := ast.NewType(name, universal)
		domain.Types[name] = t
		return t
	}

	for _, section := range root.List[2:] {
		head, list, ok := sectionHead(section)
		if !ok {
			continue
		}
		switch head {
		case ":requirements":
			// no behavioural effect — every requirement this core
			// supports (:strips, :typing) is unconditional.
		case ":types":
			typed, err := parseTypedList(list[1:])
			if err != nil {
				return nil, err
			}
			for _, tn := range typed {
				child := resolve(tn.Name)
				child.Parent = resolve(tn.Types[0])
			}
		case ":constants":
			typed, err := parseTypedList(list[1:])
			if err != nil {
				return nil, err
			}
			for _, tn := range typed {
				domain.Constants[strings.ToLower(tn.Name)] = resolve(tn.Types[0])
			}
		case ":predicates":
			for _, predExpr := range list[1:] {
				schema, err := convertPredicateSchema(predExpr, resolve)
				if err != nil {
					return nil, err
				}
				domain.Predicates = append(domain.Predicates, schema)
			}
		case ":action":
			action, err := convertAction(section, resolve)
			if err != nil {
				return nil, err
			}
			domain.Actions = append(domain.Actions, action)
		default:
			// :functions, :derived, etc. — numeric fluents and axioms
			// are explicit Non-goals; silently ignored rather than
			// rejected so a superset-PDDL file still grounds.
		}
	}

	return domain, nil
}

// ParseProblem reads a complete `(define (problem NAME) ...)` file for
// the given (already parsed) domain and lowers it into an *ast.Problem.
func ParseProblem(r io.Reader, domain *ast.Domain) (*ast.Problem, error) {
	root, err := parseSExpr(r)
	if err != nil {
		return nil, err
	}
	if root.IsAtom() || len(root.List) < 2 || root.List[0].Text() != "define" {
		return nil, SyntaxError{Kind: "InvalidProblem", Message: "expected (define (problem ...) ...)"}
	}
	header := root.List[1]
	if header.IsAtom() || len(header.List) != 2 || header.List[0].Text() != "problem" {
		return nil, SyntaxError{Kind: "InvalidProblem", Message: "expected (problem NAME) header"}
	}

	problem := &ast.Problem{
		Name:    strings.ToLower(header.List[1].Text()),
		Domain:  domain,
		Objects: map[string]*ast.Type{},
	}

	for _, section := range root.List[2:] {
		head, list, ok := sectionHead(section)
		if !ok {
			continue
		}
		switch head {
		case ":domain":
			// informational only; the caller already selected the domain.
		case ":objects":
			typed, err := parseTypedList(list[1:])
			if err != nil {
				return nil, err
			}
			for _, tn := range typed {
				typeName := strings.ToLower(tn.Types[0])
				t, ok := domain.Types[typeName]
				if !ok {
					return nil, ast.ErrUndeclaredType(typeName)
				}
				problem.Objects[strings.ToLower(tn.Name)] = t
			}
		case ":init":
			for _, atomExpr := range list[1:] {
				atom, err := convertPredicateAtom(atomExpr)
				if err != nil {
					return nil, err
				}
				problem.Init = append(problem.Init, atom)
			}
		case ":goal":
			if len(list) != 2 {
				return nil, SyntaxError{Kind: "InvalidGoal", Message: "expected exactly one goal formula"}
			}
			pos, neg, err := convertFormula(list[1])
			if err != nil {
				return nil, err
			}
			if len(neg) > 0 {
				return nil, ErrUnsupportedNegation
			}
			problem.Goal = pos
		default:
			// :metric, :constraints, etc. — not in scope.
		}
	}

	return problem, nil
}
