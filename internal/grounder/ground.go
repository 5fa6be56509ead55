// Package grounder turns a lifted ast.Problem into a runnable task.Task:
// it enumerates every type-valid ground instantiation of each action
// schema, prunes the ones whose static preconditions can never hold, and
// discards operators backward relevance analysis proves cannot
// contribute to any plan. See spec.md section 4.1.
package grounder

import (
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Koukyosyumei/MyPlan/internal/ast"
	"github.com/Koukyosyumei/MyPlan/internal/task"
)

// Options gates the two optional grounding passes; both default true,
// matching the C++ original's ground(problem, true, true) signature.
type Options struct {
	RemoveStaticsFromInitialState bool
	RemoveIrrelevantOperators     bool
	Verbose                       bool
}

func DefaultOptions() Options {
	return Options{RemoveStaticsFromInitialState: true, RemoveIrrelevantOperators: true}
}

// Ground runs the full pipeline of spec.md section 4.1 and returns the
// integer-encoded Task the search package operates on.
func Ground(problem *ast.Problem, opts Options, logger *zap.SugaredLogger) (*task.Task, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	domain := problem.Domain

	objects := make(map[string]*ast.Type, len(problem.Objects)+len(domain.Constants))
	for name, t := range problem.Objects {
		objects[name] = t
	}
	for name, t := range domain.Constants {
		if _, exists := problem.Objects[name]; exists {
			return nil, ast.ErrConstantShadowsObject(name)
		}
		objects[name] = t
	}

	statics := staticPredicates(domain)
	tm := buildTypeMap(objects)

	init := make(map[string]struct{}, len(problem.Init))
	for _, atom := range problem.Init {
		init[ast.FactOf(atom)] = struct{}{}
	}
	idx := buildStaticIndex(init, statics)

	var operators []*Operator
	for _, action := range domain.Actions {
		ops, err := groundAction(action, tm, statics, idx, init)
		if err != nil {
			return nil, err
		}
		operators = append(operators, ops...)
	}

	goal := make(map[string]struct{}, len(problem.Goal))
	for _, atom := range problem.Goal {
		goal[ast.FactOf(atom)] = struct{}{}
	}

	facts := collectFacts(operators)
	for f := range goal {
		facts[f] = struct{}{}
	}

	// Section 9 "Open question": static-precondition pruning has
	// already consumed the static facts it needed by this point, so
	// intersecting init with the fact universe afterwards is safe —
	// doing it in the other order would prune statics before grounding
	// ever got to use them.
	if opts.RemoveStaticsFromInitialState {
		init = intersect(init, facts)
	}

	if opts.RemoveIrrelevantOperators {
		before := len(operators)
		operators = relevanceAnalysis(operators, goal)
		if opts.Verbose {
			logger.Infof("relevance analysis removed %d operators", before-len(operators))
		}
	}

	raw := make([]task.RawOperator, len(operators))
	for i, op := range operators {
		raw[i] = task.RawOperator{
			Name: op.Name,
			Pre:  setToSlice(op.Preconditions),
			Add:  setToSlice(op.AddEffects),
			Del:  setToSlice(op.DelEffects),
		}
	}

	t, err := task.Encode(problem.Name, facts, init, goal, raw)
	if err != nil {
		return nil, errors.Wrap(err, "encoding grounded task")
	}
	return t, nil
}

func groundAction(action ast.ActionSchema, tm typeMap, statics map[string]struct{}, idx staticIndex, init map[string]struct{}) ([]*Operator, error) {
	candidateSets := make([][]string, len(action.Parameters))
	for i, param := range action.Parameters {
		candidateSets[i] = tm.candidates(param.Types)
	}

	for i, param := range action.Parameters {
		for _, pre := range action.Precondition {
			if _, ok := statics[pre.Name]; !ok {
				continue
			}
			pos := paramPosition(pre, param.Name)
			if pos == -1 {
				continue
			}
			candidateSets[i] = filterCandidates(candidateSets[i], func(obj string) bool {
				return idx.holds(pre.Name, pos, obj)
			})
		}
		for _, pre := range action.NegativePrecondition {
			if _, ok := statics[pre.Name]; !ok {
				continue
			}
			pos := paramPosition(pre, param.Name)
			if pos == -1 {
				continue
			}
			candidateSets[i] = filterCandidates(candidateSets[i], func(obj string) bool {
				return !idx.holds(pre.Name, pos, obj)
			})
		}
	}

	var operators []*Operator
	for _, values := range cartesianProduct(candidateSets) {
		assignment := make(map[string]string, len(values))
		for i, param := range action.Parameters {
			assignment[param.Name] = values[i]
		}
		op, ok, err := createOperator(action, assignment, statics, init)
		if err != nil {
			return nil, err
		}
		if ok {
			operators = append(operators, op)
		}
	}
	return operators, nil
}

// createOperator grounds one parameter assignment of action into an
// Operator, or reports ok=false when a static precondition rules the
// assignment out (section 4.1.1's bit-exact second filter).
func createOperator(action ast.ActionSchema, assignment map[string]string, statics map[string]struct{}, init map[string]struct{}) (op *Operator, ok bool, err error) {
	var preFacts []string
	for _, pre := range action.Precondition {
		fact := groundAtom(pre, assignment)
		if _, isStatic := statics[pre.Name]; isStatic {
			if _, present := init[fact]; !present {
				return nil, false, nil
			}
			continue
		}
		preFacts = append(preFacts, fact)
	}
	for _, pre := range action.NegativePrecondition {
		fact := groundAtom(pre, assignment)
		if _, isStatic := statics[pre.Name]; !isStatic {
			return nil, false, errors.Errorf("negative precondition over non-static predicate %q in action %q cannot be compiled away", pre.Name, action.Name)
		}
		if _, present := init[fact]; present {
			return nil, false, nil
		}
	}

	var addFacts, delFacts []string
	for _, eff := range action.Effect.Add {
		addFacts = append(addFacts, groundAtom(eff, assignment))
	}
	for _, eff := range action.Effect.Del {
		delFacts = append(delFacts, groundAtom(eff, assignment))
	}

	args := make([]string, len(action.Parameters))
	for i, param := range action.Parameters {
		args[i] = assignment[param.Name]
	}
	name := ast.Fact(action.Name, args...)

	return NewOperator(name, preFacts, addFacts, delFacts), true, nil
}

func paramPosition(pred ast.PredicateAtom, paramName string) int {
	for i, a := range pred.Args {
		if a == paramName {
			return i
		}
	}
	return -1
}

func filterCandidates(objs []string, keep func(string) bool) []string {
	out := objs[:0]
	for _, o := range objs {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}

func collectFacts(operators []*Operator) map[string]struct{} {
	facts := make(map[string]struct{})
	for _, op := range operators {
		for f := range op.Preconditions {
			facts[f] = struct{}{}
		}
		for f := range op.AddEffects {
			facts[f] = struct{}{}
		}
		for f := range op.DelEffects {
			facts[f] = struct{}{}
		}
	}
	return facts
}

func setToSlice(s map[string]struct{}) []string {
	out := make([]string, 0, len(s))
	for f := range s {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
