package grounder

import (
	"sort"
	"testing"

	"go.uber.org/zap"

	"github.com/Koukyosyumei/MyPlan/internal/ast"
	"github.com/Koukyosyumei/MyPlan/internal/task"
)

func nopLogger() *zap.SugaredLogger { return zap.NewNop().Sugar() }

// TestGroundRelevancePruning is scenario 4 of spec.md section 8: an
// action whose effects never touch anything the goal depends on must be
// pruned, and only it.
func TestGroundRelevancePruning(t *testing.T) {
	object := ast.NewType("object", nil)
	block := ast.NewType("block", object)

	domain := &ast.Domain{
		Name:      "blocks",
		Types:     map[string]*ast.Type{"object": object, "block": block},
		Constants: map[string]*ast.Type{},
		Predicates: []ast.PredicateSchema{
			{Name: "ontable"}, {Name: "clear"}, {Name: "handempty"}, {Name: "holding"}, {Name: "painted"},
		},
		Actions: []ast.ActionSchema{
			{
				Name:         "pick-up",
				Parameters:   ast.Signature{{Name: "x", Types: []*ast.Type{block}}},
				Precondition: []ast.PredicateAtom{{Name: "ontable", Args: []string{"x"}}, {Name: "clear", Args: []string{"x"}}, {Name: "handempty"}},
				Effect: ast.Effect{
					Add: []ast.PredicateAtom{{Name: "holding", Args: []string{"x"}}},
					Del: []ast.PredicateAtom{{Name: "ontable", Args: []string{"x"}}, {Name: "clear", Args: []string{"x"}}, {Name: "handempty"}},
				},
			},
			{
				Name:         "paint",
				Parameters:   ast.Signature{{Name: "x", Types: []*ast.Type{block}}},
				Precondition: []ast.PredicateAtom{{Name: "clear", Args: []string{"x"}}},
				Effect:       ast.Effect{Add: []ast.PredicateAtom{{Name: "painted", Args: []string{"x"}}}},
			},
		},
	}

	problem := &ast.Problem{
		Name:    "one-block",
		Domain:  domain,
		Objects: map[string]*ast.Type{"a": block},
		Init: []ast.PredicateAtom{
			{Name: "ontable", Args: []string{"a"}},
			{Name: "clear", Args: []string{"a"}},
			{Name: "handempty"},
		},
		Goal: []ast.PredicateAtom{{Name: "holding", Args: []string{"a"}}},
	}

	task, err := Ground(problem, Options{RemoveStaticsFromInitialState: true, RemoveIrrelevantOperators: true}, nopLogger())
	if err != nil {
		t.Fatalf("Ground: %v", err)
	}
	if len(task.Operators) != 1 {
		t.Fatalf("expected exactly 1 operator after relevance pruning, got %d: %v", len(task.Operators), operatorNames(task))
	}
	if task.Operators[0].Name != "(pick-up a)" {
		t.Fatalf("expected (pick-up a) to survive, got %s", task.Operators[0].Name)
	}
}

// TestGroundStaticPruning is scenario 5: a logistics-style static
// predicate (in-city) must only let drive operators ground for
// (from, to, city) triples consistent with init.
func TestGroundStaticPruning(t *testing.T) {
	object := ast.NewType("object", nil)
	truckType := ast.NewType("truck", object)
	locType := ast.NewType("location", object)
	cityType := ast.NewType("city", object)

	domain := &ast.Domain{
		Name: "logistics",
		Types: map[string]*ast.Type{
			"object": object, "truck": truckType, "location": locType, "city": cityType,
		},
		Constants:  map[string]*ast.Type{},
		Predicates: []ast.PredicateSchema{{Name: "in-city"}, {Name: "at"}},
		Actions: []ast.ActionSchema{
			{
				Name: "drive",
				Parameters: ast.Signature{
					{Name: "t", Types: []*ast.Type{truckType}},
					{Name: "from", Types: []*ast.Type{locType}},
					{Name: "to", Types: []*ast.Type{locType}},
					{Name: "c", Types: []*ast.Type{cityType}},
				},
				Precondition: []ast.PredicateAtom{
					{Name: "in-city", Args: []string{"from", "c"}},
					{Name: "in-city", Args: []string{"to", "c"}},
					{Name: "at", Args: []string{"t", "from"}},
				},
				Effect: ast.Effect{
					Add: []ast.PredicateAtom{{Name: "at", Args: []string{"t", "to"}}},
					Del: []ast.PredicateAtom{{Name: "at", Args: []string{"t", "from"}}},
				},
			},
		},
	}

	problem := &ast.Problem{
		Name:   "one-truck",
		Domain: domain,
		Objects: map[string]*ast.Type{
			"truck1": truckType, "loca": locType, "locb": locType, "locc": locType,
			"city1": cityType, "city2": cityType,
		},
		Init: []ast.PredicateAtom{
			{Name: "in-city", Args: []string{"loca", "city1"}},
			{Name: "in-city", Args: []string{"locb", "city1"}},
			{Name: "in-city", Args: []string{"locc", "city2"}},
			{Name: "at", Args: []string{"truck1", "loca"}},
		},
		Goal: []ast.PredicateAtom{{Name: "at", Args: []string{"truck1", "locc"}}},
	}

	task, err := Ground(problem, Options{RemoveStaticsFromInitialState: true, RemoveIrrelevantOperators: false}, nopLogger())
	if err != nil {
		t.Fatalf("Ground: %v", err)
	}

	want := []string{
		"(drive truck1 loca loca city1)",
		"(drive truck1 loca locb city1)",
		"(drive truck1 locb loca city1)",
		"(drive truck1 locb locb city1)",
		"(drive truck1 locc locc city2)",
	}
	got := operatorNames(task)
	sort.Strings(got)
	sort.Strings(want)
	if len(got) != len(want) {
		t.Fatalf("got %d operators %v, want %v", len(got), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

// TestGroundInvariants checks the STRIPS invariants of spec.md section 8
// hold for every operator Ground produces on a representative task.
func TestGroundInvariants(t *testing.T) {
	object := ast.NewType("object", nil)
	block := ast.NewType("block", object)
	domain := &ast.Domain{
		Name:       "blocks",
		Types:      map[string]*ast.Type{"object": object, "block": block},
		Constants:  map[string]*ast.Type{},
		Predicates: []ast.PredicateSchema{{Name: "ontable"}, {Name: "clear"}, {Name: "handempty"}, {Name: "holding"}},
		Actions: []ast.ActionSchema{
			{
				Name:         "pick-up",
				Parameters:   ast.Signature{{Name: "x", Types: []*ast.Type{block}}},
				Precondition: []ast.PredicateAtom{{Name: "ontable", Args: []string{"x"}}, {Name: "clear", Args: []string{"x"}}, {Name: "handempty"}},
				Effect: ast.Effect{
					Add: []ast.PredicateAtom{{Name: "holding", Args: []string{"x"}}},
					Del: []ast.PredicateAtom{{Name: "ontable", Args: []string{"x"}}, {Name: "clear", Args: []string{"x"}}, {Name: "handempty"}},
				},
			},
		},
	}
	problem := &ast.Problem{
		Name:    "one-block",
		Domain:  domain,
		Objects: map[string]*ast.Type{"a": block},
		Init: []ast.PredicateAtom{
			{Name: "ontable", Args: []string{"a"}}, {Name: "clear", Args: []string{"a"}}, {Name: "handempty"},
		},
		Goal: []ast.PredicateAtom{{Name: "holding", Args: []string{"a"}}},
	}

	tsk, err := Ground(problem, DefaultOptions(), nopLogger())
	if err != nil {
		t.Fatalf("Ground: %v", err)
	}

	universe := make(map[int]struct{}, len(tsk.Facts))
	for i := range tsk.Facts {
		universe[i] = struct{}{}
	}

	for _, op := range tsk.Operators {
		pre, add, del := toSetInts(op.Pre), toSetInts(op.Add), toSetInts(op.Del)
		for f := range pre {
			if _, ok := add[f]; ok {
				t.Fatalf("%s: fact %d in both pre and add", op.Name, f)
			}
		}
		for f := range add {
			if _, ok := del[f]; ok {
				t.Fatalf("%s: fact %d in both add and del", op.Name, f)
			}
		}
		for f := range pre {
			if _, ok := universe[f]; !ok {
				t.Fatalf("%s: precondition fact %d outside fact universe", op.Name, f)
			}
		}
	}
}

func toSetInts(ids []int) map[int]struct{} {
	s := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func operatorNames(tsk *task.Task) []string {
	names := make([]string, len(tsk.Operators))
	for i, op := range tsk.Operators {
		names[i] = op.Name
	}
	return names
}
