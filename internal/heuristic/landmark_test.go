package heuristic

import (
	"testing"

	"github.com/Koukyosyumei/MyPlan/internal/searchspace"
	"github.com/Koukyosyumei/MyPlan/internal/task"
)

func buildChainTask(t *testing.T) *task.Task {
	t.Helper()
	facts := map[string]struct{}{"(s)": {}, "(m)": {}, "(g)": {}}
	init := map[string]struct{}{}
	goal := map[string]struct{}{"(g)": {}}
	ops := []task.RawOperator{
		{Name: "(produce-s)", Add: []string{"(s)"}},
		{Name: "(produce-m)", Pre: []string{"(s)"}, Add: []string{"(m)"}},
		{Name: "(produce-g)", Pre: []string{"(m)"}, Add: []string{"(g)"}},
	}
	tsk, err := task.Encode("chain", facts, init, goal, ops)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return tsk
}

func TestLandmarkDiscoveryOnChain(t *testing.T) {
	tsk := buildChainTask(t)
	lm := NewLandmark(tsk)

	for _, fact := range []string{"(s)", "(m)", "(g)"} {
		id := tsk.FactIndex[fact]
		if _, ok := lm.landmarks[id]; !ok {
			t.Fatalf("expected %s to be a landmark", fact)
		}
	}

	nodes := []searchspace.Node{searchspace.Root(tsk.Initial, tsk.InitialHash)}
	h := lm.Calculate(0, nodes)
	if h != 3 {
		t.Fatalf("h(root) = %v, want 3 (each of s, m, g has a single achiever)", h)
	}
}

func TestLandmarkRemovalUsesOperatorAddList(t *testing.T) {
	// Regression test for the corrected removal semantics of spec.md
	// section 9: an operator whose name does not textually mention a
	// landmark fact must still clear it from unreached when its
	// add-list contains that fact.
	tsk := buildChainTask(t)
	lm := NewLandmark(tsk)

	nodes := []searchspace.Node{searchspace.Root(tsk.Initial, tsk.InitialHash)}
	lm.Calculate(0, nodes)

	sOp := tsk.Operators[0] // (produce-s), adds (s)
	succState, succHash := tsk.Apply(sOp, tsk.Initial, tsk.InitialHash)
	nodes = append(nodes, searchspace.Child(0, 0, sOp.Name, succState, succHash))

	h := lm.Calculate(1, nodes)
	sID := tsk.FactIndex["(s)"]
	if _, stillUnreached := nodes[1].Unreached[sID]; stillUnreached {
		t.Fatal("(s) should have been cleared from unreached after (produce-s)")
	}
	if h != 2 {
		t.Fatalf("h(node after produce-s) = %v, want 2 (m and g remain)", h)
	}
}

func TestBlindAlwaysZero(t *testing.T) {
	var b Blind
	nodes := []searchspace.Node{searchspace.Root(nil, 0)}
	if b.Calculate(0, nodes) != 0 {
		t.Fatal("Blind must always return 0")
	}
}
