package searchspace

import (
	"reflect"
	"testing"
)

func TestExtractPlanOmitsRootAction(t *testing.T) {
	nodes := []Node{
		Root(nil, 0),
		Child(0, 0, "(pick-up a)", nil, 1),
		Child(1, 1, "(stack a b)", nil, 2),
	}
	plan := ExtractPlan(nodes, 2)
	want := []string{"(pick-up a)", "(stack a b)"}
	if !reflect.DeepEqual(plan, want) {
		t.Fatalf("got %v, want %v", plan, want)
	}
}

func TestExtractPlanAtRootIsEmpty(t *testing.T) {
	nodes := []Node{Root(nil, 0)}
	plan := ExtractPlan(nodes, 0)
	if len(plan) != 0 {
		t.Fatalf("expected empty plan at root, got %v", plan)
	}
}
