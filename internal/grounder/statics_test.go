package grounder

import (
	"testing"

	"github.com/Koukyosyumei/MyPlan/internal/ast"
)

func TestStaticPredicatesExcludesEffectPredicates(t *testing.T) {
	domain := &ast.Domain{
		Predicates: []ast.PredicateSchema{
			{Name: "in-city"},
			{Name: "at"},
		},
		Actions: []ast.ActionSchema{
			{
				Name:   "drive",
				Effect: ast.Effect{Add: []ast.PredicateAtom{{Name: "at"}}, Del: []ast.PredicateAtom{{Name: "at"}}},
			},
		},
	}
	statics := staticPredicates(domain)
	if _, ok := statics["in-city"]; !ok {
		t.Fatal("in-city is never added or deleted and must be static")
	}
	if _, ok := statics["at"]; ok {
		t.Fatal("at is both added and deleted by drive and must not be static")
	}
}

func TestStaticIndexHolds(t *testing.T) {
	init := map[string]struct{}{"(in-city truck1 paris)": {}}
	statics := map[string]struct{}{"in-city": {}}
	idx := buildStaticIndex(init, statics)

	if !idx.holds("in-city", 0, "truck1") {
		t.Fatal("expected truck1 at position 0")
	}
	if !idx.holds("in-city", 1, "paris") {
		t.Fatal("expected paris at position 1")
	}
	if idx.holds("in-city", 0, "paris") {
		t.Fatal("paris is not at position 0")
	}
	if idx.holds("at", 0, "truck1") {
		t.Fatal("at was never indexed (not static)")
	}
}
