package grounder

import "testing"

func TestNewOperatorNormalisesAddDeleteOverlap(t *testing.T) {
	// "(foo)" appears in both add and delete: add wins.
	op := NewOperator("(act)", nil, []string{"(foo)"}, []string{"(foo)", "(bar)"})
	if _, ok := op.DelEffects["(foo)"]; ok {
		t.Fatal("(foo) should have been removed from delete effects")
	}
	if _, ok := op.AddEffects["(foo)"]; !ok {
		t.Fatal("(foo) should remain in add effects")
	}
	if _, ok := op.DelEffects["(bar)"]; !ok {
		t.Fatal("(bar) should remain in delete effects")
	}
}

func TestNewOperatorDropsNoOpAdd(t *testing.T) {
	// A fact already true in the precondition contributes nothing as an add.
	op := NewOperator("(act)", []string{"(foo)"}, []string{"(foo)", "(baz)"}, nil)
	if _, ok := op.AddEffects["(foo)"]; ok {
		t.Fatal("(foo) is already a precondition and should be dropped from add")
	}
	if _, ok := op.AddEffects["(baz)"]; !ok {
		t.Fatal("(baz) should remain in add effects")
	}
}

func TestOperatorIrrelevantWhenEffectsEmpty(t *testing.T) {
	op := NewOperator("(noop)", []string{"(foo)"}, nil, nil)
	if !op.Irrelevant() {
		t.Fatal("an operator with no add or delete effects must be irrelevant")
	}
}
