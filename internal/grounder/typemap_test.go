package grounder

import (
	"reflect"
	"testing"

	"github.com/Koukyosyumei/MyPlan/internal/ast"
)

func TestTypeMapRegistersObjectUnderEveryAncestor(t *testing.T) {
	object := ast.NewType("object", nil)
	vehicle := ast.NewType("vehicle", object)
	truck := ast.NewType("truck", vehicle)

	objects := map[string]*ast.Type{"truck1": truck}
	tm := buildTypeMap(objects)

	if !reflect.DeepEqual(tm["truck"], []string{"truck1"}) {
		t.Fatalf("truck candidates = %v", tm["truck"])
	}
	if !reflect.DeepEqual(tm["vehicle"], []string{"truck1"}) {
		t.Fatalf("vehicle candidates = %v", tm["vehicle"])
	}
	if !reflect.DeepEqual(tm["object"], []string{"truck1"}) {
		t.Fatalf("object candidates = %v", tm["object"])
	}
}

func TestCandidatesDedupesAcrossTypes(t *testing.T) {
	object := ast.NewType("object", nil)
	vehicle := ast.NewType("vehicle", object)
	truck := ast.NewType("truck", vehicle)
	airplane := ast.NewType("airplane", vehicle)

	objects := map[string]*ast.Type{"t1": truck, "a1": airplane}
	tm := buildTypeMap(objects)

	got := tm.candidates([]*ast.Type{vehicle, truck})
	want := []string{"a1", "t1"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
