package grounder

import (
	"reflect"
	"testing"
)

func TestCartesianProductOrdering(t *testing.T) {
	got := cartesianProduct([][]string{{"a", "b"}, {"1", "2"}})
	want := [][]string{{"a", "1"}, {"a", "2"}, {"b", "1"}, {"b", "2"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCartesianProductZeroParameters(t *testing.T) {
	got := cartesianProduct(nil)
	want := [][]string{{}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCartesianProductEmptyDomainCollapses(t *testing.T) {
	got := cartesianProduct([][]string{{"a"}, {}})
	if got != nil {
		t.Fatalf("expected nil when a parameter has no candidates, got %v", got)
	}
}
