package ast

import "testing"

func TestFactCanonicalForm(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"handempty", nil, "(handempty)"},
		{"ON", []string{"A", "B"}, "(on a b)"},
		{"ontable", []string{"a"}, "(ontable a)"},
	}
	for _, c := range cases {
		got := Fact(c.name, c.args...)
		if got != c.want {
			t.Errorf("Fact(%q, %v) = %q, want %q", c.name, c.args, got, c.want)
		}
	}
}

func TestFactRoundTrip(t *testing.T) {
	fact := Fact("on", "a", "b")
	name, args := ParseFact(fact)
	if name != "on" {
		t.Errorf("name = %q, want on", name)
	}
	if len(args) != 2 || args[0] != "a" || args[1] != "b" {
		t.Errorf("args = %v, want [a b]", args)
	}
	if Fact(name, args...) != fact {
		t.Errorf("round trip did not reproduce canonical fact %q", fact)
	}
}

func TestTypeEqualityCaseInsensitive(t *testing.T) {
	a := NewType("Block", nil)
	b := NewType("BLOCK", nil)
	if !a.Equal(b) {
		t.Errorf("expected types normalised to the same name to be equal")
	}
}
