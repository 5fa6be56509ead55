package ast

import "fmt"

// ConfigError reports malformed input: the PDDL parser raises it for a
// problem object whose type the domain does not declare, and the
// grounder for a domain constant that shadows a problem object. It is
// always fatal to the caller. ErrUndeclaredObject, ErrUndeclaredPredicate
// and ErrUnknownAction are not raised anywhere in this module: init and
// goal atoms are not checked against the declared objects or predicates.
type ConfigError struct {
	Kind    string
	Message string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("config error (%v): %v", e.Kind, e.Message)
}

func ErrConstantShadowsObject(name string) error {
	return ConfigError{
		Kind:    "ConstantShadowsObject",
		Message: fmt.Sprintf("constant %q collides with a problem object of the same name", name),
	}
}

func ErrUndeclaredType(name string) error {
	return ConfigError{
		Kind:    "UndeclaredType",
		Message: fmt.Sprintf("type %q is not declared in the domain", name),
	}
}

func ErrUndeclaredObject(name string) error {
	return ConfigError{
		Kind:    "UndeclaredObject",
		Message: fmt.Sprintf("object %q is not declared by the problem or the domain's constants", name),
	}
}

func ErrUndeclaredPredicate(name string) error {
	return ConfigError{
		Kind:    "UndeclaredPredicate",
		Message: fmt.Sprintf("predicate %q is not declared in the domain", name),
	}
}

func ErrUnknownAction(name string) error {
	return ConfigError{
		Kind:    "UnknownAction",
		Message: fmt.Sprintf("action %q is not declared in the domain", name),
	}
}
