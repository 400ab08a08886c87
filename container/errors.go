package container

import (
	"fmt"
	"strings"
)

// NotInstantiableError is returned when the terminal constructible type of a
// resolution is missing from the type registry, declared abstract, or
// otherwise not constructible.
type NotInstantiableError struct {
	Type   string
	Reason string
}

func (e *NotInstantiableError) Error() string {
	return fmt.Sprintf("type [%s] is not instantiable: %s", e.Type, e.Reason)
}

// UnresolvableDependencyError is returned when a required primitive
// constructor parameter has no bound value and no default.
type UnresolvableDependencyError struct {
	Param      string
	DeclaredBy string
}

func (e *UnresolvableDependencyError) Error() string {
	return fmt.Sprintf("unresolvable dependency: parameter [%s] of [%s] has no default value", e.Param, e.DeclaredBy)
}

// NotFoundError is returned by strict "key must exist" lookups such as
// TypeRegistry.Get. The Make/Build/Inject path does not use it: an unknown
// type there surfaces as NotInstantiableError, since auto-wiring treats a
// missing registration as a failed construction rather than a failed lookup.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no entry registered for [%s]", e.Name)
}

// CircularDependencyError is returned when a resolution re-enters an
// identifier that is already on the build stack.
type CircularDependencyError struct {
	Path []string
}

func (e *CircularDependencyError) Error() string {
	if len(e.Path) == 0 {
		return "circular dependency detected"
	}
	return "circular dependency detected: " + strings.Join(e.Path, " -> ")
}
