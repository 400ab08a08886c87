package container

// ── Binding types ─────────────────────────────────────────────────────────────

// Factory is a function that builds a concrete value from the container.
type Factory func(c *Container) any

// bindingKind tags the lifetime of a binding.
type bindingKind int

const (
	// bindSingleton bindings are cached after the first resolution.
	bindSingleton bindingKind = iota
	// bindTransient bindings are re-resolved on every Make/Build.
	bindTransient
)

// binding holds a registered concrete and its lifetime tag.
//
// concrete is one of:
//   - a Factory (or bare func(*Container) any / func() any)
//   - a string naming a described type in the TypeRegistry
//   - nil, meaning "construct the abstract identifier itself"
//
// Anything else is accepted at registration time and rejected with
// NotInstantiableError when the binding is first resolved.
type binding struct {
	kind     bindingKind
	concrete any
}

// extender wraps an already-resolved instance with decorator logic.
type extender func(instance any, c *Container) any
