package container

import (
	"sort"
	"sync"
)

// ── Constructor metadata ──────────────────────────────────────────────────────
//
// Go has no runtime constructor reflection: there is no way to ask a struct
// type for its "constructor parameters" or their default values. The container
// therefore keeps an explicit registry of constructor descriptors — each
// constructible type is described once (by hand via NewType, or derived from a
// constructor function via FuncType) and auto-wired from that description.

// ParamKind classifies a constructor parameter descriptor.
type ParamKind int

const (
	// ParamPrimitive is a scalar or otherwise untyped parameter. It can only
	// be satisfied by a declared default value.
	ParamPrimitive ParamKind = iota
	// ParamClass is a dependency on another abstract, resolved through the
	// container (and falling back to its default value if resolution fails).
	ParamClass
)

// ParamSpec describes one constructor parameter: its name, whether it is a
// primitive or a class-typed dependency, and an optional default value.
type ParamSpec struct {
	Name       string
	Kind       ParamKind
	Class      string // abstract identifier of the dependency (ParamClass only)
	Default    any
	HasDefault bool
}

// Prim describes a primitive parameter with no default. Resolving it always
// fails with UnresolvableDependencyError.
func Prim(name string) ParamSpec {
	return ParamSpec{Name: name, Kind: ParamPrimitive}
}

// PrimDefault describes a primitive parameter carrying a default value.
func PrimDefault(name string, def any) ParamSpec {
	return ParamSpec{Name: name, Kind: ParamPrimitive, Default: def, HasDefault: true}
}

// Dep describes a class-typed parameter resolved via Make(class).
func Dep(name, class string) ParamSpec {
	return ParamSpec{Name: name, Kind: ParamClass, Class: class}
}

// DepDefault describes a class-typed parameter that falls back to def when
// class cannot be resolved.
func DepDefault(name, class string, def any) ParamSpec {
	return ParamSpec{Name: name, Kind: ParamClass, Class: class, Default: def, HasDefault: true}
}

// TypeSpec is the constructor description of one constructible type.
type TypeSpec struct {
	Name     string
	Abstract bool // declared but never constructible (interface-like)
	Params   []ParamSpec

	construct func(args []any) any
}

// NewType describes a constructible type by hand.
//
//	container.NewType("mail.Mailer", func(args []any) any {
//	    return NewMailer(args[0].(string), args[1].(*Transport))
//	}, container.PrimDefault("addr", "localhost:25"), container.Dep("transport", "mail.Transport"))
func NewType(name string, construct func(args []any) any, params ...ParamSpec) *TypeSpec {
	return &TypeSpec{Name: name, Params: params, construct: construct}
}

// AbstractType declares a name that exists but can never be constructed.
// Resolving it directly yields NotInstantiableError — bind an implementation
// or alias it to one instead.
func AbstractType(name string) *TypeSpec {
	return &TypeSpec{Name: name, Abstract: true}
}

// ── TypeRegistry ──────────────────────────────────────────────────────────────

// TypeRegistry maps type names to constructor descriptions. Every Container
// owns one (see Container.Types); registries can also be shared across
// containers via NewWithTypes.
type TypeRegistry struct {
	mu    sync.RWMutex
	specs map[string]*TypeSpec
}

// NewTypeRegistry creates an empty registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{specs: make(map[string]*TypeSpec)}
}

// Define registers (or replaces) a type description.
func (r *TypeRegistry) Define(spec *TypeSpec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.specs[spec.Name] = spec
}

// Lookup returns the description for name, if any.
func (r *TypeRegistry) Lookup(name string) (*TypeSpec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	spec, ok := r.specs[name]
	return spec, ok
}

// Has reports whether name has a description.
func (r *TypeRegistry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Get is the strict variant of Lookup: a missing name is a NotFoundError.
func (r *TypeRegistry) Get(name string) (*TypeSpec, error) {
	spec, ok := r.Lookup(name)
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return spec, nil
}

// Names returns all described type names, sorted (for debugging).
func (r *TypeRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.specs))
	for name := range r.specs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
