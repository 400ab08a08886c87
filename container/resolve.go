package container

import (
	"errors"
	"fmt"
)

// ── Resolution ────────────────────────────────────────────────────────────────

// Make resolves an abstract from the container.
//
// Resolution order: a binding (singleton cache honored for singleton
// bindings), then an alias (recursing through Make), then unmanaged
// construction via Inject.
//
//	// Laravel: $app->make(UserRepository::class)
//	repo, err := c.Make("UserRepository")
func (c *Container) Make(abstract string) (any, error) {
	return c.make(abstract)
}

// Get resolves an abstract, PSR-11 style. It is Make under another name; the
// get/has pair is the minimal container capability surface.
func (c *Container) Get(abstract string) (any, error) {
	return c.make(abstract)
}

// Build resolves an abstract while bypassing the singleton cache read: a
// bound abstract is always re-resolved, and the result is written to the
// cache only when no entry exists yet. A singleton already resolved via Make
// therefore stays frozen — Build hands back a fresh object without
// overwriting the cached one. Aliases recurse through Build, not Make.
func (c *Container) Build(abstract string) (any, error) {
	return c.build(abstract)
}

// Inject performs pure unmanaged construction of a described type: bindings
// and aliases are not consulted for typeName itself, only for its constructor
// dependencies.
func (c *Container) Inject(typeName string) (any, error) {
	return c.inject(typeName)
}

func (c *Container) make(abstract string) (any, error) {
	if err := c.pushBuilding(abstract); err != nil {
		return nil, err
	}
	defer c.popBuilding()

	c.mu.RLock()
	b, bound := c.bindings[abstract]
	if bound && b.kind == bindSingleton {
		if inst, ok := c.instances[abstract]; ok {
			c.mu.RUnlock()
			return inst, nil
		}
	}
	c.mu.RUnlock()

	if bound {
		inst, err := c.resolveBinding(abstract, b)
		if err != nil {
			return nil, err
		}
		// Transient resolutions land in the cache too; the cache read above
		// is guarded by the singleton tag, so the entry is never handed back
		// for them — the next Make simply re-resolves and re-caches.
		c.mu.Lock()
		c.instances[abstract] = inst
		c.mu.Unlock()
		c.fireAfterResolving(abstract, inst)
		return inst, nil
	}

	c.mu.RLock()
	target, aliased := c.aliases[abstract]
	c.mu.RUnlock()
	if aliased {
		return c.make(target)
	}

	return c.inject(abstract)
}

func (c *Container) build(abstract string) (any, error) {
	if err := c.pushBuilding(abstract); err != nil {
		return nil, err
	}
	defer c.popBuilding()

	c.mu.RLock()
	b, bound := c.bindings[abstract]
	c.mu.RUnlock()

	if bound {
		inst, err := c.resolveBinding(abstract, b)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		if _, cached := c.instances[abstract]; !cached {
			c.instances[abstract] = inst
		}
		c.mu.Unlock()
		c.fireAfterResolving(abstract, inst)
		return inst, nil
	}

	c.mu.RLock()
	target, aliased := c.aliases[abstract]
	c.mu.RUnlock()
	if aliased {
		return c.build(target)
	}

	return c.inject(abstract)
}

// resolveBinding turns a binding's concrete into an instance and runs the
// abstract's extenders over it.
func (c *Container) resolveBinding(abstract string, b binding) (any, error) {
	var inst any
	var err error

	switch concrete := b.concrete.(type) {
	case nil:
		inst, err = c.inject(abstract)
	case Factory:
		inst = concrete(c)
	case func(*Container) any:
		inst = concrete(c)
	case func() any:
		inst = concrete()
	case string:
		inst, err = c.inject(concrete)
	default:
		err = &NotInstantiableError{
			Type:   abstract,
			Reason: fmt.Sprintf("bound concrete of type %T is neither a factory nor a type name", concrete),
		}
	}
	if err != nil {
		return nil, err
	}
	return c.applyExtenders(abstract, inst), nil
}

// inject constructs typeName from its registered constructor description,
// resolving each declared parameter in order.
func (c *Container) inject(typeName string) (any, error) {
	spec, ok := c.types.Lookup(typeName)
	if !ok {
		return nil, &NotInstantiableError{Type: typeName, Reason: "no constructor description registered"}
	}
	if spec.Abstract {
		return nil, &NotInstantiableError{Type: typeName, Reason: "declared abstract"}
	}
	if spec.construct == nil {
		return nil, &NotInstantiableError{Type: typeName, Reason: "description has no construct function"}
	}

	args := make([]any, len(spec.Params))
	for i, param := range spec.Params {
		arg, err := c.resolveParam(typeName, param)
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}

	return spec.construct(args), nil
}

// resolveParam resolves one constructor parameter.
//
// Class-typed parameters go through Make; when that fails with
// NotInstantiableError or UnresolvableDependencyError and a default is
// declared, the default recovers the failure locally, otherwise the error
// propagates. Primitive parameters are satisfied only by their default.
func (c *Container) resolveParam(declaredBy string, param ParamSpec) (any, error) {
	if param.Kind == ParamClass {
		instance, err := c.make(param.Class)
		if err != nil {
			if param.HasDefault && recoverable(err) {
				return param.Default, nil
			}
			return nil, err
		}
		return instance, nil
	}

	if param.HasDefault {
		return param.Default, nil
	}
	return nil, &UnresolvableDependencyError{Param: param.Name, DeclaredBy: declaredBy}
}

// recoverable reports whether a failed class dependency may fall back to the
// parameter's default value. Circular-dependency failures are not recovered:
// masking a cycle with a default would hide a wiring bug.
func recoverable(err error) bool {
	var notInstantiable *NotInstantiableError
	var unresolvable *UnresolvableDependencyError
	return errors.As(err, &notInstantiable) || errors.As(err, &unresolvable)
}

// ── Cycle detection ───────────────────────────────────────────────────────────

// pushBuilding records abstract on the build stack, failing fast when it is
// already being resolved higher up the call chain.
func (c *Container) pushBuilding(abstract string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, frame := range c.buildStack {
		if frame == abstract {
			path := append(append([]string(nil), c.buildStack...), abstract)
			return &CircularDependencyError{Path: path}
		}
	}
	c.buildStack = append(c.buildStack, abstract)
	return nil
}

func (c *Container) popBuilding() {
	c.mu.Lock()
	c.buildStack = c.buildStack[:len(c.buildStack)-1]
	c.mu.Unlock()
}
