package container

import (
	"fmt"
	"sync"
)

// ── Container ─────────────────────────────────────────────────────────────────

// Container is the IoC container — mirrors Laravel's Illuminate\Container\Container.
//
// It supports:
//   - Singleton / Register (transient) / Instance / Alias / Unbind
//   - Make / Build / Inject / Get
//   - Auto-wiring through an explicit TypeRegistry of constructor descriptors
//   - Extend (decorate / wrap resolved instances)
//   - Rebound callbacks
//   - Resolved event callbacks
type Container struct {
	mu sync.RWMutex

	// abstract → binding
	bindings map[string]binding

	// abstract → resolved instance (see Make/Build for the exact cache rules)
	instances map[string]any

	// alias → abstract
	aliases map[string]string

	// abstract → extender funcs
	extenders map[string][]extender

	// rebound callbacks: abstract → []func(any)
	reboundCallbacks map[string][]func(any)

	// resolved callbacks: []func(abstract, instance)
	afterResolving []func(string, any)

	// stack of abstracts currently being resolved (for cycle detection)
	buildStack []string

	// constructor descriptors backing auto-wiring
	types *TypeRegistry
}

// New creates an empty container with its own TypeRegistry.
func New() *Container {
	return NewWithTypes(NewTypeRegistry())
}

// NewWithTypes creates a container backed by an existing TypeRegistry, so
// several containers can share one set of constructor descriptors.
func NewWithTypes(types *TypeRegistry) *Container {
	c := &Container{
		bindings:         make(map[string]binding),
		instances:        make(map[string]any),
		aliases:          make(map[string]string),
		extenders:        make(map[string][]extender),
		reboundCallbacks: make(map[string][]func(any)),
		types:            types,
	}
	// Bind the container to itself — like Laravel's $app->instance()
	c.Instance("container", c)
	return c
}

// Types returns the container's constructor-descriptor registry.
func (c *Container) Types() *TypeRegistry { return c.types }

// Describe registers a type description, shorthand for Types().Define.
func (c *Container) Describe(spec *TypeSpec) {
	c.types.Define(spec)
}

// ── Registration ──────────────────────────────────────────────────────────────

// Singleton registers a concrete whose result is cached after first resolution.
//
// concrete is a Factory, the name of a described type, or nil to construct the
// abstract itself. Nothing is validated here — a malformed concrete only fails
// when resolved.
//
//	// Laravel: $app->singleton(Cache::class, fn($app) => new RedisCache($app))
//	c.Singleton("cache", func(c *container.Container) any {
//	    return cache.NewRedis(container.Resolve[*Config](c, "config"))
//	})
func (c *Container) Singleton(abstract string, concrete any) {
	c.bind(abstract, concrete, bindSingleton)
}

// Register registers a transient concrete: re-resolved on every Make/Build,
// never treated as cached.
//
//	// Laravel: $app->bind(UserRepository::class, fn($app) => new EloquentUserRepository($app))
//	c.Register("UserRepository", func(c *container.Container) any {
//	    return &EloquentUserRepository{}
//	})
func (c *Container) Register(abstract string, concrete any) {
	c.bind(abstract, concrete, bindTransient)
}

// Instance registers a pre-built value as an already-resolved singleton.
//
//	// Laravel: $app->instance(Config::class, $config)
//	c.Instance("config", myConfig)
func (c *Container) Instance(abstract string, instance any) {
	c.mu.Lock()
	c.bindings[abstract] = binding{kind: bindSingleton, concrete: Factory(func(*Container) any { return instance })}
	c.instances[abstract] = instance
	c.mu.Unlock()
	c.fireRebound(abstract, instance)
}

// bind is the internal registration helper.
func (c *Container) bind(abstract string, concrete any, kind bindingKind) {
	c.mu.Lock()
	_, wasResolved := c.instances[abstract]
	c.bindings[abstract] = binding{kind: kind, concrete: concrete}
	c.mu.Unlock()

	// Re-binding over an already-resolved abstract notifies rebound listeners
	// with a fresh build; the cached instance itself is untouched (only Unbind
	// removes cache entries).
	if wasResolved && c.hasReboundCallbacks(abstract) {
		if instance, err := c.Build(abstract); err == nil {
			c.fireRebound(abstract, instance)
		}
	}
}

// Alias records that alias refers to abstract. Chains of aliases resolve by
// repeated lookup; a cycle fails at resolution time with
// CircularDependencyError.
//
//	// Laravel: $app->alias(Cache::class, 'cache')
//	c.Alias("cache", "cacheManager")
func (c *Container) Alias(abstract, alias string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aliases[alias] = abstract
}

// Unbind removes the binding and cached instance for abstract, along with
// every alias whose target equals abstract.
func (c *Container) Unbind(abstract string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.bindings, abstract)
	delete(c.instances, abstract)
	for alias, target := range c.aliases {
		if target == abstract {
			delete(c.aliases, alias)
		}
	}
}

// ── Extend ────────────────────────────────────────────────────────────────────

// Extend decorates the resolved instance of an abstract.
//
//	// Laravel: $app->extend(Logger::class, fn($logger, $app) => new TimestampLogger($logger))
//	c.Extend("logger", func(instance any, c *container.Container) any {
//	    return logging.NewTimestampWrapper(instance.(*Logger))
//	})
func (c *Container) Extend(abstract string, fn extender) {
	c.mu.Lock()
	c.extenders[abstract] = append(c.extenders[abstract], fn)
	inst, resolved := c.instances[abstract]
	c.mu.Unlock()

	// If already resolved, decorate the cached instance and refire rebound
	if resolved {
		inst = fn(inst, c)
		c.mu.Lock()
		c.instances[abstract] = inst
		c.mu.Unlock()
		c.fireRebound(abstract, inst)
	}
}

func (c *Container) applyExtenders(abstract string, instance any) any {
	c.mu.RLock()
	exts := c.extenders[abstract]
	c.mu.RUnlock()
	for _, ext := range exts {
		instance = ext(instance, c)
	}
	return instance
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// Has reports whether abstract has a binding or an alias entry. It does not
// guarantee that resolution will succeed.
//
//	// Laravel: $app->bound(UserRepository::class)
func (c *Container) Has(abstract string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, bound := c.bindings[abstract]
	_, aliased := c.aliases[abstract]
	return bound || aliased
}

// Resolved returns true if the abstract has been resolved at least once.
//
//	// Laravel: $app->resolved(Cache::class)
func (c *Container) Resolved(abstract string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.instances[abstract]
	return ok
}

// Flush resets the entire container. The TypeRegistry is kept — descriptors
// describe types, not registrations.
func (c *Container) Flush() {
	c.mu.Lock()
	c.bindings = make(map[string]binding)
	c.instances = make(map[string]any)
	c.aliases = make(map[string]string)
	c.extenders = make(map[string][]extender)
	c.mu.Unlock()
	c.Instance("container", c)
}

// Bindings returns a copy of all registered abstract keys (for debugging).
func (c *Container) Bindings() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.bindings)+len(c.instances))
	for k := range c.bindings {
		out = append(out, k)
	}
	for k := range c.instances {
		if _, already := c.bindings[k]; !already {
			out = append(out, k)
		}
	}
	return out
}

// ── Callbacks ─────────────────────────────────────────────────────────────────

// Rebinding registers a callback to be called whenever an abstract is re-bound
// or re-instanced.
//
//	// Laravel: $app->rebinding(UserRepository::class, fn($app, $repo) => ...)
func (c *Container) Rebinding(abstract string, cb func(any)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reboundCallbacks[abstract] = append(c.reboundCallbacks[abstract], cb)
}

// AfterResolving registers a callback fired after any abstract is resolved.
//
//	// Laravel: $app->afterResolving(fn($object, $app) => ...)
func (c *Container) AfterResolving(cb func(abstract string, instance any)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.afterResolving = append(c.afterResolving, cb)
}

func (c *Container) hasReboundCallbacks(abstract string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.reboundCallbacks[abstract]) > 0
}

func (c *Container) fireRebound(abstract string, instance any) {
	c.mu.RLock()
	cbs := c.reboundCallbacks[abstract]
	c.mu.RUnlock()
	for _, cb := range cbs {
		cb(instance)
	}
}

func (c *Container) fireAfterResolving(abstract string, instance any) {
	c.mu.RLock()
	cbs := c.afterResolving
	c.mu.RUnlock()
	for _, cb := range cbs {
		cb(abstract, instance)
	}
}

// ── Generics helpers ──────────────────────────────────────────────────────────

// Resolve is a generic helper that calls Make and type-asserts the result,
// panicking on failure.
//
//	// Instead of: db, _ := c.Make("db"); typed := db.(*sql.DB)
//	// Write:      db := container.Resolve[*sql.DB](c, "db")
func Resolve[T any](c *Container, abstract string) T {
	instance, err := c.Make(abstract)
	if err != nil {
		panic(fmt.Sprintf("container: Resolve[%T]: [%s]: %v", *new(T), abstract, err))
	}
	typed, ok := instance.(T)
	if !ok {
		panic(fmt.Sprintf("container: Resolve[%T]: [%s] resolved to %T", *new(T), abstract, instance))
	}
	return typed
}

// MustResolve is like Resolve but returns (T, bool) without panicking.
func MustResolve[T any](c *Container, abstract string) (T, bool) {
	instance, err := c.Make(abstract)
	if err != nil {
		var zero T
		return zero, false
	}
	typed, ok := instance.(T)
	return typed, ok
}
