// Package container provides a Laravel-compatible IoC (Inversion of Control)
// container for Go: bindings, singletons, aliases, and automatic constructor
// injection driven by an explicit registry of constructor descriptors.
//
// # Overview
//
// The container maps abstract identifiers (type names or arbitrary string
// keys) to concrete instances or factories, and can construct a whole object
// graph by recursively resolving each constructor parameter of a target type.
//
// It mirrors the public API of Laravel's Illuminate\Container\Container as
// closely as Go's type system allows. Because Go has no runtime constructor
// reflection — there is no way to enumerate a type's constructor parameters
// or read their default values at runtime — auto-wiring is driven by a
// TypeRegistry of explicit constructor descriptors instead. Descriptors are
// written by hand (NewType) or derived from a constructor function via
// reflection (FuncType); either way the metadata has to be registered per
// type, which is the price of the pattern in a statically typed host.
//
// # Bindings
//
//	// Transient — new instance every Make()
//	// Laravel: $app->bind(Foo::class, fn($app) => new Foo)
//	c.Register("Foo", func(c *container.Container) any { return &Foo{} })
//
//	// Singleton — created once, reused
//	// Laravel: $app->singleton(Cache::class, fn($app) => new RedisCache)
//	c.Singleton("cache", func(c *container.Container) any {
//	    cfg := container.Resolve[*Config](c, "config")
//	    return cache.NewRedis(cfg)
//	})
//
//	// Pre-built value
//	// Laravel: $app->instance(Config::class, $config)
//	c.Instance("config", myConfig)
//
//	// Alias
//	// Laravel: $app->alias(Cache::class, 'cache')
//	c.Alias("cache", "cacheManager")
//
// # Resolving
//
//	// Untyped
//	// Laravel: $app->make(Cache::class)
//	raw, err := c.Make("cache")
//
//	// Cache-bypassing — always a fresh object, never overwrites a cached one
//	fresh, err := c.Build("cache")
//
//	// Generic (preferred — no type assertion required)
//	cache := container.Resolve[*RedisCache](c, "cache")
//
// Make honors the singleton cache; Build always re-resolves and only fills
// the cache when it is still empty. An identifier with neither binding nor
// alias falls through to auto-wiring.
//
// # Auto-wiring
//
//	// Laravel: $app->make(ReportService::class)  — constructor reflected at runtime
//	c.Describe(container.MustFuncType("app.ReportService", NewReportService))
//	c.Describe(container.NewType("app.Clock", func([]any) any { return &Clock{} }))
//
//	svc, err := c.Inject("app.ReportService")
//
// Each descriptor parameter is either a class dependency (resolved through
// Make, falling back to a declared default when resolution fails) or a
// primitive (satisfied only by its default). A primitive with no default
// fails with UnresolvableDependencyError naming the parameter and its
// declaring type; an unknown or abstract type fails with
// NotInstantiableError; a constructor cycle fails with
// CircularDependencyError.
//
// # Concurrency
//
// The binding, instance, and alias tables are guarded by an internal RWMutex,
// so registration is safe from multiple goroutines. Resolution is plain
// synchronous recursion with no suspension points; the cycle-detection stack
// is container-wide, so concurrent resolution of the same identifier should
// be serialized by the caller.
package container
