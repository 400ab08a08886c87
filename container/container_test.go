package container_test

import (
	"testing"

	"github.com/km-arc/go-container/container"
)

// ── Has ───────────────────────────────────────────────────────────────────────

func TestHas_BindingOrAlias(t *testing.T) {
	c := container.New()
	c.Singleton("cache", func(*container.Container) any { return "redis" })
	c.Alias("cache", "store")

	if !c.Has("cache") {
		t.Error("Has(cache) should be true for a binding")
	}
	if !c.Has("store") {
		t.Error("Has(store) should be true for an alias")
	}
	if c.Has("queue") {
		t.Error("Has(queue) should be false for an unknown identifier")
	}
}

func TestHas_DoesNotGuaranteeConstruction(t *testing.T) {
	c := container.New()
	c.Singleton("broken", "ghost-type")

	if !c.Has("broken") {
		t.Error("Has should be true even when resolution would fail")
	}
	if _, err := c.Make("broken"); err == nil {
		t.Error("Make(broken) should fail")
	}
}

// ── Unbind ────────────────────────────────────────────────────────────────────

func TestUnbind_RemovesBindingInstanceAndAliases(t *testing.T) {
	c := container.New()
	c.Singleton("cache", func(*container.Container) any { return &nullLogger{} })
	c.Alias("cache", "store")
	c.Alias("cache", "kv")

	if _, err := c.Make("cache"); err != nil {
		t.Fatalf("Make(cache): %v", err)
	}

	c.Unbind("cache")

	if c.Has("cache") {
		t.Error("Has(cache) should be false after Unbind")
	}
	if c.Has("store") || c.Has("kv") {
		t.Error("aliases targeting an unbound abstract should be removed")
	}
	if c.Resolved("cache") {
		t.Error("the cached instance should be removed")
	}
}

func TestUnbind_LeavesUnrelatedAliases(t *testing.T) {
	c := container.New()
	c.Singleton("cache", func(*container.Container) any { return "redis" })
	c.Singleton("queue", func(*container.Container) any { return "amqp" })
	c.Alias("queue", "bus")

	c.Unbind("cache")

	if !c.Has("bus") {
		t.Error("aliases of other abstracts must survive Unbind")
	}
}

func TestUnbind_UnknownIdentifierIsNoop(t *testing.T) {
	c := container.New()
	c.Unbind("ghost") // must not panic
}

// ── Instance ──────────────────────────────────────────────────────────────────

func TestInstance_ReturnsTheExactValue(t *testing.T) {
	c := container.New()
	logger := &nullLogger{prefix: "app"}
	c.Instance("logger", logger)

	if container.Resolve[*nullLogger](c, "logger") != logger {
		t.Error("Make should return the registered instance itself")
	}
	if !c.Resolved("logger") {
		t.Error("an instanced value counts as resolved")
	}
}

func TestInstance_ContainerBindsItself(t *testing.T) {
	c := container.New()

	if container.Resolve[*container.Container](c, "container") != c {
		t.Error("the container should resolve itself under 'container'")
	}
}

// ── Extend ────────────────────────────────────────────────────────────────────

func TestExtend_DecoratesFutureResolutions(t *testing.T) {
	c := container.New()
	c.Register("greeting", func(*container.Container) any { return "hello" })
	c.Extend("greeting", func(instance any, _ *container.Container) any {
		return instance.(string) + ", world"
	})

	if got := container.Resolve[string](c, "greeting"); got != "hello, world" {
		t.Errorf("got %q, want 'hello, world'", got)
	}
}

func TestExtend_ReappliesToResolvedSingleton(t *testing.T) {
	c := container.New()
	c.Singleton("greeting", func(*container.Container) any { return "hello" })

	_ = container.Resolve[string](c, "greeting") // resolve first

	c.Extend("greeting", func(instance any, _ *container.Container) any {
		return instance.(string) + "!"
	})

	if got := container.Resolve[string](c, "greeting"); got != "hello!" {
		t.Errorf("got %q, want 'hello!'", got)
	}
}

// ── Callbacks ─────────────────────────────────────────────────────────────────

func TestAfterResolving_FiresOnResolution(t *testing.T) {
	c := container.New()
	c.Singleton("cache", func(*container.Container) any { return "redis" })

	var seen []string
	c.AfterResolving(func(abstract string, _ any) {
		seen = append(seen, abstract)
	})

	_, _ = c.Make("cache")
	_, _ = c.Make("cache") // cached — no second event

	if len(seen) != 1 || seen[0] != "cache" {
		t.Errorf("after-resolving events: got %v, want one event for 'cache'", seen)
	}
}

func TestRebinding_FiresWhenReboundAfterResolution(t *testing.T) {
	c := container.New()
	c.Singleton("driver", func(*container.Container) any { return "file" })
	_, _ = c.Make("driver")

	var rebound any
	c.Rebinding("driver", func(instance any) { rebound = instance })

	c.Singleton("driver", func(*container.Container) any { return "redis" })

	if rebound != "redis" {
		t.Errorf("rebound callback: got %v, want the freshly built 'redis'", rebound)
	}
}

// ── Flush / Bindings ──────────────────────────────────────────────────────────

func TestFlush_ResetsRegistrations(t *testing.T) {
	c := container.New()
	c.Singleton("cache", func(*container.Container) any { return "redis" })
	c.Alias("cache", "store")
	_, _ = c.Make("cache")

	c.Flush()

	if c.Has("cache") || c.Has("store") || c.Resolved("cache") {
		t.Error("Flush should clear bindings, aliases and instances")
	}
	if !c.Has("container") {
		t.Error("the container self-binding should be restored after Flush")
	}
}

func TestBindings_ListsRegisteredKeys(t *testing.T) {
	c := container.New()
	c.Singleton("cache", func(*container.Container) any { return "redis" })
	c.Register("queue", func(*container.Container) any { return "amqp" })

	keys := map[string]bool{}
	for _, k := range c.Bindings() {
		keys[k] = true
	}
	if !keys["cache"] || !keys["queue"] {
		t.Errorf("Bindings(): got %v, want cache and queue present", c.Bindings())
	}
}

// ── Generic helpers ───────────────────────────────────────────────────────────

func TestResolve_PanicsOnWrongType(t *testing.T) {
	c := container.New()
	c.Singleton("answer", func(*container.Container) any { return 42 })

	defer func() {
		if recover() == nil {
			t.Error("Resolve with a mismatched type parameter should panic")
		}
	}()
	_ = container.Resolve[string](c, "answer")
}

func TestMustResolve_ReportsFailureWithoutPanicking(t *testing.T) {
	c := container.New()

	if _, ok := container.MustResolve[string](c, "missing"); ok {
		t.Error("MustResolve on an unknown identifier should report ok=false")
	}
}
