package container

import (
	"fmt"
	"reflect"

	"github.com/enorith/supports/reflection"
)

// ── Reflection-derived descriptors ────────────────────────────────────────────

// FuncType derives a TypeSpec from a Go constructor function.
//
// Each input of the constructor becomes one ParamSpec, classified by kind:
// pointers, structs and interfaces become class dependencies keyed by TypeKey
// of the parameter type; everything else becomes a primitive with no default.
// Positional overrides replace the derived descriptor for that parameter —
// this is how primitive defaults and custom dependency keys are declared,
// since a Go function signature carries neither parameter names nor defaults.
//
//	spec, err := container.FuncType("app.Mailer", NewMailer,
//	    container.PrimDefault("addr", "localhost:25"))
//
// The constructor must return exactly one value.
func FuncType(name string, constructor any, overrides ...ParamSpec) (*TypeSpec, error) {
	t := reflection.TypeOf(constructor)
	if t == nil || t.Kind() != reflect.Func {
		return nil, &NotInstantiableError{Type: name, Reason: "constructor is not a function"}
	}
	if t.NumOut() != 1 {
		return nil, &NotInstantiableError{Type: name, Reason: "constructor must return exactly one value"}
	}

	params := make([]ParamSpec, t.NumIn())
	for i := 0; i < t.NumIn(); i++ {
		if i < len(overrides) {
			params[i] = overrides[i]
			continue
		}
		in := t.In(i)
		switch in.Kind() {
		case reflect.Ptr, reflect.Struct, reflect.Interface:
			params[i] = Dep(fmt.Sprintf("arg%d", i), TypeKey(in))
		default:
			params[i] = Prim(fmt.Sprintf("arg%d", i))
		}
	}

	fn := reflect.ValueOf(constructor)
	construct := func(args []any) any {
		in := make([]reflect.Value, len(args))
		for i, arg := range args {
			if arg == nil {
				in[i] = reflect.Zero(t.In(i))
			} else {
				in[i] = reflect.ValueOf(arg)
			}
		}
		return fn.Call(in)[0].Interface()
	}

	return &TypeSpec{Name: name, Params: params, construct: construct}, nil
}

// MustFuncType is FuncType panicking on error, for wiring code that runs at
// startup.
func MustFuncType(name string, constructor any, overrides ...ParamSpec) *TypeSpec {
	spec, err := FuncType(name, constructor, overrides...)
	if err != nil {
		panic(fmt.Sprintf("container: MustFuncType(%s): %v", name, err))
	}
	return spec
}

// TypeKey returns the package-qualified type name of v, useful as a stable
// abstract key when working with interfaces. v may be a value, a pointer, or
// a reflect.Type.
//
//	key := container.TypeKey((*UserRepository)(nil))  // "main.UserRepository"
//	c.Singleton(key, factory)
//	repo := container.Resolve[UserRepository](c, key)
func TypeKey(v any) string {
	t := reflection.StructType(v)
	if t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return reflection.TypeString(v)
}
