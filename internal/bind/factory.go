package bind

import (
	"reflect"
)

// Factory resolves an argument for a value of expected type. Chain is the
// resolution chain the factory belongs to, used for nested values.
type Factory interface {
	Build(expected Type, v any, chain *Arguments) Result
}

// FactoryFunc adapts a function to Factory.
type FactoryFunc func(expected Type, v any, chain *Arguments) Result

func (f FactoryFunc) Build(expected Type, v any, chain *Arguments) Result {
	return f(expected, v, chain)
}

type builtInFactory struct {
	registry *Registry
}

func BuiltInFactory(registry *Registry) Factory {
	return &builtInFactory{registry: registry}
}

func (f *builtInFactory) Build(expected Type, v any, chain *Arguments) Result {
	if v != nil && expected.Kind == KindAny {
		expected = TypeOf(v)
	}

	if builder, has := f.registry.Lookup(expected.Kind); has {
		a, err := builder(v)
		if err != nil {
			return Failed(err)
		}

		return Bound(a)
	}

	if e, ok := v.(Enum); ok && !isNil(e) {
		return Bound(text(e.EnumName()))
	}

	if nested, ok := unwrap(v); ok {
		return chain.Find(nestedType(expected, nested), nested)
	}

	if v == nil {
		return Bound(chain.UntypedNull())
	}

	return Declined()
}

// unwrap opens optionals and pointers. Absent content is nil.
func unwrap(v any) (any, bool) {
	switch x := v.(type) {
	case nil:
		return nil, false
	case optional:
		return x.unwrap(), true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		return nil, false
	}
	if rv.IsNil() {
		return nil, true
	}

	return rv.Elem().Interface(), true
}

// nestedType prefers the declared element type, then the type of the content.
func nestedType(expected Type, nested any) Type {
	switch {
	case expected.Elem != nil && expected.Elem.Kind != KindAny:
		return *expected.Elem
	case nested != nil:
		return TypeOf(nested)
	default:
		return Any
	}
}
