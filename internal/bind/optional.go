package bind

// Optional is a value which may be absent. An absent optional still carries
// its element type, so it binds as a NULL of that type.
type Optional[T any] struct {
	value T
	has   bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, has: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.has
}

func (o Optional[T]) unwrap() any {
	if !o.has {
		return nil
	}

	return o.value
}

func (o Optional[T]) elemType() Type {
	return TypeFor[T]()
}

type optional interface {
	unwrap() any
	elemType() Type
}

// Enum is implemented by enumerated types which bind by the name of the active variant.
type Enum interface {
	EnumName() string
}
