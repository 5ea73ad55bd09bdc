package option

// These are functions rather than methods because methods can't introduce
// type parameters of their own.

// Select maps the wrapped value through `f`. `f` is not called for `None`.
func Select[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.ok {
		return Some(f(o.value))
	}
	return None[U]()
}

// SelectMany is monadic bind: `None` propagates and `Some` defers entirely
// to `f`.
func SelectMany[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if o.ok {
		return f(o.value)
	}
	return None[U]()
}

// MergeWith combines two present values with `f`. If either side is `None`
// the result is `None` and `f` is not called.
func MergeWith[T, U, V any](a Option[T], b Option[U], f func(T, U) V) Option[V] {
	if a.ok && b.ok {
		return Some(f(a.value, b.value))
	}
	return None[V]()
}

// Replace swaps the wrapped value for `value`, keeping presence.
func Replace[T, U any](o Option[T], value U) Option[U] {
	if o.ok {
		return Some(value)
	}
	return None[U]()
}

// CollapseNullable treats a present nil pointer as absent.
func CollapseNullable[T any](o Option[*T]) Option[T] {
	if !o.ok {
		return None[T]()
	}
	return FromNullable(o.value)
}

func Flatten[T any](o Option[Option[T]]) Option[T] {
	if !o.ok {
		return None[T]()
	}
	return o.value
}
