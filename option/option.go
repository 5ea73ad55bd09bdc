// Package option provides `Option[T]`, a value which is either present
// (`Some`) or absent (`None`).
//
// The zero value is `None`. `Some(nil)` is a legitimate present value for
// nil-able `T` and is distinct from `None`; use `CollapseNullable` to fold
// the two together. When `T` is comparable, `Option[T]` is comparable too
// and may be used as a map key.
package option

import (
	"errors"
	"fmt"
	"iter"
)

var ErrEmptyValueAccess = errors.New("accessing the value of an empty option")

type Option[T any] struct {
	value T
	ok    bool
}

func Some[T any](value T) (o Option[T]) {
	o.value = value
	o.ok = true
	return
}

func None[T any]() (o Option[T]) {
	return
}

// FromNullable returns `None` for a nil pointer and `Some(*p)` otherwise.
func FromNullable[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromOk adapts comma-ok results (map lookups, type assertions, etc).
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

func (o Option[T]) HasValue() bool { return o.ok }

func (o Option[T]) IsEmpty() bool { return !o.ok }

// Value returns the wrapped value or `ErrEmptyValueAccess`.
func (o Option[T]) Value() (T, error) {
	if !o.ok {
		var zero T
		return zero, fmt.Errorf(
			"option of type `%T`: %w",
			zero,
			ErrEmptyValueAccess,
		)
	}
	return o.value, nil
}

func (o Option[T]) ValueOrDefault() T { return o.value }

func (o Option[T]) ValueOr(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// Get returns the wrapped value and whether it is present. The value is
// the zero value of `T` when the bool is false.
func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

// ToNullable returns nil for `None` and a pointer to a copy of the value
// otherwise.
func (o Option[T]) ToNullable() *T {
	if !o.ok {
		return nil
	}
	value := o.value
	return &value
}

func (o Option[T]) FillIfEmpty(value T) Option[T] {
	if o.ok {
		return o
	}
	return Some(value)
}

// Where keeps the value only if it satisfies `predicate`.
func (o Option[T]) Where(predicate func(T) bool) Option[T] {
	if o.ok && predicate(o.value) {
		return o
	}
	return None[T]()
}

// All yields the wrapped value, if any.
func (o Option[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.ok {
			yield(o.value)
		}
	}
}

func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

func Equal[T comparable](a, b Option[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is `Equal` for non-comparable `T`. `eq` is only called when
// both options are present.
func EqualFunc[T any](a, b Option[T], eq func(T, T) bool) bool {
	if a.ok != b.ok {
		return false
	}
	return !a.ok || eq(a.value, b.value)
}
