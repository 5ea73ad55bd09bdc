package guard

import "cmp"

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type Float interface {
	~float32 | ~float64
}

func NotNegative[T Signed | Float](name string, value T) error {
	if value < 0 {
		return invalid(name, "must not be negative; found `%v`", value)
	}
	return nil
}

// InRange checks `value` against the closed range `[lo, hi]`.
func InRange[T cmp.Ordered](name string, value, lo, hi T) error {
	if value < lo || value > hi {
		return invalid(
			name,
			"must be within [%v, %v]; found `%v`",
			lo,
			hi,
			value,
		)
	}
	return nil
}
