// Package seq holds lazy transformations over `iter.Seq` values.
//
// Sources must be finite and replayable: ranging over a source a second
// time has to start again from the first element, as `slices.Values` does.
// One-shot sequences (e.g. `iter.Pull` adaptors over a network stream) are
// not supported because some transformations need to scan the source more
// than once.
package seq

import (
	"fmt"
	"iter"
	"slices"

	"github.com/weberc2/prelude/guard"
)

// Rotate returns `source` shifted left by `places`, i.e. the elements from
// index `places` onwards followed by the first `places` elements.
//
// Shifts wrap modulo the length of the source: shifting by the length (or
// any multiple of it) is the identity and a negative shift rotates right.
// Rotating by zero returns `source` itself without touching it.
//
// The result is lazy; nothing is read until it is ranged over. A
// non-negative shift reads the source once and buffers at most `places`
// elements. A negative shift reads the source once to learn its length and
// once more to produce the output.
func Rotate[T any](source iter.Seq[T], places int) (iter.Seq[T], error) {
	if err := guard.NotNil("source", source); err != nil {
		return nil, fmt.Errorf("rotating sequence by `%d`: %w", places, err)
	}

	if places == 0 {
		return source, nil
	}

	return func(yield func(T) bool) {
		shift := places
		if shift < 0 {
			length := count(source)
			if length < 1 {
				return
			}
			shift = ((shift % length) + length) % length
		}
		rotateLeft(source, shift, yield)
	}, nil
}

// RotateSlice is an eager `Rotate` over a slice. It returns a new slice and
// leaves `s` untouched.
func RotateSlice[T any](s []T, places int) []T {
	rotated, err := Rotate(slices.Values(s), places)
	if err != nil {
		// `slices.Values` never returns a nil sequence
		panic(err)
	}
	return slices.Collect(rotated)
}

func rotateLeft[T any](source iter.Seq[T], places int, yield func(T) bool) {
	// head collects the elements which move to the back. it only grows
	// until it holds `places` elements, so it never holds more than the
	// source does.
	var head []T
	for item := range source {
		if len(head) < places {
			head = append(head, item)
			continue
		}
		if !yield(item) {
			return
		}
	}

	// if the source ran out before `head` filled up, `head` is the whole
	// sequence and `places` overflowed its length.
	shift := 0
	if length := len(head); length < places {
		if length < 1 {
			return
		}
		shift = places % length
	}

	for _, item := range head[shift:] {
		if !yield(item) {
			return
		}
	}
	for _, item := range head[:shift] {
		if !yield(item) {
			return
		}
	}
}

func count[T any](source iter.Seq[T]) (n int) {
	for range source {
		n++
	}
	return
}
