// Package guard holds guard-clause helpers for validating arguments at the
// top of a function. Every failure is an `*ArgumentError`, which matches
// `ErrInvalidArgument` under `errors.Is`.
package guard

import (
	"errors"
	"fmt"
	"reflect"
)

var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes which argument was rejected and why.
type ArgumentError struct {
	Name   string
	Reason string
}

func (err *ArgumentError) Error() string {
	return fmt.Sprintf("argument `%s`: %s", err.Name, err.Reason)
}

func (err *ArgumentError) Unwrap() error { return ErrInvalidArgument }

func invalid(name, format string, args ...interface{}) error {
	return &ArgumentError{Name: name, Reason: fmt.Sprintf(format, args...)}
}

// NotNil rejects a nil interface as well as typed nils (pointers, funcs,
// maps, slices, channels and interfaces) hidden inside a non-nil
// interface.
func NotNil(name string, value interface{}) error {
	if isNil(value) {
		return invalid(name, "must not be nil")
	}
	return nil
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan,
		reflect.Func,
		reflect.Interface,
		reflect.Map,
		reflect.Pointer,
		reflect.Slice,
		reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

// Must panics if `err` is non-nil. Use it where an error can only be a
// programming mistake, e.g. package-level vars and tests.
func Must[T any](t T, err error) T {
	if err != nil {
		panic(err.Error())
	}
	return t
}
