package deprecate

import (
	"fmt"
	"reflect"
)

// Value wraps a plain data member as a deprecated accessor pair. Reads
// always trigger the deprecation; writes are honored (and trigger) only
// when the original member was writable.
type Value[T any] struct {
	dep      *Deprecation
	val      T
	writable bool
}

// NewValue wraps a plain value member.
func NewValue[T any](name string, initial T, writable bool, opts Options) *Value[T] {
	return &Value[T]{dep: New(name, opts), val: initial, writable: writable}
}

// Get triggers the deprecation and returns the current value.
func (v *Value[T]) Get() T {
	v.dep.Trigger()
	return v.val
}

// Set stores a new value. Writes to a non-writable member are silent
// no-ops and do not trigger the deprecation.
func (v *Value[T]) Set(val T) {
	if !v.writable {
		return
	}
	v.dep.Trigger()
	v.val = val
}

// Accessor wraps an existing getter/setter pair. Both directions trigger
// the deprecation before delegating; a nil setter makes Set a no-op.
type Accessor[T any] struct {
	dep *Deprecation
	get func() T
	set func(T)
}

// NewAccessor wraps an accessor member.
func NewAccessor[T any](name string, get func() T, set func(T), opts Options) *Accessor[T] {
	return &Accessor[T]{dep: New(name, opts), get: get, set: set}
}

// Get triggers the deprecation and delegates to the wrapped getter.
func (a *Accessor[T]) Get() T {
	a.dep.Trigger()
	var zero T
	if a.get == nil {
		return zero
	}
	return a.get()
}

// Set triggers the deprecation and delegates to the wrapped setter.
func (a *Accessor[T]) Set(val T) {
	if a.set == nil {
		return
	}
	a.dep.Trigger()
	a.set(val)
}

// Properties wraps every entry of props as a deprecated Value, sharing
// the same options. The subject name of each deprecation is its key.
func Properties[T any](props map[string]T, writable bool, opts Options) map[string]*Value[T] {
	wrapped := make(map[string]*Value[T], len(props))
	for name, val := range props {
		wrapped[name] = NewValue(name, val, writable, opts)
	}
	return wrapped
}

// Function returns a wrapper with fn's exact signature that triggers the
// deprecation and then delegates, preserving arguments and results.
func Function[F any](fn F, name string, opts Options) F {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func {
		panic(fmt.Sprintf("deprecate.Function: %s is %T, not a function", name, fn))
	}
	d := New(name, opts)
	wrapper := reflect.MakeFunc(fv.Type(), func(args []reflect.Value) []reflect.Value {
		d.Trigger()
		if fv.Type().IsVariadic() {
			return fv.CallSlice(args)
		}
		return fv.Call(args)
	})
	return wrapper.Interface().(F)
}
