package observer

import (
	"fmt"
	"reflect"
)

// Kind names an event variant. Bindings and events are matched by
// comparing kinds by value.
type Kind string

// Event is the interface that all event types must implement.
// Kind returns the tag used to route the event to its bindings.
// IMPORTANT: Kind() must be a value receiver method so that
// var zero E works without a nil pointer dereference.
type Event interface {
	Kind() Kind
}

// Object carries the source of an event. Concrete events embed it:
//
//	type Tick struct {
//		observer.Object[*Clock]
//	}
//
//	func (Tick) Kind() observer.Kind { return "tick" }
type Object[S any] struct {
	source S
}

// NewObject returns an Object for the given source.
// It fails with ErrInvalidArgument if source is absent.
func NewObject[S any](source S) (Object[S], error) {
	if isNil(source) {
		return Object[S]{}, fmt.Errorf("%w: nil event source", ErrInvalidArgument)
	}
	return Object[S]{source: source}, nil
}

// MustObject is like NewObject but panics if source is absent.
func MustObject[S any](source S) Object[S] {
	o, err := NewObject(source)
	if err != nil {
		panic(err)
	}
	return o
}

// Source returns the object on which the event occurred.
func (o Object[S]) Source() S {
	return o.source
}

func (o Object[S]) String() string {
	return fmt.Sprintf("source=%v", o.source)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// describe names an event in error messages and log records.
func describe(ev Event) string {
	return fmt.Sprintf("%T[kind=%s]", ev, ev.Kind())
}
