package observer

import (
	"fmt"
	"reflect"
	"runtime/debug"
)

// binding pairs an event kind, a target and a handler.
type binding struct {
	id      uint64
	kind    Kind
	target  any
	handler uintptr
	fn      func(ev Event) error
}

// matches reports whether the binding was registered with exactly this
// kind, target and handler.
func (b *binding) matches(kind Kind, target any, handler uintptr) bool {
	return b.kind == kind && b.handler == handler && b.target == target
}

// invoke calls the handler if ev is of the bound kind. Events of other
// kinds are ignored.
func (b *binding) invoke(ev Event) (failure *InvocationError) {
	if ev.Kind() != b.kind {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			failure = b.failure(ev, &PanicError{Value: r, Stack: string(debug.Stack())})
		}
	}()
	if err := b.fn(ev); err != nil {
		return b.failure(ev, err)
	}
	return nil
}

func (b *binding) failure(ev Event, cause error) *InvocationError {
	return &InvocationError{Event: ev, Kind: b.kind, BindingID: b.id, Err: cause}
}

// comparableTarget reports whether target can be matched with ==.
// A nil target is comparable.
func comparableTarget(target any) bool {
	if target == nil {
		return true
	}
	return reflect.ValueOf(target).Comparable()
}

// handlerID identifies a handler by its code pointer, so every method
// expression or function literal is one handler wherever it is used.
func handlerID(fn any) uintptr {
	return reflect.ValueOf(fn).Pointer()
}

// bind wraps a typed handler so it accepts any Event, asserting the
// dynamic type at dispatch.
func bind[E Event](call func(ev E) error) func(Event) error {
	return func(ev Event) error {
		e, ok := ev.(E)
		if !ok {
			var zero E
			return fmt.Errorf("observer: argument mismatch: expected %T, got %T", zero, ev)
		}
		return call(e)
	}
}

// AddListener registers handler to be called with target for every
// event of type E. The same triple may be registered more than once; it
// then fires once per registration.
//
// Handlers are usually method expressions:
//
//	observer.AddListener(l, account, (*Account).OnTweet)
func AddListener[T comparable, E Event](l *Listeners, target T, handler func(T, E) error) (*Registration, error) {
	if handler == nil {
		return nil, fmt.Errorf("%w: nil handler", ErrInvalidArgument)
	}
	if !comparableTarget(target) {
		return nil, fmt.Errorf("%w: target of type %T is not comparable", ErrInvalidArgument, target)
	}
	var zero E
	return l.add(&binding{
		kind:    zero.Kind(),
		target:  target,
		handler: handlerID(handler),
		fn: bind(func(ev E) error {
			return handler(target, ev)
		}),
	}), nil
}

// RemoveListener removes every binding registered with this target,
// handler and event type. It is a no-op if there is none.
func RemoveListener[T comparable, E Event](l *Listeners, target T, handler func(T, E) error) {
	if handler == nil || !comparableTarget(target) {
		return
	}
	var zero E
	l.remove(zero.Kind(), target, handlerID(handler))
}

// AddFunc registers a handler with no target for every event of type E.
func AddFunc[E Event](l *Listeners, handler func(E) error) (*Registration, error) {
	if handler == nil {
		return nil, fmt.Errorf("%w: nil handler", ErrInvalidArgument)
	}
	var zero E
	return l.add(&binding{
		kind:    zero.Kind(),
		handler: handlerID(handler),
		fn:      bind(handler),
	}), nil
}

// RemoveFunc removes every target-less binding of handler for E.
func RemoveFunc[E Event](l *Listeners, handler func(E) error) {
	if handler == nil {
		return
	}
	var zero E
	l.remove(zero.Kind(), nil, handlerID(handler))
}
