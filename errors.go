package observer

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for an absent event source,
	// a nil handler or a nil event.
	ErrInvalidArgument = errors.New("observer: invalid argument")

	// ErrHandlerInvocation matches every *InvocationError with errors.Is.
	ErrHandlerInvocation = errors.New("observer: handler invocation failure")
)

// InvocationError reports that a bound handler failed while an event
// was dispatched to it. Err is the original cause: the error returned by
// the handler, a *PanicError, or an argument mismatch.
type InvocationError struct {
	// Event is the event being dispatched.
	Event Event

	// Kind is the kind the failing binding was registered for.
	Kind Kind

	// BindingID identifies the failing binding within its registry.
	BindingID uint64

	Err error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("observer: fire event failure for '%s' (binding %d): %v",
		describe(e.Event), e.BindingID, e.Err)
}

// Unwrap returns the original cause.
func (e *InvocationError) Unwrap() error {
	return e.Err
}

// Is allows errors.Is to match InvocationError with ErrHandlerInvocation.
func (e *InvocationError) Is(target error) bool {
	return target == ErrHandlerInvocation
}

// PanicError wraps a value recovered from a panicking handler.
type PanicError struct {
	// Value is the value passed to panic().
	Value any

	// Stack is the stack trace at the time of the panic.
	Stack string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("handler panic: %v", e.Value)
}

// Unwrap returns Value when the handler panicked with an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
