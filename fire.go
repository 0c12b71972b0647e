package observer

import "fmt"

// FireEvent dispatches ev to every binding of its kind, in registration
// order. Bindings added or removed while the dispatch runs do not affect
// it.
//
// The first handler failure aborts the dispatch and is returned as an
// *InvocationError; later bindings are not called.
func (l *Listeners) FireEvent(ev Event) error {
	if isNil(ev) {
		return fmt.Errorf("%w: nil event", ErrInvalidArgument)
	}
	for _, b := range l.snapshot() {
		if err := b.invoke(ev); err != nil {
			l.logger.Debug("dispatch aborted", "event", describe(ev), "binding", b.id, "err", err.Err)
			return err
		}
	}
	return nil
}

// FireEventAsync dispatches ev on a new goroutine.
// It acquires a semaphore slot (blocking if the concurrency limit is reached)
// and launches a goroutine. Use WithAsyncLimit to configure the limit.
// A failure is passed to the ErrorHandler.
func (l *Listeners) FireEventAsync(ev Event) {
	l.asyncSem <- struct{}{}
	go func() {
		defer func() { <-l.asyncSem }()
		if err := l.FireEvent(ev); err != nil {
			l.reportError(err)
		}
	}()
}
