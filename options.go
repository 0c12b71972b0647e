package observer

import "github.com/inconshreveable/log15"

// ErrorHandler is called when an asynchronous dispatch fails.
type ErrorHandler func(err error)

// Option configures a Listeners registry.
type Option func(*Listeners)

// WithLogger sets the logger used for registry records. The registry ID
// is added to the logger's context.
func WithLogger(logger log15.Logger) Option {
	return func(l *Listeners) { l.logger = logger.New("listeners", l.id) }
}

// WithErrorHandler sets the callback for FireEventAsync failures.
// Without one, failures are logged at error level.
func WithErrorHandler(h ErrorHandler) Option {
	return func(l *Listeners) { l.errorHandler = h }
}

// WithAsyncLimit bounds the number of in-flight FireEventAsync calls.
func WithAsyncLimit(n int) Option {
	return func(l *Listeners) {
		if n > 0 {
			l.asyncSem = make(chan struct{}, n)
		}
	}
}
