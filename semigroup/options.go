package semigroup

import "context"

// Option configures an Enumerator.
type Option func(*options)

type options struct {
	ctx         context.Context
	maxElements int
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithMaxElements bounds the number of elements enumerated. Exceeding the
// bound aborts with ErrLimitExceeded. n <= 0 means no bound.
func WithMaxElements(n int) Option {
	return func(o *options) { o.maxElements = n }
}

// WithContext makes enumeration stop with ctx.Err() once ctx is done.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
