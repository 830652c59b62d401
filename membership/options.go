package membership

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/centraliser/semigroup"
)

// Option configures Decide.
type Option func(*config)

type config struct {
	ctx         context.Context
	oracle      semigroup.Oracle
	logger      logrus.FieldLogger
	metrics     *Metrics
	maxElements int
}

func newConfig(opts ...Option) config {
	cfg := config{ctx: context.Background()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.oracle == nil {
		cfg.oracle = semigroup.EnumeratingOracle{MaxElements: cfg.maxElements}
	}
	if cfg.logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		cfg.logger = l
	}

	return cfg
}

// WithOracle replaces the default enumerating oracle.
func WithOracle(o semigroup.Oracle) Option {
	return func(c *config) { c.oracle = o }
}

// WithLogger sets the logger used for stage tracing at debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) { c.logger = l }
}

// WithMetrics records every decision in m.
func WithMetrics(m *Metrics) Option {
	return func(c *config) { c.metrics = m }
}

// WithContext is checked between stages and handed to the oracle.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithMaxElements bounds each enumeration of the default oracle.
// It has no effect together with WithOracle.
func WithMaxElements(n int) Option {
	return func(c *config) { c.maxElements = n }
}
