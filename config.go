package depot

import "go.uber.org/zap"

// DefaultMaxEntities is the entity capacity of a database built without WithMaxEntities.
const DefaultMaxEntities = 4096

type config struct {
	maxEntities int
	logger      *zap.Logger
}

// Option configures a Database at construction.
type Option func(*config)

// WithMaxEntities sets how many entities may be alive at once. Every column of every
// archetype is provisioned for this many rows up front.
func WithMaxEntities(n int) Option {
	return func(c *config) {
		c.maxEntities = n
	}
}

// WithLogger sets the logger used for archetype creation and fatal errors.
func WithLogger(log *zap.Logger) Option {
	return func(c *config) {
		c.logger = log
	}
}

func newConfig(opts ...Option) config {
	cfg := config{
		maxEntities: DefaultMaxEntities,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxEntities <= 0 {
		cfg.maxEntities = DefaultMaxEntities
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	return cfg
}
