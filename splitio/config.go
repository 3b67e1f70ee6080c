package splitio

import "github.com/zalgonoise/cfg"

type Config struct {
	closer func() error
}

func defaultConfig() Config {
	return Config{}
}

// WithCloser overrides the Stream's close policy with fn. By default a
// Stream closes its write side and then its read side, for each side that
// implements io.Closer.
func WithCloser(fn func() error) cfg.Option[Config] {
	if fn == nil {
		return cfg.NoOp[Config]{}
	}

	return cfg.Register[Config](func(c Config) Config {
		c.closer = fn

		return c
	})
}
