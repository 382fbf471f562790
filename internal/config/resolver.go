package config

import "context"

// configKey is the context key for the resolved Config
type configKey struct{}

// WithConfig returns a new context with the resolved Config stored in it.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext returns the Config stored by WithConfig.
// Returns nil if none is stored.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(configKey{}).(*Config); ok {
		return cfg
	}
	return nil
}
