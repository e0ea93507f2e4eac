package venturebridge

import (
	"time"

	"go.uber.org/zap"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	uri            string
	database       string
	connectTimeout time.Duration

	googleClientID string
	tokenInfoURL   string

	logger *zap.Logger
}

// WithMongo configures the client to connect to a MongoDB deployment.
// Without this option the client runs in degraded mode: writes are dropped
// and reads return nothing.
func WithMongo(uri, database string) Option {
	return optionFunc(func(c *clientConfig) {
		c.uri = uri
		c.database = database
	})
}

// WithConnectTimeout bounds the initial connection and readiness check.
// Default: 10s.
func WithConnectTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.connectTimeout = d
	})
}

// WithGoogleClientID sets the OAuth client id Google identity tokens must be
// issued for. Without it the audience check is skipped.
func WithGoogleClientID(clientID string) Option {
	return optionFunc(func(c *clientConfig) {
		c.googleClientID = clientID
	})
}

// WithTokenInfoURL overrides Google's token introspection endpoint.
// Intended for tests.
func WithTokenInfoURL(url string) Option {
	return optionFunc(func(c *clientConfig) {
		c.tokenInfoURL = url
	})
}

// WithLogger enables structured logging for client operations.
// Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}
