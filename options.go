package telenet

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/sbogaerts/telenet-go/internal/logger"
	"github.com/sbogaerts/telenet-go/models"
)

// Option customises a [Client] at construction time.
type Option func(*Client)

// WithLanguage selects the response language for localized content
// (product names and the like). Supported values are listed in
// [models.Languages]; anything else falls back to [models.DefaultLanguage].
func WithLanguage(lang string) Option {
	return func(c *Client) {
		if models.ValidLanguage(lang) {
			c.language = lang
		}
	}
}

// WithEnvironment points the client at a non-production set of endpoints.
// Mostly useful for tests.
func WithEnvironment(env models.Environment) Option {
	return func(c *Client) {
		c.env = env
	}
}

// WithTimeout overrides the per-request timeout. Zero or negative values
// keep the default of ten seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithLogger attaches a zerolog logger; the client logs every API request
// at debug level with a per-session trace id. Without this option the
// client is silent.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = &logger.Logger{Logger: log}
	}
}
