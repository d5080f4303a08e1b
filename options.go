package primes

import "primes/sieve"

// MaxWindowWidth caps the number of odd values held by a sieve window.
const MaxWindowWidth = 1 << 24

// Config holds tunables shared by every sequence constructor.
type Config struct {
	// WindowWidth is the number of odd values the sieve holds at once.
	WindowWidth int
}

// Option is a functional option for configuring sequences.
type Option func(*Config)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		WindowWidth: sieve.DefaultWidth,
	}
}

// WithWindowWidth sets the sieve window width. Values outside
// [1, MaxWindowWidth] are ignored.
func WithWindowWidth(width int) Option {
	return func(c *Config) {
		if width > 0 && width <= MaxWindowWidth {
			c.WindowWidth = width
		}
	}
}

// applyOptions applies the given options to the default configuration.
func applyOptions(opts ...Option) Config {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return config
}
