// Package config holds calculator-wide tuning knobs: the default
// result scale, the symbol table's bucket count, and the minimum
// working scale used for transcendental functions. A Config is built
// once via New and a set of functional options, in the style used
// throughout the example pack's services for typed, explicit
// configuration structs.
package config

// Config holds calculator-wide options.
type Config struct {
	// DefaultScale is the minimum fractional-digit count of every
	// arithmetic operator's result (e.g. it gives a bare integer
	// division fractional digits); operands with a wider scale
	// widen the result beyond it.
	DefaultScale int

	// SymbolTableCapacity is the symbol table's fixed bucket count.
	SymbolTableCapacity int

	// MinTranscendentalScale is the working-scale floor applied to
	// sin/cos/atan/ln/exp evaluation, regardless of the operand's
	// own scale.
	MinTranscendentalScale int
}

// Option configures a Config.
type Option func(*Config)

// WithDefaultScale overrides the default result scale.
func WithDefaultScale(scale int) Option {
	return func(c *Config) { c.DefaultScale = scale }
}

// WithSymbolTableCapacity overrides the symbol table's bucket count.
func WithSymbolTableCapacity(capacity int) Option {
	return func(c *Config) { c.SymbolTableCapacity = capacity }
}

// WithMinTranscendentalScale overrides the transcendental working-scale floor.
func WithMinTranscendentalScale(scale int) Option {
	return func(c *Config) { c.MinTranscendentalScale = scale }
}

// New builds a Config with sensible defaults, then applies opts in order.
func New(opts ...Option) *Config {
	c := &Config{
		DefaultScale:           0,
		SymbolTableCapacity:    1000,
		MinTranscendentalScale: 3,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
