// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package radix

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// DefaultDigitBits is the digit width used when WithDigitBits is not given.
// It gives a branch factor of 64.
const DefaultDigitBits = 6

// Tree errors.
var (
	ErrNoSpace   = errors.New("radix: no space for node")
	ErrDestroyed = errors.New("radix: tree destroyed")
	ErrDigitBits = errors.New("radix: invalid digit width")
	ErrCapacity  = errors.New("radix: invalid capacity")
)

// Formatter renders a value for Dump.
type Formatter func(value interface{}) string

type config struct {
	digitBits  int
	maxNodes   int
	maxEntries int
	logger     *zap.Logger
	format     Formatter
}

// Option configures a Tree.
type Option func(*config) error

// WithDigitBits sets how many key bits select a child at one level.
// The branch factor is 1<<bits; bits must be in 1..8.
func WithDigitBits(bits int) Option {
	return func(c *config) error {
		if bits < 1 || bits > 8 {
			return fmt.Errorf("%w: %d", ErrDigitBits, bits)
		}
		c.digitBits = bits
		return nil
	}
}

// WithMaxNodes caps the number of live inner nodes, root included.
// Zero means unlimited. Inserts that would exceed the cap fail with
// ErrNoSpace and leave the tree unchanged.
func WithMaxNodes(n int) Option {
	return func(c *config) error {
		if n < 0 {
			return fmt.Errorf("%w: max nodes %d", ErrCapacity, n)
		}
		c.maxNodes = n
		return nil
	}
}

// WithMaxEntries caps the number of stored entries. Zero means unlimited.
func WithMaxEntries(n int) Option {
	return func(c *config) error {
		if n < 0 {
			return fmt.Errorf("%w: max entries %d", ErrCapacity, n)
		}
		c.maxEntries = n
		return nil
	}
}

// WithLogger sets the logger used for debug events such as height
// changes and insert rollback. The default logger discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) error {
		if l != nil {
			c.logger = l
		}
		return nil
	}
}

// WithFormatter sets how Dump renders values.
func WithFormatter(f Formatter) Option {
	return func(c *config) error {
		c.format = f
		return nil
	}
}

func defaultConfig() config {
	return config{
		digitBits: DefaultDigitBits,
		logger:    zap.NewNop(),
		format: func(value interface{}) string {
			return fmt.Sprintf("%v", value)
		},
	}
}

func newConfig(opts ...Option) (config, error) {
	c := defaultConfig()
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return config{}, err
		}
	}
	if c.format == nil {
		c.format = defaultConfig().format
	}
	return c, nil
}
