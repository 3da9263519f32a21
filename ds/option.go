package ds

import "github.com/ardnew/dsys/log"

// DefaultMaxDepth is the default maximum nesting depth of Blocks.
const DefaultMaxDepth = 100

// Option configures document parsing.
type Option func(*parser)

// WithEnums sets the enum table. Tokens matching a key are replaced by the
// mapped text before they are interpreted as values, and the keys are bound
// to their numeric values when evaluating int and float expressions.
func WithEnums(enums map[string]string) Option {
	return func(p *parser) {
		p.enums = enums
	}
}

// WithComments enables skipping of // line and /* */ block comments between
// tokens.
func WithComments(enable bool) Option {
	return func(p *parser) {
		p.strip = enable
	}
}

// WithMaxDepth sets the maximum nesting depth of Blocks. Values below 1 are
// ignored.
func WithMaxDepth(depth int) Option {
	return func(p *parser) {
		if depth > 0 {
			p.maxDepth = depth
		}
	}
}

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(p *parser) {
		p.logger = logger
	}
}
