package editor

import "go.uber.org/zap"

// Option configures an Editor.
type Option func(*Editor)

// WithLogger routes change logging to logger. Nil keeps the nop logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Editor) {
		if logger != nil {
			e.logger = logger
		}
	}
}
