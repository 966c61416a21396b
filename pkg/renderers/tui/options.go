package tui

import "go.uber.org/zap"

// OutputFormat controls how the resulting model is serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits the model as indented JSON.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatPrettyText emits one `name: value` line per param.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// DefaultKeepMarker is the answer that leaves a param's value unchanged.
const DefaultKeepMarker = "="

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithConfirm asks message before the model is handed back. Declining
// returns ErrAborted.
func WithConfirm(message string) Option {
	return func(r *Renderer) {
		r.confirmMessage = message
	}
}

// WithNotice prints message through the driver once the model is serialized.
func WithNotice(message string) Option {
	return func(r *Renderer) {
		r.notice = message
	}
}

// WithLogger attaches a logger for session events.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithKeepMarker overrides the answer that keeps the current value. Pick a
// marker that never occurs as a real value.
func WithKeepMarker(marker string) Option {
	return func(r *Renderer) {
		if marker != "" {
			r.keepMarker = marker
		}
	}
}
