// Package ui provides a unified interface for rendering output in different formats.
// It supports terminal (rich), text (plain), and JSON output formats.
package ui

import (
	"io"

	"github.com/arthur-debert/gestures/pkg/bindings"
	"github.com/arthur-debert/gestures/pkg/errors"
	"github.com/arthur-debert/gestures/pkg/gesture"
	"github.com/arthur-debert/gestures/pkg/ui/json"
	"github.com/arthur-debert/gestures/pkg/ui/terminal"
	"github.com/arthur-debert/gestures/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderGesture renders a single gesture in both string forms
	RenderGesture(g gesture.Gesture) error

	// RenderBindings renders a binding table
	RenderBindings(bs []bindings.Binding) error

	// RenderDirections renders the direction vocabulary
	RenderDirections(ds []gesture.Direction) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// FormatAuto is resolved against output with DetectFormat.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		return NewRenderer(DetectFormat(output), output)
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
