// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/gestures/pkg/bindings"
	"github.com/arthur-debert/gestures/pkg/gesture"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderGesture prints the canonical encoding and the display form
func (r *Renderer) RenderGesture(g gesture.Gesture) error {
	line := g.Encode() + "  " + g.Format()
	if desc, ok := g.Description(); ok {
		line += "  # " + desc
	}
	_, err := fmt.Fprintln(r.output, line)
	return err
}

// RenderBindings prints one "gesture action" line per binding, with the
// description as a trailing comment.
func (r *Renderer) RenderBindings(bs []bindings.Binding) error {
	width := 0
	for _, b := range bs {
		if n := len(b.Gesture.Encode()); n > width {
			width = n
		}
	}

	for _, b := range bs {
		line := fmt.Sprintf("%-*s  %s", width, b.Gesture.Encode(), b.Action)
		if desc, ok := b.Gesture.Description(); ok {
			line += "  # " + desc
		}
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderDirections prints one direction name per line
func (r *Renderer) RenderDirections(ds []gesture.Direction) error {
	for _, d := range ds {
		if _, err := fmt.Fprintln(r.output, d.Name()); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
