// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/gestures/pkg/bindings"
	"github.com/arthur-debert/gestures/pkg/gesture"
	"github.com/arthur-debert/gestures/pkg/style"
)

// Renderer provides rich terminal output using lipgloss styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

func (r *Renderer) println(s string) error {
	_, err := fmt.Fprintln(r.output, s)
	return err
}

func styledGesture(g gesture.Gesture) string {
	return style.DirectionStyle(g.Direction()).Render(g.Format())
}

// RenderGesture renders the display form followed by the encoding
func (r *Renderer) RenderGesture(g gesture.Gesture) error {
	line := styledGesture(g) + "  " + style.MutedStyle.Render(g.Encode())
	if desc, ok := g.Description(); ok {
		line += "\n" + style.Indent(style.NormalStyle.Render(desc), 1)
	}
	return r.println(line)
}

// RenderBindings renders an aligned binding table
func (r *Renderer) RenderBindings(bs []bindings.Binding) error {
	if len(bs) == 0 {
		return r.println(style.MutedStyle.Render("No bindings."))
	}

	width := 0
	for _, b := range bs {
		if n := lipgloss.Width(b.Gesture.Format()); n > width {
			width = n
		}
	}

	if err := r.println(style.TitleStyle.Render("Bindings:")); err != nil {
		return err
	}
	for _, b := range bs {
		line := style.Column(styledGesture(b.Gesture), width) + "  " + style.ActionStyle.Render(string(b.Action))
		if desc, ok := b.Gesture.Description(); ok {
			line += "  " + style.MutedStyle.Render(desc)
		}
		if err := r.println(style.Indent(line, 1)); err != nil {
			return err
		}
	}
	return nil
}

// RenderDirections renders the vocabulary grouped by branch
func (r *Renderer) RenderDirections(ds []gesture.Direction) error {
	var abs, rel []gesture.Direction
	for _, d := range ds {
		if d.IsAbsolute() {
			abs = append(abs, d)
		} else {
			rel = append(rel, d)
		}
	}

	groups := []struct {
		title string
		dirs  []gesture.Direction
	}{
		{"Absolute:", abs},
		{"Relative:", rel},
	}
	for _, group := range groups {
		if len(group.dirs) == 0 {
			continue
		}
		if err := r.println(style.TitleStyle.Render(group.title)); err != nil {
			return err
		}
		for _, d := range group.dirs {
			if err := r.println(style.Indent(style.DirectionStyle(d).Render(d.Name()), 1)); err != nil {
				return err
			}
		}
	}
	return nil
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	return r.println(style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.println(style.NormalStyle.Render(msg))
}
