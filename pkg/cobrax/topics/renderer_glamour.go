package topics

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown topics with glamour. Other formats pass
// through unchanged.
type GlamourRenderer struct {
	Style string // "dark", "light", "notty", "auto", or a style file path
	Width int    // wrap width, 0 for glamour's default

	once sync.Once
	term *glamour.TermRenderer
	err  error
}

// NewGlamourRenderer creates a markdown renderer with style auto-detection
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

func (r *GlamourRenderer) termRenderer() (*glamour.TermRenderer, error) {
	r.once.Do(func() {
		var options []glamour.TermRendererOption
		if r.Style != "" && r.Style != "auto" {
			options = append(options, glamour.WithStylePath(r.Style))
		} else {
			options = append(options, glamour.WithAutoStyle())
		}
		if r.Width > 0 {
			options = append(options, glamour.WithWordWrap(r.Width))
		}
		r.term, r.err = glamour.NewTermRenderer(options...)
	})
	return r.term, r.err
}

// Render converts markdown to styled terminal output, falling back to the
// raw content on any error.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	term, err := r.termRenderer()
	if err != nil {
		return content
	}

	rendered, err := term.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
