package ui

import (
	"io"
	"slices"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/gestures/pkg/errors"
)

// Format selects how gestures, bindings and messages are written.
type Format int

const (
	// FormatAuto picks FormatTerminal or FormatText for the output writer
	FormatAuto Format = iota
	// FormatTerminal styles gestures by direction family
	FormatTerminal
	// FormatText writes aligned plain columns
	FormatText
	// FormatJSON writes gestures as records with their encodings
	FormatJSON
)

// formatNames maps each format to the --format values that select it.
// The first name is the canonical one.
var formatNames = []struct {
	format Format
	names  []string
}{
	{FormatAuto, []string{"auto", ""}},
	{FormatTerminal, []string{"term", "terminal"}},
	{FormatText, []string{"text", "plain"}},
	{FormatJSON, []string{"json"}},
}

// String returns the canonical name of f.
func (f Format) String() string {
	for _, entry := range formatNames {
		if entry.format == f {
			return entry.names[0]
		}
	}
	return "unknown"
}

// FormatNames returns the canonical format names.
func FormatNames() []string {
	names := make([]string, 0, len(formatNames))
	for _, entry := range formatNames {
		names = append(names, entry.names[0])
	}
	return names
}

// ParseFormat parses a format name or alias, ignoring case.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, entry := range formatNames {
		if slices.Contains(entry.names, name) {
			return entry.format, nil
		}
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown output format %q, want one of %s",
		s, strings.Join(FormatNames(), ", ")).
		WithDetail(errors.DetailToken, s)
}

// Set implements pflag.Value.
func (f *Format) Set(s string) error {
	parsed, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Type implements pflag.Value.
func (f *Format) Type() string {
	return "format"
}

// DetectFormat returns the format auto resolves to for output. Writers
// without a file descriptor, pipes, NO_COLOR and colorless terminals all
// get FormatText.
func DetectFormat(output io.Writer) Format {
	if termenv.EnvNoColor() {
		return FormatText
	}

	file, ok := output.(interface{ Fd() uintptr })
	if !ok {
		return FormatText
	}
	if !isatty.IsTerminal(file.Fd()) && !isatty.IsCygwinTerminal(file.Fd()) {
		return FormatText
	}

	if termenv.EnvColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
