package config

import (
	"io"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/gestures/pkg/errors"
)

// Format is a configuration file syntax.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name or file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown config format %q", s).
			WithDetail(errors.DetailToken, s)
	}
}

// Encode writes cfg to w in the given format.
func Encode(w io.Writer, format Format, cfg *Config) error {
	switch format {
	case FormatTOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		if err := enc.Encode(cfg); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode TOML")
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode YAML")
		}
		return enc.Close()
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown config format %q", format)
	}
}

// Template returns the defaults with every setting commented out, as a
// starting point for a user file.
func Template() string {
	return commentOutConfigValues(DefaultsContent())
}

// commentOutConfigValues comments out every non-blank, non-comment line.
// Table headers are included so an untouched template is an empty config.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
