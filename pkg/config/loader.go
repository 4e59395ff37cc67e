package config

import (
	_ "embed"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/gestures/pkg/errors"
	"github.com/arthur-debert/gestures/pkg/logging"
	"github.com/arthur-debert/gestures/pkg/paths"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// DefaultsContent returns the embedded default configuration.
func DefaultsContent() string {
	return string(defaultConfig)
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Options controls which sources Load reads.
type Options struct {
	// SkipDefaults leaves the embedded defaults out.
	SkipDefaults bool
}

// Load reads the embedded defaults and then each file in order. Every
// file must exist.
func Load(opts Options, files ...string) (*Config, error) {
	logger := logging.GetLogger("config")
	done := logging.LogOperationStart(logger, "load")
	defer done()

	k := koanf.New(".")

	if !opts.SkipDefaults {
		if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
		}
	}

	for _, path := range files {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config %s", path).
				WithDetail("path", path)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Config file loaded")
	}

	return decode(k)
}

// LoadDefault loads the defaults and the user file at its XDG location,
// if that file exists.
func LoadDefault() (*Config, error) {
	path := paths.New().ConfigFilePath()
	if _, err := os.Stat(path); err != nil {
		logger := logging.GetLogger("config")
		logger.Debug().Str("path", path).Msg("No user config, using defaults")
		return Load(Options{})
	}
	return Load(Options{}, path)
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported config format %q", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

// decode unmarshals the merged tree, rejecting keys no field consumes.
func decode(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	var md mapstructure.Metadata

	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:     &cfg,
			TagName:    "koanf",
			Metadata:   &md,
			DecodeHook: mapstructure.DecodeHookFuncType(rejectFractionalHook),
			// Keys are case-sensitive: "relative" is not "Relative".
			MatchName: func(mapKey, fieldName string) bool {
				return mapKey == fieldName
			},
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if len(md.Unused) > 0 {
		sort.Strings(md.Unused)
		field := md.Unused[0]
		return nil, errors.Newf(errors.ErrUnknownField, "unknown configuration key %q", field).
			WithDetail(errors.DetailField, field)
	}

	return &cfg, nil
}

// rejectFractionalHook fails float values decoded into integer fields.
// mapstructure truncates them otherwise.
func rejectFractionalHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.Float32 && from.Kind() != reflect.Float64 {
		return data, nil
	}
	for to.Kind() == reflect.Ptr {
		to = to.Elem()
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		token := fmt.Sprint(data)
		return nil, errors.Newf(errors.ErrInvalidFingerCount, "%s is not a whole number", token).
			WithDetail(errors.DetailToken, token)
	}
	return data, nil
}
