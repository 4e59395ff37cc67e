package config

import (
	"sort"

	"github.com/arthur-debert/gestures/pkg/bindings"
	"github.com/arthur-debert/gestures/pkg/errors"
	"github.com/arthur-debert/gestures/pkg/gesture"
	"github.com/arthur-debert/gestures/pkg/logging"
)

// Config is the decoded content of one or more configuration files.
type Config struct {
	Gestures []Entry          `koanf:"gestures" toml:"gestures,omitempty" yaml:"gestures,omitempty"`
	Bindings map[string]string `koanf:"bindings" toml:"bindings,omitempty" yaml:"bindings,omitempty"`
}

// Entry is a gesture record plus the action it triggers.
type Entry struct {
	gesture.Record `koanf:",squash" yaml:",inline"`
	Action         string `koanf:"action" toml:"action" yaml:"action"`
}

// EntryOf returns the entry for b.
func EntryOf(b bindings.Binding) Entry {
	return Entry{Record: gesture.RecordOf(b.Gesture), Action: string(b.Action)}
}

// Binding validates e and returns the binding it describes.
func (e Entry) Binding() (bindings.Binding, error) {
	g, err := e.Record.Gesture()
	if err != nil {
		return bindings.Binding{}, err
	}
	return bindings.Binding{Gesture: g, Action: bindings.Action(e.Action)}, nil
}

// BindingSet validates every entry and builds the binding set. Shorthand
// bindings replace [[gestures]] entries that match the same input.
func (c *Config) BindingSet() (*bindings.Set, error) {
	logger := logging.GetLogger("config")

	set, err := bindings.NewSet()
	if err != nil {
		return nil, err
	}

	for i, entry := range c.Gestures {
		b, err := entry.Binding()
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "gestures[%d]", i)
		}
		if err := set.Add(b); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "gestures[%d]", i)
		}
	}

	shorthand, err := c.shorthand()
	if err != nil {
		return nil, err
	}
	for _, b := range shorthand {
		if existing, ok := set.Match(b.Gesture); ok {
			logger.Debug().
				Str("gesture", b.Gesture.Encode()).
				Str("from", string(existing.Action)).
				Str("to", string(b.Action)).
				Msg("Shorthand binding overrides gesture entry")
		}
		if err := set.Replace(b); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "bindings[%q]", b.Gesture.Encode())
		}
	}

	logger.Debug().
		Int("gestures", len(c.Gestures)).
		Int("shorthand", len(c.Bindings)).
		Int("bindings", set.Len()).
		Msg("Bindings built")

	return set, nil
}

// shorthand parses the [bindings] table in key order.
func (c *Config) shorthand() ([]bindings.Binding, error) {
	keys := make([]string, 0, len(c.Bindings))
	for k := range c.Bindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	seen := make(map[gesture.Key]string, len(keys))
	out := make([]bindings.Binding, 0, len(keys))
	for _, k := range keys {
		g, err := gesture.Parse(k)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "bindings[%q]", k)
		}
		if other, dup := seen[g.Key()]; dup {
			return nil, errors.Newf(errors.ErrBindingConflict, "bindings %q and %q name the same gesture", other, k).
				WithDetail(errors.DetailToken, k)
		}
		seen[g.Key()] = k
		out = append(out, bindings.Binding{Gesture: g, Action: bindings.Action(c.Bindings[k])})
	}
	return out, nil
}

// Migrate returns a copy of c with every shorthand binding rewritten as a
// [[gestures]] entry.
func (c *Config) Migrate() (*Config, error) {
	set, err := c.BindingSet()
	if err != nil {
		return nil, err
	}

	return FromSet(set), nil
}

// FromSet builds a config holding every binding of set as an entry.
func FromSet(set *bindings.Set) *Config {
	out := &Config{}
	for _, b := range set.All() {
		out.Gestures = append(out.Gestures, EntryOf(b))
	}
	return out
}
