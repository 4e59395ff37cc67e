package gesture

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/gestures/pkg/errors"
)

// Record is the structured configuration form of a Gesture.
type Record struct {
	Fingers     *int64          `json:"fingers" yaml:"fingers" toml:"fingers" koanf:"fingers"`
	Direction   DirectionRecord `json:"direction" yaml:"direction" toml:"direction,inline" koanf:"direction"`
	Description *string         `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty" koanf:"description"`
}

// DirectionRecord is the nested form of a Direction, e.g.
// {Relative = "RelativeLeft"}. Exactly one field must be set.
type DirectionRecord struct {
	Absolute *string `json:"Absolute,omitempty" yaml:"Absolute,omitempty" toml:"Absolute,omitempty" koanf:"Absolute"`
	Relative *string `json:"Relative,omitempty" yaml:"Relative,omitempty" toml:"Relative,omitempty" koanf:"Relative"`
}

var (
	recordFields    = []string{"fingers", "direction", "description"}
	directionFields = []string{"Absolute", "Relative"}
)

// RecordOf returns the structured form of g.
func RecordOf(g Gesture) Record {
	fingers := int64(g.fingers)
	rec := Record{
		Fingers:   &fingers,
		Direction: DirectionRecordOf(g.direction),
	}
	if desc, ok := g.Description(); ok {
		rec.Description = &desc
	}
	return rec
}

// DirectionRecordOf returns the nested form of d.
func DirectionRecordOf(d Direction) DirectionRecord {
	name := d.Name()
	switch {
	case d.IsAbsolute():
		return DirectionRecord{Absolute: &name}
	case d.IsRelative():
		return DirectionRecord{Relative: &name}
	default:
		return DirectionRecord{}
	}
}

// Gesture validates r and builds the gesture it describes.
func (r Record) Gesture() (Gesture, error) {
	if r.Fingers == nil {
		return Gesture{}, errors.New(errors.ErrMissingFingerCount, "record has no fingers field")
	}
	if *r.Fingers < 0 || *r.Fingers > math.MaxUint32 {
		token := strconv.FormatInt(*r.Fingers, 10)
		return Gesture{}, errors.Newf(errors.ErrInvalidFingerCount, "finger count %s out of range", token).
			WithDetail(errors.DetailToken, token)
	}

	direction, err := r.Direction.Direction()
	if err != nil {
		return Gesture{}, err
	}

	g := New(uint32(*r.Fingers), direction)
	if r.Description != nil {
		g = g.WithDescription(*r.Description)
	}
	return g, nil
}

// Direction validates r and returns the direction it names.
func (r DirectionRecord) Direction() (Direction, error) {
	switch {
	case r.Absolute != nil && r.Relative != nil:
		return Direction{}, errors.New(errors.ErrInvalidDirection, "direction cannot be both Absolute and Relative").
			WithDetail(errors.DetailToken, *r.Absolute+"+"+*r.Relative)
	case r.Absolute != nil:
		return parseBranch(*r.Absolute, Direction.IsAbsolute, "Absolute")
	case r.Relative != nil:
		return parseBranch(*r.Relative, Direction.IsRelative, "Relative")
	default:
		return Direction{}, errors.New(errors.ErrMissingDirection, "record has no direction")
	}
}

func parseBranch(name string, inBranch func(Direction) bool, branch string) (Direction, error) {
	d, err := ParseDirection(name)
	if err != nil {
		return Direction{}, err
	}
	if !inBranch(d) {
		return Direction{}, errors.Newf(errors.ErrInvalidDirection, "%q is not a valid %s value", name, branch).
			WithDetail(errors.DetailToken, name)
	}
	return d, nil
}

func unknownField(name string) error {
	return errors.Newf(errors.ErrUnknownField, "unknown field %q", name).
		WithDetail(errors.DetailField, name)
}

// MarshalJSON encodes g as a record.
func (g Gesture) MarshalJSON() ([]byte, error) {
	return json.Marshal(RecordOf(g))
}

// UnmarshalJSON accepts either a record object or the canonical encoding
// as a JSON string.
func (g *Gesture) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return errors.Wrap(err, errors.ErrInvalidInput, "invalid gesture string")
		}
		return g.UnmarshalText([]byte(s))
	}

	if err := checkJSONKeys(trimmed); err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()

	var rec Record
	if err := dec.Decode(&rec); err != nil {
		return jsonRecordError(err)
	}
	parsed, err := rec.Gesture()
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

func jsonRecordError(err error) error {
	const prefix = "json: unknown field "
	if msg := err.Error(); strings.HasPrefix(msg, prefix) {
		return unknownField(strings.Trim(strings.TrimPrefix(msg, prefix), `"`))
	}
	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) && typeErr.Field == "fingers" {
		return errors.Wrap(err, errors.ErrInvalidFingerCount, "fingers must be an integer").
			WithDetail(errors.DetailToken, typeErr.Value)
	}
	return errors.Wrap(err, errors.ErrInvalidInput, "invalid gesture record")
}

// MarshalYAML encodes g as a record.
func (g Gesture) MarshalYAML() (interface{}, error) {
	return RecordOf(g), nil
}

// UnmarshalYAML accepts either a record mapping or the canonical encoding
// as a scalar.
func (g *Gesture) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	switch node.Kind {
	case yaml.ScalarNode:
		return g.UnmarshalText([]byte(node.Value))
	case yaml.MappingNode:
		if err := checkYAMLKeys(node, "", recordFields); err != nil {
			return err
		}
		if dir := yamlValue(node, "direction"); dir != nil && dir.Kind == yaml.MappingNode {
			if err := checkYAMLKeys(dir, "direction.", directionFields); err != nil {
				return err
			}
		}
		var rec Record
		if err := node.Decode(&rec); err != nil {
			return errors.Wrapf(err, errors.ErrInvalidInput, "invalid gesture record at line %d", node.Line)
		}
		parsed, err := rec.Gesture()
		if err != nil {
			return err
		}
		*g = parsed
		return nil
	default:
		return errors.Newf(errors.ErrInvalidInput, "gesture at line %d must be a string or a mapping", node.Line)
	}
}

// checkKeys reports the first key, in sorted order, that is not exactly one
// of allowed. The JSON and TOML decoders match field names case-insensitively.
func checkKeys(prefix string, keys []string, allowed []string) error {
	sort.Strings(keys)
	for _, key := range keys {
		if !slices.Contains(allowed, key) {
			return unknownField(prefix + key)
		}
	}
	return nil
}

// checkRecordKeys checks a generic record tree and its direction table.
func checkRecordKeys(rec map[string]interface{}) error {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	if err := checkKeys("", keys, recordFields); err != nil {
		return err
	}

	dir, ok := rec["direction"].(map[string]interface{})
	if !ok {
		return nil
	}
	keys = keys[:0]
	for k := range dir {
		keys = append(keys, k)
	}
	return checkKeys("direction.", keys, directionFields)
}

// checkJSONKeys checks key names of a JSON object record. Values that are
// not objects are left for the decoder to report.
func checkJSONKeys(data []byte) error {
	var rec map[string]interface{}
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil
	}
	return checkRecordKeys(rec)
}

func checkYAMLKeys(node *yaml.Node, prefix string, allowed []string) error {
	keys := make([]string, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keys = append(keys, node.Content[i].Value)
	}
	return checkKeys(prefix, keys, allowed)
}

func yamlValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// DecodeRecordTOML decodes a single gesture record from a TOML document,
// rejecting unknown keys.
func DecodeRecordTOML(data []byte) (Gesture, error) {
	var tree map[string]interface{}
	if err := toml.Unmarshal(data, &tree); err != nil {
		return Gesture{}, errors.Wrap(err, errors.ErrInvalidInput, "invalid gesture record")
	}
	if err := checkRecordKeys(tree); err != nil {
		return Gesture{}, err
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var rec Record
	if err := dec.Decode(&rec); err != nil {
		var strictErr *toml.StrictMissingError
		if stderrors.As(err, &strictErr) && len(strictErr.Errors) > 0 {
			key := strictErr.Errors[0].Key()
			return Gesture{}, unknownField(strings.Join(key, "."))
		}
		return Gesture{}, errors.Wrap(err, errors.ErrInvalidInput, "invalid gesture record")
	}
	return rec.Gesture()
}

// EncodeRecordTOML encodes g as a TOML record document.
func EncodeRecordTOML(g Gesture) ([]byte, error) {
	return toml.Marshal(RecordOf(g))
}
