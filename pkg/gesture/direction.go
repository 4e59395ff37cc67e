package gesture

import (
	"github.com/arthur-debert/gestures/pkg/errors"
)

// AbsoluteDirection is a direction fixed to the screen.
type AbsoluteDirection uint8

const (
	AbsoluteUp AbsoluteDirection = iota + 1
	AbsoluteDown
	AbsoluteLeft
	AbsoluteRight
)

// String returns the canonical name, or "" for an unknown value.
func (a AbsoluteDirection) String() string {
	switch a {
	case AbsoluteUp:
		return "AbsoluteUp"
	case AbsoluteDown:
		return "AbsoluteDown"
	case AbsoluteLeft:
		return "AbsoluteLeft"
	case AbsoluteRight:
		return "AbsoluteRight"
	default:
		return ""
	}
}

// RelativeDirection is a direction relative to the workspace orientation.
type RelativeDirection uint8

const (
	RelativeForward RelativeDirection = iota + 1
	RelativeBackward
	RelativeLeft
	RelativeRight
)

// String returns the canonical name, or "" for an unknown value.
func (r RelativeDirection) String() string {
	switch r {
	case RelativeForward:
		return "RelativeForward"
	case RelativeBackward:
		return "RelativeBackward"
	case RelativeLeft:
		return "RelativeLeft"
	case RelativeRight:
		return "RelativeRight"
	default:
		return ""
	}
}

// Direction is either an AbsoluteDirection or a RelativeDirection, never
// both. The zero value is not a valid direction.
type Direction struct {
	abs AbsoluteDirection
	rel RelativeDirection
}

// Absolute returns the screen-fixed direction a.
func Absolute(a AbsoluteDirection) Direction {
	return Direction{abs: a}
}

// Relative returns the orientation-fixed direction r.
func Relative(r RelativeDirection) Direction {
	return Direction{rel: r}
}

// Directions lists every valid direction, absolute ones first.
func Directions() []Direction {
	return []Direction{
		Absolute(AbsoluteUp),
		Absolute(AbsoluteDown),
		Absolute(AbsoluteLeft),
		Absolute(AbsoluteRight),
		Relative(RelativeForward),
		Relative(RelativeBackward),
		Relative(RelativeLeft),
		Relative(RelativeRight),
	}
}

// directionsByName indexes Directions by canonical name.
var directionsByName = func() map[string]Direction {
	m := make(map[string]Direction, 8)
	for _, d := range Directions() {
		m[d.Name()] = d
	}
	return m
}()

// ParseDirection matches s exactly against the canonical names.
func ParseDirection(s string) (Direction, error) {
	if d, ok := directionsByName[s]; ok {
		return d, nil
	}
	return Direction{}, errors.Newf(errors.ErrInvalidDirection, "unknown direction %q", s).
		WithDetail(errors.DetailToken, s)
}

// Name returns the canonical name of d.
func (d Direction) Name() string {
	if d.abs != 0 {
		return d.abs.String()
	}
	return d.rel.String()
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	return d.Name()
}

// Valid reports whether d is one of the closed set of directions.
func (d Direction) Valid() bool {
	return (d.abs != 0) != (d.rel != 0) && d.Name() != ""
}

// IsAbsolute reports whether d is screen-fixed.
func (d Direction) IsAbsolute() bool {
	return d.abs != 0
}

// IsRelative reports whether d follows the workspace orientation.
func (d Direction) IsRelative() bool {
	return d.rel != 0
}

// Absolute returns the absolute branch of d.
func (d Direction) Absolute() (AbsoluteDirection, bool) {
	return d.abs, d.abs != 0
}

// Relative returns the relative branch of d.
func (d Direction) Relative() (RelativeDirection, bool) {
	return d.rel, d.rel != 0
}

// order gives directions a stable position for sorting.
func (d Direction) order() int {
	if d.abs != 0 {
		return int(d.abs)
	}
	return 4 + int(d.rel)
}

// Less orders directions as Directions does.
func (d Direction) Less(other Direction) bool {
	return d.order() < other.order()
}

// MarshalText encodes d as its canonical name.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, errors.New(errors.ErrInvalidDirection, "cannot encode an empty direction").
			WithDetail(errors.DetailToken, "")
	}
	return []byte(d.Name()), nil
}

// UnmarshalText decodes a canonical direction name.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
