package gesture

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/gestures/pkg/errors"
)

const separator = '+'

// Parse decodes the canonical encoding "<fingers>+<direction>".
//
// The whole input must be consumed. The result never has a description.
func Parse(s string) (Gesture, error) {
	parts := strings.SplitN(s, string(separator), 3)

	if len(parts) == 3 {
		return Gesture{}, errors.Newf(errors.ErrTrailingData, "unexpected data %q after direction", parts[2]).
			WithDetail(errors.DetailRemainder, parts[2])
	}
	if parts[0] == "" {
		return Gesture{}, errors.Newf(errors.ErrMissingFingerCount, "no finger count in %q", s)
	}
	if len(parts) < 2 {
		return Gesture{}, errors.Newf(errors.ErrMissingDirection, "no direction in %q", s)
	}

	fingers, err := ParseFingers(parts[0])
	if err != nil {
		return Gesture{}, err
	}

	direction, err := ParseDirection(parts[1])
	if err != nil {
		return Gesture{}, err
	}

	return New(fingers, direction), nil
}

// MustParse is like Parse but panics on error. Meant for literals.
func MustParse(s string) Gesture {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}

// ParseFingers parses a base-10 finger count as used in the encoding.
func ParseFingers(token string) (uint32, error) {
	n, err := strconv.ParseUint(token, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrInvalidFingerCount, "invalid finger count %q", token).
			WithDetail(errors.DetailToken, token)
	}
	return uint32(n), nil
}

// MarshalText implements encoding.TextMarshaler with the canonical encoding.
func (g Gesture) MarshalText() ([]byte, error) {
	if !g.direction.Valid() {
		return nil, errors.New(errors.ErrMissingDirection, "cannot encode a gesture without direction")
	}
	return g.appendEncoded(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (g *Gesture) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
