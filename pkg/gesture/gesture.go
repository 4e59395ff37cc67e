package gesture

import (
	"strconv"
)

// Gesture describes a gesture that can be handled by the compositor.
//
// Gesture values are comparable; == compares the finger count, the
// direction and the description. Use Key to match live input, which
// carries no description.
type Gesture struct {
	fingers        uint32
	direction      Direction
	description    string
	hasDescription bool
}

// Key identifies a gesture for input matching.
type Key struct {
	Fingers   uint32
	Direction Direction
}

// String returns the canonical encoding of the key.
func (k Key) String() string {
	return New(k.Fingers, k.Direction).Encode()
}

// New creates a gesture without a description.
func New(fingers uint32, direction Direction) Gesture {
	return Gesture{
		fingers:   fingers,
		direction: direction,
	}
}

// Fingers returns how many fingers are held down.
func (g Gesture) Fingers() uint32 {
	return g.fingers
}

// Direction returns the swipe direction.
func (g Gesture) Direction() Direction {
	return g.direction
}

// Description returns the custom description, if one was set.
func (g Gesture) Description() (string, bool) {
	return g.description, g.hasDescription
}

// WithDescription returns a copy of g carrying description. Any string is
// accepted, including the empty one.
func (g Gesture) WithDescription(description string) Gesture {
	g.description = description
	g.hasDescription = true
	return g
}

// WithoutDescription returns a copy of g with the description removed.
func (g Gesture) WithoutDescription() Gesture {
	g.description = ""
	g.hasDescription = false
	return g
}

// IsAbsolute reports whether the gesture direction is screen-fixed.
func (g Gesture) IsAbsolute() bool {
	return g.direction.IsAbsolute()
}

// Key returns the matching key of g.
func (g Gesture) Key() Key {
	return Key{Fingers: g.fingers, Direction: g.direction}
}

// Equal reports whether g and other are the same value, description
// included.
func (g Gesture) Equal(other Gesture) bool {
	return g == other
}

// Matches reports whether g and other bind the same input.
func (g Gesture) Matches(other Gesture) bool {
	return g.Key() == other.Key()
}

// Format returns the display form, e.g. "3 Finger RelativeLeft".
func (g Gesture) Format() string {
	return string(g.AppendFormat(nil))
}

// AppendFormat appends the display form of g to b.
func (g Gesture) AppendFormat(b []byte) []byte {
	b = strconv.AppendUint(b, uint64(g.fingers), 10)
	b = append(b, " Finger "...)
	return append(b, g.direction.Name()...)
}

// Encode returns the canonical encoding, e.g. "3+RelativeLeft".
func (g Gesture) Encode() string {
	return string(g.appendEncoded(nil))
}

// String implements fmt.Stringer with the canonical encoding.
func (g Gesture) String() string {
	return g.Encode()
}

func (g Gesture) appendEncoded(b []byte) []byte {
	b = strconv.AppendUint(b, uint64(g.fingers), 10)
	b = append(b, separator)
	return append(b, g.direction.Name()...)
}
