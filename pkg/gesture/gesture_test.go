package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	g := New(3, Relative(RelativeLeft))

	assert.Equal(t, uint32(3), g.Fingers())
	assert.Equal(t, Relative(RelativeLeft), g.Direction())
	_, ok := g.Description()
	assert.False(t, ok)
	assert.False(t, g.IsAbsolute())
	assert.True(t, New(4, Absolute(AbsoluteUp)).IsAbsolute())
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name    string
		gesture Gesture
		want    string
	}{
		{"three_up", New(3, Absolute(AbsoluteUp)), "3 Finger AbsoluteUp"},
		{"singular_for_plural", New(4, Relative(RelativeForward)), "4 Finger RelativeForward"},
		{"zero_fingers", New(0, Relative(RelativeRight)), "0 Finger RelativeRight"},
		{"description_not_shown", New(1, Absolute(AbsoluteDown)).WithDescription("hi"), "1 Finger AbsoluteDown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.gesture.Format())
		})
	}
}

func TestAppendFormat(t *testing.T) {
	b := []byte("Binding: ")
	b = New(2, Relative(RelativeBackward)).AppendFormat(b)
	assert.Equal(t, "Binding: 2 Finger RelativeBackward", string(b))
}

func TestEncodeIsNotDisplay(t *testing.T) {
	g := New(3, Absolute(AbsoluteUp))

	assert.Equal(t, "3+AbsoluteUp", g.Encode())
	assert.Equal(t, "3+AbsoluteUp", g.String())
	assert.NotEqual(t, g.Format(), g.Encode())

	_, err := Parse(g.Format())
	assert.Error(t, err, "display form must not be accepted by the parser")
}

func TestDescription(t *testing.T) {
	base := New(4, Relative(RelativeLeft))

	withEmpty := base.WithDescription("")
	desc, ok := withEmpty.Description()
	assert.True(t, ok)
	assert.Equal(t, "", desc)
	assert.NotEqual(t, base, withEmpty, "empty description is still a description")

	named := base.WithDescription("Previous workspace")
	desc, ok = named.Description()
	assert.True(t, ok)
	assert.Equal(t, "Previous workspace", desc)

	_, ok = base.Description()
	assert.False(t, ok, "WithDescription must not modify the receiver")

	assert.Equal(t, base, named.WithoutDescription())
	assert.Equal(t, "4+RelativeLeft", named.Encode())
}

func TestEqualityAndKey(t *testing.T) {
	a := New(3, Absolute(AbsoluteLeft)).WithDescription("one")
	b := New(3, Absolute(AbsoluteLeft)).WithDescription("two")
	c := New(3, Absolute(AbsoluteLeft)).WithDescription("one")

	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(c))
	assert.True(t, a == c)

	assert.True(t, a.Matches(b))
	assert.Equal(t, a.Key(), b.Key())
	assert.False(t, a.Matches(New(4, Absolute(AbsoluteLeft))))
	assert.False(t, a.Matches(New(3, Relative(RelativeLeft))))

	assert.Equal(t, "3+AbsoluteLeft", a.Key().String())
}

func TestGestureAsMapKey(t *testing.T) {
	actions := map[Gesture]string{
		New(3, Relative(RelativeLeft)):                       "previous",
		New(3, Relative(RelativeLeft)).WithDescription("x"): "described",
	}
	assert.Len(t, actions, 2)
	assert.Equal(t, "previous", actions[MustParse("3+RelativeLeft")])

	byKey := map[Key]string{
		New(3, Relative(RelativeLeft)).Key(): "previous",
	}
	assert.Equal(t, "previous", byKey[New(3, Relative(RelativeLeft)).WithDescription("x").Key()])
}

func TestMustParse(t *testing.T) {
	require.NotPanics(t, func() { MustParse("1+AbsoluteUp") })
	assert.Panics(t, func() { MustParse("1+Up") })
}
