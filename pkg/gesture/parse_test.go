package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/gestures/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Gesture
	}{
		{"3+RelativeLeft", New(3, Relative(RelativeLeft))},
		{"5+AbsoluteUp", New(5, Absolute(AbsoluteUp))},
		{"0+RelativeForward", New(0, Relative(RelativeForward))},
		{"4294967295+AbsoluteRight", New(4294967295, Absolute(AbsoluteRight))},
		{"03+AbsoluteDown", New(3, Absolute(AbsoluteDown))},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			_, hasDesc := got.Description()
			assert.False(t, hasDesc)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		code      errors.ErrorCode
		detailKey string
		detail    string
	}{
		{
			name:      "trailing_data",
			input:     "4+AbsoluteLeft+More+Info",
			code:      errors.ErrTrailingData,
			detailKey: errors.DetailRemainder,
			detail:    "More+Info",
		},
		{
			name:      "trailing_data_with_invalid_segments",
			input:     "x+Nowhere+extra",
			code:      errors.ErrTrailingData,
			detailKey: errors.DetailRemainder,
			detail:    "extra",
		},
		{
			name:      "trailing_empty_segment",
			input:     "4+AbsoluteLeft+",
			code:      errors.ErrTrailingData,
			detailKey: errors.DetailRemainder,
			detail:    "",
		},
		{
			name:      "word_finger_count",
			input:     "three+AbsoluteUp",
			code:      errors.ErrInvalidFingerCount,
			detailKey: errors.DetailToken,
			detail:    "three",
		},
		{
			name:      "negative_finger_count",
			input:     "-1+AbsoluteUp",
			code:      errors.ErrInvalidFingerCount,
			detailKey: errors.DetailToken,
			detail:    "-1",
		},
		{
			name:      "overflowing_finger_count",
			input:     "4294967296+AbsoluteUp",
			code:      errors.ErrInvalidFingerCount,
			detailKey: errors.DetailToken,
			detail:    "4294967296",
		},
		{
			name:      "spaced_finger_count",
			input:     " 3+AbsoluteUp",
			code:      errors.ErrInvalidFingerCount,
			detailKey: errors.DetailToken,
			detail:    " 3",
		},
		{
			name:      "empty_direction",
			input:     "2+",
			code:      errors.ErrInvalidDirection,
			detailKey: errors.DetailToken,
			detail:    "",
		},
		{
			name:      "unknown_direction",
			input:     "2+Sideways",
			code:      errors.ErrInvalidDirection,
			detailKey: errors.DetailToken,
			detail:    "Sideways",
		},
		{
			name:      "flat_direction_name",
			input:     "3+Up",
			code:      errors.ErrInvalidDirection,
			detailKey: errors.DetailToken,
			detail:    "Up",
		},
		{
			name:  "empty_input",
			input: "",
			code:  errors.ErrMissingFingerCount,
		},
		{
			name:  "leading_separator",
			input: "+AbsoluteUp",
			code:  errors.ErrMissingFingerCount,
		},
		{
			name:  "no_separator",
			input: "3",
			code:  errors.ErrMissingDirection,
		},
		{
			name:  "display_form",
			input: "3 Finger AbsoluteUp",
			code:  errors.ErrMissingDirection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.Error(t, err)
			assert.Equal(t, Gesture{}, got)
			assert.Equal(t, tt.code, errors.GetErrorCode(err), err.Error())

			if tt.detailKey != "" {
				detail, ok := errors.GetDetail(err, tt.detailKey)
				require.True(t, ok)
				assert.Equal(t, tt.detail, detail)
			}
		})
	}
}

func TestParseFingers(t *testing.T) {
	n, err := ParseFingers("04")
	require.NoError(t, err)
	assert.Equal(t, uint32(4), n)

	n, err = ParseFingers("4294967295")
	require.NoError(t, err)
	assert.Equal(t, uint32(4294967295), n)

	for _, token := range []string{"-1", "4294967296", "1.5", " 3", ""} {
		_, err := ParseFingers(token)
		require.Error(t, err, token)
		assert.Equal(t, errors.ErrInvalidFingerCount, errors.GetErrorCode(err), token)
		detail, _ := errors.GetDetail(err, errors.DetailToken)
		assert.Equal(t, token, detail)
	}
}

func TestParseTrailingDataIsNotAPrefixMatch(t *testing.T) {
	got, err := Parse("4+AbsoluteLeft+More+Info")
	require.Error(t, err)
	assert.NotEqual(t, New(4, Absolute(AbsoluteLeft)), got)
}

func TestEncodeParseRoundTrip(t *testing.T) {
	for _, fingers := range []uint32{0, 1, 2, 3, 4, 5, 10} {
		for _, d := range Directions() {
			g := New(fingers, d)
			parsed, err := Parse(g.Encode())
			require.NoError(t, err, g.Encode())
			assert.Equal(t, g, parsed)
		}
	}
}

func TestRoundTripDropsDescription(t *testing.T) {
	g := New(3, Relative(RelativeRight)).WithDescription("Next")

	parsed, err := Parse(g.Encode())
	require.NoError(t, err)
	assert.NotEqual(t, g, parsed)
	assert.Equal(t, g.WithoutDescription(), parsed)
	assert.True(t, g.Matches(parsed))
}

func TestGestureText(t *testing.T) {
	text, err := New(2, Absolute(AbsoluteRight)).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2+AbsoluteRight", string(text))

	var g Gesture
	require.NoError(t, g.UnmarshalText([]byte("3+RelativeBackward")))
	assert.Equal(t, New(3, Relative(RelativeBackward)), g)

	err = g.UnmarshalText([]byte("3+RelativeBackward+1"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrTrailingData))

	_, err = Gesture{}.MarshalText()
	assert.True(t, errors.IsErrorCode(err, errors.ErrMissingDirection))
}
