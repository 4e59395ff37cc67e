// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/gestures/pkg/bindings"
	"github.com/arthur-debert/gestures/pkg/errors"
	"github.com/arthur-debert/gestures/pkg/gesture"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	output  io.Writer
	encoder *json.Encoder
}

type gestureObj struct {
	Encoded string          `json:"encoded"`
	Display string          `json:"display"`
	Record  gesture.Gesture `json:"record"`
}

type bindingObj struct {
	gestureObj
	Action string `json:"action"`
}

type directionObj struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

type errorObj struct {
	Error   string                 `json:"error"`
	Code    errors.ErrorCode       `json:"code"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// New creates a new JSON renderer
func New(output io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{
		output:  output,
		encoder: encoder,
	}, nil
}

func objFor(g gesture.Gesture) gestureObj {
	return gestureObj{Encoded: g.Encode(), Display: g.Format(), Record: g}
}

// RenderGesture renders g with both string forms and its record
func (r *Renderer) RenderGesture(g gesture.Gesture) error {
	return r.encoder.Encode(objFor(g))
}

// RenderBindings renders bindings as a JSON array
func (r *Renderer) RenderBindings(bs []bindings.Binding) error {
	out := make([]bindingObj, 0, len(bs))
	for _, b := range bs {
		out = append(out, bindingObj{gestureObj: objFor(b.Gesture), Action: string(b.Action)})
	}
	return r.encoder.Encode(out)
}

// RenderDirections renders the vocabulary as a JSON array
func (r *Renderer) RenderDirections(ds []gesture.Direction) error {
	out := make([]directionObj, 0, len(ds))
	for _, d := range ds {
		kind := "Relative"
		if d.IsAbsolute() {
			kind = "Absolute"
		}
		out = append(out, directionObj{Name: d.Name(), Kind: kind})
	}
	return r.encoder.Encode(out)
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	return r.encoder.Encode(errorObj{
		Error:   err.Error(),
		Code:    errors.GetErrorCode(err),
		Details: errors.GetErrorDetails(err),
	})
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	messageObj := map[string]string{
		"message": msg,
	}
	return r.encoder.Encode(messageObj)
}
