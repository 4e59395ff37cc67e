// Package bindings maps gestures to compositor actions.
//
// Bindings are keyed by gesture.Key: the description of a gesture is a
// label and does not take part in matching, so two bindings whose gestures
// differ only in description conflict.
package bindings

import (
	"sort"
	"sync"

	"github.com/arthur-debert/gestures/pkg/errors"
	"github.com/arthur-debert/gestures/pkg/gesture"
	"github.com/arthur-debert/gestures/pkg/logging"
)

// Action names what the compositor does when a gesture fires. The set of
// actions belongs to the compositor; it is opaque here.
type Action string

// Binding pairs a gesture with an action.
type Binding struct {
	Gesture gesture.Gesture
	Action  Action
}

// Set is a collection of bindings safe for concurrent use.
type Set struct {
	mu       sync.RWMutex
	bindings map[gesture.Key]Binding
}

// NewSet creates a set holding the given bindings.
func NewSet(bindings ...Binding) (*Set, error) {
	s := &Set{bindings: make(map[gesture.Key]Binding, len(bindings))}
	for _, b := range bindings {
		if err := s.Add(b); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add inserts b. It fails if the gesture is invalid, the action is empty,
// or another binding already matches the same input.
func (s *Set) Add(b Binding) error {
	if err := validate(b); err != nil {
		return err
	}

	key := b.Gesture.Key()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.bindings == nil {
		s.bindings = make(map[gesture.Key]Binding)
	}
	if existing, ok := s.bindings[key]; ok {
		logger := logging.GetLogger("bindings")
		logger.Debug().
			Str("gesture", key.String()).
			Str("existing", string(existing.Action)).
			Str("rejected", string(b.Action)).
			Msg("Binding conflict")
		return errors.Newf(errors.ErrBindingConflict, "gesture %s is bound to both %q and %q",
			key, existing.Action, b.Action).
			WithDetail(errors.DetailToken, key.String())
	}
	s.bindings[key] = b
	return nil
}

// Replace inserts b, overwriting any binding matching the same input.
func (s *Set) Replace(b Binding) error {
	if err := validate(b); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.bindings == nil {
		s.bindings = make(map[gesture.Key]Binding)
	}
	key := b.Gesture.Key()
	if existing, ok := s.bindings[key]; ok {
		logger := logging.GetLogger("bindings")
		logger.Trace().
			Str("gesture", key.String()).
			Str("from", string(existing.Action)).
			Str("to", string(b.Action)).
			Msg("Binding replaced")
	}
	s.bindings[key] = b
	return nil
}

func validate(b Binding) error {
	if !b.Gesture.Direction().Valid() {
		return errors.Newf(errors.ErrMissingDirection, "binding for action %q has no direction", b.Action)
	}
	if b.Action == "" {
		return errors.Newf(errors.ErrInvalidInput, "gesture %s has no action", b.Gesture).
			WithDetail(errors.DetailToken, b.Gesture.Encode())
	}
	return nil
}

// Remove deletes the binding matching key and reports whether one existed.
func (s *Set) Remove(key gesture.Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bindings[key]; !ok {
		return false
	}
	delete(s.bindings, key)
	return true
}

// Lookup finds the binding for live input.
func (s *Set) Lookup(fingers uint32, direction gesture.Direction) (Binding, bool) {
	return s.Match(gesture.New(fingers, direction))
}

// Match finds the binding whose gesture matches g, ignoring descriptions.
func (s *Set) Match(g gesture.Gesture) (Binding, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bindings[g.Key()]
	return b, ok
}

// Len returns the number of bindings.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bindings)
}

// All returns a snapshot ordered by finger count, then direction.
func (s *Set) All() []Binding {
	s.mu.RLock()
	out := make([]Binding, 0, len(s.bindings))
	for _, b := range s.bindings {
		out = append(out, b)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Gesture, out[j].Gesture
		if a.Fingers() != b.Fingers() {
			return a.Fingers() < b.Fingers()
		}
		return a.Direction().Less(b.Direction())
	})
	return out
}
