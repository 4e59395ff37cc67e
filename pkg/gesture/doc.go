// Package gesture defines multi-finger touchpad gesture bindings.
//
// A Gesture is a finger count, a Direction and an optional description.
// Directions are either absolute (fixed to the screen) or relative (fixed
// to the workspace orientation):
//
//	AbsoluteUp  AbsoluteDown  AbsoluteLeft  AbsoluteRight
//	RelativeForward  RelativeBackward  RelativeLeft  RelativeRight
//
// Gestures have two string forms that are not inverses of each other:
//
//	3+RelativeLeft        canonical encoding, see Encode and Parse
//	3 Finger RelativeLeft display form, see Format (never parsed)
//
// In configuration files a gesture can also be written as a record:
//
//	fingers = 3
//	direction = { Relative = "RelativeLeft" }
//	description = "Previous workspace"
//
// Record decoding is strict: unknown keys are rejected.
//
// The description takes part in == but not in Key, which is what live
// input is matched against.
package gesture
