// Package testutil provides utilities for testing gestures components.
//
// TestEnvironment points the config and state directories at temporary
// directories so tests never touch the real XDG locations, and offers
// helpers for writing configuration fixtures inline.
package testutil
