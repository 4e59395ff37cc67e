// Package config loads gesture bindings from configuration files.
//
// Sources are layered with koanf: the embedded defaults first, then each
// user file in order. TOML (.toml) and YAML (.yaml, .yml) files are
// supported. A file holds two tables:
//
//	[[gestures]]
//	fingers = 4
//	direction = { Relative = "RelativeForward" }
//	description = "Next workspace"
//	action = "NextWorkspace"
//
//	[bindings]
//	"3+AbsoluteUp" = "WindowOverview"
//
// A later [[gestures]] list replaces earlier ones; [bindings] tables are
// merged key by key. Unknown keys anywhere are rejected.
package config
