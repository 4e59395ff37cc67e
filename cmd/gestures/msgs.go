package gestures

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Inspect and validate touchpad gesture bindings"
	MsgParseShort      = "Parse canonical gesture encodings"
	MsgFormatShort     = "Build a gesture from a finger count and a direction"
	MsgDirectionsShort = "List the direction vocabulary"
	MsgListShort       = "List the effective bindings"
	MsgLookupShort     = "Show the action bound to a gesture"
	MsgCheckShort      = "Validate configuration files"
	MsgMigrateShort    = "Rewrite shorthand bindings as gesture records"
	MsgGenConfigShort  = "Output a commented configuration template"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgCheckOK         = "%s: ok, %d bindings"
	MsgConfigWritten   = "Wrote configuration template to %s"
	MsgVersionFormat   = "gestures version %s\n  commit: %s\n  built:  %s\n"
	MsgEffectiveConfig = "effective configuration"
	MsgNoCommandGiven  = "no command specified"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat      = "Output format: auto, term, text or json"
	MsgFlagConfig      = "Configuration file to use instead of the XDG location"
	MsgFlagDescription = "Description to attach to the gesture"
	MsgFlagTo          = "Output format for migrate: toml or yaml"
	MsgFlagWrite       = "Write the template to the XDG config location"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/examples.txt
	msgExamplesRaw string
	MsgExamples    = strings.TrimRight(msgExamplesRaw, "\n")

	//go:embed msgs/parse-long.txt
	msgParseLongRaw string
	MsgParseLong    = strings.TrimSpace(msgParseLongRaw)

	//go:embed msgs/format-long.txt
	msgFormatLongRaw string
	MsgFormatLong    = strings.TrimSpace(msgFormatLongRaw)

	//go:embed msgs/migrate-long.txt
	msgMigrateLongRaw string
	MsgMigrateLong    = strings.TrimSpace(msgMigrateLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
