package gestures

import (
	"embed"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/gestures/internal/version"
	"github.com/arthur-debert/gestures/pkg/cobrax/topics"
	"github.com/arthur-debert/gestures/pkg/config"
	"github.com/arthur-debert/gestures/pkg/errors"
	"github.com/arthur-debert/gestures/pkg/logging"
	"github.com/arthur-debert/gestures/pkg/ui"
)

//go:embed topics
var topicsFS embed.FS

// rootOptions holds the global flag values shared by every command.
type rootOptions struct {
	verbosity  int
	format     ui.Format
	configFile string
}

// renderer returns the output renderer selected by --format.
func (o *rootOptions) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	return ui.NewRenderer(o.format, cmd.OutOrStdout())
}

// loadConfig loads --config when given, the XDG file otherwise.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.configFile != "" {
		return config.Load(config.Options{}, o.configFile)
	}
	return config.LoadDefault()
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "gestures",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgExamples,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLoggerTo(cmd.ErrOrStderr(), opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgNoCommandGiven)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().Var(&opts.format, "format", MsgFlagFormat)
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return ui.FormatNames(), cobra.ShellCompDirectiveNoFileComp
	})
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Wrap(err, errors.ErrInvalidInput, "invalid flag")
	})
	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{ID: "gestures", Title: "GESTURES:"})
	rootCmd.AddGroup(&cobra.Group{ID: "config", Title: "CONFIGURATION:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newParseCmd(opts))
	rootCmd.AddCommand(newFormatCmd(opts))
	rootCmd.AddCommand(newDirectionsCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newLookupCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newGenConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	var renderer topics.Renderer = &topics.PlainRenderer{}
	if ui.DetectFormat(os.Stdout) == ui.FormatTerminal {
		renderer = topics.NewGlamourRenderer()
	}

	sub, err := fs.Sub(topicsFS, "topics")
	if err != nil {
		panic(err)
	}
	tm, err := topics.InitializeWithOptions(rootCmd, sub, topics.Options{
		Extensions: []string{".txt", ".md"},
		Renderer:   renderer,
	})
	if err != nil {
		panic(err)
	}
	rootCmd.SetHelpCommandGroupID("misc")
	rootCmd.AddCommand(newTopicsCmd(tm))

	return rootCmd
}
