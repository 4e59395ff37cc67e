package gestures

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/gestures/internal/version"
	"github.com/arthur-debert/gestures/pkg/bindings"
	"github.com/arthur-debert/gestures/pkg/cobrax/topics"
	"github.com/arthur-debert/gestures/pkg/config"
	"github.com/arthur-debert/gestures/pkg/errors"
	"github.com/arthur-debert/gestures/pkg/gesture"
	"github.com/arthur-debert/gestures/pkg/logging"
	"github.com/arthur-debert/gestures/pkg/paths"
)

// directionNamesCompletion completes direction names
func directionNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var names []string
	for _, d := range gesture.Directions() {
		names = append(names, d.Name())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func newParseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "parse <encoding>...",
		Short:   MsgParseShort,
		Long:    MsgParseLong,
		Example: "  gestures parse 3+AbsoluteUp 4+RelativeLeft",
		GroupID: "gestures",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.renderer(cmd)
			if err != nil {
				return err
			}

			for _, arg := range args {
				g, err := gesture.Parse(arg)
				if err != nil {
					return err
				}
				if err := r.RenderGesture(g); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newFormatCmd(opts *rootOptions) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:     "format <fingers> <direction>",
		Short:   MsgFormatShort,
		Long:    MsgFormatLong,
		Example: "  gestures format 3 AbsoluteUp --description \"Window overview\"",
		GroupID: "gestures",
		Args:    cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 1 {
				return directionNamesCompletion(cmd, args, toComplete)
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			fingers, err := gesture.ParseFingers(args[0])
			if err != nil {
				return err
			}
			direction, err := gesture.ParseDirection(args[1])
			if err != nil {
				return err
			}

			g := gesture.New(fingers, direction)
			if cmd.Flags().Changed("description") {
				g = g.WithDescription(description)
			}

			r, err := opts.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderGesture(g)
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", MsgFlagDescription)

	return cmd
}

func newDirectionsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "directions",
		Short:   MsgDirectionsShort,
		GroupID: "gestures",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderDirections(gesture.Directions())
		},
	}
}

// effectiveBindings loads the configuration and builds its binding set
func effectiveBindings(opts *rootOptions) (*bindings.Set, error) {
	cfg, err := opts.loadConfig()
	if err != nil {
		return nil, err
	}
	return cfg.BindingSet()
}

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		GroupID: "config",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := effectiveBindings(opts)
			if err != nil {
				return err
			}

			r, err := opts.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderBindings(set.All())
		},
	}
}

func newLookupCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "lookup <encoding>",
		Short:   MsgLookupShort,
		GroupID: "config",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := gesture.Parse(args[0])
			if err != nil {
				return err
			}

			set, err := effectiveBindings(opts)
			if err != nil {
				return err
			}

			b, ok := set.Match(g)
			if !ok {
				return errors.Newf(errors.ErrNotFound, "no binding for %s", g.Format()).
					WithDetail(errors.DetailToken, args[0])
			}

			r, err := opts.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderBindings([]bindings.Binding{b})
		},
	}
}

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check [file...]",
		Short: MsgCheckShort,
		Long: "Check validates each file on its own, without the defaults. With no\n" +
			"arguments it validates the effective configuration.",
		GroupID: "config",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.check")

			r, err := opts.renderer(cmd)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				set, err := effectiveBindings(opts)
				if err != nil {
					return err
				}
				return r.RenderMessage(fmt.Sprintf(MsgCheckOK, MsgEffectiveConfig, set.Len()))
			}

			for _, path := range args {
				cfg, err := config.Load(config.Options{SkipDefaults: true}, path)
				if err != nil {
					return err
				}
				set, err := cfg.BindingSet()
				if err != nil {
					return errors.Wrapf(err, errors.ErrConfigParse, "invalid config %s", path).
						WithDetail("path", path)
				}
				logger.Info().Str("path", path).Int("bindings", set.Len()).Msg("Config valid")
				if err := r.RenderMessage(fmt.Sprintf(MsgCheckOK, path, set.Len())); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newMigrateCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:     "migrate <file>",
		Short:   MsgMigrateShort,
		Long:    MsgMigrateLong,
		Example: "  gestures migrate ~/.config/gestures/gestures.toml > migrated.toml",
		GroupID: "config",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			target := to
			if target == "" {
				target = filepath.Ext(path)
			}
			format, err := config.ParseFormat(target)
			if err != nil {
				return err
			}

			cfg, err := config.Load(config.Options{SkipDefaults: true}, path)
			if err != nil {
				return err
			}
			migrated, err := cfg.Migrate()
			if err != nil {
				return err
			}

			log.Info().
				Str("path", path).
				Str("format", string(format)).
				Int("entries", len(migrated.Gestures)).
				Msg("Config migrated")

			return config.Encode(cmd.OutOrStdout(), format, migrated)
		},
	}

	cmd.Flags().StringVar(&to, "to", "", MsgFlagTo)

	return cmd
}

func newGenConfigCmd(opts *rootOptions) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		GroupID: "config",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.Template())
				return err
			}

			path := paths.New().ConfigFilePath()
			if _, err := os.Stat(path); err == nil {
				return errors.Newf(errors.ErrInvalidInput, "config file %s already exists", path).
					WithDetail("path", path)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to create config directory")
			}
			if err := os.WriteFile(path, []byte(config.Template()), 0644); err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to write config template")
			}

			r, err := opts.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderMessage(fmt.Sprintf(MsgConfigWritten, path))
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)

	return cmd
}

func newTopicsCmd(tm *topics.TopicManager) *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tm.PrintList(cmd.OutOrStdout(), cmd.Root().Name())
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
		},
	}
}
