package cli

import (
	"github.com/spf13/cobra"

	"github.com/ifguard/ifguard/internal/command"
)

// newTuneCmd creates the tune subcommand (ethtool).
func newTuneCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tune <change|eee|pause> <interface> [args...]",
		Short: "Adjust NIC settings with ethtool",
		Long: `Forward a restricted ethtool operation for the given interface:

  change    ethtool --change     (generic parameter changes)
  eee       ethtool --set-eee    (energy-efficient ethernet)
  pause     ethtool --pause      (pause frame configuration)

Trailing arguments are copied verbatim after filtering: they may only
contain letters, digits, hyphen, slash and colon, and must not start with
a hyphen.

Example:
  sudo ifguard tune pause eth0 autoneg off`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := command.Request{
				Iface:    args[1],
				TuneOp:   args[0],
				TuneArgs: args[2:],
			}
			return run(cmd, opts, command.Tune, req)
		},
	}

	// Stop flag parsing at the first positional argument so hostile
	// flag-shaped tokens reach the sanitizer instead of pflag.
	cmd.Flags().SetInterspersed(false)

	return cmd
}
