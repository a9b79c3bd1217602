package cli

import (
	"github.com/spf13/cobra"

	"github.com/ifguard/ifguard/internal/command"
)

// newLinkCmd creates the link subcommand (ip link set).
func newLinkCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "link <interface> <up|down>",
		Short: "Bring an interface up or down with ip",
		Long: `Set the administrative state of the given interface via "ip link set".
Only "up" and "down" are accepted.

Example:
  sudo ifguard link eth1 down`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := command.Request{
				Iface:  args[0],
				Action: args[1],
			}
			return run(cmd, opts, command.Link, req)
		},
	}
}
