package cli

import (
	"github.com/spf13/cobra"

	"github.com/ifguard/ifguard/internal/command"
)

// newReplayCmd creates the replay subcommand (tcpreplay).
func newReplayCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <interface>",
		Short: "Replay packets from stdin with tcpreplay",
		Long: `Replay packets on the given interface with tcpreplay, reading pcap data
from stdin. Pairs with capture:

  sudo ifguard capture eth0 --count 100 | sudo ifguard replay eth1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, command.Replay, command.Request{Iface: args[0]})
		},
	}
}
