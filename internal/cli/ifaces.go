package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ifguard/ifguard/internal/config"
	"github.com/ifguard/ifguard/internal/fault"
	"github.com/ifguard/ifguard/internal/netinfo"
)

// newIfacesCmd creates the ifaces subcommand, a read-only preview of which
// system interfaces the denylist permits.
func newIfacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ifaces",
		Short: "List system interfaces and their denylist verdict",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			denied, err := config.Load(configPath)
			if err != nil {
				return err
			}
			ifaces, err := netinfo.List(denied)
			if err != nil {
				return fault.RuntimeWrap(err, "enumerating interfaces")
			}

			w := cmd.OutOrStdout()
			for _, iface := range ifaces {
				state := "down"
				if iface.Up {
					state = "up"
				}
				verdict := "allowed"
				if iface.Denied {
					verdict = "denied"
				}
				fmt.Fprintf(w, "%-16s %-4s %s\n", iface.Name, state, verdict)
			}
			return nil
		},
	}
}
