package cli

import (
	"github.com/spf13/cobra"

	"github.com/ifguard/ifguard/internal/command"
	"github.com/ifguard/ifguard/internal/fault"
)

// newCaptureCmd creates the capture subcommand (tcpdump).
func newCaptureCmd(opts *options) *cobra.Command {
	var count, timeout int

	cmd := &cobra.Command{
		Use:   "capture <interface>",
		Short: "Capture packets with tcpdump, writing pcap data to stdout",
		Long: `Capture packets on the given interface with tcpdump. Output is raw pcap
on stdout, numeric addresses only, full snapshot length, packet-buffered.

A duration limit is encoded as tcpdump file rotation: rotate after N
seconds but keep at most one file.

Example:
  sudo ifguard capture eth0 --count 100 --timeout 30 > frames.pcap`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return fault.Validationf("count must not be negative, got %d", count)
			}
			if timeout < 0 {
				return fault.Validationf("timeout must not be negative, got %d", timeout)
			}
			req := command.Request{
				Iface:   args[0],
				Count:   count,
				Timeout: timeout,
			}
			return run(cmd, opts, command.Capture, req)
		},
	}

	cmd.Flags().IntVar(&count, "count", 0, "Stop after this many frames (0 = unlimited)")
	cmd.Flags().IntVar(&timeout, "timeout", 0, "Stop after this many seconds (0 = no limit)")

	return cmd
}
