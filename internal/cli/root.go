// Package cli provides the command-line interface and the main execution
// flow for ifguard.
package cli

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ifguard/ifguard/internal/command"
	"github.com/ifguard/ifguard/internal/config"
	"github.com/ifguard/ifguard/internal/dispatch"
	"github.com/ifguard/ifguard/internal/fault"
	"github.com/ifguard/ifguard/internal/logging"
	"github.com/ifguard/ifguard/internal/validate"
)

// configPath is a variable so tests can point the pipeline at a fixture
// file. There is intentionally no flag for it.
var configPath = config.Path

// options holds the persistent flags shared by all subcommands.
type options struct {
	Debug  bool
	DryRun bool
}

// Execute runs the root command and renders any failure the way callers
// see it: an optional debug chain, then a single ERROR line, exit 1.
func Execute(version string) int {
	opts := &options{}
	cmd := newRootCmd(version, opts)
	if err := cmd.Execute(); err != nil {
		logging.NewStderrLogger(opts.Debug).FailureChain(err)
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCmd creates the root command. Exposed for tests; production code
// goes through Execute.
func NewRootCmd(version string) *cobra.Command {
	return newRootCmd(version, &options{})
}

func newRootCmd(version string, opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ifguard <subcommand> [flags]",
		Short: "Restricted sudo wrapper around network diagnostic tools",
		Long: `ifguard is a privileged wrapper around tcpdump, tcpreplay, ip and ethtool.
It validates the requested interface and arguments against a root-owned
denylist (` + config.Path + `) and then replaces itself with the real tool.

ifguard is meant to be the only network-diagnostic entry granted in sudoers:

  %netdiag ALL=(root) NOPASSWD: /usr/local/bin/ifguard

Example:
  sudo ifguard capture eth0 --count 100 > frames.pcap
  sudo ifguard link eth1 down`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "Show debug output and the full failure chain on errors")
	cmd.PersistentFlags().BoolVar(&opts.DryRun, "dry-run", false, "Print the resolved command instead of executing it")

	cmd.AddCommand(newCaptureCmd(opts))
	cmd.AddCommand(newReplayCmd(opts))
	cmd.AddCommand(newLinkCmd(opts))
	cmd.AddCommand(newTuneCmd(opts))
	cmd.AddCommand(newIfacesCmd())
	cmd.AddCommand(NewVersionCmd(version))
	cmd.AddCommand(NewCompletionCmd())

	return cmd
}

// run is the shared pipeline behind every dispatching subcommand:
// load denylist, validate the interface, build the argv, then either print
// it (--dry-run) or replace the process. Strictly linear; the first failure
// aborts the invocation.
func run(cmd *cobra.Command, opts *options, prog command.Program, req command.Request) error {
	logger := logging.NewStderrLogger(opts.Debug)

	denied, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger.Debug("Denylist: %s", strings.Join(denied.Names(), ", "))

	if _, err := validate.Interface(req.Iface, denied); err != nil {
		return err
	}
	logger.Debug("Interface %q accepted", req.Iface)

	argv, err := command.Build(prog, req)
	if err != nil {
		return err
	}
	logger.Debug("Resolved command: %s", strings.Join(argv, " "))

	if opts.DryRun {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(argv, " "))
		return nil
	}

	if err := checkPlatform(); err != nil {
		return err
	}
	if err := checkPrivileges(); err != nil {
		return err
	}
	return dispatch.Exec(argv)
}

// checkPrivileges verifies we run as root before the one privileged action.
func checkPrivileges() error {
	if os.Getuid() != 0 {
		return fault.Runtimef("ifguard requires root privileges; run via sudo")
	}
	return nil
}

// checkPlatform ensures we're running on Linux.
func checkPlatform() error {
	if runtime.GOOS != "linux" {
		return fault.Runtimef("ifguard requires Linux")
	}
	return nil
}
