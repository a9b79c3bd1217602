// ifguard is a sudo-target wrapper that validates network-diagnostic
// invocations (tcpdump, tcpreplay, ip link, ethtool) against a root-owned
// interface denylist before replacing itself with the real tool.
package main

import (
	"os"

	"github.com/ifguard/ifguard/internal/cli"
)

// version is set via ldflags at build time
var version = "dev"

func main() {
	os.Exit(cli.Execute(version))
}
