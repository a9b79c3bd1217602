// Package command builds the fixed argument vectors ifguard may hand to the
// dispatcher. Every vector starts with one of the four supported program
// names; nothing else can be produced.
package command

import (
	"strconv"

	"github.com/ifguard/ifguard/internal/fault"
	"github.com/ifguard/ifguard/internal/sanitize"
)

// Program selects one of the four external tools ifguard can dispatch to.
// The closed enumeration is what keeps Build exhaustive: adding a program
// means adding a case here, not comparing strings somewhere else.
type Program int

const (
	Capture Program = iota + 1 // tcpdump
	Replay                     // tcpreplay
	Link                       // ip
	Tune                       // ethtool
)

// Request carries the validated inputs for one invocation. Fields that do
// not apply to the selected program are ignored.
type Request struct {
	Iface string

	// Capture limits. Zero means unset.
	Count   int
	Timeout int

	// Link action, "up" or "down".
	Action string

	// Tune subcommand and its raw trailing arguments.
	TuneOp   string
	TuneArgs []string
}

// tuneFlags maps a tune subcommand to the single ethtool flag it expands
// to. The three branches differ only in this prefix.
var tuneFlags = map[string]string{
	"change": "--change",
	"eee":    "--set-eee",
	"pause":  "--pause",
}

// Build maps a validated request onto the fixed argv template for prog.
func Build(prog Program, req Request) ([]string, error) {
	switch prog {
	case Capture:
		argv := []string{
			"tcpdump", "-n",
			"--interface=" + req.Iface,
			"--packet-buffered",
			"--snapshot-length=0",
			"-w", "-",
		}
		if req.Count > 0 {
			argv = append(argv, "-c", strconv.Itoa(req.Count))
		}
		if req.Timeout > 0 {
			// tcpdump has no duration flag. Rotating the dump file
			// after N seconds while keeping at most one file amounts
			// to the same thing.
			argv = append(argv, "-G", strconv.Itoa(req.Timeout), "-W", "1")
		}
		return argv, nil

	case Replay:
		return []string{"tcpreplay", "--intf1=" + req.Iface, "-"}, nil

	case Link:
		if req.Action != "up" && req.Action != "down" {
			return nil, fault.Validationf("link action must be %q or %q, got %q", "up", "down", req.Action)
		}
		return []string{"ip", "link", "set", "dev", req.Iface, req.Action}, nil

	case Tune:
		flag, ok := tuneFlags[req.TuneOp]
		if !ok {
			return nil, fault.Validationf("unknown tune subcommand %q", req.TuneOp)
		}
		args, err := sanitize.Args(req.TuneArgs)
		if err != nil {
			return nil, err
		}
		return append([]string{"ethtool", flag, req.Iface}, args...), nil

	default:
		// Unreachable through the CLI, which only constructs the four
		// values above.
		return nil, fault.Configf("invalid program")
	}
}
