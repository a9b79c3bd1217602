// Package dispatch replaces the ifguard process with the resolved command.
package dispatch

import (
	"os"
	"os/exec"

	"golang.org/x/sys/unix"

	"github.com/ifguard/ifguard/internal/fault"
)

// Exec replaces the current process image with argv. The target program
// inherits stdio and the environment; on success this function never
// returns and the exit status becomes the target's own. This is the only
// place ifguard exercises its privilege, so every caller must have run the
// full validation pipeline first.
func Exec(argv []string) error {
	if len(argv) == 0 {
		return fault.Runtimef("empty command")
	}
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return fault.RuntimeWrap(err, "missing binary %q", argv[0])
	}
	if err := unix.Exec(path, argv, os.Environ()); err != nil {
		return fault.RuntimeWrap(err, "executing %q", path)
	}
	return nil
}
