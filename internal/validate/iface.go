// Package validate enforces the syntactic rules for interface names.
package validate

import (
	"unicode"

	"github.com/ifguard/ifguard/internal/config"
	"github.com/ifguard/ifguard/internal/fault"
)

// maxNameLen matches the kernel limit for interface names.
const maxNameLen = 16

// Interface checks name against the syntactic rules and the denylist.
// Rules apply in order and the first failure wins: non-empty, no path
// separator or whitespace, length at most 16, not denied. Returns the name
// unchanged on success.
func Interface(name string, denied *config.Denylist) (string, error) {
	if name == "" {
		return "", fault.Validationf("empty interface name")
	}
	for _, r := range name {
		if r == '/' || unicode.IsSpace(r) {
			return "", fault.Validationf("interface name %q contains forbidden character %q", name, r)
		}
	}
	if len(name) > maxNameLen {
		return "", fault.Validationf("interface name %q exceeds %d characters", name, maxNameLen)
	}
	if denied.Contains(name) {
		return "", fault.Validationf("interface %q is denied by configuration", name)
	}
	return name, nil
}
