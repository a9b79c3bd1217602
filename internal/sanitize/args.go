// Package sanitize filters raw trailing arguments before they are forwarded
// verbatim to ethtool.
package sanitize

import (
	"strings"

	"github.com/ifguard/ifguard/internal/fault"
)

// allowed reports whether r may appear in a forwarded argument. The set is
// a whitelist: letters, digits, hyphen, forward slash, and colon.
func allowed(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-', r == '/', r == ':':
		return true
	}
	return false
}

// Args checks every token against the whitelist and rejects tokens with a
// leading hyphen, which would smuggle extra flags into the forwarded
// command. Returns args unchanged on success.
func Args(args []string) ([]string, error) {
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			return nil, fault.Validationf("argument %q must not start with a hyphen", arg)
		}
		for _, r := range arg {
			if !allowed(r) {
				return nil, fault.Validationf("argument %q contains forbidden character %q", arg, r)
			}
		}
	}
	return args, nil
}
