// Package config loads the interface denylist for ifguard.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ifguard/ifguard/internal/fault"
)

// Path is the fixed location of the denylist file. It must be writable by
// root only; ifguard deliberately offers no flag to point elsewhere, since
// the caller reaches us through sudo.
const Path = "/etc/ifguard/config.yaml"

// Loopback is denied unconditionally, whatever the file says.
const Loopback = "lo"

// Denylist is the set of interfaces ifguard refuses to touch.
type Denylist struct {
	names []string
	set   map[string]struct{}
}

// NewDenylist builds a denylist from the given names, deduplicating and
// appending the loopback interface if absent.
func NewDenylist(names ...string) *Denylist {
	d := &Denylist{set: make(map[string]struct{}, len(names)+1)}
	for _, name := range names {
		d.add(name)
	}
	d.add(Loopback)
	return d
}

func (d *Denylist) add(name string) {
	if _, dup := d.set[name]; dup {
		return
	}
	d.set[name] = struct{}{}
	d.names = append(d.names, name)
}

// Contains reports whether name is denied.
func (d *Denylist) Contains(name string) bool {
	_, ok := d.set[name]
	return ok
}

// Names returns the denied names in file order, loopback last unless the
// file already listed it.
func (d *Denylist) Names() []string {
	return d.names
}

// fileSchema mirrors the nested layout of the denylist file:
//
//	raw-interface:
//	  denied-interfaces:
//	    - eth0
//
// denied-interfaces is kept as a raw node so Load can distinguish an absent
// key from a value of the wrong type.
type fileSchema struct {
	RawInterface struct {
		DeniedInterfaces yaml.Node `yaml:"denied-interfaces"`
	} `yaml:"raw-interface"`
}

// Load reads the denylist file at path. A missing key yields a denylist
// containing only the loopback interface; a key holding anything other than
// a sequence of strings is a configuration error.
func Load(path string) (*Denylist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fault.ConfigWrap(err, "reading denylist %q", path)
	}

	var raw fileSchema
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fault.ConfigWrap(err, "parsing denylist %q", path)
	}

	node := raw.RawInterface.DeniedInterfaces
	if node.Kind == 0 {
		// Key absent entirely. Only the loopback is denied.
		return NewDenylist(), nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, fault.Configf("%s: raw-interface.denied-interfaces is not a list", path)
	}

	var configured []string
	if err := node.Decode(&configured); err != nil {
		return nil, fault.ConfigWrap(err, "%s: raw-interface.denied-interfaces", path)
	}

	return NewDenylist(configured...), nil
}
