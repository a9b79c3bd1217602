// Package netinfo enumerates system network links for the ifaces preview.
package netinfo

import (
	"fmt"
	"net"

	"github.com/vishvananda/netlink"
)

// Denier reports whether an interface name is denied.
type Denier interface {
	Contains(name string) bool
}

// Iface is one system link together with its denylist verdict.
type Iface struct {
	Name   string
	Up     bool
	Denied bool
}

// List returns all links known to the kernel, marking those that denied
// refuses. Read-only; requires no privileges beyond netlink access.
func List(denied Denier) ([]Iface, error) {
	links, err := netlink.LinkList()
	if err != nil {
		return nil, fmt.Errorf("listing links: %w", err)
	}

	ifaces := make([]Iface, 0, len(links))
	for _, link := range links {
		attrs := link.Attrs()
		ifaces = append(ifaces, Iface{
			Name:   attrs.Name,
			Up:     attrs.Flags&net.FlagUp != 0,
			Denied: denied.Contains(attrs.Name),
		})
	}
	return ifaces, nil
}
