package net

import (
	"fmt"
	"os"

	"github.com/hashicorp/mdns"
)

const serviceType = "_sharedslate._tcp"

// Advertise announces the hub on the local network so classmates can find
// a session without typing addresses. The returned server must be shut
// down by the caller.
func Advertise(port int) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("could not get hostname: %w", err)
	}

	service, err := mdns.NewMDNSService(
		host,
		serviceType,
		"", // domain, defaults to .local
		"", // hostname, defaults to the OS hostname
		port,
		nil, // auto-detect IPs
		[]string{"SharedSlate"},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS service: %w", err)
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("failed to start mDNS server: %w", err)
	}
	return server, nil
}

// Browse looks up advertised hubs and reports each host:port found.
func Browse(found func(addr string)) error {
	entries := make(chan *mdns.ServiceEntry, 8)
	go func() {
		for e := range entries {
			if e.AddrV4 == nil || e.Port == 0 {
				continue
			}
			found(fmt.Sprintf("%s:%d", e.AddrV4.String(), e.Port))
		}
	}()
	return mdns.Lookup(serviceType, entries)
}
