package cmd

import (
	"fmt"
	"net"
	"strings"

	"console-server/core/server"

	psnet "github.com/shirou/gopsutil/v3/net"
)

// listenURLs expands the bind address into the URLs a browser can reach.
// An all-interfaces bind lists loopback plus every interface's IPv4
// address; a specific host is reported as-is.
func listenURLs(cfg server.Config) []string {
	port, _ := cfg.ResolvePort()

	if cfg.Host != "" && cfg.Host != "0.0.0.0" {
		return []string{fmt.Sprintf("http://%s:%d", cfg.Host, port)}
	}

	urls := []string{fmt.Sprintf("http://127.0.0.1:%d", port)}

	ifaces, err := psnet.Interfaces()
	if err != nil {
		return urls
	}
	for _, iface := range ifaces {
		for _, addr := range iface.Addrs {
			// Addresses come in CIDR notation.
			ip := net.ParseIP(strings.SplitN(addr.Addr, "/", 2)[0])
			if ip == nil || ip.To4() == nil || ip.IsLoopback() {
				continue
			}
			urls = append(urls, fmt.Sprintf("http://%s:%d", ip, port))
		}
	}
	return urls
}
