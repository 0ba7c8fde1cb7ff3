package server

import (
	"net"
	"strconv"
)

// DefaultPort is used when the configured port is missing or not a
// valid port number.
const DefaultPort = 8080

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface the server binds to.
	Host string `mapstructure:"host" default:"0.0.0.0"`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// Assets is the directory holding the pre-built console bundle.
	Assets string `mapstructure:"assets" default:"./dist"`
}

// ResolvePort coerces the configured port to an integer. The second
// return value reports whether the configured value was usable; when it
// is false the port fell back to DefaultPort.
func (c Config) ResolvePort() (int, bool) {
	p, err := strconv.Atoi(c.Port)
	if err != nil || p <= 0 || p > 65535 {
		return DefaultPort, false
	}
	return p, true
}

// ListenAddr returns the host:port address the server binds to.
func (c Config) ListenAddr() string {
	port, _ := c.ResolvePort()
	return net.JoinHostPort(c.Host, strconv.Itoa(port))
}
