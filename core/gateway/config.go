package gateway

// Config holds configuration for the gateway connection handed to the
// browser console.
type Config struct {
	// Endpoint is the URL the console connects to.
	Endpoint string `mapstructure:"endpoint" default:"http://127.0.0.1:8443"`
	// Token is the authentication token presented to the gateway.
	Token string `mapstructure:"token" default:""`
}
