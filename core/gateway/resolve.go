package gateway

// Overrides carries explicit invocation values. An empty field means
// "not provided"; the lower-precedence sources then apply.
type Overrides struct {
	Endpoint string
	Token    string
}

// Resolved is the connection configuration embedded into the console,
// computed exactly once at startup and never mutated afterwards.
type Resolved struct {
	Endpoint string
	Token    string
	// TokenSource labels where the token came from. Diagnostics only.
	TokenSource string
}

// Token source labels.
const (
	SourceFlag     = "flag"
	SourceEnv      = "environment"
	SourceNotFound = "not found"
)

// Resolve applies the precedence chain independently per field: explicit
// override, then the environment-resolved config value, then (for the
// token only) credential-file auto-discovery. The endpoint always
// resolves because the config default covers the empty case; the token
// stays empty when no source provides one.
func Resolve(cfg Config, ov Overrides) Resolved {
	r := Resolved{Endpoint: cfg.Endpoint}
	if ov.Endpoint != "" {
		r.Endpoint = ov.Endpoint
	}

	switch {
	case ov.Token != "":
		r.Token = ov.Token
		r.TokenSource = SourceFlag
	case cfg.Token != "":
		r.Token = cfg.Token
		r.TokenSource = SourceEnv
	default:
		r.Token, r.TokenSource = discoverToken()
	}

	return r
}
