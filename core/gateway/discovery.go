package gateway

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// credentialProbe pairs a candidate file path with the extractor that
// pulls a token out of its parsed contents.
type credentialProbe struct {
	path    string
	extract func(map[string]any) (string, bool)
}

// candidates returns the ordered credential file probes under home.
// Probes are tried in sequence; the first one yielding a non-empty
// token wins and values are never merged across files.
func candidates(home string) []credentialProbe {
	return []credentialProbe{
		{path: filepath.Join(home, ".gateway", "credentials.json"), extract: authToken},
		{path: filepath.Join(home, ".config", "gateway", "credentials.json"), extract: authToken},
	}
}

// authToken extracts the nested gateway.auth.token string field.
func authToken(doc map[string]any) (string, bool) {
	gw, ok := doc["gateway"].(map[string]any)
	if !ok {
		return "", false
	}
	auth, ok := gw["auth"].(map[string]any)
	if !ok {
		return "", false
	}
	token, ok := auth["token"].(string)
	return token, ok
}

// discoverToken probes the well-known credential files under the home
// directory and returns the first token found, with a human-readable
// source label for startup diagnostics.
func discoverToken() (string, string) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", SourceNotFound
	}
	return probe(candidates(home))
}

// probe tries each candidate in order. Any failure (file absent,
// unreadable, invalid JSON, missing or wrong-typed field, empty value)
// just moves on to the next candidate.
func probe(probes []credentialProbe) (string, string) {
	for _, p := range probes {
		data, err := os.ReadFile(p.path)
		if err != nil {
			continue
		}
		var doc map[string]any
		if err := json.Unmarshal(data, &doc); err != nil {
			continue
		}
		if token, ok := p.extract(doc); ok && token != "" {
			return token, "credential file " + p.path
		}
	}
	return "", SourceNotFound
}
