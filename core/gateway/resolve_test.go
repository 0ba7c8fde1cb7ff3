package gateway_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"console-server/core/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeCredentials drops a credential file with the given token under
// home at the primary candidate location.
func writeCredentials(t *testing.T, home, token string) {
	t.Helper()
	dir := filepath.Join(home, ".gateway")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	doc := map[string]any{
		"gateway": map[string]any{
			"auth": map[string]any{"token": token},
		},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "credentials.json"), data, 0o600))
}

func TestResolve_TokenPrecedence(t *testing.T) {
	tests := []struct {
		name       string
		flag       string
		env        string
		file       string
		wantToken  string
		wantSource string
	}{
		{"FlagWinsOverAll", "from-flag", "from-env", "from-file", "from-flag", gateway.SourceFlag},
		{"EnvWinsOverFile", "", "from-env", "from-file", "from-env", gateway.SourceEnv},
		{"FileWhenNothingElse", "", "", "from-file", "from-file", ""},
		{"FlagWinsWithoutEnv", "from-flag", "", "from-file", "from-flag", gateway.SourceFlag},
		{"NoSourceAtAll", "", "", "", "", gateway.SourceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			t.Setenv("HOME", home)
			if tt.file != "" {
				writeCredentials(t, home, tt.file)
			}

			cfg := gateway.Config{Token: tt.env}
			got := gateway.Resolve(cfg, gateway.Overrides{Token: tt.flag})

			assert.Equal(t, tt.wantToken, got.Token)
			if tt.wantSource != "" {
				assert.Equal(t, tt.wantSource, got.TokenSource)
			} else {
				assert.Contains(t, got.TokenSource, "credential file")
			}
		})
	}
}

func TestResolve_EndpointPrecedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	// Flag over env-resolved config value.
	got := gateway.Resolve(
		gateway.Config{Endpoint: "http://env:1"},
		gateway.Overrides{Endpoint: "http://flag:2"},
	)
	assert.Equal(t, "http://flag:2", got.Endpoint)

	// Config value (env tier or default) when no flag is given.
	got = gateway.Resolve(gateway.Config{Endpoint: "http://env:1"}, gateway.Overrides{})
	assert.Equal(t, "http://env:1", got.Endpoint)
}

func TestResolve_FieldsAreIndependent(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeCredentials(t, home, "file-token")

	// Endpoint from flag, token from file: the chains do not couple.
	got := gateway.Resolve(gateway.Config{Endpoint: "http://env:1"}, gateway.Overrides{
		Endpoint: "http://flag:2",
	})
	assert.Equal(t, "http://flag:2", got.Endpoint)
	assert.Equal(t, "file-token", got.Token)
}

func TestResolve_NoTokenIsNotFatal(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got := gateway.Resolve(gateway.Config{}, gateway.Overrides{})
	assert.Empty(t, got.Token)
	assert.Equal(t, gateway.SourceNotFound, got.TokenSource)
}
