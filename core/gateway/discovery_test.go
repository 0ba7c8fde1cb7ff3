package gateway

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
}

func TestProbe_FirstValidCandidateWins(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.json")
	second := filepath.Join(dir, "second.json")
	writeFile(t, first, `{"gateway":{"auth":{"token":"abc"}}}`)
	writeFile(t, second, `{"gateway":{"auth":{"token":"never-read"}}}`)

	token, source := probe([]credentialProbe{
		{path: first, extract: authToken},
		{path: second, extract: authToken},
	})

	assert.Equal(t, "abc", token)
	assert.Equal(t, "credential file "+first, source)
}

func TestProbe_FallsThroughBadCandidates(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.json")
	invalid := filepath.Join(dir, "invalid.json")
	wrongType := filepath.Join(dir, "wrong.json")
	empty := filepath.Join(dir, "empty.json")
	good := filepath.Join(dir, "good.json")

	writeFile(t, invalid, `{not json`)
	writeFile(t, wrongType, `{"gateway":{"auth":{"token":42}}}`)
	writeFile(t, empty, `{"gateway":{"auth":{"token":""}}}`)
	writeFile(t, good, `{"gateway":{"auth":{"token":"tail"}}}`)

	token, source := probe([]credentialProbe{
		{path: missing, extract: authToken},
		{path: invalid, extract: authToken},
		{path: wrongType, extract: authToken},
		{path: empty, extract: authToken},
		{path: good, extract: authToken},
	})

	assert.Equal(t, "tail", token)
	assert.Equal(t, "credential file "+good, source)
}

func TestProbe_AllCandidatesFail(t *testing.T) {
	dir := t.TempDir()
	invalid := filepath.Join(dir, "invalid.json")
	writeFile(t, invalid, `[] trailing`)

	token, source := probe([]credentialProbe{
		{path: filepath.Join(dir, "absent.json"), extract: authToken},
		{path: invalid, extract: authToken},
	})

	assert.Empty(t, token)
	assert.Equal(t, SourceNotFound, source)
}

func TestAuthToken(t *testing.T) {
	tests := []struct {
		name string
		doc  map[string]any
		want string
		ok   bool
	}{
		{"Nested", map[string]any{"gateway": map[string]any{"auth": map[string]any{"token": "abc"}}}, "abc", true},
		{"MissingGateway", map[string]any{"other": true}, "", false},
		{"GatewayNotObject", map[string]any{"gateway": "str"}, "", false},
		{"MissingAuth", map[string]any{"gateway": map[string]any{}}, "", false},
		{"TokenNotString", map[string]any{"gateway": map[string]any{"auth": map[string]any{"token": 1.0}}}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := authToken(tt.doc)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestCandidates_Order(t *testing.T) {
	probes := candidates("/home/u")
	require.Len(t, probes, 2)
	assert.Equal(t, filepath.Join("/home/u", ".gateway", "credentials.json"), probes[0].path)
	assert.Equal(t, filepath.Join("/home/u", ".config", "gateway", "credentials.json"), probes[1].path)
}
