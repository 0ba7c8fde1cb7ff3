package console

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Read(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "dist")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.js"), []byte("js"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b.css"), []byte("css"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(parent, "outside.txt"), []byte("secret"), 0o644))

	store := NewStore(root)

	data, err := store.Read("/a.js")
	require.NoError(t, err)
	assert.Equal(t, "js", string(data))

	data, err = store.Read("/sub/b.css")
	require.NoError(t, err)
	assert.Equal(t, "css", string(data))

	// Absence is a typed outcome, not a raised failure.
	_, err = store.Read("/missing.js")
	assert.ErrorIs(t, err, ErrNotFound)

	// Directories are not servable assets.
	_, err = store.Read("/sub")
	assert.ErrorIs(t, err, ErrNotFound)

	// Dot-dot segments resolve inside the root, never above it.
	_, err = store.Read("/../outside.txt")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.Read("/sub/../../outside.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_ReadEntry(t *testing.T) {
	root := t.TempDir()

	store := NewStore(root)
	_, err := store.ReadEntry()
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(root, EntryDocument), []byte("<html>"), 0o644))
	data, err := store.ReadEntry()
	require.NoError(t, err)
	assert.Equal(t, "<html>", string(data))
}

func TestContentTypeFor(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/app.js", "application/javascript; charset=utf-8"},
		{"/APP.JS", "application/javascript; charset=utf-8"},
		{"/style.css", "text/css; charset=utf-8"},
		{"/model.glb", "model/gltf-binary"},
		{"/font.woff2", "font/woff2"},
		{"/archive.xyz", "application/octet-stream"},
		{"/noext", "application/octet-stream"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, contentTypeFor(tt.path), tt.path)
	}
}
