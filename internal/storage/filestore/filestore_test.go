package filestore

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndOpen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store := New(dir)
	content := []byte{0x89, 'P', 'N', 'G', 0, 1, 2, 3}

	require.NoError(t, store.Save("image.png", bytes.NewReader(content)))

	f, info, err := store.Open("image.png")
	require.NoError(t, err)
	defer f.Close()

	got, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, content, got)
	assert.Equal(t, int64(len(content)), info.Size())
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	store := New(dir)

	require.NoError(t, store.Save("a.gif", bytes.NewReader([]byte("GIF89a"))))

	_, err := os.Stat(filepath.Join(dir, "a.gif"))
	assert.NoError(t, err)
}

func TestSaveDoesNotOverwrite(t *testing.T) {
	store := New(t.TempDir())

	require.NoError(t, store.Save("a.png", bytes.NewReader([]byte("first"))))
	assert.Error(t, store.Save("a.png", bytes.NewReader([]byte("second"))))
}

func TestOpenNotFound(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "uploads")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "secret.txt"), []byte("secret"), 0o644))
	store := New(dir)

	tests := []struct {
		name     string
		filename string
	}{
		{name: "Missing file", filename: "missing.png"},
		{name: "Empty name", filename: ""},
		{name: "Directory", filename: "sub"},
		{name: "Parent traversal", filename: "../secret.txt"},
		{name: "Absolute path", filename: filepath.Join(root, "secret.txt")},
		{name: "Nested path", filename: "sub/file.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, info, err := store.Open(tt.filename)
			assert.ErrorIs(t, err, ErrNotFound)
			assert.Nil(t, f)
			assert.Nil(t, info)
		})
	}
}

func TestSaveRejectsTraversal(t *testing.T) {
	store := New(t.TempDir())

	err := store.Save("../escape.png", bytes.NewReader([]byte("x")))
	assert.ErrorIs(t, err, ErrInvalidName)
}
