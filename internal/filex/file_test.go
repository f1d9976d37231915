package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimal 1x1 PNG
var pngBytes = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89,
}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestReadAvatar_OK(t *testing.T) {
	path := writeTemp(t, "pic.png", pngBytes)
	data, err := ReadAvatar(path)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, data)
}

func TestReadAvatar_NotAnImage(t *testing.T) {
	path := writeTemp(t, "notes.txt", []byte("just text"))
	_, err := ReadAvatar(path)
	assert.ErrorIs(t, err, ErrNotAnImage)
}

func TestReadAvatar_TooLarge(t *testing.T) {
	big := make([]byte, MaxAvatarSize+1)
	path := writeTemp(t, "big.bin", big)
	_, err := ReadAvatar(path)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestReadAvatar_Missing(t *testing.T) {
	_, err := ReadAvatar(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}

func TestIsImage(t *testing.T) {
	assert.True(t, IsImage(pngBytes))
	assert.False(t, IsImage([]byte("plain text")))
}
