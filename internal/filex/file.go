// Package filex contains small file helpers for the client, currently the
// checks applied to avatar images before they are uploaded.
package filex

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// MaxAvatarSize is the upload cap enforced client-side; the server applies
// the same limit.
const MaxAvatarSize = 5 << 20

var (
	ErrFileTooLarge = errors.New("Image size must be less than 5MB.")
	ErrNotAnImage   = errors.New("File must be an image.")
)

// ReadAvatar reads the file at path and verifies it is acceptable as an
// avatar: at most MaxAvatarSize bytes and an image by content sniffing.
// The size check happens before the read so an oversized file is never
// pulled into memory.
func ReadAvatar(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > MaxAvatarSize {
		return nil, ErrFileTooLarge
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if !IsImage(data) {
		return nil, ErrNotAnImage
	}
	return data, nil
}

// IsImage reports whether data sniffs as an image content type.
func IsImage(data []byte) bool {
	return strings.HasPrefix(http.DetectContentType(data), "image/")
}
