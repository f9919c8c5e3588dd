package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// MaxAssetSize is the upload size ceiling (15 MiB)
const MaxAssetSize = 15 * 1024 * 1024

// AssetURLPrefix is the path prefix uploaded files are served under
const AssetURLPrefix = "/uploads"

// AllowedMimeTypes is the upload allow-list
var AllowedMimeTypes = map[string]bool{
	"application/pdf": true,
	"image/png":       true,
	"image/jpeg":      true,
	"image/webp":      true,
	"image/gif":       true,
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9-_]`)

// AssetStore persists uploaded binaries under a single directory and hands
// back the relative path they are served from. Files are accepted on their
// declared MIME type alone; the bytes are not sniffed. That trust boundary is
// deliberate: a mismatched but allow-listed declared type is stored as-is.
type AssetStore struct {
	Dir string
}

// NewAssetStore creates the store rooted at dir, creating it if needed
func NewAssetStore(dir string) (*AssetStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %v", err)
	}
	return &AssetStore{Dir: dir}, nil
}

// Save validates the declared type and size, then writes the content under a
// timestamp-prefixed sanitized name and returns the public-servable path.
func (s *AssetStore) Save(src io.Reader, size int64, mimeType, originalName string) (string, error) {
	if !AllowedMimeTypes[mimeType] {
		return "", UnsupportedMediaTypeError("Unsupported file type.")
	}
	if size > MaxAssetSize {
		return "", PayloadTooLargeError("File size exceeds 15MB limit.")
	}

	filename := storedFilename(originalName)
	dst, err := os.Create(filepath.Join(s.Dir, filename))
	if err != nil {
		return "", StorageError("Failed to store file", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", StorageError("Failed to store file", err)
	}

	return path.Join(AssetURLPrefix, filename), nil
}

// SaveUploadedFile stores a multipart upload via Save
func (s *AssetStore) SaveUploadedFile(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", StorageError("Failed to read uploaded file", err)
	}
	defer src.Close()

	return s.Save(src, file.Size, file.Header.Get("Content-Type"), file.Filename)
}

// Remove deletes a stored asset by its served path. Best effort only:
// a path that no longer exists is not an error.
func (s *AssetStore) Remove(servedPath string) error {
	name := filepath.Base(strings.TrimPrefix(servedPath, "/"))
	if name == "." || name == "/" || name == "" {
		return nil
	}
	if err := os.Remove(filepath.Join(s.Dir, name)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// storedFilename derives a collision-resistant name: millisecond timestamp
// prefix plus the sanitized original basename, extension preserved.
func storedFilename(originalName string) string {
	ext := filepath.Ext(originalName)
	base := strings.TrimSuffix(filepath.Base(originalName), ext)
	base = unsafeFilenameChars.ReplaceAllString(base, "_")
	if base == "" {
		base = "file"
	}
	return fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), base, ext)
}
