package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// URLPrefix is how stored files are referenced by database records.
const URLPrefix = "/uploads/"

// ErrUnsupportedType is returned for any upload that is not a jpeg/jpg/png image.
var ErrUnsupportedType = errors.New("Only Image (Jpeg,Jpg,Png) are allowed")

var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
}

var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

// Store manages uploaded image files under a single uploads root.
// Records reference files by "/uploads/<name>" paths; the Store owns the
// mapping between those paths and the filesystem.
type Store struct {
	root string
}

func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &Store{root: root}, nil
}

// Save validates and writes an uploaded file into the uploads root and
// returns the "/uploads/<name>" path to persist on the owning record.
// The generated name is timestamp-prefixed to avoid collisions.
func (s *Store) Save(file *multipart.FileHeader) (string, error) {
	if err := validateImage(file); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(file.Filename))
	dst := filepath.Join(s.root, name)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(dst)
		return "", err
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return "", err
	}

	return URLPrefix + name, nil
}

// Replace stores the new file and only then deletes the old one, so a failed
// upload never leaves the owning record pointing at a deleted file. A missing
// old file is not an error.
func (s *Store) Replace(oldPath string, file *multipart.FileHeader) (string, error) {
	newPath, err := s.Save(file)
	if err != nil {
		return "", err
	}
	if err := s.Remove(oldPath); err != nil {
		return newPath, err
	}
	return newPath, nil
}

// Remove deletes the file referenced by a "/uploads/<name>" path. Removing a
// path that no longer exists is a no-op; callers must not fail the
// surrounding operation on a Remove error.
func (s *Store) Remove(path string) error {
	if path == "" {
		return nil
	}

	name := filepath.Base(strings.TrimPrefix(path, URLPrefix))
	err := os.Remove(filepath.Join(s.root, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Exists reports whether the file referenced by path is present on disk.
func (s *Store) Exists(path string) bool {
	name := filepath.Base(strings.TrimPrefix(path, URLPrefix))
	_, err := os.Stat(filepath.Join(s.root, name))
	return err == nil
}

func validateImage(file *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return ErrUnsupportedType
	}

	// Content-Type is client-supplied; check it when present, same as the
	// extension. Real content sniffing is out of scope.
	if ct := file.Header.Get("Content-Type"); ct != "" && !allowedMimeTypes[ct] {
		return ErrUnsupportedType
	}

	return nil
}
