package storage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cinebook/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader builds a real multipart.FileHeader by round-tripping a form.
func fileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, testutil.AddFormFile(w, "file", filename, contentType, content))
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)

	return form.File["file"][0]
}

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	root := t.TempDir()
	store, err := NewStore(root)
	require.NoError(t, err)
	return store, root
}

func TestSave_StoresImageUnderUploadsPath(t *testing.T) {
	store, root := newTestStore(t)

	path, err := store.Save(fileHeader(t, "poster.png", "image/png", []byte("png-bytes")))

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, URLPrefix), "Stored path should be a /uploads/ reference")
	assert.True(t, strings.HasSuffix(path, "-poster.png"), "Stored name should keep the original name")

	onDisk := filepath.Join(root, strings.TrimPrefix(path, URLPrefix))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestSave_RejectsUnsupportedType(t *testing.T) {
	testCases := []struct {
		name        string
		filename    string
		contentType string
	}{
		{"gif_extension", "animation.gif", "image/gif"},
		{"pdf_extension", "document.pdf", "application/pdf"},
		{"no_extension", "noext", "image/png"},
		{"spoofed_content_type", "image.png", "application/pdf"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, root := newTestStore(t)

			path, err := store.Save(fileHeader(t, tc.filename, tc.contentType, []byte("data")))

			assert.ErrorIs(t, err, ErrUnsupportedType)
			assert.Empty(t, path)

			entries, readErr := os.ReadDir(root)
			require.NoError(t, readErr)
			assert.Empty(t, entries, "Rejected upload must store nothing")
		})
	}
}

func TestSave_AllowsAllImageExtensions(t *testing.T) {
	store, _ := newTestStore(t)

	for _, filename := range []string{"a.jpeg", "b.jpg", "c.png", "D.PNG"} {
		path, err := store.Save(fileHeader(t, filename, "image/png", []byte("img")))
		require.NoError(t, err, "Extension of %s should be accepted", filename)
		assert.NotEmpty(t, path)
	}
}

func TestReplace_DeletesOldFileAfterNewOneExists(t *testing.T) {
	store, _ := newTestStore(t)

	oldPath, err := store.Save(fileHeader(t, "old.jpg", "image/jpeg", []byte("old")))
	require.NoError(t, err)
	require.True(t, store.Exists(oldPath))

	newPath, err := store.Replace(oldPath, fileHeader(t, "new.jpg", "image/jpeg", []byte("new")))

	require.NoError(t, err)
	assert.NotEqual(t, oldPath, newPath)
	assert.True(t, store.Exists(newPath), "New file must exist after replace")
	assert.False(t, store.Exists(oldPath), "Old file must be gone after replace")
}

func TestReplace_FailedSaveKeepsOldFile(t *testing.T) {
	store, _ := newTestStore(t)

	oldPath, err := store.Save(fileHeader(t, "old.jpg", "image/jpeg", []byte("old")))
	require.NoError(t, err)

	_, err = store.Replace(oldPath, fileHeader(t, "bad.gif", "image/gif", []byte("gif")))

	assert.ErrorIs(t, err, ErrUnsupportedType)
	assert.True(t, store.Exists(oldPath), "Old file must survive a failed replacement")
}

func TestReplace_MissingOldFileIsNotAnError(t *testing.T) {
	store, _ := newTestStore(t)

	newPath, err := store.Replace(URLPrefix+"already-gone.png", fileHeader(t, "new.png", "image/png", []byte("new")))

	require.NoError(t, err)
	assert.True(t, store.Exists(newPath))
}

func TestRemove_Idempotent(t *testing.T) {
	store, _ := newTestStore(t)

	path, err := store.Save(fileHeader(t, "pic.png", "image/png", []byte("pic")))
	require.NoError(t, err)

	require.NoError(t, store.Remove(path))
	assert.False(t, store.Exists(path))

	// Second remove of the same path is a no-op
	assert.NoError(t, store.Remove(path))
	assert.NoError(t, store.Remove(""))
}

func TestRemove_IgnoresPathTraversal(t *testing.T) {
	store, root := newTestStore(t)

	outside := filepath.Join(filepath.Dir(root), "outside.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep me"), 0o644))
	t.Cleanup(func() { os.Remove(outside) })

	// Remove resolves only the base name inside the uploads root
	require.NoError(t, store.Remove(URLPrefix+"../outside.txt"))

	_, err := os.Stat(outside)
	assert.NoError(t, err, "Files outside the uploads root must not be touched")
}
